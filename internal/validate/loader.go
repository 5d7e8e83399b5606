package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlclark/regexp2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// fileLoader loads JSON and YAML schema documents from file URLs.
type fileLoader struct{}

func (fileLoader) Load(url string) (any, error) {
	path, err := jsonschema.FileLoader{}.ToFile(url)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
		var v any

		err := yaml.NewDecoder(f).Decode(&v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode schema %s: %w", path, err)
		}

		return normalize(v), nil
	}

	return jsonschema.UnmarshalJSON(f)
}

// ecmaRegexp evaluates "pattern" keywords with ECMAScript semantics.
type ecmaRegexp regexp2.Regexp

func (re *ecmaRegexp) MatchString(s string) bool {
	matched, err := (*regexp2.Regexp)(re).MatchString(s)
	return err == nil && matched
}

func (re *ecmaRegexp) String() string {
	return (*regexp2.Regexp)(re).String()
}

func compileECMA(s string) (jsonschema.Regexp, error) {
	re, err := regexp2.Compile(s, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}

	return (*ecmaRegexp)(re), nil
}

func newCompiler() *jsonschema.Compiler {
	c := jsonschema.NewCompiler()
	c.UseLoader(jsonschema.SchemeURLLoader{"file": fileLoader{}})
	c.UseRegexpEngine(compileECMA)
	c.AssertFormat()
	c.DefaultDraft(jsonschema.Draft2020)

	return c
}

package validate

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mex-common/internal/match"
	"mex-common/internal/schema"
)

// Violation is a single schema violation.
type Violation struct {
	// Path locates the value, e.g. "$.email[0].mappingRules".
	Path string
	// Message describes the problem, e.g. "1 is not of type 'string'".
	Message string
	// Suggestions lists allowed names close to an unexpected property.
	Suggestions []string
}

var printer = message.NewPrinter(language.English)

// located is a violation together with its instance location, which orders
// violations by document position.
type located struct {
	loc []string
	Violation
}

// violations flattens the error returned by Schema.Validate into leaf
// violations ordered by location, array indexes compared as numbers. anyOf
// and oneOf failures are reported where the alternatives branch instead of
// once per alternative.
func violations(err error, instance any, root *schema.Node) []Violation {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []Violation{{Path: "$", Message: err.Error()}}
	}

	var found []located

	collect(verr, instance, root, &found)

	slices.SortStableFunc(found, func(a, b located) int {
		if c := compareLocations(a.loc, b.loc); c != 0 {
			return c
		}

		return cmp.Compare(a.Message, b.Message)
	})

	out := make([]Violation, 0, len(found))
	for _, f := range found {
		out = append(out, f.Violation)
	}

	return slices.CompactFunc(out, func(a, b Violation) bool {
		return a.Path == b.Path && a.Message == b.Message
	})
}

// compareLocations orders instance locations segment by segment. Two
// numeric segments compare as numbers, a parent sorts before its children.
func compareLocations(a, b []string) int {
	for i := range min(len(a), len(b)) {
		if c := compareSegments(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

func compareSegments(a, b string) int {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)

	if errA == nil && errB == nil {
		return cmp.Compare(x, y)
	}

	return cmp.Compare(a, b)
}

func collect(e *jsonschema.ValidationError, instance any, root *schema.Node, out *[]located) {
	value, path := locate(instance, e.InstanceLocation)
	add := func(v Violation) {
		v.Path = path
		*out = append(*out, located{loc: e.InstanceLocation, Violation: v})
	}

	switch k := e.ErrorKind.(type) {
	case *kind.AnyOf:
		add(Violation{Message: repr(value) + " is not valid under any of the given schemas"})
		return
	case *kind.OneOf:
		msg := repr(value) + " is not valid under any of the given schemas"
		if len(k.Subschemas) > 1 {
			msg = repr(value) + " is valid under more than one of the given schemas"
		}

		add(Violation{Message: msg})

		return
	case *kind.Required:
		for _, name := range k.Missing {
			add(Violation{Message: quote(name) + " is a required property"})
		}

		return
	case *kind.AdditionalProperties:
		v := Violation{Message: additionalMessage(k.Properties)}
		if len(k.Properties) == 1 {
			v.Suggestions = match.Suggest(k.Properties[0], propertiesAt(root, e.InstanceLocation), 3)
		}

		add(v)

		return
	}

	if len(e.Causes) > 0 {
		for _, cause := range e.Causes {
			collect(cause, instance, root, out)
		}

		return
	}

	add(Violation{Message: leafMessage(e.ErrorKind, value)})
}

func additionalMessage(props []string) string {
	sorted := slices.Clone(props)
	slices.Sort(sorted)

	verb := "were"
	if len(sorted) == 1 {
		verb = "was"
	}

	return fmt.Sprintf("Additional properties are not allowed (%s %s unexpected)", reprList(sorted), verb)
}

// propertiesAt returns the property names the schema declares for the
// object at loc. Alternatives are not followed.
func propertiesAt(root *schema.Node, loc []string) []string {
	n := root
	for _, seg := range loc {
		if n == nil {
			return nil
		}

		switch n.Kind {
		case schema.KindObject:
			n = n.Property(seg)
		case schema.KindArray:
			n = n.Items
		default:
			return nil
		}
	}

	return n.PropertyNames()
}

func leafMessage(k jsonschema.ErrorKind, value any) string {
	switch k := k.(type) {
	case *kind.Type:
		return fmt.Sprintf("%s is not of type %s", repr(value), reprList(k.Want))
	case *kind.Pattern:
		return fmt.Sprintf("%s does not match %s", quote(k.Got), quote(k.Want))
	case *kind.Enum:
		return fmt.Sprintf("%s is not one of %s", repr(value), repr(k.Want))
	case *kind.Const:
		return fmt.Sprintf("%s was expected", repr(k.Want))
	case *kind.Format:
		return fmt.Sprintf("%s is not a %s", repr(value), quote(k.Want))
	case *kind.MinLength:
		if k.Want == 1 {
			return repr(value) + " should be non-empty"
		}

		return repr(value) + " is too short"
	case *kind.MaxLength:
		if k.Want == 0 {
			return repr(value) + " is expected to be empty"
		}

		return repr(value) + " is too long"
	case *kind.MinItems:
		if k.Want == 1 {
			return repr(value) + " should be non-empty"
		}

		return repr(value) + " is too short"
	case *kind.MaxItems:
		if k.Want == 0 {
			return repr(value) + " is expected to be empty"
		}

		return repr(value) + " is too long"
	case *kind.FalseSchema:
		return "False schema does not allow " + repr(value)
	default:
		return k.LocalizedString(printer)
	}
}

// locate returns the value at loc inside instance together with its
// `$.a[0].b` path. Segments addressing arrays become indexes.
func locate(instance any, loc []string) (any, string) {
	path := "$"
	cur := instance

	for _, seg := range loc {
		switch v := cur.(type) {
		case []any:
			i, err := strconv.Atoi(seg)
			if err == nil && i >= 0 && i < len(v) {
				path += "[" + seg + "]"
				cur = v[i]

				continue
			}

			path += "." + seg
			cur = nil
		case map[string]any:
			path += "." + seg
			cur = v[seg]
		default:
			path += "." + seg
			cur = nil
		}
	}

	return cur, path
}

package template

import (
	"mex-common/internal/ordered"
	"mex-common/internal/schema"
)

// CreateTemplateFromSchema returns the template for node: an ordered.Map for
// object nodes, a []any for array nodes and nil for everything else. It never
// fails; nodes of unknown shape degrade to nil.
func CreateTemplateFromSchema(node *schema.Node) any {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case schema.KindObject:
		tpl := make(ordered.Map, 0, len(node.Properties))
		for _, p := range node.Properties {
			tpl = append(tpl, ordered.Pair{Key: p.Name, Value: CreateTemplateFromSchema(p.Schema)})
		}

		return tpl
	case schema.KindArray:
		return []any{CreateTemplateFromSchema(node.Items)}
	case schema.KindAnyOf, schema.KindScalar:
		return nil
	default:
		return nil
	}
}

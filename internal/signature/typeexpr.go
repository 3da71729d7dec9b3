// This file resolves the type fragment of a parameter (e.g. `Number`,
// `string`, `list(number)`) into the type name used in a TypeKey.

package signature

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/typedispatch/internal/ctxlog"
	"github.com/specialistvlad/typedispatch/internal/typetag"
	"github.com/zclconf/go-cty/cty"
)

// hclKeywords are the HCL primitive type keywords.
var hclKeywords = map[string]cty.Type{
	"string": cty.String,
	"number": cty.Number,
	"bool":   cty.Bool,
	"any":    cty.DynamicPseudoType,
}

// resolveTypeName parses a declared type fragment and returns its type name.
func resolveTypeName(ctx context.Context, raw string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	expr, diags := hclsyntax.ParseExpression([]byte(raw), "signature", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return "", fmt.Errorf("not a type expression: %s", diags.Error())
	}

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return "", fmt.Errorf("type name must be a single identifier")
		}
		name := v.Traversal.RootName()
		keyword, ok := hclKeywords[name]
		if !ok {
			return name, nil
		}
		if keyword.Equals(cty.DynamicPseudoType) {
			return "", fmt.Errorf("type 'any' cannot be dispatched on; name a concrete type")
		}
		logger.Debug("Resolved HCL type keyword.", "keyword", name, "type", typetag.FromCtyType(keyword))
		return typetag.FromCtyType(keyword), nil

	case *hclsyntax.LiteralValueExpr:
		// `null` is the only literal accepted as a type.
		if v.Val.IsNull() {
			return typetag.Null, nil
		}
		return "", fmt.Errorf("literal %s is not a type", v.Val.GoString())

	case *hclsyntax.FunctionCallExpr:
		t, err := typeExprToCtyType(ctx, v)
		if err != nil {
			return "", err
		}
		logger.Debug("Resolved type constructor.", "call", v.Name, "cty_type", t.FriendlyName())
		return typetag.FromCtyType(t), nil

	default:
		return "", fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

// typeExprToCtyType converts an HCL type expression into its cty.Type
// equivalent. Identifiers that are not HCL keywords are treated as `any`
// inside constructors: element types never take part in dispatch.
func typeExprToCtyType(ctx context.Context, expr hcl.Expression) (cty.Type, error) {
	logger := ctxlog.FromContext(ctx)

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		if len(v.Args) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("type constructor %q requires exactly one argument, got %d", v.Name, len(v.Args))
		}

		switch v.Name {
		case "object":
			return objectType(ctx, v.Args[0])
		case "tuple":
			return tupleType(ctx, v.Args[0])
		}

		elementType, err := typeExprToCtyType(ctx, v.Args[0])
		if err != nil {
			return cty.DynamicPseudoType, err
		}
		logger.Debug("Parsed collection element type.", "type", elementType.FriendlyName())

		switch v.Name {
		case "list":
			return cty.List(elementType), nil
		case "map":
			return cty.Map(elementType), nil
		case "set":
			return cty.Set(elementType), nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor function %q", v.Name)
		}

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		if keyword, ok := hclKeywords[v.Traversal.RootName()]; ok {
			return keyword, nil
		}
		return cty.DynamicPseudoType, nil

	default:
		return cty.DynamicPseudoType, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

func objectType(ctx context.Context, arg hcl.Expression) (cty.Type, error) {
	objExpr, ok := arg.(*hclsyntax.ObjectConsExpr)
	if !ok {
		return cty.DynamicPseudoType, fmt.Errorf("the argument to object() must be an object literal like { key = type, ... }, got %T", arg)
	}

	attrTypes := make(map[string]cty.Type, len(objExpr.Items))
	for _, item := range objExpr.Items {
		var key string
		if keyExpr, ok := item.KeyExpr.(*hclsyntax.ObjectConsKeyExpr); ok {
			switch kexpr := keyExpr.Wrapped.(type) {
			case *hclsyntax.ScopeTraversalExpr:
				if len(kexpr.Traversal) == 1 {
					key = kexpr.Traversal.RootName()
				}
			case *hclsyntax.TemplateExpr:
				if len(kexpr.Parts) == 1 {
					if lit, isLit := kexpr.Parts[0].(*hclsyntax.LiteralValueExpr); isLit && lit.Val.Type().Equals(cty.String) {
						key = lit.Val.AsString()
					}
				}
			}
		}
		if key == "" {
			return cty.DynamicPseudoType, fmt.Errorf("invalid key in object type definition: keys must be simple identifiers or quoted strings")
		}

		valueType, err := typeExprToCtyType(ctx, item.ValueExpr)
		if err != nil {
			return cty.DynamicPseudoType, fmt.Errorf("in object attribute '%s': %w", key, err)
		}
		attrTypes[key] = valueType
	}

	return cty.Object(attrTypes), nil
}

func tupleType(ctx context.Context, arg hcl.Expression) (cty.Type, error) {
	tupleExpr, ok := arg.(*hclsyntax.TupleConsExpr)
	if !ok {
		return cty.DynamicPseudoType, fmt.Errorf("the argument to tuple() must be a list of types like [type, ...], got %T", arg)
	}

	elemTypes := make([]cty.Type, len(tupleExpr.Exprs))
	for i, elemExpr := range tupleExpr.Exprs {
		elemType, err := typeExprToCtyType(ctx, elemExpr)
		if err != nil {
			return cty.DynamicPseudoType, fmt.Errorf("in tuple element %d: %w", i, err)
		}
		elemTypes[i] = elemType
	}

	return cty.Tuple(elemTypes), nil
}

package evaluator

import (
	"fmt"
	"strings"

	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/cssatomic/compiler/internal/loc"
	"github.com/iancoleman/strcase"
)

// evaluateObject folds an object-literal style expression (spec.md
// §4.2 case 2). Nested selectors nest structurally in the returned CSS
// text ("&SUFFIX{...}") rather than threading a suffix string through —
// internal/csstext's parser already walks real nested rulesets (it has
// to, to support arbitrary nesting depth), so this just has to emit
// valid nested CSS and let that parser accumulate the suffix chain.
func (e *Evaluator) evaluateObject(obj *jsast.EObject, ctx Context) CSSOutput {
	var sb strings.Builder
	var vars []VarBinding

	for _, prop := range obj.Properties {
		if prop.Spread {
			resolved, ok := e.resolveSpreadOperand(prop.Value)
			if !ok {
				e.Handler.AppendInfo(&loc.ErrorWithRange{
					Text:  "spread operand could not be resolved to a static style object; skipped",
					Code:  loc.INFO_CONSERVATIVE_FALLBACK,
					Range: loc.Range{Loc: prop.Value.Loc},
				})
				continue
			}
			sub := e.evaluateObject(resolved, ctx)
			sb.WriteString(sub.CSS)
			vars = append(vars, sub.Variables...)
			continue
		}

		if prop.Computed {
			e.Handler.AppendInfo(&loc.ErrorWithRange{
				Text:  "computed object keys are not statically evaluable; property skipped",
				Code:  loc.INFO_CONSERVATIVE_FALLBACK,
				Range: loc.Range{Loc: prop.KeyExpr.Loc},
			})
			continue
		}

		if isNestedSelectorKey(prop.Key) {
			if nestedObj, ok := prop.Value.Data.(*jsast.EObject); ok {
				sub := e.evaluateObject(nestedObj, ctx)
				selector := prop.Key
				if !strings.HasPrefix(selector, "&") {
					selector = "&" + selector
				}
				sb.WriteString(selector + "{" + sub.CSS + "}")
				vars = append(vars, sub.Variables...)
				continue
			}
		}

		property := cssPropertyName(prop.Key)
		valueText, propVars, ok := e.evaluatePropertyValue(prop.Key, prop.Value, ctx)
		if !ok {
			continue
		}
		sb.WriteString(property + ":" + valueText + ";")
		vars = append(vars, propVars...)
	}

	return CSSOutput{CSS: sb.String(), Variables: dedupeVars(vars)}
}

// evaluatePropertyValue folds one object-literal property's value
// (spec.md §4.2 case 2's Value rule): primitives become the
// declaration's value (with px-suffixing for numeric length
// properties, spec.md §9's resolved open question); an identifier or
// complex expression always becomes a CSS variable — unlike a
// template-literal interpolation or a whole style-expression reference,
// an object-literal value that is an identifier is NOT resolved against
// local consts, since the explicit `{ color }` / `{ color: x }` shape
// is the author's signal that the value is dynamic.
func (e *Evaluator) evaluatePropertyValue(camelKey string, value jsast.Expr, ctx Context) (string, []VarBinding, bool) {
	switch v := value.Data.(type) {
	case *jsast.EString:
		return v.Value, nil, true
	case *jsast.ENumber:
		text := formatNumber(v.Value)
		if NeedsPxSuffix(camelKey, text, true) {
			text += "px"
		}
		return text, nil, true
	case *jsast.EBoolean:
		return fmt.Sprintf("%v", v.Value), nil, true
	case nil:
		e.Handler.AppendError(&loc.ErrorWithRange{
			Text:  "empty expression is not a valid style value",
			Code:  loc.ERROR_UNSUPPORTED_EXPRESSION,
			Range: loc.Range{Loc: value.Loc},
		})
		return "", nil, false
	default:
		resolved := e.resolveDynamicValue(value, ctx.PropsParam)
		name := e.varNameFor(resolved, ctx)
		return "var(" + name + ")", []VarBinding{{Name: name, Expr: resolved}}, true
	}
}

// resolveSpreadOperand resolves a spread element's operand to a static
// object literal (spec.md §4.2 case 2's "spread element whose operand
// is a resolvable object is flattened in place"): either the operand is
// already an object literal, or it is a local const bound to one.
func (e *Evaluator) resolveSpreadOperand(expr jsast.Expr) (*jsast.EObject, bool) {
	switch v := expr.Data.(type) {
	case *jsast.EObject:
		return v, true
	case *jsast.EIdentifier:
		return e.Program.ResolveStaticObject(v.Name)
	}
	return nil, false
}

// isNestedSelectorKey reports whether key denotes a nested selector
// block rather than a plain declaration (spec.md §4.2 case 2: "a string
// key beginning with `:` or `&` or a bracketed selector").
func isNestedSelectorKey(key string) bool {
	return strings.HasPrefix(key, ":") || strings.HasPrefix(key, "&") || strings.HasPrefix(key, "[")
}

// cssPropertyName lowercases a camelCase object key with hyphens
// (spec.md §4.2 case 2's key rule: `fontSize` -> `font-size`), leaving
// an already-hyphenated custom property (`--foo`) untouched.
func cssPropertyName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	return strcase.ToDelimited(key, '-')
}

package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/iancoleman/strcase"
)

// evaluateTemplate folds a template-literal style expression (spec.md
// §4.2 case 2, first numbered item "Template literal with
// interpolations"). A no-substitution template is raw CSS text
// verbatim (spec.md §4.2 case 1); otherwise each interpolation is
// classified and either inlined as static text or turned into a fresh
// CSS variable.
func (e *Evaluator) evaluateTemplate(t *jsast.ETemplate, ctx Context) CSSOutput {
	if len(t.Parts) == 0 {
		return CSSOutput{CSS: joinQuasis(t.Quasis)}
	}

	var sb strings.Builder
	var vars []VarBinding
	for i, part := range t.Parts {
		sb.WriteString(t.Quasis[i])

		value := e.resolveDynamicValue(part.Value, ctx.PropsParam)
		text, subVars, inlined := e.inlinePart(value, sb.String())
		if inlined {
			sb.WriteString(text)
			vars = append(vars, subVars...)
			continue
		}

		name := e.varNameFor(value, ctx)
		sb.WriteString("var(" + name + ")")
		vars = append(vars, VarBinding{Name: name, Expr: value})
	}
	sb.WriteString(t.Quasis[len(t.Parts)])

	return CSSOutput{CSS: sb.String(), Variables: dedupeVars(vars)}
}

// inlinePart attempts to classify one interpolation as statically
// inlineable CSS text (spec.md §4.2 case 2): a literal is always
// inlineable; an identifier is inlineable only if the focused resolver
// (spec.md §9) can substitute a literal, a no-hole template, or a style
// object. Anything else becomes a CSS variable in the caller.
func (e *Evaluator) inlinePart(expr jsast.Expr, precedingText string) (string, []VarBinding, bool) {
	switch v := expr.Data.(type) {
	case *jsast.EString:
		return v.Value, nil, true
	case *jsast.ENumber:
		return applyUnitSuffix(precedingText, formatNumber(v.Value)), nil, true
	case *jsast.EIdentifier:
		// jsast.ResolveStaticString is the focused resolver itself
		// (spec.md §9 rules a/b): it already unwraps a local
		// `const x = () => LITERAL` arrow body, so a literal reached
		// through a factory arrow inlines here too, not just a bare
		// `const x = LITERAL`.
		if resolved, ok := e.Program.ResolveStaticString(v.Name); ok {
			if text, vars, ok := literalCSSText(resolved, precedingText); ok {
				return text, vars, true
			}
		}
		// Fall back to the general resolver for an imported binding
		// (spec.md §6's program-wide ModuleResolver) or a style object
		// reference, neither of which ResolveStaticString covers.
		resolved, ok := e.resolveIdentifier(v.Name)
		if !ok {
			return "", nil, false
		}
		if text, vars, ok := literalCSSText(resolved, precedingText); ok {
			return text, vars, true
		}
		if obj, ok := resolved.Data.(*jsast.EObject); ok {
			sub := e.evaluateObject(obj, Context{OwnerID: v.Name})
			return sub.CSS, sub.Variables, true
		}
		return "", nil, false
	}
	return "", nil, false
}

// literalCSSText renders a resolved string/number/no-hole-template
// literal as CSS text, applying the same px-suffix rule a bare literal
// interpolation gets.
func literalCSSText(resolved jsast.Expr, precedingText string) (string, []VarBinding, bool) {
	switch r := resolved.Data.(type) {
	case *jsast.EString:
		return r.Value, nil, true
	case *jsast.ENumber:
		return applyUnitSuffix(precedingText, formatNumber(r.Value)), nil, true
	case *jsast.ETemplate:
		if len(r.Parts) == 0 {
			return joinQuasis(r.Quasis), nil, true
		}
	}
	return "", nil, false
}

func joinQuasis(quasis []string) string {
	return strings.Join(quasis, "")
}

// detectEnclosingProperty scans backward from the end of precedingText
// (everything emitted so far for the current CSS text block) to find
// the property name the current interpolation is a value for, so
// applyUnitSuffix can decide whether a bare number needs "px" (spec.md
// §9's resolved open question: the rule is applied the same way here as
// for object-literal values).
func detectEnclosingProperty(precedingText string) (string, bool) {
	idx := strings.LastIndexAny(precedingText, ";{}")
	segment := precedingText[idx+1:]
	colon := strings.LastIndex(segment, ":")
	if colon == -1 {
		return "", false
	}
	propText := strings.TrimSpace(segment[:colon])
	if propText == "" {
		return "", false
	}
	return strcase.ToLowerCamel(propText), true
}

func applyUnitSuffix(precedingText, value string) string {
	property, ok := detectEnclosingProperty(precedingText)
	if !ok {
		return value
	}
	if NeedsPxSuffix(property, value, true) {
		return value + "px"
	}
	return value
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

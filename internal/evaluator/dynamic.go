package evaluator

import (
	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/cssatomic/compiler/internal/loc"
)

// resolveDynamicValue rewrites an expression that reads a styled
// component's props — either directly (`props.size`, when ctx already
// carries PropsParam from an enclosing `props => ...` factory) or via
// an inline accessor arrow (`p => p.size`, the shape a template-literal
// interpolation uses, spec.md §4.2 case 4's worked example) — into a
// bare reference to the local name the emitter destructures out of
// ...props. Any prop name that is not a valid HTML attribute is
// recorded in Destructured so the emitter knows to pull it out of the
// forwarded rest (spec.md §8 "prop isolation"). Anything else is
// returned unchanged.
func (e *Evaluator) resolveDynamicValue(expr jsast.Expr, propsParam string) jsast.Expr {
	if arrow, ok := expr.Data.(*jsast.EArrow); ok && arrow.Param != "" {
		if member, ok := arrow.Body.Data.(*jsast.EMember); ok {
			if id, ok := member.Object.Data.(*jsast.EIdentifier); ok && id.Name == arrow.Param {
				return e.destructure(expr.Loc, member.Property)
			}
		}
		return expr
	}

	if propsParam == "" {
		return expr
	}
	if member, ok := expr.Data.(*jsast.EMember); ok {
		if id, ok := member.Object.Data.(*jsast.EIdentifier); ok && id.Name == propsParam {
			return e.destructure(expr.Loc, member.Property)
		}
	}
	return expr
}

func (e *Evaluator) destructure(l loc.Loc, name string) jsast.Expr {
	if !jsast.IsHTMLValidProp(name) {
		e.Destructured[name] = true
	}
	return jsast.Expr{Loc: l, Data: &jsast.EIdentifier{Name: name}}
}

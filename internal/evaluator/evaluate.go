// Package evaluator is the style-expression evaluator (spec.md §4.2):
// it folds a style expression — string, template, object, array, arrow,
// or identifier reference — into a CSSOutput, the (raw CSS text,
// dynamic-variable bindings) pair the CSS transformer and emitter
// consume next. The evaluator is a fold over the tagged-union shape
// jsast.E already models (spec.md §9's "AST as tagged variants").
package evaluator

import (
	"fmt"

	"github.com/cssatomic/compiler/internal/handler"
	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/cssatomic/compiler/internal/loc"
)

// VarBinding is one (name, expression) pair of a CSSOutput (spec.md
// §3): Name is a generated CSS custom-property identifier carrying its
// leading "--", Expr is the source-AST node that must be evaluated at
// runtime to supply the value.
type VarBinding struct {
	Name string
	Expr jsast.Expr
}

// CSSOutput is the style evaluator's result for one style expression
// (spec.md §3).
type CSSOutput struct {
	CSS       string
	Variables []VarBinding
}

// ModuleResolver is spec.md §6's optional program-wide resolver: when
// present, it lets the evaluator resolve a binding imported from
// another module instead of degrading it to a CSS variable (spec.md
// §7's "Unresolvable import in full-program mode" policy).
type ModuleResolver interface {
	ResolveImport(source, importedName string) (jsast.Expr, bool)
}

// Context threads the per-call-site state the evaluator needs while
// folding one style expression.
type Context struct {
	// PropsParam is the local name bound to styled's props parameter
	// when evaluating inside a `props => ...` factory body, "" outside
	// one (spec.md §4.2 case 4).
	PropsParam string
	// OwnerID keys deterministic CSS variable naming: spec.md §4.2 case
	// 2 requires names to be "deterministic per (owning identifier,
	// occurrence)".
	OwnerID string
}

// Evaluator folds the style expression of one call site. Destructured
// accumulates the prop names spec.md §4.2 case 4 says must be pulled
// out of the forwarded ...props rest; callers create a fresh Evaluator
// (via New) per call site since it feeds that call site's emitted
// component signature.
type Evaluator struct {
	Program      *jsast.Program
	Resolver     ModuleResolver
	Handler      *handler.Handler
	Destructured map[string]bool

	varSeq       map[string]int
	varByContent map[string]string
}

// New creates an evaluator scoped to one call site. program supplies
// the focused local-binding resolver (spec.md §9); resolver is the
// optional program-wide one (nil if the host gave none).
func New(program *jsast.Program, resolver ModuleResolver, h *handler.Handler) *Evaluator {
	return &Evaluator{
		Program:      program,
		Resolver:     resolver,
		Handler:      h,
		Destructured: make(map[string]bool),
		varSeq:       make(map[string]int),
		varByContent: make(map[string]string),
	}
}

// Eval folds expr into a CSSOutput under ctx. This is the top-level
// dispatch over the five style-expression kinds spec.md §4.2 names
// (string/template, object, array, arrow, identifier reference); any
// other expression shape is conservatively treated as unresolvable
// (spec.md §7's "any construct it does not understand becomes a
// runtime CSS-variable binding rather than a compile-time inlining" —
// at the top level, where there is no single property to bind the
// dynamic value to, that degrades to an Info diagnostic and no static
// CSS for this reference).
func (e *Evaluator) Eval(expr jsast.Expr, ctx Context) CSSOutput {
	switch v := expr.Data.(type) {
	case nil:
		e.Handler.AppendError(&loc.ErrorWithRange{
			Text:  "empty expression is not a valid style value",
			Code:  loc.ERROR_UNSUPPORTED_EXPRESSION,
			Range: loc.Range{Loc: expr.Loc},
		})
		return CSSOutput{}
	case *jsast.EJSXEmpty:
		e.Handler.AppendError(&loc.ErrorWithRange{
			Text:  "empty JSX expression container is not a valid style value",
			Code:  loc.ERROR_UNSUPPORTED_EXPRESSION,
			Range: loc.Range{Loc: expr.Loc},
		})
		return CSSOutput{}
	case *jsast.EString:
		return CSSOutput{CSS: v.Value}
	case *jsast.ETemplate:
		return e.evaluateTemplate(v, ctx)
	case *jsast.EObject:
		return e.evaluateObject(v, ctx)
	case *jsast.EArray:
		return e.evaluateArray(v, ctx)
	case *jsast.EArrow:
		childCtx := ctx
		childCtx.PropsParam = v.Param
		return e.Eval(v.Body, childCtx)
	case *jsast.EIdentifier:
		resolved, ok := e.resolveIdentifier(v.Name)
		if !ok {
			e.Handler.AppendInfo(&loc.ErrorWithRange{
				Text:  fmt.Sprintf("could not resolve %q to static CSS; no styles emitted for this reference", v.Name),
				Code:  loc.INFO_CONSERVATIVE_FALLBACK,
				Range: loc.Range{Loc: expr.Loc},
			})
			return CSSOutput{}
		}
		return e.Eval(resolved, Context{OwnerID: v.Name})
	default:
		e.Handler.AppendInfo(&loc.ErrorWithRange{
			Text:  "expression is not statically evaluable; no styles emitted for this reference",
			Code:  loc.INFO_CONSERVATIVE_FALLBACK,
			Range: loc.Range{Loc: expr.Loc},
		})
		return CSSOutput{}
	}
}

func (e *Evaluator) evaluateArray(arr *jsast.EArray, ctx Context) CSSOutput {
	var css string
	var vars []VarBinding
	for _, item := range arr.Items {
		sub := e.Eval(item, ctx)
		css += sub.CSS
		vars = append(vars, sub.Variables...)
	}
	return CSSOutput{CSS: css, Variables: dedupeVars(vars)}
}

// resolveIdentifier implements spec.md §9's focused binding resolver
// for the "variable reference" style-expression kind: a local
// top-level const substitutes its initializer; an imported binding
// asks the optional program-wide resolver; anything else fails.
func (e *Evaluator) resolveIdentifier(name string) (jsast.Expr, bool) {
	if init, ok := e.Program.FindConst(name); ok {
		return init, true
	}
	if e.Resolver != nil {
		if source, ok := e.Program.ImportSource(name); ok {
			if expr, ok2 := e.Resolver.ResolveImport(source, name); ok2 {
				return expr, true
			}
		}
	}
	return jsast.Expr{}, false
}

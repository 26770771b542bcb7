package transform

import (
	"github.com/cssatomic/compiler/internal/csstext"
	"github.com/cssatomic/compiler/internal/evaluator"
	"github.com/cssatomic/compiler/internal/handler"
	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/cssatomic/compiler/internal/loc"
	"github.com/cssatomic/compiler/internal/printer"
)

// visitStyled is spec.md §4.1's "dispatch to visitStyledPath": fold the
// style expression, atomize it, hoist the resulting sheets, and emit
// the forwardRef replacement. Data flow is exactly the pipeline spec.md
// §2 describes: entry visitor -> style evaluator -> CSS transformer ->
// emitter.
func visitStyled(tag jsast.Tag, styleExpr jsast.Expr, l loc.Loc, program *jsast.Program, state *State, opts Options, h *handler.Handler) jsast.Expr {
	ev := evaluator.New(program, opts.ModuleResolver, h)
	css := ev.Eval(styleExpr, evaluator.Context{OwnerID: state.nextCallSiteID()})

	atomized := csstext.Atomize(css.CSS, state.HashTable)
	idents := printer.Hoist(program, atomized.Sheets, state.Sheets)

	emission := printer.EmitStyled(tag, atomized, idents, css, ev.Destructured, opts.Nonce)
	return jsast.Expr{Loc: l, Data: &jsast.EOpaque{Raw: emission.Source}}
}

// visitCSSProp is spec.md §4.1's "dispatch to visitCssPropPath" for a
// JSX opening element carrying a `css` attribute.
func visitCSSProp(elem *jsast.EJSXElement, l loc.Loc, program *jsast.Program, state *State, opts Options, h *handler.Handler) jsast.Expr {
	var cssExpr jsast.Expr
	var existingClassName, existingStyle string
	for _, a := range elem.Attrs {
		if a.Spread {
			continue
		}
		switch a.Name {
		case "css":
			cssExpr = a.Value
		case "className":
			existingClassName = printer.PrintExpr(a.Value)
		case "style":
			existingStyle = printer.PrintExpr(a.Value)
		}
	}

	ev := evaluator.New(program, opts.ModuleResolver, h)
	css := ev.Eval(cssExpr, evaluator.Context{OwnerID: state.nextCallSiteID()})

	atomized := csstext.Atomize(css.CSS, state.HashTable)
	idents := printer.Hoist(program, atomized.Sheets, state.Sheets)

	emission := printer.EmitCSSProp(elem, atomized, idents, css, existingClassName, existingStyle, opts.Nonce)
	return jsast.Expr{Loc: l, Data: &jsast.EOpaque{Raw: emission.Source}}
}

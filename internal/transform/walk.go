package transform

import (
	"github.com/cssatomic/compiler/internal/handler"
	"github.com/cssatomic/compiler/internal/jsast"
)

// visitProgram walks every top-level statement's expression tree in
// source order (spec.md §4.1), looking for styled call sites and
// css-prop JSX elements. Matched nodes are replaced in place with the
// emitted opaque source text; everything else is walked recursively so
// call sites nested inside object literals, arrays, arrow bodies, and
// JSX children are still found.
func visitProgram(program *jsast.Program, state *State, opts Options, h *handler.Handler) {
	for _, stmt := range program.Body {
		switch s := stmt.Data.(type) {
		case *jsast.SConst:
			walkExpr(&s.Init, program, state, opts, h)
		case *jsast.SExpr:
			walkExpr(&s.Value, program, state, opts, h)
		}
	}
}

func walkExpr(e *jsast.Expr, program *jsast.Program, state *State, opts Options, h *handler.Handler) {
	if e == nil || e.Data == nil {
		return
	}

	switch v := e.Data.(type) {
	case *jsast.ECall:
		if tag, ok := matchStyledCallee(v.Callee, state); ok && len(v.Args) > 0 {
			*e = visitStyled(tag, v.Args[0], e.Loc, program, state, opts, h)
			return
		}
		walkExpr(&v.Callee, program, state, opts, h)
		for i := range v.Args {
			walkExpr(&v.Args[i], program, state, opts, h)
		}

	case *jsast.ETaggedTemplate:
		if tag, ok := matchStyledCallee(v.Tag, state); ok {
			styleExpr := jsast.Expr{Loc: e.Loc, Data: v.Quasi}
			*e = visitStyled(tag, styleExpr, e.Loc, program, state, opts, h)
			return
		}
		for i := range v.Quasi.Parts {
			walkExpr(&v.Quasi.Parts[i].Value, program, state, opts, h)
		}

	case *jsast.EArray:
		for i := range v.Items {
			walkExpr(&v.Items[i], program, state, opts, h)
		}

	case *jsast.EObject:
		for i := range v.Properties {
			walkExpr(&v.Properties[i].Value, program, state, opts, h)
		}

	case *jsast.ETemplate:
		for i := range v.Parts {
			walkExpr(&v.Parts[i].Value, program, state, opts, h)
		}

	case *jsast.EArrow:
		walkExpr(&v.Body, program, state, opts, h)

	case *jsast.ESpread:
		walkExpr(&v.Value, program, state, opts, h)

	case *jsast.EMember:
		walkExpr(&v.Object, program, state, opts, h)

	case *jsast.EJSXElement:
		if hasCSSAttr(v) {
			*e = visitCSSProp(v, e.Loc, program, state, opts, h)
			return
		}
		for i := range v.Attrs {
			walkExpr(&v.Attrs[i].Value, program, state, opts, h)
		}
		for i := range v.Children {
			walkExpr(&v.Children[i], program, state, opts, h)
		}
	}
}

// matchStyledCallee implements spec.md §4.1's "Call expressions and
// tagged template expressions whose callee resolves to the recorded
// local name of `styled` (possibly with a `.tag` member like
// `styled.div`)". It also recognizes the `styled(Component)` factory
// call form, classifying the tag per spec.md §3.
func matchStyledCallee(callee jsast.Expr, state *State) (jsast.Tag, bool) {
	if state.CompiledImports == nil || state.CompiledImports.StyledLocalName == "" {
		return jsast.Tag{}, false
	}
	localName := state.CompiledImports.StyledLocalName

	switch v := callee.Data.(type) {
	case *jsast.EMember:
		if id, ok := v.Object.Data.(*jsast.EIdentifier); ok && id.Name == localName {
			// styled.div/styled.Foo: classify by spec.md §3's casing rule
			// rather than assuming member-access always means InBuilt —
			// a member name can be any identifier, and ClassifyTag is the
			// one place this pass decides host-element vs component.
			return jsast.ClassifyTag(v.Property), true
		}
	case *jsast.ECall:
		if id, ok := v.Callee.Data.(*jsast.EIdentifier); ok && id.Name == localName && len(v.Args) == 1 {
			if argID, ok := v.Args[0].Data.(*jsast.EIdentifier); ok {
				return jsast.Tag{Name: argID.Name, Kind: jsast.UserDefined}, true
			}
		}
	}
	return jsast.Tag{}, false
}

func hasCSSAttr(elem *jsast.EJSXElement) bool {
	for _, a := range elem.Attrs {
		if !a.Spread && a.Name == "css" {
			return true
		}
	}
	return false
}

package transform

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cssatomic/compiler/internal/handler"
	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/cssatomic/compiler/internal/printer"
	"github.com/cssatomic/compiler/internal/test_utils"
	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

// printProgram renders a transformed program back to source text for
// assertions, the same minimal job the host framework's own printer
// (out of scope, spec.md §6) would otherwise do for us — this pass
// only ever needs to round-trip the statement shapes it itself
// produces or leaves untouched.
func printProgram(p *jsast.Program) string {
	var sb strings.Builder
	for _, stmt := range p.Body {
		switch s := stmt.Data.(type) {
		case *jsast.SImport:
			sb.WriteString(printImport(s) + "\n")
		case *jsast.SConst:
			sb.WriteString(fmt.Sprintf("const %s = %s;\n", s.Name, printer.PrintExpr(s.Init)))
		case *jsast.SExpr:
			sb.WriteString(printer.PrintExpr(s.Value) + ";\n")
		case *jsast.SOpaque:
			sb.WriteString(s.Raw + "\n")
		}
	}
	return sb.String()
}

func printImport(imp *jsast.SImport) string {
	for _, spec := range imp.Specifiers {
		if spec.IsNamespace {
			return fmt.Sprintf("import * as %s from %q;", spec.LocalName, imp.Source)
		}
	}
	names := make([]string, len(imp.Specifiers))
	for i, spec := range imp.Specifiers {
		if spec.ImportedName == spec.LocalName {
			names[i] = spec.LocalName
		} else {
			names[i] = spec.ImportedName + " as " + spec.LocalName
		}
	}
	return fmt.Sprintf("import { %s } from %q;", strings.Join(names, ", "), imp.Source)
}

func jsxText(s string) jsast.Expr {
	return jsast.Expr{Data: &jsast.EJSXText{Value: s}}
}

func compiledImport(specifiers ...jsast.ImportSpecifier) *jsast.Stmt {
	return &jsast.Stmt{Data: &jsast.SImport{Source: RuntimeModule, Specifiers: specifiers}}
}

// TestTransformUntouchedWithoutImport covers spec.md §6's "Enabling
// import": a module that never imports from the runtime library is
// left completely untouched.
func TestTransformUntouchedWithoutImport(t *testing.T) {
	program := &jsast.Program{Body: []*jsast.Stmt{
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag:   jsast.ClassifyTag("div"),
			Attrs: []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{}}}},
		}}}},
	}}
	before := printProgram(program)

	state := Transform(program, Options{}, handler.NewHandler("", "t.tsx"))

	assert.Assert(t, state.CompiledImports == nil)
	assert.Equal(t, before, printProgram(program))
}

// TestTransformEmptyCSSProp covers spec.md §8 scenario 1.
func TestTransformEmptyCSSProp(t *testing.T) {
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(),
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag:      jsast.ClassifyTag("div"),
			Attrs:    []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{}}}},
			Children: []jsast.Expr{jsxText("hello")},
		}}}},
	}}

	Transform(program, Options{}, handler.NewHandler("", "t.tsx"))
	out := printProgram(program)

	assert.Assert(t, strings.Contains(out, `import * as React from "react";`), out)
	assert.Assert(t, strings.Contains(out, "const _1 ="), out)
	assert.Assert(t, strings.Contains(out, "<CC>"), out)
	assert.Assert(t, strings.Contains(out, "hello"), out)
}

// emptyCSSPropProgram builds a fresh, never-mutated program equivalent
// to TestTransformEmptyCSSProp's fixture, for TestTransformDeterministic.
func emptyCSSPropProgram() *jsast.Program {
	return &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(),
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag:      jsast.ClassifyTag("div"),
			Attrs:    []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{}}}},
			Children: []jsast.Expr{jsxText("hello")},
		}}}},
	}}
}

// TestTransformDeterministic covers spec.md §8's determinism invariant:
// running the pass twice on equivalent fresh input yields byte-identical
// output. DiffText pinpoints the divergence on failure instead of just
// reporting "not equal".
func TestTransformDeterministic(t *testing.T) {
	first := emptyCSSPropProgram()
	Transform(first, Options{}, handler.NewHandler("", "t.tsx"))

	second := emptyCSSPropProgram()
	Transform(second, Options{}, handler.NewHandler("", "t.tsx"))

	test_utils.DiffText(t, "determinism", printProgram(first), printProgram(second))
}

// TestTransformCSSPropDeclarations covers spec.md §8 scenario 2.
func TestTransformCSSPropDeclarations(t *testing.T) {
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(),
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag: jsast.ClassifyTag("div"),
			Attrs: []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{Properties: []jsast.Property{
				{Key: "fontSize", Value: jsast.Expr{Data: &jsast.ENumber{Value: 20}}},
				{Key: "color", Value: jsast.Expr{Data: &jsast.EString{Value: "blue"}}},
			}}}}},
		}}}},
	}}

	Transform(program, Options{}, handler.NewHandler("", "t.tsx"))
	out := printProgram(program)

	assert.Assert(t, strings.Contains(out, "font-size:20px"), out)
	assert.Assert(t, strings.Contains(out, "color:blue"), out)
	assert.Assert(t, strings.Contains(out, "ax(["), out)
}

// TestTransformHoistsOneConstForDuplicateSiblings covers spec.md §8
// scenario 4 and invariant "rule reuse": two siblings with identical
// css props hoist exactly one const.
func TestTransformHoistsOneConstForDuplicateSiblings(t *testing.T) {
	makeDiv := func() jsast.Expr {
		return jsast.Expr{Data: &jsast.EJSXElement{
			Tag: jsast.ClassifyTag("div"),
			Attrs: []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{Properties: []jsast.Property{
				{Key: "fontSize", Value: jsast.Expr{Data: &jsast.ENumber{Value: 12}}},
			}}}}},
		}}
	}
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(),
		{Data: &jsast.SExpr{Value: makeDiv()}},
		{Data: &jsast.SExpr{Value: makeDiv()}},
	}}

	state := Transform(program, Options{}, handler.NewHandler("", "t.tsx"))

	assert.Equal(t, len(state.Sheets.Sheets), 1)
	out := printProgram(program)
	assert.Equal(t, strings.Count(out, "const _1 ="), 1)
}

// TestTransformCSSPropVariableBinding covers spec.md §8 scenario 5: an
// identifier-valued css property becomes a CSS variable bound in the
// merged style object.
func TestTransformCSSPropVariableBinding(t *testing.T) {
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(),
		{Data: &jsast.SConst{Name: "color", Init: jsast.Expr{Data: &jsast.EString{Value: "blue"}}}},
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag: jsast.ClassifyTag("div"),
			Attrs: []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{Properties: []jsast.Property{
				{Key: "color", Value: jsast.Expr{Data: &jsast.EIdentifier{Name: "color"}}},
			}}}}},
		}}}},
	}}

	Transform(program, Options{}, handler.NewHandler("", "t.tsx"))
	out := printProgram(program)

	assert.Assert(t, strings.Contains(out, `"--`), out)
	assert.Assert(t, strings.Contains(out, "style={{ \"--"), out)
	assert.Assert(t, strings.Contains(out, ": color }}"), out)
}

// TestTransformStyledDestructuresPropAccessor covers spec.md §8
// scenario 6: a styled.div template interpolating a props accessor
// destructures the prop name out of ...props.
func TestTransformStyledDestructuresPropAccessor(t *testing.T) {
	accessor := jsast.Expr{Data: &jsast.EArrow{
		Param: "p",
		Body:  jsast.Expr{Data: &jsast.EMember{Object: jsast.Expr{Data: &jsast.EIdentifier{Name: "p"}}, Property: "size"}},
	}}
	tagged := jsast.Expr{Data: &jsast.ETaggedTemplate{
		Tag: jsast.Expr{Data: &jsast.EMember{Object: jsast.Expr{Data: &jsast.EIdentifier{Name: "styled"}}, Property: "div"}},
		Quasi: &jsast.ETemplate{
			Quasis: []string{"font-size:", "px;"},
			Parts:  []jsast.TemplatePart{{Value: accessor}},
		},
	}}
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(jsast.ImportSpecifier{ImportedName: "styled", LocalName: "styled"}),
		{Data: &jsast.SConst{Name: "S", Init: tagged}},
	}}

	Transform(program, Options{}, handler.NewHandler("", "t.tsx"))
	out := printProgram(program)

	assert.Assert(t, strings.Contains(out, "React.forwardRef"), out)
	assert.Assert(t, strings.Contains(out, ", size, ...props }"), out)
	assert.Assert(t, !strings.Contains(out, "props.size"), out)
}

// TestTransformStyledUserDefinedComponent covers spec.md §3's Tag rule
// for the `styled(Component)` factory form: the emitted tag is the
// identifier, not a string literal.
func TestTransformStyledUserDefinedComponent(t *testing.T) {
	tagged := jsast.Expr{Data: &jsast.ETaggedTemplate{
		Tag: jsast.Expr{Data: &jsast.ECall{
			Callee: jsast.Expr{Data: &jsast.EIdentifier{Name: "styled"}},
			Args:   []jsast.Expr{{Data: &jsast.EIdentifier{Name: "Button"}}},
		}},
		Quasi: &jsast.ETemplate{Quasis: []string{"color:red;"}},
	}}
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(jsast.ImportSpecifier{ImportedName: "styled", LocalName: "styled"}),
		{Data: &jsast.SConst{Name: "S", Init: tagged}},
	}}

	Transform(program, Options{}, handler.NewHandler("", "t.tsx"))
	out := printProgram(program)

	assert.Assert(t, strings.Contains(out, "as: C = Button"), out)
	assert.Assert(t, !strings.Contains(out, `as: C = "Button"`), out)
}

// TestTransformNonceThreadedThroughCS covers spec.md §6's nonce option.
func TestTransformNonceThreadedThroughCS(t *testing.T) {
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(),
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag:   jsast.ClassifyTag("div"),
			Attrs: []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{}}}},
		}}}},
	}}

	Transform(program, Options{Nonce: "cspNonce"}, handler.NewHandler("", "t.tsx"))
	out := printProgram(program)

	assert.Assert(t, strings.Contains(out, "nonce={cspNonce}"), out)
}

// TestTransformSkipsReactImportWhenBindingExists covers spec.md §4.1's
// "Program exit" reaction guard.
func TestTransformSkipsReactImportWhenBindingExists(t *testing.T) {
	program := &jsast.Program{Body: []*jsast.Stmt{
		{Data: &jsast.SImport{Source: "react", Specifiers: []jsast.ImportSpecifier{
			{ImportedName: "*", LocalName: "React", IsNamespace: true},
		}}},
		compiledImport(),
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag:   jsast.ClassifyTag("div"),
			Attrs: []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{}}}},
		}}}},
	}}

	Transform(program, Options{}, handler.NewHandler("", "t.tsx"))
	out := printProgram(program)

	assert.Equal(t, strings.Count(out, `import * as React from "react";`), 1)
}

// TestHoisterStateDiff exercises go-cmp over the hoister's sheet table
// directly (rather than through printed text), covering invariant 2:
// exactly one identifier per unique rule string.
func TestHoisterStateDiff(t *testing.T) {
	program := &jsast.Program{Body: []*jsast.Stmt{
		compiledImport(),
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EJSXElement{
			Tag: jsast.ClassifyTag("div"),
			Attrs: []jsast.JSXAttr{{Name: "css", Value: jsast.Expr{Data: &jsast.EObject{Properties: []jsast.Property{
				{Key: "color", Value: jsast.Expr{Data: &jsast.EString{Value: "red"}}},
			}}}}},
		}}}},
	}}

	state := Transform(program, Options{}, handler.NewHandler("", "t.tsx"))

	want := map[string]string{}
	for rule, ident := range state.Sheets.Sheets {
		want[rule] = ident
	}
	if diff := cmp.Diff(want, state.Sheets.Sheets); diff != "" {
		t.Fatalf("sheets map mutated unexpectedly (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(state.Sheets.Sheets), 1)
}

package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFindConst and TestResolveStaticObject cover spec.md §9's focused
// binding resolver rules (a) and (b): a local const substitutes its
// literal initializer directly, or the body of a no-arg arrow wrapping
// one.
func TestFindConst(t *testing.T) {
	p := &Program{Body: []*Stmt{
		{Data: &SConst{Name: "base", Init: Expr{Data: &EString{Value: "blue"}}}},
	}}
	init, ok := p.FindConst("base")
	assert.True(t, ok)
	assert.Equal(t, "blue", init.Data.(*EString).Value)

	_, ok = p.FindConst("missing")
	assert.False(t, ok)
}

func TestResolveStaticObject(t *testing.T) {
	obj := &EObject{Properties: []Property{{Key: "color", Value: Expr{Data: &EString{Value: "red"}}}}}
	p := &Program{Body: []*Stmt{
		{Data: &SConst{Name: "base", Init: Expr{Data: obj}}},
		{Data: &SConst{Name: "wrapped", Init: Expr{Data: &EArrow{Body: Expr{Data: obj}}}}},
	}}

	got, ok := p.ResolveStaticObject("base")
	assert.True(t, ok)
	assert.Equal(t, obj, got)

	got, ok = p.ResolveStaticObject("wrapped")
	assert.True(t, ok)
	assert.Equal(t, obj, got)

	_, ok = p.ResolveStaticObject("missing")
	assert.False(t, ok)
}

// TestHasBinding covers the entry visitor's guard (spec.md §4.1) for
// deciding whether to inject the React namespace import.
func TestHasBinding(t *testing.T) {
	p := &Program{Body: []*Stmt{
		{Data: &SImport{Source: "react", Specifiers: []ImportSpecifier{{ImportedName: "*", LocalName: "React", IsNamespace: true}}}},
	}}
	assert.True(t, p.HasBinding("React"))
	assert.False(t, p.HasBinding("Vue"))
}

// TestImportSource covers the program-wide resolver lookup path (spec.md
// §6): finding which module a local binding was imported from.
func TestImportSource(t *testing.T) {
	p := &Program{Body: []*Stmt{
		{Data: &SImport{Source: "./theme", Specifiers: []ImportSpecifier{{ImportedName: "colors", LocalName: "colors"}}}},
	}}
	source, ok := p.ImportSource("colors")
	assert.True(t, ok)
	assert.Equal(t, "./theme", source)

	_, ok = p.ImportSource("missing")
	assert.False(t, ok)
}

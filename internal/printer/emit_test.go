package printer

import (
	"testing"

	"github.com/cssatomic/compiler/internal/csstext"
	"github.com/cssatomic/compiler/internal/evaluator"
	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/cssatomic/compiler/internal/test_utils"
)

// TestEmitStyledSnapshot snapshots the forwardRef/CC/CS/ax expression
// spec.md §4.4 describes for a styled.div call site with one static
// declaration and one dynamic prop-driven variable, the same
// input/output snapshot shape the teacher's printer tests use.
func TestEmitStyledSnapshot(t *testing.T) {
	tag := jsast.Tag{Name: "div", Kind: jsast.InBuilt}
	table := csstext.NewHashTable()
	atomized := csstext.Atomize("color:blue;font-size:var(--size)px;", table)

	css := evaluator.CSSOutput{
		Variables: []evaluator.VarBinding{
			{Name: "--size", Expr: jsast.Expr{Data: &jsast.EIdentifier{Name: "size"}}},
		},
	}
	destructured := map[string]bool{"size": true}

	emission := EmitStyled(tag, atomized, atomized.Sheets, css, destructured, "")

	test_utils.MakeSnapshot(&test_utils.SnapshotOptions{
		Testing:      t,
		TestCaseName: "styled div with one dynamic variable",
		Input:        "styled.div`color: blue; font-size: ${p => p.size}px;`",
		Output:       emission.Source,
		Kind:         test_utils.JsxOutput,
	})
}

// TestEmitCSSPropSnapshot snapshots a css-prop call site wrapping an
// existing element, merging its className/style (spec.md §4.4).
func TestEmitCSSPropSnapshot(t *testing.T) {
	elem := &jsast.EJSXElement{
		Tag:      jsast.Tag{Name: "div", Kind: jsast.InBuilt},
		Attrs:    []jsast.JSXAttr{{Name: "id", Value: jsast.Expr{Data: &jsast.EString{Value: "hero"}}}},
		Children: []jsast.Expr{{Data: &jsast.EJSXText{Value: "hello"}}},
	}
	table := csstext.NewHashTable()
	atomized := csstext.Atomize("font-size:20px;", table)
	css := evaluator.CSSOutput{}

	emission := EmitCSSProp(elem, atomized, atomized.Sheets, css, "", "", "nonceValue")

	test_utils.MakeSnapshot(&test_utils.SnapshotOptions{
		Testing:      t,
		TestCaseName: "css prop with nonce",
		Input:        `<div id="hero" css={{ fontSize: 20 }}>hello</div>`,
		Output:       emission.Source,
		Kind:         test_utils.JsxOutput,
	})
}

// TestRenderStyleObjectOmitsSpreadWithoutVariables covers the STYLE_OBJECT
// rule in spec.md §4.4: the ...style spread is omitted entirely when
// there are no variables to merge, so a call site with purely static
// CSS never forwards an unnecessary spread.
func TestRenderStyleObjectOmitsSpreadWithoutVariables(t *testing.T) {
	got := renderStyleObject(nil, true)
	if got != "style" {
		t.Fatalf("expected bare style forward, got %q", got)
	}
}

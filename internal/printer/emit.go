package printer

import (
	"sort"
	"strings"

	"github.com/cssatomic/compiler/internal/csstext"
	"github.com/cssatomic/compiler/internal/evaluator"
	"github.com/cssatomic/compiler/internal/jsast"
)

// The three symbols the emitted code always references from the
// runtime helper library (spec.md §6): ax merges class lists resolving
// "last one wins" conflicts by property-group prefix, CC is the
// stylesheet-injection context wrapper, CS is the injector element
// itself. All three are opaque to this compiler.
const (
	AxIdent = "ax"
	CCIdent = "CC"
	CSIdent = "CS"
)

// StyledEmission is the rendered replacement for one `styled` call site.
type StyledEmission struct {
	Source       string
	Destructured []string
}

// EmitStyled builds the expression spec.md §4.4 describes for a styled
// call site:
//
//	React.forwardRef(({ as: C = TAG, style, DESTRUCTURED…, ...props }, ref) => (
//	  <CC>
//	    <CS NONCE?>{[HOISTED_SHEETS…]}</CS>
//	    <C {...props} style={STYLE_OBJECT} ref={ref}
//	       className={ax([CLASSES…, props.className])} />
//	  </CC>
//	))
func EmitStyled(tag jsast.Tag, atomized csstext.Output, hoistedIdents []string, css evaluator.CSSOutput, destructured map[string]bool, nonce string) StyledEmission {
	tagLiteral := tag.Name
	if tag.Kind == jsast.InBuilt {
		tagLiteral = quoteString(tag.Name)
	}

	destructuredNames := sortedKeys(destructured)

	var params strings.Builder
	params.WriteString("{ as: C = " + tagLiteral + ", style")
	for _, name := range destructuredNames {
		params.WriteString(", " + name)
	}
	params.WriteString(", ...props }")

	styleObject := renderStyleObject(css.Variables, true)
	classNames := renderClassList(atomized.ClassNames, "props.className")
	csElement := renderCSElement(hoistedIdents, nonce)

	var sb strings.Builder
	sb.WriteString("React.forwardRef((" + params.String() + ", ref) => (\n")
	sb.WriteString("  <" + CCIdent + ">\n")
	sb.WriteString("    " + csElement + "\n")
	sb.WriteString("    <C {...props} style={" + styleObject + "} ref={ref} className={" + classNames + "} />\n")
	sb.WriteString("  </" + CCIdent + ">\n")
	sb.WriteString("))")

	return StyledEmission{Source: sb.String(), Destructured: destructuredNames}
}

// CSSPropEmission is the rendered replacement for one css-prop call
// site.
type CSSPropEmission struct {
	Source string
}

// EmitCSSProp wraps elem in a <CC> carrying an embedded <CS> of hoisted
// sheets, merging its className/style per spec.md §4.4's css-prop rule
// (invariant 4). existingClassName/existingStyle are the element's
// original className/style attribute text (already rendered to source,
// "" when absent).
func EmitCSSProp(elem *jsast.EJSXElement, atomized csstext.Output, hoistedIdents []string, css evaluator.CSSOutput, existingClassName, existingStyle, nonce string) CSSPropEmission {
	csElement := renderCSElement(hoistedIdents, nonce)
	classNames := renderClassList(atomized.ClassNames, existingClassName)
	styleText := renderMergedStyle(css.Variables, existingStyle)

	element := RenderJSXElement(elem, classNames, styleText)

	var sb strings.Builder
	sb.WriteString("<" + CCIdent + ">")
	sb.WriteString(csElement)
	sb.WriteString(element)
	sb.WriteString("</" + CCIdent + ">")

	return CSSPropEmission{Source: sb.String()}
}

// renderStyleObject builds the STYLE_OBJECT spec.md §4.4 describes:
// `{ ...style, "--var": expr, … }`, with the spread omitted when there
// are no variables — at that point the original `style` prop is
// forwarded as-is (or `{}` is returned when spreadExistingStyle is
// false), there being nothing to merge.
func renderStyleObject(vars []evaluator.VarBinding, spreadExistingStyle bool) string {
	if len(vars) == 0 {
		if spreadExistingStyle {
			return "style"
		}
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	if spreadExistingStyle {
		sb.WriteString("...style, ")
	}
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		parts = append(parts, quoteString(v.Name)+": "+PrintExpr(v.Expr))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(" }")
	return sb.String()
}

// renderMergedStyle merges a css-prop element's preexisting style
// expression with the evaluator's variable bindings, preserving the
// declaration order of the original style object (spec.md §4.4: "merging
// any preexisting style attribute ... preserving declaration order of
// the original style object" — achieved by spreading it first).
func renderMergedStyle(vars []evaluator.VarBinding, existingStyleExpr string) string {
	if len(vars) == 0 {
		return existingStyleExpr
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	if existingStyleExpr != "" {
		sb.WriteString("..." + existingStyleExpr + ", ")
	}
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		parts = append(parts, quoteString(v.Name)+": "+PrintExpr(v.Expr))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(" }")
	return sb.String()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

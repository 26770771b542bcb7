package printer

import (
	"strings"

	"github.com/cssatomic/compiler/internal/jsast"
)

// RenderJSXElement renders elem back to source text, substituting
// className/style for whatever the original element carried. Invariant
// 4 (spec.md §3): every user-authored prop is preserved except `css`
// (always dropped, it was consumed), `className` (merged) and `style`
// (merged when variables exist) — both passed in already merged by the
// caller.
func RenderJSXElement(elem *jsast.EJSXElement, className string, style string, extraAttrs ...string) string {
	tagText := elem.Tag.Name

	var sb strings.Builder
	sb.WriteString("<" + tagText)
	for _, attr := range elem.Attrs {
		if attr.Spread {
			sb.WriteString(" {..." + PrintExpr(attr.Value) + "}")
			continue
		}
		switch attr.Name {
		case "css", "className", "style":
			continue
		}
		sb.WriteString(" " + attr.Name + "={" + PrintExpr(attr.Value) + "}")
	}
	if className != "" {
		sb.WriteString(" className={" + className + "}")
	}
	if style != "" {
		sb.WriteString(" style={" + style + "}")
	}
	for _, extra := range extraAttrs {
		sb.WriteString(" " + extra)
	}

	if len(elem.Children) == 0 {
		sb.WriteString(" />")
		return sb.String()
	}
	sb.WriteString(">")
	for _, child := range elem.Children {
		sb.WriteString(renderChild(child))
	}
	sb.WriteString("</" + tagText + ">")
	return sb.String()
}

func renderChild(e jsast.Expr) string {
	switch v := e.Data.(type) {
	case *jsast.EJSXText:
		return v.Value
	case *jsast.EJSXElement:
		return RenderJSXElement(v, attrText(v, "className"), attrText(v, "style"))
	default:
		return "{" + PrintExpr(e) + "}"
	}
}

func attrText(elem *jsast.EJSXElement, name string) string {
	for _, a := range elem.Attrs {
		if a.Name == name {
			return PrintExpr(a.Value)
		}
	}
	return ""
}

// renderCSElement builds the `<CS>{[...]}</CS>` stylesheet injector
// spec.md §4.4 emits at every call site, threading a `nonce` attribute
// when the module was configured with one (spec.md §6).
func renderCSElement(idents []string, nonce string) string {
	nonceAttr := ""
	if nonce != "" {
		nonceAttr = " nonce={" + nonce + "}"
	}
	return "<" + CSIdent + nonceAttr + ">{[" + strings.Join(idents, ", ") + "]}</" + CSIdent + ">"
}

// renderClassList builds the `ax([...])` call merging the atomized
// class names with whatever className expression the call site already
// carried (spec.md §4.4): `props.className` for a styled component,
// the original `className` attribute text for a css-prop element.
func renderClassList(classNames []string, existingExpr string) string {
	items := make([]string, 0, len(classNames)+1)
	for _, c := range classNames {
		items = append(items, quoteString(c))
	}
	if existingExpr != "" {
		items = append(items, existingExpr)
	}
	return AxIdent + "([" + strings.Join(items, ", ") + "])"
}

func quoteString(s string) string {
	return "\"" + s + "\""
}

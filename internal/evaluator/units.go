package evaluator

import "github.com/dlclark/regexp2"

// lengthProperties is the canonical table spec.md §9 leaves as an open
// question ("the source omits full property→unit tables"). This
// implementation picks one fixed list and applies it uniformly to both
// object-literal values and template-literal interpolations (DESIGN.md
// records this as the resolved Open Question, rather than copying the
// original's inconsistent behaviour verbatim).
var lengthProperties = map[string]bool{
	"width": true, "height": true, "minWidth": true, "minHeight": true,
	"maxWidth": true, "maxHeight": true,
	"top": true, "right": true, "bottom": true, "left": true,
	"margin": true, "marginTop": true, "marginRight": true,
	"marginBottom": true, "marginLeft": true,
	"padding": true, "paddingTop": true, "paddingRight": true,
	"paddingBottom": true, "paddingLeft": true,
	"fontSize": true, "borderWidth": true, "borderTopWidth": true,
	"borderRightWidth": true, "borderBottomWidth": true, "borderLeftWidth": true,
	"borderRadius": true, "gap": true, "rowGap": true, "columnGap": true,
	"letterSpacing": true,
}

// unitlessNumberProperties never get a px suffix even though their
// value is numeric (lineHeight, flex/grow factors, opacity, z-index,
// etc. — CSS treats a bare number as meaningful here).
var unitlessNumberProperties = map[string]bool{
	"lineHeight": true, "opacity": true, "zIndex": true, "flex": true,
	"flexGrow": true, "flexShrink": true, "fontWeight": true,
	"order": true, "zoom": true,
}

// bareNumberPattern matches a value that is nothing but a number — no
// unit, no keyword, no trailing garbage. Re-running the suffixer on an
// already-suffixed value ("20px") must leave it alone, which is spec.md
// §8's "idempotence of unit-suffixing" property; the negative lookahead
// that makes that check possible ("not immediately followed by a known
// unit token") has no equivalent in Go's RE2-based regexp/syntax, hence
// regexp2 here instead of the standard library.
var bareNumberPattern = regexp2.MustCompile(
	`^-?\d+(\.\d+)?(?!px|%|em|rem|vh|vw|vmin|vmax|pt|pc|in|cm|mm|ex|ch|fr|deg|rad|s|ms)$`,
	regexp2.None,
)

// NeedsPxSuffix reports whether a bare numeric value attached to
// property should be suffixed with "px" (spec.md §4.2 case 2, the
// numeric-length-property rule). value is the raw literal text, e.g.
// "20" or "1.5rem"; numeric is whether the source value was itself a
// JS number literal (as opposed to a string already containing units).
func NeedsPxSuffix(property string, value string, numeric bool) bool {
	if !numeric {
		return false
	}
	if unitlessNumberProperties[property] {
		return false
	}
	if property == "lineHeight" {
		// lineHeight >= 1 is conventionally unitless (spec.md §4.2 case 2).
		return false
	}
	if !lengthProperties[property] && !isLengthLike(property) {
		return false
	}
	if value == "0" {
		return false
	}
	ok, _ := bareNumberPattern.MatchString(value)
	return ok
}

// isLengthLike catches the "border*Width" family spec.md §4.2 calls out
// explicitly without needing one entry per side/kind.
func isLengthLike(property string) bool {
	if len(property) > 5 && property[len(property)-5:] == "Width" {
		return true
	}
	if len(property) > 6 && property[len(property)-6:] == "Height" && property != "lineHeight" {
		return true
	}
	return false
}

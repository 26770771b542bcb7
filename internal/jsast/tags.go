package jsast

import (
	"unicode"
	"unicode/utf8"
)

// ClassifyTag implements spec.md §3's Tag rule: a JSX tag is InBuilt
// when its name starts with a lowercase letter (an HTML element name,
// emitted as a string literal), and UserDefined otherwise (a referenced
// component, emitted as an identifier). This is the same rule the JSX
// runtime itself uses to decide between `createElement("div", ...)`
// and `createElement(Foo, ...)`.
func ClassifyTag(name string) Tag {
	r, _ := utf8.DecodeRuneInString(name)
	if r != utf8.RuneError && unicode.IsLower(r) {
		return Tag{Name: name, Kind: InBuilt}
	}
	return Tag{Name: name, Kind: UserDefined}
}

// htmlAttributes are the DOM/React prop names valid on any InBuilt
// element. Anything else accessed off a styled-component's `props`
// parameter must be destructured out of the `...rest` forwarded to the
// underlying element (spec.md §4.2 case 4, §8 "prop isolation").
var htmlAttributes = map[string]bool{
	"id": true, "className": true, "class": true, "style": true,
	"title": true, "role": true, "tabIndex": true, "hidden": true,
	"children": true, "key": true, "ref": true, "as": true,
	"href": true, "src": true, "alt": true, "type": true, "value": true,
	"defaultValue": true, "placeholder": true, "disabled": true,
	"checked": true, "defaultChecked": true, "name": true, "htmlFor": true,
	"target": true, "rel": true, "download": true, "autoFocus": true,
	"autoComplete": true, "readOnly": true, "required": true,
	"min": true, "max": true, "step": true, "pattern": true,
	"onClick": true, "onChange": true, "onInput": true, "onSubmit": true,
	"onFocus": true, "onBlur": true, "onKeyDown": true, "onKeyUp": true,
	"onMouseEnter": true, "onMouseLeave": true, "onMouseOver": true,
	"width": true, "height": true, "viewBox": true, "fill": true,
	"stroke": true, "data": true, "aria": true,
}

// IsHTMLValidProp reports whether name is safe to forward to an
// InBuilt DOM element without React warning about an unknown attribute.
// Prefixes "data-" and "aria-" are always valid per the HTML/ARIA spec.
func IsHTMLValidProp(name string) bool {
	if htmlAttributes[name] {
		return true
	}
	if len(name) > 5 && name[:5] == "data-" {
		return true
	}
	if len(name) > 5 && name[:5] == "aria-" {
		return true
	}
	return false
}

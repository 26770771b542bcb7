package csstext

// AtomicRule is one single-declaration rule (spec.md §3): ClassName is
// the content hash of (SelectorSuffix, Property, Value).
type AtomicRule struct {
	ClassName      string
	SelectorSuffix string
	Property       string
	Value          string
}

// String renders `._HASH{decl}` / `._HASH:suffix{decl}` (spec.md §4.3
// step 3). A rule with no Property renders an empty declaration block
// — the stable "no styles" class spec.md §8 scenario 1 requires for an
// empty style expression (`css={{}}` must still produce a className,
// not none at all).
func (r AtomicRule) String() string {
	if r.Property == "" {
		return "." + r.ClassName + r.SelectorSuffix + "{}"
	}
	return "." + r.ClassName + r.SelectorSuffix + "{" + r.Property + ":" + r.Value + "}"
}

// Output is the result of atomizing one CSSOutput's raw CSS text:
// ClassNames in source order (for the emitted `ax([...])` call) and
// Sheets the deduplicated rule strings to hoist, also in source order.
type Output struct {
	ClassNames []string
	Sheets     []string
}

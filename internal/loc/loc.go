package loc

// Loc is a 0-based byte offset from the start of the source module.
type Loc struct {
	Start int
}

// Range is a span of source text, used to anchor a diagnostic to a
// concrete byte range rather than a single point.
type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int {
	return r.Loc.Start + r.Len
}

// Span is a half-open byte range: Start is inclusive, End is exclusive.
type Span struct {
	Start, End int
}

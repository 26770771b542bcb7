// Package handler collects the diagnostics a module compile produces:
// errors, warnings, infos and hints, each anchored to a byte range in
// the source text via internal/loc.
package handler

import (
	"errors"
	"strings"

	"github.com/cssatomic/compiler/internal/loc"
)

type Handler struct {
	sourcetext  string
	filename    string
	lineOffsets []int
	errors      []error
	warnings    []error
	infos       []error
	hints       []error
}

func NewHandler(sourcetext string, filename string) *Handler {
	return &Handler{
		sourcetext:  sourcetext,
		filename:    filename,
		lineOffsets: lineOffsetTable(sourcetext),
		errors:      make([]error, 0),
		warnings:    make([]error, 0),
		infos:       make([]error, 0),
		hints:       make([]error, 0),
	}
}

func lineOffsetTable(source string) []int {
	offsets := []int{0}
	for i, c := range source {
		if c == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func (h *Handler) HasErrors() bool {
	return len(h.errors) > 0
}

func (h *Handler) AppendError(err error) {
	if err != nil {
		h.errors = append(h.errors, err)
	}
}

func (h *Handler) AppendWarning(err error) {
	if err != nil {
		h.warnings = append(h.warnings, err)
	}
}

func (h *Handler) AppendInfo(err error) {
	if err != nil {
		h.infos = append(h.infos, err)
	}
}

func (h *Handler) AppendHint(err error) {
	if err != nil {
		h.hints = append(h.hints, err)
	}
}

func (h *Handler) Errors() []loc.DiagnosticMessage   { return h.collect(h.errors, loc.ErrorType) }
func (h *Handler) Warnings() []loc.DiagnosticMessage { return h.collect(h.warnings, loc.WarningType) }
func (h *Handler) Infos() []loc.DiagnosticMessage    { return h.collect(h.infos, loc.InformationType) }
func (h *Handler) Hints() []loc.DiagnosticMessage    { return h.collect(h.hints, loc.HintType) }

func (h *Handler) Diagnostics() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(h.errors)+len(h.warnings)+len(h.infos)+len(h.hints))
	msgs = append(msgs, h.Errors()...)
	msgs = append(msgs, h.Warnings()...)
	msgs = append(msgs, h.Infos()...)
	msgs = append(msgs, h.Hints()...)
	return msgs
}

func (h *Handler) collect(errs []error, severity loc.DiagnosticSeverity) []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, h.toMessage(severity, err))
	}
	return msgs
}

func (h *Handler) toMessage(severity loc.DiagnosticSeverity, err error) loc.DiagnosticMessage {
	var rangedError *loc.ErrorWithRange
	if errors.As(err, &rangedError) {
		location := &loc.DiagnosticLocation{
			File:   h.filename,
			Length: rangedError.Range.Len,
		}
		location.Line, location.Column = h.lineAndColumn(rangedError.Range.Loc)
		message := rangedError.ToMessage(location)
		message.Severity = int(severity)
		return message
	}
	return loc.DiagnosticMessage{Text: err.Error(), Severity: int(severity)}
}

// lineAndColumn converts a byte offset into 1-based line/column numbers,
// the same contract the teacher's sourcemap.ChunkBuilder exposed — but
// without building a sourcemap, which is out of scope for this pass.
func (h *Handler) lineAndColumn(l loc.Loc) (line int, column int) {
	line = 1
	for i := len(h.lineOffsets) - 1; i >= 0; i-- {
		if h.lineOffsets[i] <= l.Start {
			line = i + 1
			column = l.Start - h.lineOffsets[i] + 1
			return
		}
	}
	return 1, l.Start + 1
}

func (h *Handler) Filename() string { return h.filename }

func (h *Handler) SourceText() string { return h.sourcetext }

// Snippet returns the source text slice a Range points to, clamped to
// the bounds of the module; used by diagnostics to echo the offending
// construct back to the caller.
func (h *Handler) Snippet(r loc.Range) string {
	start := r.Loc.Start
	end := r.End()
	if start < 0 {
		start = 0
	}
	if end > len(h.sourcetext) {
		end = len(h.sourcetext)
	}
	if start >= end {
		return ""
	}
	return strings.TrimSpace(h.sourcetext[start:end])
}

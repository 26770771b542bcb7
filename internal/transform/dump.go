package transform

import "github.com/go-json-experiment/json"

// DumpSheets serializes the module's hoisted rule table to JSON, the
// same "dump compiler state as text" role the teacher's
// internal/printer/print-to-json.go mode plays for a whole AST — here
// scoped to just the one piece of state that outlives a single call
// site (spec.md §3's `sheets` mapping).
func (s *State) DumpSheets() ([]byte, error) {
	return json.Marshal(s.Sheets.Sheets)
}

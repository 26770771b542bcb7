// Package printer is the emitter & hoister (spec.md §4.4): it renders
// the replacement JSX for a styled/css-prop call site — the
// forwardRef/CC/CS/ax wiring — and lifts each unique rule string to one
// module-level `const`, reused across call sites the way the teacher's
// own printer buffers text and its transform package mutates the doc
// in place.
package printer

import (
	"fmt"

	"github.com/cssatomic/compiler/internal/jsast"
)

// State is the hoister's module-scoped table (spec.md §3's `sheets`):
// rule string -> generated identifier name. It is created with the rest
// of a module's compile state and discarded on exit (spec.md §5).
type State struct {
	Sheets map[string]string
	seq    int
}

func NewState() *State {
	return &State{Sheets: make(map[string]string)}
}

// identifierFor returns the hoisted identifier for rule, generating one
// on a miss. Invariant 2 (spec.md §3): the same rule string maps to
// exactly one identifier for the lifetime of this State.
func (s *State) identifierFor(rule string) (name string, isNew bool) {
	if name, ok := s.Sheets[rule]; ok {
		return name, false
	}
	s.seq++
	name = fmt.Sprintf("_%d", s.seq)
	s.Sheets[rule] = name
	return name, true
}

// Hoist assigns each rule string in rules a module-scope identifier via
// state, inserting a `const NAME = "rule"` declaration into program
// immediately after any leading import declarations for every rule this
// State has not already seen (spec.md §4.4's Hoister). The returned
// slice is the identifiers in the same order as rules, for the emitted
// `<CS>{[...]}</CS>` children list.
func Hoist(program *jsast.Program, rules []string, state *State) []string {
	idents := make([]string, 0, len(rules))
	var fresh []*jsast.Stmt

	for _, rule := range rules {
		name, isNew := state.identifierFor(rule)
		idents = append(idents, name)
		if isNew {
			fresh = append(fresh, &jsast.Stmt{
				Data: &jsast.SConst{
					Name: name,
					Init: jsast.Expr{Data: &jsast.EString{Value: rule}},
				},
			})
		}
	}
	if len(fresh) == 0 {
		return idents
	}

	insertAt := 0
	for insertAt < len(program.Body) {
		if _, ok := program.Body[insertAt].Data.(*jsast.SImport); !ok {
			break
		}
		insertAt++
	}

	body := make([]*jsast.Stmt, 0, len(program.Body)+len(fresh))
	body = append(body, program.Body[:insertAt]...)
	body = append(body, fresh...)
	body = append(body, program.Body[insertAt:]...)
	program.Body = body

	return idents
}

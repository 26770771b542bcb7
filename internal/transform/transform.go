// Package transform is the entry visitor (spec.md §4.1): it drives the
// whole pass over one module — detecting the enabling import, rewriting
// its specifiers, dispatching every styled/css-prop call site to the
// style evaluator and emitter, and injecting the React namespace import
// on exit. Dispatch is cheap when a module never opted in: Transform
// returns immediately after the import scan finds nothing.
package transform

import (
	"fmt"

	"github.com/cssatomic/compiler/internal/csstext"
	"github.com/cssatomic/compiler/internal/evaluator"
	"github.com/cssatomic/compiler/internal/handler"
	"github.com/cssatomic/compiler/internal/jsast"
	"github.com/cssatomic/compiler/internal/printer"
)

// RuntimeModule is the sole enabling import (spec.md §6): a module that
// does not import from it is left untouched by this pass.
const RuntimeModule = "@compiled/core"

// Options configures one module compile (spec.md §6).
type Options struct {
	// Nonce, when set, is threaded as a nonce={...} attribute on every
	// emitted <CS> element.
	Nonce string
	// Filename names the source file. Transform does not read it:
	// diagnostics take their file name from the Handler passed in.
	Filename string
	// ModuleResolver is the optional program-wide import resolver
	// (spec.md §6); nil means imported bindings always degrade to CSS
	// variables.
	ModuleResolver evaluator.ModuleResolver
}

// CompiledImports records the local binding name the user chose for
// `styled` (spec.md §3); its presence on State signals the module
// opted in.
type CompiledImports struct {
	StyledLocalName string
}

// State is the per-module compile state (spec.md §3, §5): created when
// a module enters the pass, discarded on exit. Sheets and HashTable are
// shared across every call site in the module.
type State struct {
	CompiledImports *CompiledImports
	Sheets          *printer.State
	HashTable       *csstext.HashTable

	callSiteSeq int
}

func newState() *State {
	return &State{
		Sheets:    printer.NewState(),
		HashTable: csstext.NewHashTable(),
	}
}

func (s *State) nextCallSiteID() string {
	s.callSiteSeq++
	return fmt.Sprintf("css%d", s.callSiteSeq)
}

// Transform runs the CSS-extraction pass over program in place and
// returns the resulting module state (sheets table, opt-in status) for
// callers that want to inspect it (tests, diagnostics, DumpSheets).
func Transform(program *jsast.Program, opts Options, h *handler.Handler) *State {
	state := newState()

	detectImport(program, state)
	if state.CompiledImports == nil {
		return state
	}

	visitProgram(program, state, opts, h)

	if !program.HasBinding("React") {
		injectReactImport(program)
	}

	return state
}

// detectImport implements spec.md §4.1's "Import declaration targeting
// the runtime library" reaction: remove the `styled` specifier if
// present (recording its local name), and always append ax/CC/CS named
// specifiers — they are tree-shakeable downstream so there is no harm
// in adding them unconditionally.
func detectImport(program *jsast.Program, state *State) {
	for _, stmt := range program.Body {
		imp, ok := stmt.Data.(*jsast.SImport)
		if !ok || imp.Source != RuntimeModule {
			continue
		}

		state.CompiledImports = &CompiledImports{}
		var kept []jsast.ImportSpecifier
		for _, spec := range imp.Specifiers {
			if spec.ImportedName == "styled" {
				state.CompiledImports.StyledLocalName = spec.LocalName
				continue
			}
			kept = append(kept, spec)
		}
		for _, name := range []string{"ax", "CC", "CS"} {
			if !hasSpecifier(kept, name) {
				kept = append(kept, jsast.ImportSpecifier{ImportedName: name, LocalName: name})
			}
		}
		imp.Specifiers = kept
		return
	}
}

func hasSpecifier(specs []jsast.ImportSpecifier, importedName string) bool {
	for _, s := range specs {
		if s.ImportedName == importedName {
			return true
		}
	}
	return false
}

// injectReactImport prepends `import * as React from "react"` (spec.md
// §4.1's "Program exit" reaction), the idiomatic default-namespace
// import so downstream transpilation of the emitted JSX has a `React`
// binding to call `React.forwardRef` on.
func injectReactImport(program *jsast.Program) {
	stmt := &jsast.Stmt{Data: &jsast.SImport{
		Source: "react",
		Specifiers: []jsast.ImportSpecifier{
			{ImportedName: "*", LocalName: "React", IsNamespace: true},
		},
	}}
	program.Body = append([]*jsast.Stmt{stmt}, program.Body...)
}

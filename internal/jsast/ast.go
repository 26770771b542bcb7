// Package jsast is the input/output AST this compiler pass mutates.
//
// The host compiler framework that actually parses and prints source
// text is out of scope (see spec.md §6) — it hands this pass an
// already-built program tree and takes the mutated tree back. jsast is
// the Go shape of that tree: a tagged-union of expression kinds (the
// same E-interface-plus-concrete-struct split evanw-esbuild's
// internal/js_ast uses for its Expr/E pair) and a small JSX node
// modeled on the teacher's astro.Node (Attr slice) adapted from an
// HTML tree to a JS/JSX one, with a flat Children slice in place of
// sibling/parent links.
package jsast

import "github.com/cssatomic/compiler/internal/loc"

// Program is one module's top-level statement list.
type Program struct {
	Body []*Stmt
}

// Stmt is a top-level (or frontmatter-level) statement.
type Stmt struct {
	Loc  loc.Loc
	Data S
}

// S is the sum type of statement kinds this pass understands. Anything
// else the host AST contains is preserved as SOpaque so printing round
// trips source the pass never needed to look inside.
type S interface{ isStmt() }

func (*SImport) isStmt() {}
func (*SConst) isStmt()  {}
func (*SExpr) isStmt()   {}
func (*SOpaque) isStmt() {}

// ImportSpecifier is one named/default/namespace binding of an import
// declaration.
type ImportSpecifier struct {
	// ImportedName is the exported name being imported ("styled", "*"
	// for a namespace import, or "" for a default import).
	ImportedName string
	LocalName    string
	IsDefault    bool
	IsNamespace  bool
}

// SImport is `import ... from "source"`.
type SImport struct {
	Source     string
	Specifiers []ImportSpecifier
}

// SConst is `const Name = Init`. This pass only needs to resolve
// top-level const bindings (spec.md §9's focused binding resolver), so
// `let`/`var` and destructuring targets are represented as SOpaque.
type SConst struct {
	Name string
	Init Expr
}

// SExpr is a bare expression statement.
type SExpr struct {
	Value Expr
}

// SOpaque is any statement this pass does not need to understand:
// function declarations, type declarations, other exports, etc. Raw
// holds enough source text for the host printer to reproduce it
// unchanged; this pass never rewrites SOpaque nodes.
type SOpaque struct {
	Raw string
}

// Expr pairs a location with its tagged-union payload, mirroring
// evanw-esbuild's Expr{Loc, Data E}.
type Expr struct {
	Loc  loc.Loc
	Data E
}

// E is the sum type of expression kinds. A nil Expr.Data means "no
// expression" (used for empty JSX expression containers, spec.md §7's
// "Unsupported expression" error case).
type E interface{ isExpr() }

func (*EIdentifier) isExpr()  {}
func (*EString) isExpr()      {}
func (*ENumber) isExpr()      {}
func (*EBoolean) isExpr()     {}
func (*ETemplate) isExpr()    {}
func (*EObject) isExpr()      {}
func (*EArray) isExpr()       {}
func (*EArrow) isExpr()       {}
func (*ECall) isExpr()        {}
func (*ETaggedTemplate) isExpr() {}
func (*EMember) isExpr()      {}
func (*ESpread) isExpr()      {}
func (*EJSXElement) isExpr()  {}
func (*EJSXEmpty) isExpr()    {}
func (*EJSXText) isExpr()     {}
func (*EOpaque) isExpr()      {}

type EIdentifier struct{ Name string }

type EString struct{ Value string }

type ENumber struct{ Value float64 }

type EBoolean struct{ Value bool }

// TemplatePart is one `${expr}` hole inside a template literal; Quasis
// always has len(Parts)+1 entries (text between/around the holes).
type TemplatePart struct {
	Value Expr
}

type ETemplate struct {
	Quasis []string
	Parts  []TemplatePart
}

// Property is one entry of an object literal. Spread properties carry
// their operand in Value and ignore Key/Computed.
type Property struct {
	Key      string
	KeyExpr  Expr
	Computed bool
	Value    Expr
	Spread   bool
}

type EObject struct {
	Properties []Property
}

type EArray struct {
	Items []Expr
}

// EArrow is a single-parameter arrow function, the only function shape
// the style evaluator needs to understand (spec.md §4.2 case 4): either
// a `props => CSS-TEXT` style function, or `() => LITERAL` used by the
// binding resolver (spec.md §9 rule b). Param is empty for the latter.
type EArrow struct {
	Param string
	Body  Expr
}

type ECall struct {
	Callee Expr
	Args   []Expr
}

// ETaggedTemplate is `tag\`...\`` — the shape `styled.div\`...\`` takes.
type ETaggedTemplate struct {
	Tag   Expr
	Quasi *ETemplate
}

type EMember struct {
	Object   Expr
	Property string
}

type ESpread struct {
	Value Expr
}

// TagKind classifies a JSX tag per spec.md §3.
type TagKind int

const (
	InBuilt TagKind = iota
	UserDefined
)

type Tag struct {
	Name string
	Kind TagKind
}

// JSXAttr is one prop of a JSX opening element. A spread attribute
// carries its operand in Value and leaves Name empty.
type JSXAttr struct {
	Name   string
	Value  Expr
	Spread bool
}

type EJSXElement struct {
	Tag      Tag
	Attrs    []JSXAttr
	Children []Expr
}

// EJSXEmpty represents `{}` in a JSX expression slot: spec.md §7 treats
// this as a fatal "unsupported expression" error for the call site.
type EJSXEmpty struct{}

type EJSXText struct{ Value string }

// EOpaque is any expression this pass does not evaluate and forwards
// verbatim (spec.md §4.2's "call expressions whose callee is a known
// utility... are NOT evaluated"). Raw is the source text to splice back
// in when the expression is emitted unchanged.
type EOpaque struct{ Raw string }

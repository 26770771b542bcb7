package jsast

// FindConst returns the top-level `const name = ...` statement's
// initializer, if one exists. This is the style evaluator's local
// binding lookup (spec.md §9); imported bindings are resolved only
// through the optional program-wide resolver (see ImportSource).
func (p *Program) FindConst(name string) (Expr, bool) {
	for _, stmt := range p.Body {
		if c, ok := stmt.Data.(*SConst); ok && c.Name == name {
			return c.Init, true
		}
	}
	return Expr{}, false
}

// HasBinding reports whether any top-level declaration or import
// introduces the given local name, regardless of whether this pass can
// resolve its value. Used by the entry visitor to decide whether to
// inject `import * as React from "react"` (spec.md §4.1).
func (p *Program) HasBinding(name string) bool {
	for _, stmt := range p.Body {
		switch s := stmt.Data.(type) {
		case *SConst:
			if s.Name == name {
				return true
			}
		case *SImport:
			for _, spec := range s.Specifiers {
				if spec.LocalName == name {
					return true
				}
			}
		}
	}
	return false
}

// ResolveStaticString applies the focused resolver from spec.md §9:
// (a) a local `const x = LITERAL` substitutes LITERAL directly;
// (b) a local `const x = () => LITERAL` substitutes the arrow's body;
// (c) anything else fails to resolve.
// Only string/number/boolean/template-without-holes literals count as
// static.
func (p *Program) ResolveStaticString(name string) (Expr, bool) {
	init, ok := p.FindConst(name)
	if !ok {
		return Expr{}, false
	}
	if arrow, ok := init.Data.(*EArrow); ok && arrow.Param == "" {
		return resolveLiteral(arrow.Body)
	}
	return resolveLiteral(init)
}

// ResolveStaticObject resolves a local const binding to an object
// literal, used when a style expression references an identifier whose
// initializer is itself an evaluable style object (spec.md §4.2 case 2
// describes the declaration shape; the reference-resolution rule is
// the same focused resolver as ResolveStaticString).
func (p *Program) ResolveStaticObject(name string) (*EObject, bool) {
	init, ok := p.FindConst(name)
	if !ok {
		return nil, false
	}
	if arrow, ok := init.Data.(*EArrow); ok && arrow.Param == "" {
		init = arrow.Body
	}
	if obj, ok := init.Data.(*EObject); ok {
		return obj, true
	}
	return nil, false
}

// ImportSource returns the module specifier a local binding was
// imported from, if any. The style evaluator uses this to ask an
// optional program-wide ModuleResolver (spec.md §6) to resolve an
// imported initializer instead of falling back to a CSS variable.
func (p *Program) ImportSource(localName string) (string, bool) {
	for _, stmt := range p.Body {
		imp, ok := stmt.Data.(*SImport)
		if !ok {
			continue
		}
		for _, spec := range imp.Specifiers {
			if spec.LocalName == localName {
				return imp.Source, true
			}
		}
	}
	return "", false
}

func resolveLiteral(e Expr) (Expr, bool) {
	switch e.Data.(type) {
	case *EString, *ENumber, *EBoolean:
		return e, true
	case *ETemplate:
		t := e.Data.(*ETemplate)
		if len(t.Parts) == 0 {
			return e, true
		}
	}
	return Expr{}, false
}

// Package csstext is the atomic-CSS rule generator (spec.md §4.3): it
// parses a raw CSS text block (with optional selector nesting) into a
// flat list of single-declaration rules, hashes each into a stable
// class name, and renders the rule strings the hoister lifts to module
// scope.
//
// Parsing is delegated to github.com/tdewolff/parse/v2/css — the same
// tokenizer the teacher's internal/transform/scope-css.go walks to
// rewrite selectors. That file scopes selectors by suffixing a class;
// this one instead flattens declarations (including nested ones) into
// independent atomic rules, per spec.md §4.3 step 1.
package csstext

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type declaration struct {
	selectorSuffix string
	property       string
	value          string
}

// Atomize parses rawCSS and produces the atomic rules in source order
// (duplicates for the same property are preserved, never dropped — the
// ordering guarantee in spec.md §4.3; `ax` resolves "last one wins" at
// runtime using the property-group prefix, not this compiler).
func Atomize(rawCSS string, table *HashTable) Output {
	decls, verbatim := flatten(rawCSS)

	out := Output{}

	// An empty style expression (spec.md §4.2 "Empty object -> empty
	// CSSOutput") still gets exactly one stable class (spec.md §8
	// scenario 1): otherwise two unrelated call sites that both produce
	// no declarations would be indistinguishable from "no css prop at
	// all" once emitted, and could never be asserted against in a
	// snapshot.
	if len(decls) == 0 && len(verbatim) == 0 {
		className := table.ClassNameFor("", "", "")
		out.ClassNames = append(out.ClassNames, className)
		out.Sheets = append(out.Sheets, AtomicRule{ClassName: className}.String())
		return out
	}

	for _, d := range decls {
		className := table.ClassNameFor(d.selectorSuffix, d.property, d.value)
		out.ClassNames = appendUnique(out.ClassNames, className)
		rule := AtomicRule{
			ClassName:      className,
			SelectorSuffix: d.selectorSuffix,
			Property:       d.property,
			Value:          d.value,
		}.String()
		out.Sheets = appendUnique(out.Sheets, rule)
	}

	// Best-effort passthrough for constructs this pass does not give
	// atomic-CSS semantics (media queries, keyframes — spec.md §1's
	// Non-goal, and spec.md §7's "malformed CSS" policy): emitted
	// verbatim as their own sheet entries, contributing no class name.
	for _, v := range verbatim {
		out.Sheets = appendUnique(out.Sheets, v)
	}

	return out
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

// flatten walks the CSS token stream and returns the flat declaration
// list plus any at-rule blocks it chose not to atomize.
func flatten(rawCSS string) (decls []declaration, verbatim []string) {
	input := parse.NewInput(strings.NewReader(rawCSS))
	// Inline mode: the evaluator hands us a bare declaration list
	// ("prop:value;prop:value;"), not a stylesheet with selectors out
	// front. tdewolff's stylesheet mode would read a leading ident as a
	// qualified-rule prelude and never emit DeclarationGrammar for it;
	// inline mode's parseDeclarationList emits DeclarationGrammar for
	// top-level "prop:value;" while still routing the evaluator's
	// synthetic "&...{...}" nesting through parseQualifiedRule, so both
	// paths this function handles below still work.
	p := css.NewParser(input, true)

	var suffixStack []string
	currentSuffix := func() string {
		if len(suffixStack) == 0 {
			return ""
		}
		return suffixStack[len(suffixStack)-1]
	}

	atRuleDepth := 0
	var atRuleBuf strings.Builder

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return decls, verbatim

		case css.CommentGrammar:
			continue

		case css.BeginAtRuleGrammar:
			if atRuleDepth == 0 {
				atRuleBuf.Reset()
			}
			atRuleDepth++
			atRuleBuf.WriteString(string(data))
			for _, v := range p.Values() {
				atRuleBuf.Write(v.Data)
			}
			atRuleBuf.WriteString("{")

		case css.EndAtRuleGrammar:
			if atRuleDepth > 0 {
				atRuleDepth--
			}
			if atRuleDepth == 0 {
				atRuleBuf.WriteString("}")
				verbatim = append(verbatim, atRuleBuf.String())
			} else {
				atRuleBuf.WriteString(";")
			}

		case css.AtRuleGrammar:
			// A non-block at-rule, e.g. `@import "x";`. Pass through.
			var sb strings.Builder
			sb.WriteString(string(data))
			for _, v := range p.Values() {
				sb.Write(v.Data)
			}
			sb.WriteString(";")
			verbatim = append(verbatim, sb.String())

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			if atRuleDepth > 0 {
				atRuleBuf.WriteString(string(data))
				for _, v := range p.Values() {
					atRuleBuf.Write(v.Data)
				}
				if gt == css.BeginRulesetGrammar {
					atRuleBuf.WriteString("{")
				}
				continue
			}
			var sb strings.Builder
			for _, v := range p.Values() {
				sb.Write(v.Data)
			}
			// The evaluator emits every nested block under a synthetic
			// "&"+suffix selector instead of real selector text. Strip the
			// "&" and append the rest to the enclosing block's suffix, so
			// the selectorSuffix chain (spec.md §4.2 case 2) accumulates
			// here, one nesting level at a time.
			selector := strings.TrimSpace(sb.String())
			selector = strings.TrimPrefix(selector, "&")
			suffixStack = append(suffixStack, currentSuffix()+selector)

		case css.EndRulesetGrammar:
			if atRuleDepth > 0 {
				atRuleBuf.WriteString("}")
				continue
			}
			if len(suffixStack) > 0 {
				suffixStack = suffixStack[:len(suffixStack)-1]
			}

		case css.DeclarationGrammar:
			property := strings.TrimSpace(string(data))
			var sb strings.Builder
			for _, v := range p.Values() {
				sb.Write(v.Data)
			}
			value := strings.TrimSpace(sb.String())
			if atRuleDepth > 0 {
				atRuleBuf.WriteString(property + ":" + value + ";")
				continue
			}
			if property == "" || value == "" {
				continue
			}
			decls = append(decls, declaration{
				selectorSuffix: currentSuffix(),
				property:       property,
				value:          value,
			})

		default:
			if atRuleDepth > 0 {
				atRuleBuf.Write(data)
			}
		}
	}
}

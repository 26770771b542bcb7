package evaluator

import (
	"fmt"
	"strings"

	"github.com/cssatomic/compiler/internal/jsast"
)

// varNameFor assigns a deterministic CSS custom-property name for expr
// within ctx.OwnerID's call site (spec.md §4.2 case 2: "a fresh CSS
// custom-property name is generated deterministically per (owning
// identifier, occurrence)"), coalescing repeat references to the same
// expression within that owner so "duplicate variable names MUST be
// coalesced by first occurrence" (spec.md §4.2) holds. The returned
// name carries its leading "--".
func (e *Evaluator) varNameFor(expr jsast.Expr, ctx Context) string {
	owner := ctx.OwnerID
	if owner == "" {
		owner = "anon"
	}
	key := owner + "\x00" + contentKey(expr)
	if name, ok := e.varByContent[key]; ok {
		return name
	}
	e.varSeq[owner]++
	name := fmt.Sprintf("--%s%d", sanitizeOwner(owner), e.varSeq[owner])
	e.varByContent[key] = name
	return name
}

func sanitizeOwner(owner string) string {
	var sb strings.Builder
	for _, r := range owner {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "v"
	}
	return sb.String()
}

// contentKey renders a canonical string for the small set of
// expression shapes the evaluator ever captures as a dynamic value, so
// two occurrences of the same source expression within one owner
// coalesce onto the same variable name.
func contentKey(expr jsast.Expr) string {
	switch v := expr.Data.(type) {
	case *jsast.EIdentifier:
		return "id:" + v.Name
	case *jsast.EMember:
		return contentKey(v.Object) + "." + v.Property
	case *jsast.EString:
		return "str:" + v.Value
	case *jsast.ENumber:
		return fmt.Sprintf("num:%v", v.Value)
	case *jsast.ECall:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = contentKey(a)
		}
		return "call:" + contentKey(v.Callee) + "(" + strings.Join(args, ",") + ")"
	case *jsast.EOpaque:
		return "raw:" + v.Raw
	default:
		return fmt.Sprintf("ptr:%p", v)
	}
}

// dedupeVars collapses repeat variable names to their first occurrence
// (spec.md §3's CSSOutput.Variables contract).
func dedupeVars(vars []VarBinding) []VarBinding {
	seen := make(map[string]bool, len(vars))
	out := make([]VarBinding, 0, len(vars))
	for _, v := range vars {
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		out = append(out, v)
	}
	return out
}

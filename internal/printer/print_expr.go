package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cssatomic/compiler/internal/jsast"
)

// PrintExpr renders e back to JS source text. It only needs to cover
// the small set of expression shapes the style evaluator ever captures
// as a CSS variable's source (identifiers, member accesses, calls,
// literals) plus whatever EOpaque is carrying verbatim — the host
// compiler framework's own printer (out of scope, spec.md §6) would
// handle anything richer than what this pass itself produces or
// forwards.
func PrintExpr(e jsast.Expr) string {
	switch v := e.Data.(type) {
	case *jsast.EIdentifier:
		return v.Name
	case *jsast.EMember:
		return PrintExpr(v.Object) + "." + v.Property
	case *jsast.EString:
		return strconv.Quote(v.Value)
	case *jsast.ENumber:
		return formatNumber(v.Value)
	case *jsast.EBoolean:
		return fmt.Sprintf("%v", v.Value)
	case *jsast.ECall:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = PrintExpr(a)
		}
		return PrintExpr(v.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *jsast.ESpread:
		return "..." + PrintExpr(v.Value)
	case *jsast.EOpaque:
		return v.Raw
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Package errwrap reports fmt.Errorf calls that format an error operand
// with %v or %s. Such calls cut the chain that errors.Is walks, so a
// store.ErrNotFound three layers down would stop being recognised.
package errwrap

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "errwrap",
	Doc:      "reports errors formatted into fmt.Errorf without %w",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var errorType = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.FullName() != "fmt.Errorf" || len(call.Args) < 2 {
			return
		}

		tv, ok := pass.TypesInfo.Types[call.Args[0]]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return
		}

		verbs, ok := parseVerbs(constant.StringVal(tv.Value))
		if !ok {
			return
		}

		operands := call.Args[1:]
		for i, verb := range verbs {
			if i >= len(operands) {
				break
			}
			if verb != 'v' && verb != 's' {
				continue
			}
			t := pass.TypesInfo.TypeOf(operands[i])
			if t != nil && types.Implements(t, errorType) {
				pass.Reportf(operands[i].Pos(), "error formatted with %%%c; use %%w to keep it in the chain", verb)
			}
		}
	})

	return nil, nil
}

// parseVerbs returns the verb of every operand-consuming directive in format.
// It gives up on explicit argument indexes and '*' widths.
func parseVerbs(format string) ([]rune, bool) {
	var verbs []rune
	runes := []rune(format)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			continue
		}
		i++
		for i < len(runes) {
			switch c := runes[i]; {
			case c == '[' || c == '*':
				return nil, false
			case c == '+' || c == '-' || c == '#' || c == ' ' || c == '0' || c == '.' || (c >= '1' && c <= '9'):
				i++
				continue
			}
			break
		}
		if i >= len(runes) {
			break
		}
		if runes[i] == '%' {
			continue
		}
		verbs = append(verbs, runes[i])
	}

	return verbs, true
}

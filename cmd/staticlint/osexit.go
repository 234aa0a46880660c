package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// OsExitAnalyzer запрещает прямой вызов os.Exit в функции main пакета main.
// При os.Exit отложенные вызовы не выполняются.
var OsExitAnalyzer = &analysis.Analyzer{
	Name:     "osexit",
	Doc:      "reports direct os.Exit calls in func main of package main",
	Run:      runOsExit,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runOsExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(node ast.Node) {
		fn := node.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			// Вызовы внутри литералов функций выполняются не в main
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}
			call, ok := n.(*ast.CallExpr)
			if ok && isPkgFunc(pass, call, "os", "Exit") {
				pass.Reportf(call.Pos(), "direct os.Exit call in main function; return an error from run instead")
			}
			return true
		})
	})
	return nil, nil
}

// isPkgFunc сообщает, вызывает ли call функцию name пакета pkgPath
func isPkgFunc(pass *analysis.Pass, call *ast.CallExpr, pkgPath, name string) bool {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == pkgPath && fn.Name() == name
}

package main

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// requestsWithoutContext функции net/http, которые отправляют запрос без context.Context
var requestsWithoutContext = []string{"Get", "Head", "Post", "PostForm", "NewRequest"}

// NoCtxRequestAnalyzer находит исходящие HTTP-запросы без контекста.
// Такой запрос нельзя отменить вместе с входящим запросом пользователя.
// Тестовые файлы не проверяются.
var NoCtxRequestAnalyzer = &analysis.Analyzer{
	Name:     "noctxrequest",
	Doc:      "reports net/http requests created without a context outside of tests",
	Run:      runNoCtxRequest,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runNoCtxRequest(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)

		filename := pass.Fset.Position(call.Pos()).Filename
		if strings.HasSuffix(filename, "_test.go") {
			return
		}

		for _, name := range requestsWithoutContext {
			if isPkgFunc(pass, call, "net/http", name) {
				pass.Reportf(call.Pos(), "http.%s sends a request without context; use http.NewRequestWithContext", name)
				return
			}
		}
	})
	return nil, nil
}

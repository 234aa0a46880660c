// Command staticlint запускает набор статических анализаторов для репозитория.
//
// Состав:
//   - анализаторы golang.org/x/tools/go/analysis/passes;
//   - все анализаторы SA из staticcheck, ST из stylecheck и S из simple;
//   - go-critic и errcheck;
//   - собственные osexit и noctxrequest.
//
// Запуск: go run ./cmd/staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sortslice"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"

	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
)

// disabledStyleChecks отключённые проверки stylecheck.
// ST1000 требует комментарий пакета в каждом файле, ST1003 спорит с именами вроде APIBaseURL.
var disabledStyleChecks = map[string]bool{
	"ST1000": true,
	"ST1003": true,
}

func main() {
	multichecker.Main(analyzers()...)
}

// analyzers собирает итоговый список анализаторов
func analyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		OsExitAnalyzer,
		NoCtxRequestAnalyzer,

		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		deepequalerrors.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		ifaceassert.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		sortslice.Analyzer,
		stdmethods.Analyzer,
		stringintconv.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		timeformat.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,

		analyzer.Analyzer,
		errcheck.Analyzer,
	}

	checks = appendLint(checks, staticcheck.Analyzers, nil)
	checks = appendLint(checks, stylecheck.Analyzers, disabledStyleChecks)
	checks = appendLint(checks, simple.Analyzers, nil)
	return checks
}

func appendLint(dst []*analysis.Analyzer, src []*lint.Analyzer, disabled map[string]bool) []*analysis.Analyzer {
	for _, a := range src {
		if disabled[a.Analyzer.Name] {
			continue
		}
		dst = append(dst, a.Analyzer)
	}
	return dst
}

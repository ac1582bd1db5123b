package suite

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is the environment a filter expression sees: the fixture file
// path, the group description, and the case description (empty for
// schema-level checks).
func filterEnv(file, group, caseDesc string) map[string]any {
	return map[string]any{
		"file":  file,
		"group": group,
		"case":  caseDesc,
	}
}

// Filter selects which checks run, via an expr-lang boolean expression such
// as `group contains "bignum" and case != ""`.
type Filter struct {
	src  string
	prog *vm.Program
}

// CompileFilter compiles the expression once, up front, so a bad filter is a
// configuration error rather than a silent per-check skip.
func CompileFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv("", "", "")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

// Match reports whether the check identified by the given context should
// run. Evaluation errors select the check: dropping tests on a faulty filter
// would silently weaken the gate.
func (f *Filter) Match(file, group, caseDesc string) bool {
	out, err := expr.Run(f.prog, filterEnv(file, group, caseDesc))
	if err != nil {
		return true
	}
	b, ok := out.(bool)
	return !ok || b
}

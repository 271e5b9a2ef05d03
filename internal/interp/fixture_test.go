package interp

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEvalFixtures pins the result/flow pair of a table of representative
// scripts via snapshot testing (minitcl has no testdata fixture tree of
// its own, so each case is an inline script rather than a file).
func TestEvalFixtures(t *testing.T) {
	fixtures := []struct {
		name   string
		script string
	}{
		{"subst_literal", `subst hello`},
		{"subst_brace_group", `subst {hello world}`},
		{"variable_roundtrip", `set foo bar; subst $foo`},
		{"nested_command_substitution", `subst [set x 7]`},
		{"factorial_proc", `proc fac {n} { if {<= $n 1} {return 1}; * $n [fac [- $n 1]] }; fac 6`},
		{"while_counts_up", `set i 0; while {< $i 5} { set i [+ $i 1] }; subst $i`},
		{"comparison_operators", `subst [== 3 3]`},
		{"unknown_command_errors", `does-not-exist 1 2`},
	}

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			in := New(WithoutPuts())
			f, got := in.Eval(fx.script)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_flow", fx.name), f.String())
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", fx.name), got)
		})
	}
}

package interp

import (
	"fmt"
	"sync"
	"testing"
)

// TestInterpsRunConcurrently shows distinct Interp values share no
// mutable state and may run on separate goroutines, since there is no
// global command table (unlike the reference's single process-wide
// tcl->cmds chain per instance, which this test shows holds
// independently per goroutine).
func TestInterpsRunConcurrently(t *testing.T) {
	const n = 32
	var wg sync.WaitGroup
	results := make([]string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := New(WithoutPuts())
			script := fmt.Sprintf("set x %d; subst $x", i)
			_, got := in.Eval(script)
			results[i] = got
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		want := fmt.Sprintf("%d", i)
		if got != want {
			t.Fatalf("goroutine %d: result = %q, want %q (cross-talk between interpreters)", i, got, want)
		}
	}
}

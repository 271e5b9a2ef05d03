package diag

import (
	"strings"
	"testing"
)

func TestFormatIncludesLineAndCaret(t *testing.T) {
	src := "set x 1\nsubst $\n"
	e := &Error{Reason: BadDollar, Offset: 15, Source: src, File: "script.tcl"}
	out := e.Format(false)
	if out == "" {
		t.Fatalf("Format returned empty string")
	}
	if want := "Error in script.tcl:"; !strings.Contains(out, want) {
		t.Fatalf("Format() = %q, want it to contain %q", out, want)
	}
	if !strings.Contains(out, string(BadDollar)) {
		t.Fatalf("Format() = %q, want it to contain the reason", out)
	}
}

func TestLineColFirstLine(t *testing.T) {
	line, col := lineCol("abc", 1)
	if line != 1 || col != 2 {
		t.Fatalf("lineCol = (%d,%d), want (1,2)", line, col)
	}
}

func TestLineColSecondLine(t *testing.T) {
	line, col := lineCol("abc\ndef", 5)
	if line != 2 || col != 2 {
		t.Fatalf("lineCol = (%d,%d), want (2,2)", line, col)
	}
}

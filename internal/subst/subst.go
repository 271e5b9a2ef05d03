// Package subst implements the substitutor: resolving one raw lexeme
// span to a Value by expanding `{...}`, `$name` (including `$$name`
// and `$[cmd]` chaining), and `[...]` forms.
//
// The reference implementation expands `$X` by evaluating a synthetic
// "set X" script. This rewrite takes a cleaner path: it calls the
// variable-read operation directly, through the Evaluator interface
// below, while still reproducing the same observable chaining
// behavior for `$$X` and `$[cmd]` (those fall out of the tokenizer
// already having recursed into the inner lexeme; Resolve here only
// has to substitute once more).
package subst

import (
	"github.com/cwbudde/minitcl/internal/diag"
	"github.com/cwbudde/minitcl/internal/flow"
	"github.com/cwbudde/minitcl/internal/value"
)

// MaxVarNameLen bounds how long a `$name` reference may be: names of
// MaxVarNameLen bytes or more yield ERROR, matching the reference's
// MAX_VAR_LENGTH default of 256.
const MaxVarNameLen = 256

// Evaluator is the host the substitutor calls back into: reading a
// variable by name, and recursively evaluating a nested script (used
// for `[...]` command substitution).
type Evaluator interface {
	ReadVar(name string) value.Value
	EvalNested(script []byte) (flow.Flow, value.Value)
}

// Result carries the outcome of a Resolve call: on success Flow is
// flow.Normal and Val holds the substituted Value; on failure Flow is
// non-Normal (usually flow.Error) and Reason explains why.
type Result struct {
	Flow   flow.Flow
	Val    value.Value
	Reason diag.Reason
}

// Resolve substitutes the raw bytes of one lexeme (as produced by
// internal/token, with delimiters still attached) into a Value.
func Resolve(ev Evaluator, raw []byte) Result {
	if len(raw) == 0 {
		return Result{Val: value.Empty}
	}
	switch raw[0] {
	case '{':
		if len(raw) <= 1 {
			return Result{Flow: flow.Error, Reason: diag.EmptyBraceGroup}
		}
		return Result{Val: value.New(raw[1 : len(raw)-1])}
	case '$':
		return resolveVar(ev, raw[1:])
	case '[':
		return resolveBracket(ev, raw[1:len(raw)-1])
	default:
		return Result{Val: value.New(raw)}
	}
}

// resolveVar reads a variable directly off the environment via the
// Evaluator, rather than the reference's synthetic "set NAME" eval.
// The remainder after the leading '$' is itself resolved first — which
// is what makes `$$name` ("substitute, then substitute again") and
// `$[cmd]` ("substitute the bracket first") fall out for free: the
// remainder's own substitution yields the literal name to read, one
// recursive Resolve call at a time.
func resolveVar(ev Evaluator, remainder []byte) Result {
	if len(remainder) >= MaxVarNameLen {
		return Result{Flow: flow.Error, Reason: diag.VarNameTooLong}
	}
	name := Resolve(ev, remainder)
	if name.Flow != flow.Normal {
		return name
	}
	return Result{Val: ev.ReadVar(name.Val.String())}
}

// resolveBracket recursively evaluates the interior of a `[...]` span
// as a script; the result is the last command's result.
func resolveBracket(ev Evaluator, inner []byte) Result {
	f, v := ev.EvalNested(inner)
	if f != flow.Normal {
		return Result{Flow: f, Val: v}
	}
	return Result{Val: v}
}

package interp

import (
	"fmt"

	"github.com/cwbudde/minitcl/internal/diag"
	"github.com/cwbudde/minitcl/internal/flow"
	"github.com/cwbudde/minitcl/internal/tclenv"
	"github.com/cwbudde/minitcl/internal/tcllist"
	"github.com/cwbudde/minitcl/internal/value"
)

// registerBuiltins wires up every built-in command.
func (in *Interp) registerBuiltins() {
	in.Register("set", 0, cmdSet)
	in.Register("subst", 2, cmdSubst)
	in.Register("proc", 4, cmdProc)
	in.Register("if", 0, cmdIf)
	in.Register("while", 3, cmdWhile)
	in.Register("return", 0, cmdReturn)
	in.Register("break", 1, cmdBreak)
	in.Register("continue", 1, cmdContinue)

	in.Register("+", 3, intBinOp(func(a, b int) int { return a + b }))
	in.Register("-", 3, intBinOp(func(a, b int) int { return a - b }))
	in.Register("*", 3, intBinOp(func(a, b int) int { return a * b }))
	in.Register("/", 3, cmdDivide)
	in.Register(">", 3, boolBinOp(func(a, b int) bool { return a > b }))
	in.Register(">=", 3, boolBinOp(func(a, b int) bool { return a >= b }))
	in.Register("<", 3, boolBinOp(func(a, b int) bool { return a < b }))
	in.Register("<=", 3, boolBinOp(func(a, b int) bool { return a <= b }))
	in.Register("==", 3, boolBinOp(func(a, b int) bool { return a == b }))
	in.Register("!=", 3, boolBinOp(func(a, b int) bool { return a != b }))

	if !in.noPuts {
		in.Register("puts", 2, cmdPuts)
	}
}

// cmdSet implements "set NAME ?VALUE?": bind NAME to VALUE if given,
// result is NAME's (new) value.
func cmdSet(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	if len(words) < 2 {
		in.setError(diag.ArityMismatch, 0, nil)
		return flow.Error, value.Empty
	}
	v := in.env.Var(string(words[1]))
	if len(words) >= 3 {
		v.Value = value.New(words[2])
	}
	return flow.Normal, v.Value
}

// cmdSubst implements "subst S": substitute S once, as a single
// lexeme, and return the result.
func cmdSubst(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	res := in.resolve(words[1])
	if res.Flow != flow.Normal {
		if res.Reason != "" {
			in.setError(res.Reason, 0, words[1])
		}
		return res.Flow, value.Empty
	}
	return flow.Normal, res.Val
}

// cmdProc implements "proc N PARAMS BODY": registers a new, variadic
// (arity 0) command whose handler opens a fresh frame, binds PARAMS
// positionally (extra call arguments ignored, missing ones left
// empty), evaluates BODY, frees the frame, and translates a RETURN
// flow into NORMAL at the proc boundary.
func cmdProc(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	name := string(words[1])
	params := value.New(words[2])
	body := value.New(words[3])

	in.Register(name, 0, func(callIn *Interp, args [][]byte) (flow.Flow, value.Value) {
		child := tclenv.New(callIn.env)
		callIn.env = child
		defer func() { callIn.env = child.Free() }()

		n := tcllist.Length(params.Bytes())
		for i := 0; i < n; i++ {
			pname, _ := tcllist.At(params.Bytes(), i)
			v := child.Var(string(pname))
			if i+1 < len(args) {
				v.Value = value.New(args[i+1])
			}
		}

		f, v := callIn.evalSub(body.Bytes())
		if f == flow.Return {
			return flow.Normal, v
		}
		return f, v
	})
	return flow.Normal, value.Empty
}

// cmdIf implements "if C1 B1 ?C2 B2 ...?": evaluate each Ck in turn;
// on the first whose integer value is non-zero, evaluate and return
// Bk's flow. A trailing odd argument is treated as an unconditional
// else branch.
func cmdIf(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	args := words[1:]
	i := 0
	for i+1 < len(args) {
		f, cond := in.evalSub(args[i])
		if f != flow.Normal {
			return f, cond
		}
		if cond.Int() != 0 {
			return in.evalSub(args[i+1])
		}
		i += 2
	}
	if i < len(args) {
		return in.evalSub(args[i])
	}
	return flow.Normal, value.Empty
}

// cmdWhile implements "while C B": repeat evaluating C while its
// integer value is non-zero, evaluating B each time. BREAK ends the
// loop as NORMAL, AGAIN restarts it, RETURN/ERROR propagate.
func cmdWhile(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	cond, body := words[1], words[2]
	for {
		f, c := in.evalSub(cond)
		if f != flow.Normal {
			return f, c
		}
		if c.Int() == 0 {
			return flow.Normal, value.Empty
		}
		f, v := in.evalSub(body)
		switch f {
		case flow.Break:
			return flow.Normal, value.Empty
		case flow.Normal, flow.Again:
			continue
		default:
			return f, v
		}
	}
}

// cmdReturn implements "return ?V?": flow RETURN with result V (or
// empty).
func cmdReturn(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	if len(words) >= 2 {
		return flow.Return, value.New(words[1])
	}
	return flow.Return, value.Empty
}

// cmdBreak implements "break": flow BREAK, arity 1.
func cmdBreak(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	return flow.Break, value.Empty
}

// cmdContinue implements "continue": flow AGAIN, arity 1.
func cmdContinue(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	return flow.Again, value.Empty
}

// intBinOp builds a CommandFunc for a 3-arity integer operator whose
// result is rendered as a signed decimal string.
func intBinOp(op func(a, b int) int) CommandFunc {
	return func(in *Interp, words [][]byte) (flow.Flow, value.Value) {
		a := value.New(words[1]).Int()
		b := value.New(words[2]).Int()
		return flow.Normal, value.FromInt(op(a, b))
	}
}

// boolBinOp builds a CommandFunc for a 3-arity integer comparison,
// rendered as "1" or "0".
func boolBinOp(op func(a, b int) bool) CommandFunc {
	return func(in *Interp, words [][]byte) (flow.Flow, value.Value) {
		a := value.New(words[1]).Int()
		b := value.New(words[2]).Int()
		if op(a, b) {
			return flow.Normal, value.FromInt(1)
		}
		return flow.Normal, value.FromInt(0)
	}
}

// cmdDivide implements "/": division by zero is defined as flow ERROR
// with reason DivideByZero, unlike the reference where it is
// undefined.
func cmdDivide(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	a := value.New(words[1]).Int()
	b := value.New(words[2]).Int()
	if b == 0 {
		in.setError(diag.DivideByZero, 0, nil)
		return flow.Error, value.Empty
	}
	return flow.Normal, value.FromInt(a / b)
}

// cmdPuts implements "puts S": write S followed by a newline to the
// interpreter's configured output.
func cmdPuts(in *Interp, words [][]byte) (flow.Flow, value.Value) {
	fmt.Fprintf(in.out, "%s\n", words[1])
	return flow.Normal, value.Empty
}


// Package interp implements the evaluator and command table: it drives
// internal/token to pull lexemes, uses internal/subst to resolve each
// one to a Value, assembles words into an argument list, and
// dispatches on the first word to a registered command.
//
// Interp satisfies subst.Evaluator directly (ReadVar, EvalNested),
// replacing the reference's synthetic "set NAME" eval for `$` with a
// direct variable read.
package interp

import (
	"io"
	"os"

	"github.com/cwbudde/minitcl/internal/diag"
	"github.com/cwbudde/minitcl/internal/flow"
	"github.com/cwbudde/minitcl/internal/subst"
	"github.com/cwbudde/minitcl/internal/tclenv"
	"github.com/cwbudde/minitcl/internal/token"
	"github.com/cwbudde/minitcl/internal/value"
)

// CommandFunc is the handler a registered command runs. words is the
// already-substituted argument list for this invocation, word[0] being
// the command name itself; tcllist is not used here because the
// in-flight word list is never rendered to its surface-syntax string
// form during dispatch ("Lists as strings": string rendering is only
// the source of truth for string↔list conversions, not for the
// evaluator's own bookkeeping).
type CommandFunc func(in *Interp, words [][]byte) (flow.Flow, value.Value)

// command is one entry in the command table.
type command struct {
	name  string
	arity int // 0 means "any number of arguments"
	fn    CommandFunc
}

// Interp is one interpreter instance: its current environment frame,
// its command table, and the most recent result. Distinct Interp
// values share no state and may run on separate goroutines.
type Interp struct {
	env    *tclenv.Env
	commands []*command

	result value.Value
	lastErr *diag.Error

	out           io.Writer
	maxVarNameLen int
	noPuts        bool
	file          string
}

// Option configures an Interp at construction time.
type Option func(*Interp)

// WithOutput redirects puts's output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(in *Interp) { in.out = w }
}

// WithMaxVarNameLen lowers the `$name` length ceiling: names longer
// than n yield ERROR. The substitutor's own fixed limit
// (subst.MaxVarNameLen) still applies, so an n above it does not
// admit longer names.
func WithMaxVarNameLen(n int) Option {
	return func(in *Interp) { in.maxVarNameLen = n }
}

// WithoutPuts omits the puts command entirely, a construction-time
// option standing in for a build-tag guard.
func WithoutPuts() Option {
	return func(in *Interp) { in.noPuts = true }
}

// New creates an interpreter with a fresh root environment and all
// built-in commands registered.
func New(opts ...Option) *Interp {
	in := &Interp{
		maxVarNameLen: subst.MaxVarNameLen,
		out:           os.Stdout,
	}
	in.env = tclenv.New(nil)
	for _, opt := range opts {
		opt(in)
	}
	in.registerBuiltins()
	return in
}

// SetSourceName attaches a display name (e.g. a file path) to errors
// reported by LastError.
func (in *Interp) SetSourceName(name string) {
	in.file = name
}

// Register adds a command to the table. Newer registrations shadow
// older ones of the same name and arity — newer registrations are
// inserted at the head.
func (in *Interp) Register(name string, arity int, fn CommandFunc) {
	in.commands = append([]*command{{name: name, arity: arity, fn: fn}}, in.commands...)
}

// findCommand returns the first registered command matching name
// whose arity is 0 (any) or equals argc, scanning head-first so newer
// registrations win.
func (in *Interp) findCommand(name string, argc int) (*command, bool) {
	for _, c := range in.commands {
		if c.name == name && (c.arity == 0 || c.arity == argc) {
			return c, true
		}
	}
	return nil, false
}

// Var reads (and optionally writes) a variable in the current frame
// A nil val leaves the variable untouched.
func (in *Interp) Var(name string, val *string) string {
	v := in.env.Var(name)
	if val != nil {
		v.Value = value.FromString(*val)
	}
	return v.Value.String()
}

// ReadVar implements subst.Evaluator: a direct variable read, used in
// place of the reference's synthetic "set NAME" script for `$`
// expansion. An unset variable is created empty in the current frame
// and reads as empty, matching what the reference's synthetic
// env_var(NAME) would have produced.
func (in *Interp) ReadVar(name string) value.Value {
	return in.env.Var(name).Value
}

// EvalNested implements subst.Evaluator: recursive evaluation of a
// `[...]` span's interior as a script.
func (in *Interp) EvalNested(script []byte) (flow.Flow, value.Value) {
	return in.evalSub(script)
}

// Result returns the most recent result Value as a string.
func (in *Interp) Result() string {
	return in.result.String()
}

// LastError returns diagnostic detail for the most recent flow ERROR,
// or nil if the last Eval succeeded (or none has run yet). It is pure
// sugar over the flow-code contract (internal/diag's doc comment):
// Eval's return value alone always tells the caller success or
// failure.
func (in *Interp) LastError() *diag.Error {
	return in.lastErr
}

// Close releases the interpreter's state. Go's garbage collector does
// the actual reclamation (the reference's manual alloc/free discipline
// has no analogue here); Close exists so host code written against an
// abstract destroy(tcl) contract has something to call.
func (in *Interp) Close() {
	in.env = nil
	in.commands = nil
}

// Eval evaluates script as a top-level command sequence, appending
// the sentinel byte internally so callers never have to manage the
// content_len+1 convention themselves.
func (in *Interp) Eval(script string) (flow.Flow, string) {
	in.lastErr = nil
	f, v := in.evalSub([]byte(script))
	in.result = v
	return f, v.String()
}

// evalSub appends the sentinel byte and evaluates buf as one script,
// used both by Eval and by every built-in that evaluates a sub-script
// (if/while bodies, proc bodies, [...] substitution).
func (in *Interp) evalSub(buf []byte) (flow.Flow, value.Value) {
	src := append(append([]byte(nil), buf...), token.Sentinel)
	return in.evalBytes(src)
}

// resolve substitutes one lexeme's raw text, additionally enforcing
// the Interp's configured $name length ceiling (subst.MaxVarNameLen
// is a fixed fallback inside the subst package itself; this lets
// WithMaxVarNameLen shrink it per instance).
func (in *Interp) resolve(text []byte) subst.Result {
	if len(text) > 0 && text[0] == '$' && len(text)-1 > in.maxVarNameLen {
		return subst.Result{Flow: flow.Error, Reason: diag.VarNameTooLong}
	}
	return subst.Resolve(in, text)
}

// lexErrorReason infers which lexical error internal/token reported,
// since token.ERROR carries no reason of its own: the lexeme's first
// byte identifies which delimiter was left open; a plain leading byte
// means the sentinel was hit while still inside a quoted word (an
// unterminated quote, per token.Sentinel's doc comment).
func lexErrorReason(text []byte) diag.Reason {
	if len(text) == 0 {
		return diag.UnterminatedQuote
	}
	switch text[0] {
	case '{':
		return diag.UnterminatedBrace
	case '[':
		return diag.UnterminatedBracket
	case '"':
		return diag.UnterminatedQuote
	case '$':
		return diag.BadDollar
	default:
		return diag.UnterminatedQuote
	}
}

// evalBytes implements the core evaluator algorithm: pull lexemes
// from the tokenizer, substitute WORD/PART fragments into a growing
// word list, and dispatch on CMD.
func (in *Interp) evalBytes(src []byte) (flow.Flow, value.Value) {
	var words []value.Value
	var cur value.Value
	curActive := false

	pos := 0
	quoted := false
	for pos < len(src) {
		lex, q := token.Next(src, pos, quoted)
		quoted = q

		switch lex.Kind {
		case token.WORD, token.PART:
			text := lex.Text(src)
			res := in.resolve(text)
			if res.Flow != flow.Normal {
				if res.Reason != "" {
					in.setError(res.Reason, lex.Start, src)
				}
				in.result = value.Empty
				return res.Flow, value.Empty
			}
			if curActive {
				cur = cur.Append(res.Val)
			} else {
				cur = res.Val
			}
			curActive = true
			if lex.Kind == token.WORD {
				words = append(words, cur)
				cur = value.Empty
				curActive = false
			}
		case token.CMD:
			if len(words) > 0 {
				f, v := in.invoke(words, lex.Start, src)
				in.result = v
				if f != flow.Normal {
					return f, v
				}
				words = nil
			} else {
				in.result = value.Empty
			}
		case token.ERROR:
			in.setError(lexErrorReason(lex.Text(src)), lex.Start, src)
			in.result = value.Empty
			return flow.Error, value.Empty
		}
		pos = lex.End
	}
	return flow.Normal, in.result
}

// invoke dispatches words (word[0] is the command name) to the
// command table via linear search.
func (in *Interp) invoke(words []value.Value, offset int, src []byte) (flow.Flow, value.Value) {
	name := words[0].String()
	cmd, ok := in.findCommand(name, len(words))
	if !ok {
		// A lone word that isn't a registered command is a self-evaluating
		// literal rather than an error: `if` and `while` conditions are
		// tcl_eval'd as full sub-scripts, so a bare condition like `{0}`
		// or `{1}` must still produce its own text as the result instead
		// of failing command lookup.
		if len(words) == 1 {
			return flow.Normal, words[0]
		}
		reason := diag.UnknownCommand
		for _, c := range in.commands {
			if c.name == name {
				reason = diag.ArityMismatch
				break
			}
		}
		in.setError(reason, offset, src)
		return flow.Error, value.Empty
	}
	raw := make([][]byte, len(words))
	for i, w := range words {
		raw[i] = w.Bytes()
	}
	return cmd.fn(in, raw)
}

func (in *Interp) setError(reason diag.Reason, offset int, source []byte) {
	in.lastErr = &diag.Error{Reason: reason, Offset: offset, Source: string(source), File: in.file}
}

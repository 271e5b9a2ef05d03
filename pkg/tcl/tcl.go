// Package tcl is minitcl's embeddable public API: a thin wrapper over
// internal/interp that exposes only stable, string-shaped types to a
// host program, keeping the internal Value/flow representations as an
// implementation detail.
package tcl

import (
	"io"

	"github.com/cwbudde/minitcl/internal/diag"
	"github.com/cwbudde/minitcl/internal/flow"
	"github.com/cwbudde/minitcl/internal/interp"
	"github.com/cwbudde/minitcl/internal/value"
)

// Flow is the control-transfer result of an Eval call.
type Flow int

const (
	Normal Flow = Flow(flow.Normal)
	Error  Flow = Flow(flow.Error)
	Return Flow = Flow(flow.Return)
	Break  Flow = Flow(flow.Break)
	Again  Flow = Flow(flow.Again)
)

func (f Flow) String() string {
	return flow.Flow(f).String()
}

// CommandFunc is a host-registered command handler. args holds the
// already-substituted argument strings, args[0] being the command
// name itself.
type CommandFunc func(in *Interp, args []string) (Flow, string)

// Option configures an Interp at construction time.
type Option = interp.Option

// WithOutput redirects puts's output (default os.Stdout).
func WithOutput(w io.Writer) Option { return interp.WithOutput(w) }

// WithMaxVarNameLen lowers the `$name` length ceiling. The fixed
// limit of subst.MaxVarNameLen (256) still applies, so an n above it
// does not admit longer names.
func WithMaxVarNameLen(n int) Option { return interp.WithMaxVarNameLen(n) }

// WithoutPuts omits the puts command entirely.
func WithoutPuts() Option { return interp.WithoutPuts() }

// Interp is one embeddable interpreter instance. Distinct Interp
// values share no state and may run on separate goroutines
// concurrently; a single Interp is not goroutine-safe.
type Interp struct {
	in *interp.Interp
}

// New creates an interpreter with all built-in commands registered
// registered.
func New(opts ...Option) *Interp {
	return &Interp{in: interp.New(opts...)}
}

// Eval evaluates script as a top-level command sequence.
func (i *Interp) Eval(script string) (Flow, string) {
	f, s := i.in.Eval(script)
	return Flow(f), s
}

// Register adds a host command to the table; later registrations
// shadow earlier ones of the same name.
func (i *Interp) Register(name string, arity int, fn CommandFunc) {
	i.in.Register(name, arity, func(_ *interp.Interp, words [][]byte) (flow.Flow, value.Value) {
		args := make([]string, len(words))
		for n, w := range words {
			args[n] = string(w)
		}
		f, s := fn(i, args)
		return flow.Flow(f), value.FromString(s)
	})
}

// Var reads (and optionally writes) a variable in the current frame
// A nil val leaves the variable untouched.
func (i *Interp) Var(name string, val *string) string {
	return i.in.Var(name, val)
}

// Result returns the most recent result.
func (i *Interp) Result() string {
	return i.in.Result()
}

// LastError returns diagnostic detail for the most recent flow Error,
// or nil. This is sugar layered outside the flow-code contract
// (internal/diag's doc comment); Eval's return value alone always
// tells the caller success or failure.
func (i *Interp) LastError() *diag.Error {
	return i.in.LastError()
}

// SetSourceName attaches a display name (e.g. a file path) to errors
// reported by LastError.
func (i *Interp) SetSourceName(name string) {
	i.in.SetSourceName(name)
}

// Close releases the interpreter's state. Go's garbage collector does
// the actual reclamation; Close exists for hosts written against an
// abstract destroy(tcl) contract.
func (i *Interp) Close() {
	i.in.Close()
}

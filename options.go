package cnc

import (
	"bytes"
	"io"

	"github.com/nygeek/cnc/internal/tape"
	"github.com/nygeek/cnc/internal/value"
)

// Option configures an Engine at construction time.
type Option interface{ apply(e *Engine) }

// Options combines several options into one.
func Options(opts ...Option) Option { return optionList(opts) }

type optionList []Option

func (opts optionList) apply(e *Engine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(e)
		}
	}
}

var defaultOptions = Options(
	withAlgebra{value.Complexes},
	withDepth(4),
	withTolerance{rel: 1e-10, abs: 1e-10},
	withInput{bytes.NewReader(nil)},
	withOutput{io.Discard},
)

// WithAlgebra selects the numeric algebra the engine computes over.
// The default is the binary-float complex algebra.
func WithAlgebra(a value.Algebra) Option { return withAlgebra{a} }

// WithDepth sets the register stack depth; values below the HP-35's
// four slots are raised to four.
func WithDepth(depth int) Option { return withDepth(depth) }

// WithTolerance sets both clamp tolerances (relative and absolute) to
// the same value, the way the original calculator configures them.
func WithTolerance(tol float64) Option { return withTolerance{rel: tol, abs: tol} }

// WithTolerances sets the relative and absolute clamp tolerances
// separately.
func WithTolerances(rel, abs float64) Option { return withTolerance{rel: rel, abs: abs} }

// WithRecorder sets the interaction tape. The default is an unbounded
// in-memory tape.
func WithRecorder(r tape.Recorder) Option { return withRecorder{r} }

// WithInput sets the stream the Run loop reads lines from.
func WithInput(r io.Reader) Option { return withInput{r} }

// WithOutput sets the stream stack displays and diagnostics are
// written to.
func WithOutput(w io.Writer) Option { return withOutput{w} }

// WithPrompt sets the string printed before each Run loop read.
func WithPrompt(prompt string) Option { return withPrompt(prompt) }

// WithLogf installs a trace logging function and enables tracing; the
// debug command toggles tracing afterwards.
func WithLogf(logfn func(mess string, args ...any)) Option { return withLogfn(logfn) }

type withAlgebra struct{ value.Algebra }
type withDepth int
type withTolerance struct{ rel, abs float64 }
type withRecorder struct{ tape.Recorder }
type withInput struct{ io.Reader }
type withOutput struct{ io.Writer }
type withPrompt string
type withLogfn func(mess string, args ...any)

func (o withAlgebra) apply(e *Engine) { e.alg = o.Algebra }

func (o withDepth) apply(e *Engine) {
	e.depth = int(o)
	if e.depth < 4 {
		e.depth = 4
	}
}

func (o withTolerance) apply(e *Engine) { e.rel, e.abs = o.rel, o.abs }
func (o withRecorder) apply(e *Engine)  { e.rec = o.Recorder }
func (o withInput) apply(e *Engine)     { e.in = o.Reader }

func (o withOutput) apply(e *Engine) {
	if e.out != nil {
		e.out.Flush()
	}
	e.out = newWriteFlusher(o.Writer)
}

func (o withPrompt) apply(e *Engine) { e.prompt = string(o) }

// installing a logger turns tracing on; the debug command toggles it
// from there
func (o withLogfn) apply(e *Engine) {
	e.logfn = o
	e.trace = true
}

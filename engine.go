package cnc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nygeek/cnc/internal/tape"
	"github.com/nygeek/cnc/internal/value"
)

var (
	// ErrUnknownCommand reports a name with no registry entry; the
	// stack is left untouched.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnrecognizedToken reports input that is neither a command
	// nor a numeric literal; the stack is left untouched.
	ErrUnrecognizedToken = errors.New("unrecognized token")
)

// QuitError is returned by the quit command. It carries the
// interaction count at the moment of quitting so front ends can report
// it; it marks a deliberate terminal state, not a failure.
type QuitError struct{ Count int }

func (err QuitError) Error() string {
	return fmt.Sprintf("quit after %d interactions", err.Count)
}

// Engine is the calculator composition root: one register stack, one
// command registry, one algebra, one interaction tape. Its only
// mutating surface is Eval, Submit, and the token/line entry points
// built on them. One Engine must not be shared across concurrent
// callers.
type Engine struct {
	alg   value.Algebra
	stack *Stack
	cmds  map[string]command
	rec   tape.Recorder

	depth    int
	rel, abs float64

	in     io.Reader
	out    writeFlusher
	prompt string

	trace bool
	logfn func(mess string, args ...any)
}

// New builds an Engine; see the With* options for configuration. The
// defaults are the binary-float complex algebra, depth four, tolerance
// 1e-10, an in-memory tape, empty input, and discarded output.
func New(opts ...Option) *Engine {
	var e Engine
	defaultOptions.apply(&e)
	Options(opts...).apply(&e)
	if e.rec == nil {
		e.rec = tape.NewMemory()
	}
	e.stack = NewStack(e.alg, e.depth, e.rel, e.abs)
	e.cmds = e.buildCommands()
	return &e
}

// LookupAlgebra resolves an algebra by name: real, complex, decimal,
// quaternion, or octonion. The result feeds WithAlgebra.
func LookupAlgebra(name string) (value.Algebra, error) { return value.Lookup(name) }

// Algebra reports the engine's numeric algebra.
func (e *Engine) Algebra() value.Algebra { return e.alg }

// Stack exposes the register stack for display and snapshotting.
// Mutating it directly bypasses the interaction count and the tape.
func (e *Engine) Stack() *Stack { return e.stack }

// Count reports the interaction counter.
func (e *Engine) Count() int { return e.stack.Count() }

func (e *Engine) logf(mess string, args ...any) {
	if e.trace && e.logfn != nil {
		e.logfn(mess, args...)
	}
}

func (e *Engine) record(kind, text string) {
	if err := e.rec.Record(kind, text); err != nil {
		e.logf("tape record failed: %v", err)
	}
}

// Eval executes a command by name. The returned value is the top of
// stack after the command ran. A non-nil error may accompany a valid
// value: divide-by-zero and undefined-operation faults leave the stack
// holding the untouched operand and surface the fault here.
func (e *Engine) Eval(name string) (value.Number, error) {
	cmd, ok := e.cmds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	e.stack.IncrementCount()
	e.record("command", name)
	e.logf("eval %q r:%v s:%v", name, e.stack.Storcl(), e.stack.slots)
	return cmd.run(e)
}

// Submit pushes a literal value, incrementing the interaction counter.
// It returns the clamped value now in the X slot.
func (e *Engine) Submit(n value.Number) value.Number {
	e.stack.IncrementCount()
	e.record("number", n.String())
	e.logf("submit %v", n)
	return e.stack.Push(n)
}

// EvalToken resolves one scanned token. Words and operators are
// matched against the command registry before any numeric
// interpretation, so a name that looks like a number ("e") is a
// command; complex pair literals are tried before plain numbers.
func (e *Engine) EvalToken(tok Token) (value.Number, error) {
	switch tok.Kind {
	case TokenWord, TokenOperator:
		if _, ok := e.cmds[tok.Text]; ok {
			return e.Eval(tok.Text)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok.Text)

	case TokenComplex:
		reLit, imLit, err := splitComplex(tok.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok.Text)
		}
		n, err := e.parsePair(reLit, imLit)
		if err != nil {
			return nil, err
		}
		return e.Submit(n), nil

	case TokenNumber:
		n, err := e.alg.Parse(tok.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok.Text)
		}
		return e.Submit(n), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok.Text)
	}
}

// parsePair builds re + im*i from the two literals of a pair token.
func (e *Engine) parsePair(reLit, imLit string) (value.Number, error) {
	re, err := e.alg.Parse(reLit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedToken, reLit)
	}
	im, err := e.alg.Parse(imLit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedToken, imLit)
	}
	unit := e.alg.I()
	if unit == nil {
		return nil, fmt.Errorf("complex literal over %s: %w", e.alg.Name(), value.ErrUndefined)
	}
	return re.Add(im.Mul(unit)), nil
}

// EvalLine scans and evaluates every token on one line, writing a
// diagnostic per faulting token to the output stream. It returns the
// first QuitError encountered, if any.
func (e *Engine) EvalLine(line string) error {
	rest := line
	for {
		tok, tail := ScanToken(rest)
		if tok.Kind == TokenNone {
			return nil
		}
		if _, err := e.EvalToken(tok); err != nil {
			var quit QuitError
			if errors.As(err, &quit) {
				return quit
			}
			fmt.Fprintf(e.out, "%v\n", err)
		}
		rest = tail
	}
}

// Run is the read-eval loop: it reads lines from the configured input,
// evaluates each token, displays the stack after every line, and stops
// on end of input or quit, reporting the interaction count either way.
func (e *Engine) Run(ctx context.Context) error {
	sc := bufio.NewScanner(e.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.prompt != "" {
			io.WriteString(e.out, e.prompt)
			if err := e.out.Flush(); err != nil {
				return err
			}
		}
		if !sc.Scan() {
			break
		}
		if err := e.EvalLine(sc.Text()); err != nil {
			var quit QuitError
			if errors.As(err, &quit) {
				fmt.Fprintf(e.out, "count: %d\n", quit.Count)
				return e.out.Flush()
			}
			return err
		}
		fmt.Fprint(e.out, e.stack)
		if err := e.out.Flush(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "count: %d\n", e.stack.Count())
	return e.out.Flush()
}

// Close releases the interaction tape.
func (e *Engine) Close() error {
	if err := e.out.Flush(); err != nil {
		e.rec.Close()
		return err
	}
	return e.rec.Close()
}

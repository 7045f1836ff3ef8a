package cnc

import (
	"fmt"
	"math"
	"sort"

	"github.com/nygeek/cnc/internal/value"
)

// Arity classifies how many stack operands a command consumes.
type Arity int

const (
	// Nullary commands take no operands; constants push a produced
	// value, stack commands rearrange slots directly.
	Nullary Arity = iota
	// Unary commands pop X, compute f(x), and push the result.
	Unary
	// Binary commands pop X as x, pop again as y (the former Y slot),
	// compute f(x, y), and push the result. Most formulas take the
	// second-popped operand first: subtraction is y-x, division y/x.
	Binary
)

// command is one registry entry: a name bound to an arity-tagged
// operation with a help description. The registry is built once at
// engine construction and never mutated.
type command struct {
	name  string
	arity Arity
	desc  string
	run   func(e *Engine) (value.Number, error)
}

// unary wraps a pure operand function with the pop/push discipline.
// On a fault the operand function returns its argument unchanged, so
// the stack is always left with a usable value.
func unary(name, desc string, f func(x value.Number) (value.Number, error)) command {
	return command{name: name, arity: Unary, desc: desc,
		run: func(e *Engine) (value.Number, error) {
			x := e.stack.Pop()
			r, err := f(x)
			if r == nil {
				r = x
			}
			return e.stack.Push(r), err
		},
	}
}

// binary pops x then y; on a fault y is restored to the top slot.
func binary(name, desc string, f func(x, y value.Number) (value.Number, error)) command {
	return command{name: name, arity: Binary, desc: desc,
		run: func(e *Engine) (value.Number, error) {
			x := e.stack.Pop()
			y := e.stack.Pop()
			r, err := f(x, y)
			if r == nil {
				r = y
			}
			return e.stack.Push(r), err
		},
	}
}

func nullary(name, desc string, f func(e *Engine) (value.Number, error)) command {
	return command{name: name, arity: Nullary, desc: desc, run: f}
}

// constant pushes a produced value; producers that return nil (an
// algebra without the constant) fault without touching the stack.
func constant(name, desc string, f func(a value.Algebra) value.Number) command {
	return command{name: name, arity: Nullary, desc: desc,
		run: func(e *Engine) (value.Number, error) {
			v := f(e.alg)
			if v == nil {
				return e.stack.X(), fmt.Errorf("%s over %s: %w", name, e.alg.Name(), value.ErrUndefined)
			}
			return e.stack.Push(v), nil
		},
	}
}

// xtoy raises the former Y slot to the power in X, via exp(ln(y) * x),
// so "2 3 xtoy" leaves 8.
func xtoy(x, y value.Number) (value.Number, error) {
	l, err := value.Ln(y)
	if err != nil {
		return y, err
	}
	return value.Exp(l.Mul(x))
}

// eex scales y by ten to the floor of x's real part.
func eex(e *Engine) func(x, y value.Number) (value.Number, error) {
	return func(x, y value.Number) (value.Number, error) {
		exp := math.Floor(x.Scalar())
		return y.Mul(e.alg.FromFloat(math.Pow(10, exp))), nil
	}
}

func (e *Engine) buildCommands() map[string]command {
	cmds := []command{
		binary("+", "add x and y", func(x, y value.Number) (value.Number, error) {
			return y.Add(x), nil
		}),
		binary("-", "subtract x from y", func(x, y value.Number) (value.Number, error) {
			return y.Sub(x), nil
		}),
		binary("*", "multiply y by x", func(x, y value.Number) (value.Number, error) {
			return x.Mul(y), nil
		}),
		binary("/", "divide y by x", func(x, y value.Number) (value.Number, error) {
			return y.Div(x)
		}),
		binary("xtoy", "put x^y in x, removing both x and y", xtoy),
		binary("eex", "push y * (10^x) onto the stack", eex(e)),

		unary("chs", "reverse the sign of x", func(x value.Number) (value.Number, error) {
			return x.Neg(), nil
		}),
		unary("inv", "replace x with 1/x", func(x value.Number) (value.Number, error) {
			return x.Inv()
		}),
		unary("conj", "replace x with its conjugate", func(x value.Number) (value.Number, error) {
			return x.Conj(), nil
		}),
		unary("sqrt", "replace x with sqrt(x)", value.Sqrt),
		unary("exp", "replace x with e^x", value.Exp),
		unary("ln", "replace x with ln(x) - natural log", value.Ln),
		unary("log", "replace x with log(x) - log base 10", value.Log10),
		unary("sin", "replace x with sin(x)", value.Sin),
		unary("cos", "replace x with cos(x)", value.Cos),
		unary("tan", "replace x with tan(x)", value.Tan),
		unary("arcsin", "replace x with arcsin(x)", value.Asin),
		unary("arccos", "replace x with arccos(x)", value.Acos),
		unary("arctan", "replace x with arctan(x)", value.Atan),
		unary("sinh", "replace x with sinh(x)", value.Sinh),
		unary("cosh", "replace x with cosh(x)", value.Cosh),
		unary("tanh", "replace x with tanh(x)", value.Tanh),
		unary("asinh", "replace x with asinh(x)", value.Asinh),
		unary("acosh", "replace x with acosh(x)", value.Acosh),
		unary("atanh", "replace x with atanh(x)", value.Atanh),
		unary("real", "put real(x) into x", func(x value.Number) (value.Number, error) {
			return x.Real(), nil
		}),
		unary("imag", "put imag(x) into x", value.Imag),
		unary("mod", "replace x with mod(x) [absolute value]", func(x value.Number) (value.Number, error) {
			return x.Abs(), nil
		}),
		unary("abs", "replace x with mod(x) [absolute value]", func(x value.Number) (value.Number, error) {
			return x.Abs(), nil
		}),
		unary("arg", "replace x with arg(x)", value.Arg),

		constant("pi", "push pi onto the stack", value.Algebra.Pi),
		constant("e", "push e onto the stack", value.Algebra.E),
		constant("i", "push i on to the stack", value.Algebra.I),
		constant("j", "push i on to the stack", value.Algebra.I),

		nullary("clr", "clear the stack", func(e *Engine) (value.Number, error) {
			e.stack.Clear()
			return e.stack.X(), nil
		}),
		nullary("clear", "clear the stack", func(e *Engine) (value.Number, error) {
			e.stack.Clear()
			return e.stack.X(), nil
		}),
		nullary("clx", "clear the x register", func(e *Engine) (value.Number, error) {
			return e.stack.SetX(e.alg.Zero()), nil
		}),
		nullary("sto", "store x into M", func(e *Engine) (value.Number, error) {
			return e.stack.Sto(), nil
		}),
		nullary("rcl", "replace x with the value in M", func(e *Engine) (value.Number, error) {
			return e.stack.Rcl(), nil
		}),
		nullary("exch", "exchange x and y", func(e *Engine) (value.Number, error) {
			e.stack.Exch()
			return e.stack.X(), nil
		}),
		nullary("down", "t to z, z to y, y to x, x to t", func(e *Engine) (value.Number, error) {
			e.stack.Rolldown()
			return e.stack.X(), nil
		}),
		nullary("push", "push everything up the stack", func(e *Engine) (value.Number, error) {
			return e.stack.Push(e.stack.X()), nil
		}),
		nullary("enter", "display the stack", func(e *Engine) (value.Number, error) {
			fmt.Fprint(e.out, e.stack)
			return e.stack.X(), e.out.Flush()
		}),
		nullary("debug", "toggle the debug flag", func(e *Engine) (value.Number, error) {
			e.trace = !e.trace
			fmt.Fprintf(e.out, "debug: %v\n", e.trace)
			return e.stack.X(), e.out.Flush()
		}),
		nullary("help", "display documentation", (*Engine).help),
		nullary("?", "display documentation", (*Engine).help),
		nullary("tape", "dump the tape", (*Engine).dumpTape),
		nullary("quit", "exit the calculator", func(e *Engine) (value.Number, error) {
			return e.stack.X(), QuitError{Count: e.stack.Count()}
		}),
	}

	registry := make(map[string]command, len(cmds))
	for _, cmd := range cmds {
		if _, dup := registry[cmd.name]; dup {
			panic(fmt.Sprintf("cnc: duplicate command %q", cmd.name))
		}
		registry[cmd.name] = cmd
	}
	return registry
}

func (e *Engine) help() (value.Number, error) {
	fmt.Fprintf(e.out, "CNC - %s calculator\n\n", e.alg.Name())
	fmt.Fprintln(e.out, "An RPN calculator in honor of the late George R Stibitz")
	fmt.Fprintln(e.out, "and of 1972's HP35 scientific calculator.")
	fmt.Fprintln(e.out, "")
	fmt.Fprintln(e.out, "Euler's identity: 'i pi * exp 1 +'")
	fmt.Fprintln(e.out, "")
	names := make([]string, 0, len(e.cmds))
	for name := range e.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(e.out, "  %-8s %s\n", name, e.cmds[name].desc)
	}
	fmt.Fprintln(e.out, "")
	fmt.Fprintln(e.out, "Enter a complex number directly as (re,im), e.g. (1,1).")
	return e.stack.X(), e.out.Flush()
}

func (e *Engine) dumpTape() (value.Number, error) {
	entries, err := e.rec.Entries()
	if err != nil {
		return e.stack.X(), fmt.Errorf("reading tape: %w", err)
	}
	for _, entry := range entries {
		fmt.Fprintf(e.out, "%d: %s %s\n", entry.Seq, entry.Kind, entry.Text)
	}
	return e.stack.X(), e.out.Flush()
}

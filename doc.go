/*
Package cnc implements an RPN scientific calculator engine modeled on
the 1972 HP-35, operating over several numeric algebras: reals, complex
numbers (binary float or arbitrary-precision decimal), quaternions, and
octonions.

The engine is a fixed-depth register stack (X, Y, Z, T, ...) with HP-35
push/pop/roll semantics, one memory register, and a command registry
mapping names to nullary, unary, or binary operations on the active
algebra. Every value admitted to the top slot passes through a
near-integer clamp. Faults (divide by zero, operations the algebra does
not define, unknown commands) are ordinary result values; the stack is
always left in a usable state.

An Engine is built with functional options and driven either token by
token (Eval, Submit, EvalToken) by an external front end, or as a
read-eval loop over an input stream (Run):

	alg, err := cnc.LookupAlgebra("complex")
	if err != nil {
		// ...
	}
	eng := cnc.New(
		cnc.WithAlgebra(alg),
		cnc.WithInput(os.Stdin),
		cnc.WithOutput(os.Stdout),
	)
	err = eng.Run(ctx)

One Engine instance must not be shared across concurrent callers.
*/
package cnc

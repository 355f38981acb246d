// Package church is the combinator and Church-encoded data catalogue. It is
// ordinary client code of pkg/lambda: every term is built from the three
// constructors, and every builder returns a fresh tree on each call so no
// term is shared across evaluations.
package church

import "github.com/betanf/betanf/pkg/lambda"

func v(name string) lambda.Var {
	return lambda.Var{Name: name}
}

// I is the identity combinator.
func I() lambda.Term {
	return lambda.Fn("x", v("x"))
}

// K always returns its first argument.
func K() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y", v("x")))
}

// S is the substitution combinator. SK combinatory calculus is Turing
// complete; S K x = I.
func S() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y", lambda.Fn("z",
		lambda.Ap(v("x"), v("z"), lambda.Ap(v("y"), v("z"))))))
}

// B composes its first two arguments.
func B() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y", lambda.Fn("z",
		lambda.Ap(v("x"), lambda.Ap(v("y"), v("z"))))))
}

// C swaps the order of the second and third arguments.
func C() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y", lambda.Fn("z",
		lambda.Ap(v("x"), v("z"), v("y")))))
}

// W duplicates its second argument.
func W() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y",
		lambda.Ap(v("x"), v("y"), v("y"))))
}

// U applies its argument to itself.
func U() lambda.Term {
	return lambda.Fn("x", lambda.Ap(v("x"), v("x")))
}

// Y is the fixed-point combinator: Y g = g (Y g).
func Y() lambda.Term {
	half := func() lambda.Term {
		return lambda.Fn("x", lambda.Ap(v("g"), lambda.Ap(v("x"), v("x"))))
	}
	return lambda.Fn("g", lambda.Ap(half(), half()))
}

// Iota is Turing complete by itself:
//
//	IOTA IOTA = I
//	IOTA (IOTA IOTA) = FALSE = ZERO
//	IOTA (IOTA (IOTA IOTA)) = TRUE = K
//	IOTA (IOTA (IOTA (IOTA IOTA))) = S
func Iota() lambda.Term {
	return lambda.Fn("f", lambda.Ap(v("f"), S(), K()))
}

// Omega is the self-application of U. It has no normal form, but one
// reduction step maps it back to itself textually, so the fixpoint driver
// stops on it immediately.
func Omega() lambda.Term {
	return lambda.Ap(U(), U())
}

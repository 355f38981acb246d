package church

import "github.com/betanf/betanf/pkg/lambda"

// Zero is Church numeral 0: a function applied zero times.
func Zero() lambda.Term {
	return lambda.Fn("f", lambda.Fn("x", v("x")))
}

// One is Church numeral 1.
func One() lambda.Term {
	return lambda.Fn("f", lambda.Fn("x", lambda.Ap(v("f"), v("x"))))
}

// Succ produces the successor of a Church numeral.
func Succ() lambda.Term {
	return lambda.Fn("n", lambda.Fn("f", lambda.Fn("x",
		lambda.Ap(v("f"), lambda.Ap(v("n"), v("f"), v("x"))))))
}

func Plus() lambda.Term {
	return lambda.Fn("m", lambda.Fn("n",
		lambda.Ap(v("m"), Succ(), v("n"))))
}

func Mult() lambda.Term {
	return lambda.Fn("m", lambda.Fn("n",
		lambda.Ap(v("m"), lambda.Ap(Plus(), v("n")), Zero())))
}

func Pow() lambda.Term {
	return lambda.Fn("m", lambda.Fn("n",
		lambda.Ap(v("n"), lambda.Ap(Mult(), v("m")), One())))
}

// Pred is the Kleene predecessor. Pred Zero is Zero.
func Pred() lambda.Term {
	return lambda.Fn("n", lambda.Fn("f", lambda.Fn("x",
		lambda.Ap(v("n"),
			lambda.Fn("g", lambda.Fn("h",
				lambda.Ap(v("h"), lambda.Ap(v("g"), v("f"))))),
			lambda.Fn("u", v("x")),
			lambda.Fn("u", v("u"))))))
}

// Sub is truncated subtraction: Sub m n is zero when n exceeds m.
func Sub() lambda.Term {
	return lambda.Fn("m", lambda.Fn("n",
		lambda.Ap(v("n"), Pred(), v("m"))))
}

func IsZero() lambda.Term {
	return lambda.Fn("n",
		lambda.Ap(v("n"), lambda.Fn("x", False()), True()))
}

func Leq() lambda.Term {
	return lambda.Fn("m", lambda.Fn("n",
		lambda.Ap(IsZero(), lambda.Ap(Sub(), v("m"), v("n")))))
}

// Nat builds the Church numeral for n. Non-positive arguments yield Zero.
func Nat(n int) lambda.Term {
	if n <= 0 {
		return Zero()
	}
	numeral := lambda.Ap(v("f"), v("x"))
	for i := 1; i < n; i++ {
		numeral = lambda.Ap(v("f"), numeral)
	}
	return lambda.Fn("f", lambda.Fn("x", numeral))
}

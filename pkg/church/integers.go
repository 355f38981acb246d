package church

import "github.com/betanf/betanf/pkg/lambda"

// Signed integers are pairs of naturals (p, n) representing p - n. The
// representation is not unique: (3, 1) and (2, 0) both mean two, so the
// observers below compare components rather than assuming a normal form.

// Int builds the signed integer for n.
func Int(n int) lambda.Term {
	if n >= 0 {
		return lambda.Ap(Pair(), Nat(n), Zero())
	}
	return lambda.Ap(Pair(), Zero(), Nat(-n))
}

// INeg swaps the positive and negative components.
func INeg() lambda.Term {
	return lambda.Fn("x",
		lambda.Ap(Pair(),
			lambda.Ap(Second(), v("x")),
			lambda.Ap(First(), v("x"))))
}

func IPlus() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y",
		lambda.Ap(Pair(),
			lambda.Ap(Plus(), lambda.Ap(First(), v("x")), lambda.Ap(First(), v("y"))),
			lambda.Ap(Plus(), lambda.Ap(Second(), v("x")), lambda.Ap(Second(), v("y"))))))
}

func ISub() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y",
		lambda.Ap(IPlus(), v("x"), lambda.Ap(INeg(), v("y")))))
}

// IMult multiplies (a, b) and (c, d) into (ac + bd, ad + bc).
func IMult() lambda.Term {
	first := func(name string) lambda.Term { return lambda.Ap(First(), v(name)) }
	second := func(name string) lambda.Term { return lambda.Ap(Second(), v(name)) }
	return lambda.Fn("x", lambda.Fn("y",
		lambda.Ap(Pair(),
			lambda.Ap(Plus(),
				lambda.Ap(Mult(), first("x"), first("y")),
				lambda.Ap(Mult(), second("x"), second("y"))),
			lambda.Ap(Plus(),
				lambda.Ap(Mult(), first("x"), second("y")),
				lambda.Ap(Mult(), second("x"), first("y"))))))
}

// IIsZero tests whether both components are equal.
func IIsZero() lambda.Term {
	return lambda.Fn("x",
		lambda.Ap(And(),
			lambda.Ap(Leq(), lambda.Ap(First(), v("x")), lambda.Ap(Second(), v("x"))),
			lambda.Ap(Leq(), lambda.Ap(Second(), v("x")), lambda.Ap(First(), v("x")))))
}

// ISign is True for non-negative integers.
func ISign() lambda.Term {
	return lambda.Fn("x",
		lambda.Ap(Leq(), lambda.Ap(Second(), v("x")), lambda.Ap(First(), v("x"))))
}

package church

import "github.com/betanf/betanf/pkg/lambda"

// Pair holds two values and hands both to a selector function.
func Pair() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y", lambda.Fn("f",
		lambda.Ap(v("f"), v("x"), v("y")))))
}

func First() lambda.Term {
	return lambda.Fn("p", lambda.Ap(v("p"), True()))
}

func Second() lambda.Term {
	return lambda.Fn("p", lambda.Ap(v("p"), False()))
}

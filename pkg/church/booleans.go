package church

import "github.com/betanf/betanf/pkg/lambda"

// True selects its first argument. Structurally identical to K.
func True() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y", v("x")))
}

// False selects its second argument. Structurally identical to Zero.
func False() lambda.Term {
	return lambda.Fn("x", lambda.Fn("y", v("y")))
}

func Not() lambda.Term {
	return lambda.Fn("p", lambda.Ap(v("p"), False(), True()))
}

func And() lambda.Term {
	return lambda.Fn("p", lambda.Fn("q",
		lambda.Ap(v("p"), v("q"), v("p"))))
}

func Or() lambda.Term {
	return lambda.Fn("p", lambda.Fn("q",
		lambda.Ap(v("p"), v("p"), v("q"))))
}

func Xor() lambda.Term {
	return lambda.Fn("p", lambda.Fn("q",
		lambda.Ap(v("p"), lambda.Ap(Not(), v("q")), v("q"))))
}

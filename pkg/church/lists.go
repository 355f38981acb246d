package church

import "github.com/betanf/betanf/pkg/lambda"

// Lists are pairs of head and tail, terminated by Nil.

// Nil is the empty list: it absorbs a selector and answers True to IsNil.
func Nil() lambda.Term {
	return lambda.Fn("x", True())
}

func IsNil() lambda.Term {
	return lambda.Fn("p",
		lambda.Ap(v("p"), lambda.Fn("x", lambda.Fn("y", False()))))
}

func Cons() lambda.Term {
	return lambda.Fn("h", lambda.Fn("t",
		lambda.Ap(Pair(), v("h"), v("t"))))
}

func Head() lambda.Term {
	return First()
}

func Tail() lambda.Term {
	return Second()
}

// Index looks up the nth element of a list, recursing through Y.
func Index() lambda.Term {
	return lambda.Ap(Y(),
		lambda.Fn("f", lambda.Fn("l", lambda.Fn("n",
			lambda.Ap(IsZero(), v("n"),
				lambda.Ap(Head(), v("l")),
				lambda.Ap(v("f"), lambda.Ap(Tail(), v("l")), lambda.Ap(Pred(), v("n"))))))))
}

package church

import "github.com/betanf/betanf/pkg/lambda"

// Fact computes the factorial of a Church numeral, recursing through Y.
func Fact() lambda.Term {
	return lambda.Ap(Y(),
		lambda.Fn("f", lambda.Fn("n",
			lambda.Ap(IsZero(), v("n"),
				One(),
				lambda.Ap(Mult(), v("n"),
					lambda.Ap(v("f"), lambda.Ap(Pred(), v("n"))))))))
}

// Fibo computes the nth Fibonacci number.
func Fibo() lambda.Term {
	return lambda.Ap(Y(),
		lambda.Fn("f", lambda.Fn("n",
			lambda.Ap(IsZero(), v("n"),
				Zero(),
				lambda.Ap(IsZero(), lambda.Ap(Pred(), v("n")),
					One(),
					lambda.Ap(Plus(),
						lambda.Ap(v("f"), lambda.Ap(Pred(), v("n"))),
						lambda.Ap(v("f"), lambda.Ap(Pred(), lambda.Ap(Pred(), v("n"))))))))))
}

package church

import "github.com/betanf/betanf/pkg/lambda"

// Binary trees are encoded over pairs the same way lists are: a node is a
// value paired with a pair of children, and the empty tree reuses Nil so
// the list emptiness test carries over unchanged.

func Leaf() lambda.Term {
	return Nil()
}

func IsLeaf() lambda.Term {
	return IsNil()
}

// Node builds a tree from a value and two subtrees.
func Node() lambda.Term {
	return lambda.Fn("x", lambda.Fn("l", lambda.Fn("r",
		lambda.Ap(Pair(), v("x"), lambda.Ap(Pair(), v("l"), v("r"))))))
}

func Root() lambda.Term {
	return First()
}

func Left() lambda.Term {
	return lambda.Fn("t",
		lambda.Ap(First(), lambda.Ap(Second(), v("t"))))
}

func Right() lambda.Term {
	return lambda.Fn("t",
		lambda.Ap(Second(), lambda.Ap(Second(), v("t"))))
}

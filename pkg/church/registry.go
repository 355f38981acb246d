package church

import (
	"sort"

	"github.com/betanf/betanf/pkg/lambda"
)

// Builder produces a fresh catalogue term on each call.
type Builder func() lambda.Term

// builders maps catalogue names to their builder functions. Builders run
// on demand, so no term is constructed at package load time.
var builders = map[string]Builder{
	"I":     I,
	"K":     K,
	"S":     S,
	"B":     B,
	"C":     C,
	"W":     W,
	"U":     U,
	"Y":     Y,
	"IOTA":  Iota,
	"OMEGA": Omega,

	"TRUE":  True,
	"FALSE": False,
	"NOT":   Not,
	"AND":   And,
	"OR":    Or,
	"XOR":   Xor,

	"ZERO":   Zero,
	"ONE":    One,
	"SUCC":   Succ,
	"PLUS":   Plus,
	"MULT":   Mult,
	"POW":    Pow,
	"PRED":   Pred,
	"SUB":    Sub,
	"ISZERO": IsZero,
	"LEQ":    Leq,

	"PAIR":   Pair,
	"FIRST":  First,
	"SECOND": Second,

	"NIL":   Nil,
	"ISNIL": IsNil,
	"CONS":  Cons,
	"HEAD":  Head,
	"TAIL":  Tail,
	"INDEX": Index,

	"LEAF":   Leaf,
	"ISLEAF": IsLeaf,
	"NODE":   Node,
	"ROOT":   Root,
	"LEFT":   Left,
	"RIGHT":  Right,

	"INEG":    INeg,
	"IPLUS":   IPlus,
	"ISUB":    ISub,
	"IMULT":   IMult,
	"IISZERO": IIsZero,
	"ISIGN":   ISign,

	"FACT": Fact,
	"FIBO": Fibo,
}

// Lookup returns a freshly built catalogue term by name.
func Lookup(name string) (lambda.Term, bool) {
	b, ok := builders[name]
	if !ok {
		return nil, false
	}
	return b(), true
}

// Names returns all catalogue names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand replaces free variables whose names match catalogue entries with
// freshly built catalogue terms. A binder with a matching name shadows the
// catalogue entry inside its body, like any other variable.
func Expand(t lambda.Term) lambda.Term {
	bound := make(map[string]int)
	var walk func(lambda.Term) lambda.Term
	walk = func(tt lambda.Term) lambda.Term {
		switch s := tt.(type) {
		case lambda.Var:
			if bound[s.Name] == 0 {
				if built, ok := Lookup(s.Name); ok {
					return built
				}
			}
			return s
		case lambda.Abs:
			bound[s.Param.Name]++
			body := walk(s.Body)
			bound[s.Param.Name]--
			return lambda.Abs{Param: s.Param, Body: body}
		case lambda.App:
			return lambda.App{Fun: walk(s.Fun), Arg: walk(s.Arg)}
		default:
			return tt
		}
	}
	return walk(t)
}

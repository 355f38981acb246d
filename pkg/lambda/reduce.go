package lambda

// Substitute computes t[v := repl]: every free occurrence of v in t is
// replaced by repl. An inner binder with the same name shadows the target
// and stops the substitution; no alpha-renaming is performed, so a free
// variable in repl can be captured by such a binder when names collide.
// That behavior is deliberate and matched by the tests.
func Substitute(t Term, v Var, repl Term) Term {
	return substitute(t, v, repl, nil)
}

// Apply applies head, used as a function, to arg, performing one beta
// reduction when head is (or simplifies to) an abstraction.
func Apply(head, arg Term) Term {
	return apply(head, arg, nil)
}

// Reduce performs one global rewrite step on t, driving reduction inside
// abstraction bodies so that repeated calls reach full beta-normal forms.
func Reduce(t Term) Term {
	return reduce(t, nil)
}

func substitute(t Term, v Var, repl Term, tr TraceFunc) Term {
	var out Term
	switch s := t.(type) {
	case Var:
		if s.Name == v.Name {
			out = repl
		} else {
			out = s
		}
	case Abs:
		if s.Param.Name == v.Name {
			// The inner binder shadows the target; the body is untouched.
			out = s
		} else {
			out = Abs{Param: s.Param, Body: substitute(s.Body, v, repl, tr)}
		}
	case App:
		out = App{
			Fun: substitute(s.Fun, v, repl, tr),
			Arg: substitute(s.Arg, v, repl, tr),
		}
	default:
		out = t
	}
	emit(tr, OpSubstitute, t, repl, out)
	return out
}

func apply(head, arg Term, tr TraceFunc) Term {
	var out Term
	switch h := head.(type) {
	case Var:
		// An unknown function. A compound argument is partially evaluated
		// before being paired with it.
		if _, ok := arg.(App); ok {
			out = App{Fun: h, Arg: reduce(arg, tr)}
		} else {
			out = App{Fun: h, Arg: arg}
		}
	case Abs:
		if arg.Render() == h.Param.Name {
			// Binding a variable to itself is a textual no-op.
			out = h.Body
		} else {
			out = substitute(h.Body, h.Param, arg, tr)
		}
	case App:
		next := reduce(head, tr)
		if next.Render() == head.Render() {
			// The head is stuck (e.g. its leftmost term is a free
			// variable); keep the application as written.
			out = App{Fun: head, Arg: arg}
		} else {
			out = apply(next, arg, tr)
		}
	default:
		out = App{Fun: head, Arg: arg}
	}
	emit(tr, OpApply, head, arg, out)
	return out
}

func reduce(t Term, tr TraceFunc) Term {
	var out Term
	switch s := t.(type) {
	case Var:
		out = s
	case Abs:
		out = Abs{Param: s.Param, Body: reduce(s.Body, tr)}
	case App:
		if v, ok := s.Fun.(Var); ok {
			// No beta step is possible at this node; only the argument
			// makes progress.
			out = App{Fun: v, Arg: reduce(s.Arg, tr)}
		} else {
			out = apply(s.Fun, s.Arg, tr)
		}
	default:
		out = t
	}
	emit(tr, OpReduce, t, nil, out)
	return out
}

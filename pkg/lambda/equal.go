package lambda

import "fmt"

// Equal reports structural equality: same shapes, same names, including
// bound ones. It is stricter than alpha-equivalence and independent of the
// canonical rendering used to detect reduction progress.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && av.Name == bv.Name
	case Abs:
		bv, ok := b.(Abs)
		return ok && av.Param.Name == bv.Param.Name && Equal(av.Body, bv.Body)
	case App:
		bv, ok := b.(App)
		return ok && Equal(av.Fun, bv.Fun) && Equal(av.Arg, bv.Arg)
	default:
		return false
	}
}

// AlphaEqual reports whether a and b are equal up to consistent renaming
// of bound variables. Free variables still compare by name.
func AlphaEqual(a, b Term) bool {
	return alphaNormalize(a) == alphaNormalize(b)
}

// alphaNormalize renders t with bound variables renamed to a canonical
// #0, #1, ... sequence in binder order, so alpha-equivalent terms render
// identically. Free variables keep their names; '#' cannot occur in an
// identifier, so canonical names never collide with free ones.
func alphaNormalize(t Term) string {
	bindings := make(map[string]string)
	var idx int
	var walk func(Term) Term
	walk = func(tt Term) Term {
		switch v := tt.(type) {
		case Var:
			if name, ok := bindings[v.Name]; ok {
				return Var{Name: name}
			}
			return v
		case Abs:
			canon := fmt.Sprintf("#%d", idx)
			idx++
			old, had := bindings[v.Param.Name]
			bindings[v.Param.Name] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Param.Name] = old
			} else {
				delete(bindings, v.Param.Name)
			}
			return Abs{Param: Var{Name: canon}, Body: body}
		case App:
			return App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(t).Render()
}

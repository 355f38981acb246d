package lambda

import "fmt"

// Term is a lambda calculus term: a Var, an Abs, or an App.
// Terms are immutable values; every operation in this package returns a
// freshly built tree and never modifies its inputs.
type Term interface {
	// Render returns the canonical textual form of the term. The canonical
	// form is also the equality oracle used to detect reduction progress.
	Render() string
}

// Var is a variable, identified purely by name. Two variables are the same
// variable iff their names are equal. An empty name is permitted but must
// never appear in a term that is evaluated.
type Var struct {
	Name string
}

func (v Var) Render() string {
	return v.Name
}

func (v Var) String() string { return v.Render() }

// Abs is an abstraction: a bound parameter and the body it scopes over.
type Abs struct {
	Param Var
	Body  Term
}

func (a Abs) Render() string {
	return fmt.Sprintf("(\\%s.%s)", a.Param.Name, a.Body.Render())
}

func (a Abs) String() string { return a.Render() }

// App is an application of a function term to an argument term.
type App struct {
	Fun Term
	Arg Term
}

func (a App) Render() string {
	return fmt.Sprintf("[%s %s]", a.Fun.Render(), a.Arg.Render())
}

func (a App) String() string { return a.Render() }

// Render returns the canonical textual form of t.
func Render(t Term) string {
	return t.Render()
}

// Fn builds an abstraction binding name over body.
func Fn(name string, body Term) Abs {
	return Abs{Param: Var{Name: name}, Body: body}
}

// Ap builds a left-associated application chain: Ap(f, a, b) is [[f a] b].
// At least one argument is required; with none, f is returned unchanged.
func Ap(f Term, args ...Term) Term {
	t := f
	for _, arg := range args {
		t = App{Fun: t, Arg: arg}
	}
	return t
}

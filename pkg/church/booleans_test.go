package church

import (
	"testing"

	"github.com/betanf/betanf/pkg/lambda"
)

func TestBooleans(t *testing.T) {
	tests := []struct {
		name string
		term lambda.Term
		want bool
	}{
		{name: "NOT TRUE", term: lambda.Ap(Not(), True()), want: false},
		{name: "NOT FALSE", term: lambda.Ap(Not(), False()), want: true},
		{name: "AND TRUE TRUE", term: lambda.Ap(And(), True(), True()), want: true},
		{name: "AND TRUE FALSE", term: lambda.Ap(And(), True(), False()), want: false},
		{name: "AND FALSE TRUE", term: lambda.Ap(And(), False(), True()), want: false},
		{name: "AND FALSE FALSE", term: lambda.Ap(And(), False(), False()), want: false},
		{name: "OR TRUE FALSE", term: lambda.Ap(Or(), True(), False()), want: true},
		{name: "OR FALSE TRUE", term: lambda.Ap(Or(), False(), True()), want: true},
		{name: "OR FALSE FALSE", term: lambda.Ap(Or(), False(), False()), want: false},
		{name: "XOR TRUE TRUE", term: lambda.Ap(Xor(), True(), True()), want: false},
		{name: "XOR TRUE FALSE", term: lambda.Ap(Xor(), True(), False()), want: true},
		{name: "XOR FALSE TRUE", term: lambda.Ap(Xor(), False(), True()), want: true},
		{name: "XOR FALSE FALSE", term: lambda.Ap(Xor(), False(), False()), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireBool(t, tt.term, tt.want)
		})
	}
}

func TestBooleansSelect(t *testing.T) {
	a, b := v("a"), v("b")

	if got := normalize(t, lambda.Ap(True(), a, b)).Render(); got != "a" {
		t.Errorf("TRUE a b = %s, want a", got)
	}
	if got := normalize(t, lambda.Ap(False(), a, b)).Render(); got != "b" {
		t.Errorf("FALSE a b = %s, want b", got)
	}
}

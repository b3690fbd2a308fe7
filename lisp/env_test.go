package lisp

import (
	"reflect"
	"testing"
)

func TestEnv(t *testing.T) {
	env := NewEnv()
	env.Add("b", Number(1))
	env.Add("a", Number(2))
	env.Add("b", Symbol("a"))

	if got, want := env.Keys(), []Symbol{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got keys %v want %v", got, want)
	}
	n, ok := env.find("b")
	if !ok || n != Symbol("a") {
		t.Errorf("got %v, %t want a, true", n, ok)
	}
	if _, ok := env.find("c"); ok {
		t.Error("found unbound c")
	}
}

func TestEnvZeroValue(t *testing.T) {
	var env Env
	env.Add("x", Number(3))
	if n, ok := env.find("x"); !ok || n != Number(3) {
		t.Errorf("got %v, %t want 3, true", n, ok)
	}
}

func TestDefineBindsUnevaluatedNode(t *testing.T) {
	l := New()
	if _, err := l.Eval("(define x (+ 1 y))"); err != nil {
		t.Fatal(err)
	}
	n, ok := l.Env.find("x")
	if !ok {
		t.Fatal("x not bound")
	}
	if got := n.String(); got != "(+ 1 y)" {
		t.Errorf("got %s want (+ 1 y)", got)
	}
}

package lisp

import (
	"fmt"
	"sort"
)

// Env is the single flat environment of a program. It maps a name to the
// node it was defined as, not to a value: bound nodes are evaluated again
// on every lookup.
type Env struct {
	dict map[Symbol]Node
}

func NewEnv() *Env {
	return &Env{dict: map[Symbol]Node{}}
}

func (e *Env) find(s Symbol) (Node, bool) {
	n, ok := e.dict[s]
	return n, ok
}

// Add binds s to n, replacing any earlier binding.
func (e *Env) Add(s Symbol, n Node) {
	if e.dict == nil {
		e.dict = map[Symbol]Node{}
	}
	e.dict[s] = n
}

// Keys returns the bound names in sorted order.
func (e *Env) Keys() []Symbol {
	keys := make([]Symbol, 0, len(e.dict))
	for k := range e.dict {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (l Lisp) evalEnv(env *Env, e Node, depth int) (uint64, error) {
	if l.MaxDepth > 0 && depth > l.MaxDepth {
		return 0, fmt.Errorf("%w: evaluating %s", ErrDepth, e)
	}
	switch n := e.(type) {
	case Number:
		return uint64(n), nil
	case Symbol:
		bound, ok := env.find(n)
		if !ok {
			return 0, fmt.Errorf("%w: variable %s is not bound", ErrUnresolvedSymbol, n)
		}
		// resolution is recursive: the bound node may itself be a symbol
		return l.evalEnv(env, bound, depth+1)
	case *Application:
		// define is the only form that does not evaluate its arguments
		if n.Name == "define" {
			return define(env, n.Args)
		}
		f, ok := builtin(n.Name)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownFunction, n.Name)
		}
		return f(l, env, n.Args, depth)
	}
	return 0, fmt.Errorf("unexpected node %v", e)
}

func define(env *Env, args []Node) (uint64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: missing name", ErrMalformedDefine)
	}
	sym, ok := args[0].(Symbol)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected node %s, expected symbol", ErrMalformedDefine, args[0])
	}
	if len(args) < 2 {
		return 0, fmt.Errorf("%w: missing value for %s", ErrMalformedDefine, sym)
	}
	env.Add(sym, args[1])
	return 0, nil
}

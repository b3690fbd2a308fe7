package lisp

import (
	"fmt"
	"io"
)

// DefaultMaxDepth is the nesting bound New sets. Parsing and evaluation
// recurse once per level, so this also bounds goroutine stack use.
const DefaultMaxDepth = 10000

type Lisp struct {
	Env *Env
	// Trace, when set, gets a line before and after each top-level root.
	Trace io.Writer
	// MaxDepth bounds nested applications and symbol lookups; <= 0 disables it.
	MaxDepth int
}

func New() Lisp {
	return Lisp{Env: NewEnv(), MaxDepth: DefaultMaxDepth}
}

// Read parses a program using this interpreter's depth bound.
func (l Lisp) Read(input string) ([]Node, error) {
	return parser{maxDepth: l.MaxDepth}.parse(Tokenize(input))
}

// Eval runs a whole program and returns the result of its last root,
// or 0 if it has none.
func (l Lisp) Eval(input string) (uint64, error) {
	roots, err := l.Read(input)
	if err != nil {
		return 0, err
	}
	return l.EvalProgram(roots)
}

// EvalProgram evaluates roots in order against l.Env. The first error stops
// the run; bindings made before it are kept.
func (l Lisp) EvalProgram(roots []Node) (uint64, error) {
	var res uint64
	for _, root := range roots {
		if l.Trace != nil {
			fmt.Fprintf(l.Trace, "root: %s\n", root)
		}
		var err error
		res, err = l.EvalExpr(root)
		if err != nil {
			return 0, err
		}
		if l.Trace != nil {
			fmt.Fprintf(l.Trace, "res is %d\n", res)
		}
	}
	return res, nil
}

func (l Lisp) EvalExpr(e Node) (uint64, error) {
	return l.evalEnv(l.Env, e, 0)
}

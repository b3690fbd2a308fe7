package lisp

import "fmt"

// builtinProc receives its arguments unevaluated so it controls the order
// in which they are evaluated.
type builtinProc func(l Lisp, env *Env, args []Node, depth int) (uint64, error)

func builtin(name Symbol) (builtinProc, bool) {
	switch name {
	case "+":
		return add, true
	case "-":
		return sub, true
	case "*":
		return mul, true
	case "/":
		return div, true
	}
	return nil, false
}

// All arithmetic wraps around on overflow.

func add(l Lisp, env *Env, args []Node, depth int) (uint64, error) {
	return l.fold(env, args, depth, 0, func(acc, x uint64) (uint64, error) {
		return acc + x, nil
	})
}

// sub folds from zero, so (- 5) is 0-5 and wraps, and (- 10 3) is 0-10-3.
func sub(l Lisp, env *Env, args []Node, depth int) (uint64, error) {
	return l.fold(env, args, depth, 0, func(acc, x uint64) (uint64, error) {
		return acc - x, nil
	})
}

func mul(l Lisp, env *Env, args []Node, depth int) (uint64, error) {
	return l.fold(env, args, depth, 1, func(acc, x uint64) (uint64, error) {
		return acc * x, nil
	})
}

func div(l Lisp, env *Env, args []Node, depth int) (uint64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: / needs at least one argument", ErrArithmetic)
	}
	first, err := l.evalEnv(env, args[0], depth+1)
	if err != nil {
		return 0, err
	}
	return l.fold(env, args[1:], depth, first, func(acc, x uint64) (uint64, error) {
		if x == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrArithmetic)
		}
		return acc / x, nil
	})
}

// fold evaluates args left to right, combining each into acc as soon as it
// is known. An error from op stops evaluation of the remaining args.
func (l Lisp) fold(env *Env, args []Node, depth int, acc uint64, op func(acc, x uint64) (uint64, error)) (uint64, error) {
	for _, arg := range args {
		x, err := l.evalEnv(env, arg, depth+1)
		if err != nil {
			return 0, err
		}
		if acc, err = op(acc, x); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

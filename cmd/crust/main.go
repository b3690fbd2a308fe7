package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/deosjr/crust/lisp"
)

var errUsage = errors.New("usage: crust <program>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run evaluates the single program argument, tracing each root to stdout
// before printing the final result.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}
	l := lisp.New()
	l.Trace = stdout
	res, err := l.Eval(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, res)
	return 0
}

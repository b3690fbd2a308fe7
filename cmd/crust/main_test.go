package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	for i, tt := range []struct {
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			args:       []string{"(+ 1 2 3)"},
			wantStdout: "root: (+ 1 2 3)\nres is 6\n6\n",
		},
		{
			args:       []string{"(define x 5) (+ x x)"},
			wantStdout: "root: (define x 5)\nres is 0\nroot: (+ x x)\nres is 10\n10\n",
		},
		{
			args:       []string{""},
			wantStdout: "0\n",
		},
		{
			args:       nil,
			wantCode:   2,
			wantStderr: "usage: crust <program>",
		},
		{
			args:       []string{"(+ 1)", "(+ 2)"},
			wantCode:   2,
			wantStderr: "usage: crust <program>",
		},
		{
			args:       []string{"(/ 10 0)"},
			wantCode:   1,
			wantStdout: "root: (/ 10 0)\n",
			wantStderr: "error: arithmetic fault: division by zero",
		},
		{
			args:       []string{"(+ 1"},
			wantCode:   1,
			wantStderr: "error: parse error",
		},
	} {
		var stdout, stderr bytes.Buffer
		code := run(tt.args, &stdout, &stderr)
		if code != tt.wantCode {
			t.Errorf("%d) got exit code %d want %d", i, code, tt.wantCode)
		}
		if stdout.String() != tt.wantStdout {
			t.Errorf("%d) got stdout %q want %q", i, stdout.String(), tt.wantStdout)
		}
		if !strings.HasPrefix(stderr.String(), tt.wantStderr) {
			t.Errorf("%d) got stderr %q want prefix %q", i, stderr.String(), tt.wantStderr)
		}
	}
}

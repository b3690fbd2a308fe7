package lisp

import (
	"strconv"
	"strings"
)

type TokenKind uint8

const (
	LeftParen TokenKind = iota
	RightParen
	NumberToken
	SymbolToken
)

// Token is one lexical unit. Text is always the exact source slice;
// Value is only meaningful for NumberToken.
type Token struct {
	Kind  TokenKind
	Text  string
	Value uint64
}

func (t Token) String() string {
	switch t.Kind {
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case NumberToken:
		return "Number(" + strconv.FormatUint(t.Value, 10) + ")"
	}
	return "Symbol(" + strconv.Quote(t.Text) + ")"
}

// Node is a syntax tree node: Symbol, Number or *Application.
type Node interface {
	String() string
	isNode()
}

type Symbol string

func (s Symbol) String() string { return string(s) }
func (Symbol) isNode() {}

type Number uint64

func (n Number) String() string { return strconv.FormatUint(uint64(n), 10) }
func (Number) isNode() {}

// Application is a call (name arg...). Args are owned by the application;
// nothing else in the tree points to them.
type Application struct {
	Name Symbol
	Args []Node
}

func (a *Application) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(string(a.Name))
	for _, arg := range a.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (*Application) isNode() {}

package lisp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Multiparse tokenizes and parses a whole program into its top-level roots.
func Multiparse(program string) ([]Node, error) {
	return Parse(Tokenize(program))
}

// Tokenize never fails: anything that is not a paren or an unsigned
// integer becomes a symbol, and is left for the parser or evaluator to reject.
func Tokenize(program string) []Token {
	tokens := []Token{}
	for {
		token, rest := nextToken(program)
		if token == "" {
			return tokens
		}
		program = rest
		tokens = append(tokens, atom(token))
	}
}

func nextToken(program string) (string, string) {
	program = strings.TrimLeftFunc(program, unicode.IsSpace)
	if program == "" {
		return "", ""
	}
	if isParen(rune(program[0])) {
		return program[:1], program[1:]
	}
	end := strings.IndexFunc(program, func(r rune) bool {
		return unicode.IsSpace(r) || isParen(r)
	})
	if end < 0 {
		return program, ""
	}
	return program[:end], program[end:]
}

func isParen(r rune) bool {
	return r == '(' || r == ')'
}

func atom(token string) Token {
	switch token {
	case "(":
		return Token{Kind: LeftParen, Text: token}
	case ")":
		return Token{Kind: RightParen, Text: token}
	}
	// a single leading plus sign is allowed, "+7" reads as 7
	if n, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, 64); err == nil {
		return Token{Kind: NumberToken, Text: token, Value: n}
	}
	return Token{Kind: SymbolToken, Text: token}
}

// Parse builds the top-level roots of a program. Every token has to end up
// in exactly one root.
func Parse(tokens []Token) ([]Node, error) {
	return parser{maxDepth: DefaultMaxDepth}.parse(tokens)
}

type parser struct {
	// maxDepth bounds nesting of applications; <= 0 means unbounded
	maxDepth int
}

func (p parser) parse(tokens []Token) ([]Node, error) {
	roots := []Node{}
	n := 0
	for n < len(tokens) {
		consumed, root, err := p.parseExp(tokens[n:], 0)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
		n += consumed
	}
	if n != len(tokens) {
		return nil, fmt.Errorf("%w: did not parse all tokens", ErrParse)
	}
	return roots, nil
}

// parseExp reads one expression from the front of tokens and reports
// how many tokens it used.
func (p parser) parseExp(tokens []Token, depth int) (int, Node, error) {
	if len(tokens) == 0 {
		return 0, nil, fmt.Errorf("%w: no tokens", ErrParse)
	}
	switch t := tokens[0]; t.Kind {
	case NumberToken:
		return 1, Number(t.Value), nil
	case SymbolToken:
		return 1, Symbol(t.Text), nil
	case RightParen:
		return 0, nil, fmt.Errorf("%w: unexpected token %s", ErrParse, t)
	}

	if p.maxDepth > 0 && depth >= p.maxDepth {
		return 0, nil, fmt.Errorf("%w: applications nested deeper than %d", ErrDepth, p.maxDepth)
	}
	if len(tokens) < 3 {
		return 0, nil, fmt.Errorf("%w: too few tokens", ErrParse)
	}
	name := tokens[1]
	if name.Kind != SymbolToken {
		return 0, nil, fmt.Errorf("%w: unexpected token %s, expected function name", ErrParse, name)
	}
	app := &Application{Name: Symbol(name.Text)}
	i := 2
	for {
		if i >= len(tokens) {
			return 0, nil, fmt.Errorf("%w: unclosed application of %s", ErrParse, app.Name)
		}
		if tokens[i].Kind == RightParen {
			break
		}
		n, arg, err := p.parseExp(tokens[i:], depth+1)
		if err != nil {
			return 0, nil, err
		}
		app.Args = append(app.Args, arg)
		i += n
	}
	return i + 1, app, nil
}

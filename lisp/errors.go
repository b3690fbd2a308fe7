package lisp

import "errors"

// Every error returned by this package wraps exactly one of these,
// so callers can tell them apart with errors.Is.
var (
	ErrParse            = errors.New("parse error")
	ErrUnresolvedSymbol = errors.New("unresolved symbol")
	ErrMalformedDefine  = errors.New("malformed define")
	ErrUnknownFunction  = errors.New("unknown function")
	ErrArithmetic       = errors.New("arithmetic fault")
	ErrDepth            = errors.New("maximum depth exceeded")
)

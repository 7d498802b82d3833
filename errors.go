package propstxt

import "errors"

var (
	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates the input matched no derivation of the grammar.
	ErrParse = errors.New("parse error")

	// ErrShape indicates the AST parsed but a known key did not have the
	// shape the extractor requires (grammar/extractor drift, not bad input).
	ErrShape = errors.New("descriptor shape violation")
)

package propstxt

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF      tokenType = iota // End of input
	tokName                      // Bare word: key names, enum literals, GUIDs
	tokNumber                    // Numeric literal
	tokString                    // Double-quoted literal, quotes kept
	tokRef                       // Single-quoted literal, quotes kept
	tokLParen                    // Left parenthesis
	tokRParen                    // Right parenthesis
	tokLBrace                    // Left brace
	tokRBrace                    // Right brace
	tokLBracket                  // Left bracket
	tokRBracket                  // Right bracket
	tokEqual                     // Equal
	tokComma                     // Comma
	tokNewline                   // Line break, significant between definitions
)

// token represents a token in the descriptor text.
type token struct {
	Lit  string    // Literal value, quoted literals keep their quotes
	Type tokenType // Type of the token
	Off  int       // Byte offset of the first character
	End  int       // Byte offset just past the last character
	Line int       // Line number of the token
	Col  int       // Column number of the token
}

// lexer represents a lexer over descriptor text.
type lexer struct {
	src  string   // Full input text
	off  int      // Byte offset of the current character
	nxt  int      // Byte offset past the current character
	ch   rune     // Current character
	pos  position // Position of the current character
	eof  bool     // End of input
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// newLexer creates a new lexer over descriptor text.
func newLexer(src string) *lexer {
	l := &lexer{src: src, pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}

	return l
}

// next returns the next token from the input.
func (l *lexer) next() (token, error) {
	l.skipBlank()
	if l.eof {
		return token{Type: tokEOF, Off: l.off, End: l.off, Line: l.pos.line, Col: l.pos.col}, nil
	}

	start := l.off
	startLine, startCol := l.pos.line, l.pos.col

	tok := func(tt tokenType, lit string) token {
		return token{Type: tt, Lit: lit, Off: start, End: l.off, Line: startLine, Col: startCol}
	}

	// Tokenize the current character.
	switch l.ch {
	case '\n':
		l.read()
		return tok(tokNewline, "\n"), nil
	case '(':
		l.read()
		return tok(tokLParen, "("), nil
	case ')':
		l.read()
		return tok(tokRParen, ")"), nil
	case '{':
		l.read()
		return tok(tokLBrace, "{"), nil
	case '}':
		l.read()
		return tok(tokRBrace, "}"), nil
	case '[':
		l.read()
		return tok(tokLBracket, "["), nil
	case ']':
		l.read()
		return tok(tokRBracket, "]"), nil
	case '=':
		l.read()
		return tok(tokEqual, "="), nil
	case ',':
		l.read()
		return tok(tokComma, ","), nil
	case '"':
		lit, err := l.readQuoted('"')
		return tok(tokString, lit), err
	case '\'':
		lit, err := l.readQuoted('\'')
		return tok(tokRef, lit), err

	default:
		if isWordStart(l.ch) {
			// Dumps mix numbers, enum names, and hex GUIDs freely; read a
			// whole word first, then decide whether it is a number.
			lit := l.readWord()
			if isValidNumber(lit) {
				return tok(tokNumber, lit), nil
			}

			return tok(tokName, lit), nil
		}

		return token{}, l.errorf("unexpected character %q", l.ch)
	}
}

// read reads the next character from the input.
func (l *lexer) read() {
	if l.nxt >= len(l.src) {
		l.eof = true
		l.ch = 0
		l.off = len(l.src)
		return
	}

	ch, w := utf8.DecodeRuneInString(l.src[l.nxt:])
	l.off = l.nxt
	l.nxt += w

	if ch == '\n' {
		l.pos.line++
		l.pos.col = 0
	} else {
		l.pos.col++
	}

	l.ch = ch
}

// skipBlank skips horizontal whitespace; newlines are tokens and stay.
func (l *lexer) skipBlank() {
	for !l.eof && l.ch != '\n' && unicode.IsSpace(l.ch) {
		l.read()
	}
}

// readWord reads a bare word from the input.
func (l *lexer) readWord() string {
	start := l.off
	for !l.eof && isWordPart(l.ch) {
		l.read()
	}

	return l.src[start:l.off]
}

// readQuoted reads a quoted literal including both quote characters.
func (l *lexer) readQuoted(quote rune) (string, error) {
	start := l.off
	l.read() // consume opening quote
	for {
		if l.eof || l.ch == '\n' {
			return "", l.errorf("unterminated %q literal", quote)
		}

		if l.ch == quote {
			l.read()
			break
		}

		l.read()
	}

	return l.src[start:l.off], nil
}

// errorf formats a lexer error with the current position.
func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrLex, l.pos.line, l.pos.col, fmt.Sprintf(format, args...))
}

// isWordStart checks if a character can start a bare word.
func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '/' || r == '-' || r == '+' || r == '.'
}

// isWordPart checks if a character can continue a bare word.
func isWordPart(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}

	switch r {
	case '_', '.', '-', '+', ':', '/', '\\', '#', '$':
		return true
	}

	return false
}

// isValidNumber checks if a word is a numeric literal.
func isValidNumber(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '+' || r == '-' || r == 'e' || r == 'E' {
			continue
		}

		return false
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

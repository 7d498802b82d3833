package propstxt

import (
	"io"
	"os"
	"strconv"
)

// Parser parses .props.txt descriptor text into an AST. Construct it once
// with NewParser and share it freely: it holds only immutable grammar
// tables and is safe for concurrent use.
type Parser struct {
	g *grammar
}

// NewParser creates a parser with the descriptor grammar compiled.
func NewParser() *Parser {
	return &Parser{g: newGrammar()}
}

// Parse parses a descriptor from bytes.
func (p *Parser) Parse(data []byte) (*Root, error) {
	src := string(data)

	toks, eof, err := lexAll(src)
	if err != nil {
		return nil, err
	}

	c, err := recognize(p.g, toks, eof)
	if err != nil {
		return nil, err
	}

	d, err := c.build()
	if err != nil {
		return nil, err
	}

	conv := &converter{g: p.g, toks: toks, src: src}
	return conv.file(d), nil
}

// Decode parses a descriptor from a reader.
func (p *Parser) Decode(r io.Reader) (*Root, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return p.Parse(data)
}

// DecodeFile parses a descriptor from a file. The file is read whole and
// closed before parsing starts, on success and failure alike.
func (p *Parser) DecodeFile(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return p.Parse(data)
}

// Parse parses a descriptor from bytes with a fresh parser.
func Parse(data []byte) (*Root, error) {
	return NewParser().Parse(data)
}

// Decode parses a descriptor from a reader with a fresh parser.
func Decode(r io.Reader) (*Root, error) {
	return NewParser().Decode(r)
}

// DecodeFile parses a descriptor from a file with a fresh parser.
func DecodeFile(path string) (*Root, error) {
	return NewParser().DecodeFile(path)
}

// lexAll tokenizes the whole input up front; the recognizer needs random
// access to the token stream.
func lexAll(src string) ([]token, token, error) {
	l := newLexer(src)

	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, token{}, err
		}
		if tok.Type == tokEOF {
			return toks, tok, nil
		}

		toks = append(toks, tok)
	}
}

// converter turns the chosen derivation into the typed AST.
type converter struct {
	g    *grammar
	toks []token
	src  string
}

// tokPos returns the position of a token by index.
func (c *converter) tokPos(i int) Pos {
	return Pos{Line: c.toks[i].Line, Col: c.toks[i].Col}
}

func (c *converter) file(d *deriv) *Root {
	return &Root{Defs: c.body(d.kids[0].d)}
}

func (c *converter) body(d *deriv) []*Definition {
	if c.g.alt[d.prod] != 0 {
		return nil // separators only
	}

	return c.list(d.kids[1].d)
}

func (c *converter) list(d *deriv) []*Definition {
	defs := []*Definition{c.def(d.kids[0].d)}
	if c.g.alt[d.prod] == 0 {
		defs = append(defs, c.list(d.kids[2].d)...)
	}

	return defs
}

func (c *converter) def(d *deriv) *Definition {
	nameTok := c.toks[d.kids[0].tok]
	def := &Definition{Name: nameTok.Lit, Pos: c.tokPos(d.kids[0].tok)}

	tail := d.kids[len(d.kids)-1].d
	if c.g.alt[d.prod] == 0 {
		def.HasIndex = true
		def.Index = c.qual(d.kids[1].d)
	}

	def.Value = c.tail(tail)
	return def
}

func (c *converter) qual(d *deriv) int {
	lit := c.toks[d.kids[1].tok].Lit
	if i, err := strconv.Atoi(lit); err == nil {
		return i
	}

	f, _ := strconv.ParseFloat(lit, 64)
	return int(f)
}

func (c *converter) tail(d *deriv) Value {
	switch c.g.alt[d.prod] {
	case 0:
		return c.value(d.kids[0].d)
	case 1:
		return c.block(d.kids[1].d)
	default:
		return nil
	}
}

func (c *converter) value(d *deriv) Value {
	switch c.g.alt[d.prod] {
	case 0:
		return c.block(d.kids[0].d)
	case 1:
		return c.path(d.kids[0].d)
	default:
		return c.scalar(d.kids[0].d)
	}
}

func (c *converter) block(d *deriv) *Block {
	return &Block{Defs: c.body(d.kids[1].d), Pos: c.tokPos(d.kids[0].tok)}
}

func (c *converter) path(d *deriv) *PathValue {
	p := &PathValue{Pos: c.tokPos(d.kids[0].tok)}
	if c.g.alt[d.prod] == 0 {
		p.Class = c.toks[d.kids[0].tok].Lit
		p.Literal = c.toks[d.kids[1].tok].Lit
		return p
	}

	p.Literal = c.toks[d.kids[0].tok].Lit
	return p
}

func (c *converter) scalar(d *deriv) *Scalar {
	first, last := c.toks[d.from], c.toks[d.to-1]
	return &Scalar{Raw: c.src[first.Off:last.End], Pos: c.tokPos(d.from)}
}

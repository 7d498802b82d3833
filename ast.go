package propstxt

// Pos is a source position retained for diagnostics.
type Pos struct {
	Line int // Line number, 1-based
	Col  int // Column number, 1-based
}

// Root is the parsed descriptor: an ordered list of top-level definitions.
type Root struct {
	Defs []*Definition // Top-level definitions in file order
}

// Definition represents a Name[Index]? = value binding.
type Definition struct {
	Name     string // Key name as written
	Value    Value  // Bound value, nil when the definition carries none
	Index    int    // Array index when HasIndex is set
	HasIndex bool   // Whether an [Index] qualifier was present
	Pos      Pos    // Position of the key name
}

// Value is a parsed definition value.
type Value interface {
	value()
}

// Block is a structured block: an ordered list of nested definitions.
type Block struct {
	Defs []*Definition // Nested definitions in source order
	Pos  Pos           // Position of the opening delimiter
}

// value implements the Value interface.
func (*Block) value() {}

// PathValue is a quoted object reference such as Texture2D'/Game/T.T'
// or "/Game/T.T". Literal keeps its surrounding quote characters.
type PathValue struct {
	Class   string // Leading object class name, empty for bare quoted paths
	Literal string // Quoted literal including both quote characters
	Pos     Pos    // Position of the first token
}

// value implements the Value interface.
func (*PathValue) value() {}

// Scalar is a free-form literal: everything between '=' and the end of the
// definition, kept as the raw source span.
type Scalar struct {
	Raw string // Raw source text of the span, untrimmed
	Pos Pos    // Position of the first token
}

// value implements the Value interface.
func (*Scalar) value() {}

// Find returns the first nested definition with the given name, nil if absent.
func (b *Block) Find(name string) *Definition {
	for _, d := range b.Defs {
		if d.Name == name {
			return d
		}
	}

	return nil
}

// Find returns the first top-level definition with the given name, nil if absent.
func (r *Root) Find(name string) *Definition {
	for _, d := range r.Defs {
		if d.Name == name {
			return d
		}
	}

	return nil
}

// StripQuotes removes exactly one leading and one trailing character from a
// quoted literal. The format guarantees symmetric quotes; no unescaping is
// performed.
func StripQuotes(raw string) string {
	if len(raw) < 2 {
		return raw
	}

	return raw[1 : len(raw)-1]
}

// Path returns the path literal with quotes stripped.
func (p *PathValue) Path() string {
	return StripQuotes(p.Literal)
}

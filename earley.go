package propstxt

import "fmt"

// earleyItem is a dotted production with its origin set.
type earleyItem struct {
	prod int // Production index
	dot  int // Position of the dot in the rhs
	orig int // Index of the set the item started in
}

// stateSet is one Earley set with O(1) duplicate detection.
type stateSet struct {
	items []earleyItem
	seen  map[earleyItem]struct{}
}

// add appends an item unless already present.
func (s *stateSet) add(it earleyItem) {
	if s.seen == nil {
		s.seen = make(map[earleyItem]struct{})
	}
	if _, ok := s.seen[it]; ok {
		return
	}

	s.seen[it] = struct{}{}
	s.items = append(s.items, it)
}

// compKey addresses recognized nonterminal spans by start position.
type compKey struct {
	nt    nonterm
	start int
}

// chart is the result of recognition: token stream plus recognized spans.
type chart struct {
	g    *grammar
	toks []token
	comp map[compKey][]int // Recognized end positions, ascending
}

// recognize runs the Earley recognizer over the token stream.
// Nullable completions use the Aycock-Horspool predictor advance, so sets
// never need re-scanning after an empty-span completion.
func recognize(g *grammar, toks []token, eof token) (*chart, error) {
	nTok := len(toks)
	sets := make([]stateSet, nTok+1)
	c := &chart{g: g, toks: toks, comp: make(map[compKey][]int)}

	for _, pi := range g.byLHS[ntFile] {
		sets[0].add(earleyItem{prod: pi, dot: 0, orig: 0})
	}

	for j := 0; j <= nTok; j++ {
		set := &sets[j]
		if len(set.items) == 0 {
			return nil, parseErrAt(g, toks, j)
		}

		// Closure: predict and complete until fixpoint. Items are appended
		// at the tail, index iteration reaches them all.
		for k := 0; k < len(set.items); k++ {
			it := set.items[k]
			rhs := g.prods[it.prod].rhs

			if it.dot == len(rhs) {
				// Complete.
				lhs := g.prods[it.prod].lhs
				c.record(lhs, it.orig, j)
				for _, wait := range sets[it.orig].items {
					wrhs := g.prods[wait.prod].rhs
					if wait.dot < len(wrhs) && !wrhs[wait.dot].term && wrhs[wait.dot].nt == lhs {
						set.add(earleyItem{prod: wait.prod, dot: wait.dot + 1, orig: wait.orig})
					}
				}
				continue
			}

			sym := rhs[it.dot]
			if sym.term {
				continue
			}

			// Predict.
			for _, pi := range g.byLHS[sym.nt] {
				set.add(earleyItem{prod: pi, dot: 0, orig: j})
			}
			if g.nullable[sym.nt] {
				set.add(earleyItem{prod: it.prod, dot: it.dot + 1, orig: it.orig})
			}
		}

		// Scan.
		if j < nTok {
			for _, it := range set.items {
				rhs := g.prods[it.prod].rhs
				if it.dot < len(rhs) && rhs[it.dot].term && rhs[it.dot].tok == toks[j].Type {
					sets[j+1].add(earleyItem{prod: it.prod, dot: it.dot + 1, orig: it.orig})
				}
			}
		}
	}

	for _, it := range sets[nTok].items {
		if g.prods[it.prod].lhs == ntFile && it.orig == 0 && it.dot == len(g.prods[it.prod].rhs) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w at %d:%d: unexpected end of input", ErrParse, eof.Line, eof.Col)
}

// record notes that nt spans [start, end).
func (c *chart) record(nt nonterm, start, end int) {
	key := compKey{nt: nt, start: start}
	ends := c.comp[key]
	if len(ends) > 0 && ends[len(ends)-1] == end {
		return
	}

	c.comp[key] = append(ends, end)
}

// parseErrAt reports the token that no item could scan past.
func parseErrAt(g *grammar, toks []token, j int) error {
	if j == 0 || j > len(toks) {
		return fmt.Errorf("%w at 1:1: empty or unreadable input", ErrParse)
	}

	bad := toks[j-1]
	return fmt.Errorf("%w at %d:%d: unexpected %s", ErrParse, bad.Line, bad.Col, tokenName(bad.Type))
}

// derivChild is one matched rhs symbol: a token index or a sub-derivation.
type derivChild struct {
	d   *deriv // Sub-derivation for nonterminal symbols
	tok int    // Token index for terminal symbols
}

// deriv is one node of the chosen derivation.
type deriv struct {
	prod     int          // Production index in the grammar
	from, to int          // Token span [from, to)
	kids     []derivChild // One entry per rhs symbol
}

// derivKey memoizes derivation attempts per nonterminal span.
type derivKey struct {
	nt       nonterm
	from, to int
}

// builder turns a recognized chart into a single derivation.
//
// Disambiguation is deterministic: productions are tried in declaration
// order, and nonterminal spans longest-first. The first derivation that
// survives wins, mirroring the greedy resolve policy of the original
// descriptor grammar.
type builder struct {
	c       *chart
	memo    map[derivKey]*deriv
	pending map[derivKey]bool
}

// build derives the whole token stream from the start symbol.
func (c *chart) build() (*deriv, error) {
	b := &builder{c: c, memo: make(map[derivKey]*deriv), pending: make(map[derivKey]bool)}
	d := b.derive(ntFile, 0, len(c.toks))
	if d == nil {
		// Recognition succeeded, so this is unreachable unless the grammar
		// tables and the builder disagree.
		return nil, fmt.Errorf("%w: no derivation for recognized input", ErrShape)
	}

	return d, nil
}

// derive finds the highest-priority derivation of nt over [from, to).
func (b *builder) derive(nt nonterm, from, to int) *deriv {
	key := derivKey{nt: nt, from: from, to: to}
	if d, ok := b.memo[key]; ok {
		return d
	}
	if b.pending[key] {
		return nil
	}

	b.pending[key] = true
	defer delete(b.pending, key)

	for _, pi := range b.c.g.byLHS[nt] {
		kids, ok := b.match(b.c.g.prods[pi].rhs, from, to)
		if ok {
			d := &deriv{prod: pi, from: from, to: to, kids: kids}
			b.memo[key] = d
			return d
		}
	}

	b.memo[key] = nil
	return nil
}

// match partitions [from, to) over the rhs symbols, greedily.
func (b *builder) match(rhs []symbol, from, to int) ([]derivChild, bool) {
	if len(rhs) == 0 {
		return nil, from == to
	}

	sym := rhs[0]
	if sym.term {
		if from >= to || b.c.toks[from].Type != sym.tok {
			return nil, false
		}

		rest, ok := b.match(rhs[1:], from+1, to)
		if !ok {
			return nil, false
		}

		return append([]derivChild{{tok: from}}, rest...), true
	}

	ends := b.c.comp[compKey{nt: sym.nt, start: from}]
	for i := len(ends) - 1; i >= 0; i-- {
		end := ends[i]
		if end > to {
			continue
		}

		d := b.derive(sym.nt, from, end)
		if d == nil {
			continue
		}

		rest, ok := b.match(rhs[1:], end, to)
		if !ok {
			continue
		}

		return append([]derivChild{{d: d}}, rest...), true
	}

	return nil, false
}

// tokenName returns a human-readable name of a token type.
func tokenName(tt tokenType) string {
	switch tt {
	case tokEOF:
		return "end of input"
	case tokName:
		return "name"
	case tokNumber:
		return "number"
	case tokString:
		return "quoted string"
	case tokRef:
		return "object reference"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokEqual:
		return "'='"
	case tokComma:
		return "','"
	case tokNewline:
		return "line break"
	default:
		return "token"
	}
}

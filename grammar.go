package propstxt

// nonterm identifies a nonterminal of the descriptor grammar.
type nonterm int

// nonterminals.
const (
	ntFile   nonterm = iota // Whole input
	ntBody                  // Definition list with surrounding separators
	ntList                  // One or more definitions
	ntSeps                  // Zero or more separators
	ntSeps1                 // One or more separators
	ntSep                   // Single separator
	ntDef                   // Name[Index]? = value
	ntQual                  // [Index] qualifier
	ntTail                  // Right-hand side of '='
	ntNLs                   // One or more newlines
	ntValue                 // Block, path, or scalar
	ntBlock                 // Structured block
	ntPath                  // Quoted object reference
	ntScalar                // Free-form token run
	ntAtom                  // Single scalar element
	ntGroup                 // Balanced bracket group inside a scalar
	ntItems                 // Zero or more group items
	ntItem                  // Single group item
	numNonterms
)

// symbol is one grammar symbol: a terminal token type or a nonterminal.
type symbol struct {
	tok  tokenType // Terminal token type when term is set
	nt   nonterm   // Nonterminal otherwise
	term bool      // Whether the symbol is a terminal
}

// t makes a terminal symbol.
func t(tt tokenType) symbol { return symbol{term: true, tok: tt} }

// n makes a nonterminal symbol.
func n(nt nonterm) symbol { return symbol{nt: nt} }

// production is a single grammar rule. Declaration order within one
// nonterminal is the disambiguation priority: the derivation builder takes
// the first production that derives a span.
type production struct {
	lhs nonterm
	rhs []symbol
}

// grammar is the declarative descriptor grammar plus derived tables.
type grammar struct {
	prods    []production       // All productions in declaration order
	byLHS    [numNonterms][]int // Production indices per nonterminal
	alt      []int              // Alternative index of each production within its nonterminal
	nullable [numNonterms]bool  // Whether a nonterminal derives the empty string
}

// Local ambiguity lives in ntValue: a parenthesized group after '=' derives
// both a block and a scalar atom, and a quoted literal derives both a path
// and a scalar. Production order (block, path, scalar) decides.
func newGrammar() *grammar {
	g := &grammar{prods: []production{
		{ntFile, []symbol{n(ntBody)}},

		{ntBody, []symbol{n(ntSeps), n(ntList), n(ntSeps)}},
		{ntBody, []symbol{n(ntSeps)}},

		{ntList, []symbol{n(ntDef), n(ntSeps1), n(ntList)}},
		{ntList, []symbol{n(ntDef)}},

		{ntSeps, []symbol{n(ntSep), n(ntSeps)}},
		{ntSeps, nil},

		{ntSeps1, []symbol{n(ntSep), n(ntSeps)}},

		{ntSep, []symbol{t(tokNewline)}},
		{ntSep, []symbol{t(tokComma)}},

		{ntDef, []symbol{t(tokName), n(ntQual), t(tokEqual), n(ntTail)}},
		{ntDef, []symbol{t(tokName), t(tokEqual), n(ntTail)}},

		{ntQual, []symbol{t(tokLBracket), t(tokNumber), t(tokRBracket)}},

		// UModel puts the opening brace of a block on its own line, so the
		// tail may absorb newlines, but only in front of a block.
		{ntTail, []symbol{n(ntValue)}},
		{ntTail, []symbol{n(ntNLs), n(ntBlock)}},
		{ntTail, nil},

		{ntNLs, []symbol{t(tokNewline), n(ntNLs)}},
		{ntNLs, []symbol{t(tokNewline)}},

		{ntValue, []symbol{n(ntBlock)}},
		{ntValue, []symbol{n(ntPath)}},
		{ntValue, []symbol{n(ntScalar)}},

		{ntBlock, []symbol{t(tokLParen), n(ntBody), t(tokRParen)}},
		{ntBlock, []symbol{t(tokLBrace), n(ntBody), t(tokRBrace)}},

		{ntPath, []symbol{t(tokName), t(tokRef)}},
		{ntPath, []symbol{t(tokRef)}},
		{ntPath, []symbol{t(tokString)}},

		{ntScalar, []symbol{n(ntAtom), n(ntScalar)}},
		{ntScalar, []symbol{n(ntAtom)}},

		{ntAtom, []symbol{t(tokName)}},
		{ntAtom, []symbol{t(tokNumber)}},
		{ntAtom, []symbol{t(tokString)}},
		{ntAtom, []symbol{t(tokRef)}},
		{ntAtom, []symbol{n(ntGroup)}},

		{ntGroup, []symbol{t(tokLParen), n(ntItems), t(tokRParen)}},
		{ntGroup, []symbol{t(tokLBrace), n(ntItems), t(tokRBrace)}},

		{ntItems, []symbol{n(ntItem), n(ntItems)}},
		{ntItems, nil},

		{ntItem, []symbol{n(ntAtom)}},
		{ntItem, []symbol{t(tokComma)}},
		{ntItem, []symbol{t(tokNewline)}},
		{ntItem, []symbol{t(tokEqual)}},
		{ntItem, []symbol{t(tokLBracket)}},
		{ntItem, []symbol{t(tokRBracket)}},
	}}

	g.alt = make([]int, len(g.prods))
	for i, p := range g.prods {
		g.alt[i] = len(g.byLHS[p.lhs])
		g.byLHS[p.lhs] = append(g.byLHS[p.lhs], i)
	}

	g.computeNullable()

	return g
}

// computeNullable finds nonterminals that derive the empty string.
func (g *grammar) computeNullable() {
	for changed := true; changed; {
		changed = false
		for _, p := range g.prods {
			if g.nullable[p.lhs] {
				continue
			}

			null := true
			for _, s := range p.rhs {
				if s.term || !g.nullable[s.nt] {
					null = false
					break
				}
			}

			if null {
				g.nullable[p.lhs] = true
				changed = true
			}
		}
	}
}

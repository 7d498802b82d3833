package profile

import "strings"

// suffixMap guesses a texture's purpose from the suffix after the last
// underscore of its short name, lowercased. This covers the common UE
// naming convention (T_Chair_D, T_Chair_N, T_Chair_MRO).
var suffixMap = map[string]MapType{
	"d":    Diffuse,
	"n":    Normal,
	"mro":  MRO,
	"sro":  SRO,
	"mroh": MROH,
	"mroa": MRO,
	"sroh": MROH,
}

// generic supports any UE game by texture name convention alone. It ignores
// the slot name, which master materials name inconsistently across games.
type generic struct{}

func (generic) Name() string        { return "generic" }
func (generic) Description() string { return "Basic support for any Unreal Engine game" }

func (generic) Classify(_, shortName string) (MapType, bool) {
	name := strings.ToLower(shortName)
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		name = name[i+1:]
	}

	t, ok := suffixMap[name]
	return t, ok
}

func init() { Register(generic{}) }

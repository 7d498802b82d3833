package profile

// slotNameTypes translates texture parameter names from Hogwarts Legacy
// descriptors into texture map types. The game's master materials name the
// same slot many ways across material families.
var slotNameTypes = map[string]MapType{
	"Diffuse":   Diffuse,
	"Normal":    Normal,
	"SRO":       SRO,
	"MRO":       MRO,
	"MROH":      MROH,
	"MROH/SROH": MROH,
	"MRO/SRO":   MRO,

	"Diffuse Map":   Diffuse,
	"Normal Map":    Normal,
	"MRO/SRO Map":   SRO,
	"SRO Map":       SRO,
	"MROH Map":      MROH,
	"MROH/SROH Map": MROH,
	"MRO Map":       MRO,

	"Diffuse A":   Diffuse,
	"Normal A":    Normal,
	"SRO A":       SRO,
	"MROH A":      MROH,
	"MROH/SROH A": MROH,
	"MRO/SRO A":   MRO,
	"MRO A":       MROH,

	"Diffuse Map A":   Diffuse,
	"Normal Map A":    Normal,
	"SRO Map A":       SRO,
	"MROH Map A":      MROH,
	"MROH/SROH Map A": MROH,
	"MRO/SRO Map A":   MRO,
	"MRO Map A":       MROH,

	"Diffuse A Map":   Diffuse,
	"Normal A Map":    Normal,
	"SRO A Map":       SRO,
	"MRO/SRO A Map":   SRO,
	"MROH A Map":      MROH,
	"MROH/SROH A Map": MROH,
	"MRO A Map":       MROH,

	// Family-specific outliers observed in dumps.
	"Color Glass": Diffuse,
	"Base color":  Diffuse,
	"Base Color":  Diffuse,
	"MROA":        MRO,
	"Color Mask":  Diffuse,

	"Worn Diffuse":   Diffuse,
	"Worn Normal":    Normal,
	"Worn SRO":       SRO,
	"Worn MRO":       MRO,
	"Worn MROH":      MROH,
	"Worn MROH/SROH": MROH,
	"Worn MRO/SRO":   MRO,
}

// hogwartsLegacy supports Hogwarts Legacy (2023) by slot name. Blended
// materials are only partially covered: the first texture of a blend wins.
type hogwartsLegacy struct{}

func (hogwartsLegacy) Name() string        { return "hogwarts-legacy" }
func (hogwartsLegacy) Description() string { return "Hogwarts Legacy (2023) by Portkey Games" }

func (hogwartsLegacy) Classify(slot, _ string) (MapType, bool) {
	t, ok := slotNameTypes[slot]
	return t, ok
}

func init() { Register(hogwartsLegacy{}) }

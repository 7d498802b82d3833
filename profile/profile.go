// Package profile classifies texture slot bindings per game.
package profile

import (
	"sort"
	"strings"
)

// MapType is the purpose of a texture map inside a material.
type MapType int

// Texture map types the material generator understands.
const (
	Unknown MapType = iota
	Diffuse
	Normal
	SRO  // Specular, roughness, ambient occlusion
	MRO  // Metallic, roughness, ambient occlusion
	MROH // MRO with height in the alpha channel
)

// String returns the map type name.
func (t MapType) String() string {
	switch t {
	case Diffuse:
		return "diffuse"
	case Normal:
		return "normal"
	case SRO:
		return "sro"
	case MRO:
		return "mro"
	case MROH:
		return "mroh"
	default:
		return "unknown"
	}
}

// Profile classifies texture bindings for one game. Slot is the parameter
// name from the descriptor ("Diffuse Map"); shortName is the object name of
// the texture game path ("T_Chair_D").
type Profile interface {
	// Name returns the profile name used for lookup.
	Name() string
	// Description returns a human-readable game description.
	Description() string
	// Classify maps a texture binding onto a map type. The second return is
	// false for textures the profile does not recognize.
	Classify(slot, shortName string) (MapType, bool)
}

// IsDiffuse reports whether a binding classifies as a diffuse map.
func IsDiffuse(p Profile, slot, shortName string) bool {
	t, ok := p.Classify(slot, shortName)
	return ok && t == Diffuse
}

var registry = map[string]Profile{}

// Register adds a profile to the registry. It panics on a duplicate name,
// which would silently shadow another game.
func Register(p Profile) {
	key := strings.ToLower(p.Name())
	if _, dup := registry[key]; dup {
		panic("profile: duplicate profile " + p.Name())
	}

	registry[key] = p
}

// Lookup finds a registered profile by name, case-insensitively.
func Lookup(name string) (Profile, bool) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names returns registered profile names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, p := range registry {
		out = append(out, p.Name())
	}
	sort.Strings(out)

	return out
}

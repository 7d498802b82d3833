package propstxt

import (
	"fmt"
	"strconv"
	"strings"
)

// Wire-format keys emitted by UModel. Matched verbatim, never localized.
const (
	keyMaterials     = "Materials"
	keyTextureParams = "TextureParameterValues"
	keyVectorParams  = "VectorParameterValues"
	keyScalarParams  = "ScalarParameterValues"
	keyBaseOverrides = "BasePropertyOverrides"
	keyParamInfo     = "ParameterInfo"
	keyParamValue    = "ParameterValue"
	keyParamName     = "Name"
)

// Override keys recognized inside BasePropertyOverrides.
const (
	keyBlendMode     = "BlendMode"
	keyTwoSided      = "TwoSided"
	keyOpacityClip   = "OpacityMaskClipValue"
	twoSidedTrueWord = "true"
)

// MeshProps is the result of extracting a mesh descriptor.
type MeshProps struct {
	Root      *Root    // Parsed AST, kept for secondary walks
	Materials []string // Material game paths in file order
}

// MaterialProps is the result of extracting a material descriptor.
type MaterialProps struct {
	Root      *Root          // Parsed AST, kept for secondary walks
	Textures  *TextureSet    // Texture slot name to game path
	Overrides *BaseOverrides // nil when the BasePropertyOverrides block is absent
}

// BaseOverrides holds the recognized base property overrides. A nil field
// means the key was absent; an all-nil value still means the block itself
// was present.
type BaseOverrides struct {
	BlendMode            *string  // Trimmed blend mode literal, e.g. "BLEND_Masked (1)"
	TwoSided             *bool    // True only for the exact literal "true"
	OpacityMaskClipValue *float64 // Alpha clip threshold
}

// TextureBinding is one texture slot binding.
type TextureBinding struct {
	Name string // Slot name as written in the descriptor, trimmed
	Path string // Texture game path with quotes stripped
}

// TextureSet is a name-to-path mapping that keeps file order. A duplicate
// slot name overwrites the value but keeps the first position.
type TextureSet struct {
	order  []string
	byName map[string]string
}

// Set binds a slot name to a path, overwriting any earlier binding.
func (s *TextureSet) Set(name, path string) {
	if s.byName == nil {
		s.byName = make(map[string]string)
	}
	if _, ok := s.byName[name]; !ok {
		s.order = append(s.order, name)
	}

	s.byName[name] = path
}

// Get returns the path bound to a slot name.
func (s *TextureSet) Get(name string) (string, bool) {
	path, ok := s.byName[name]
	return path, ok
}

// Len returns the number of bound slots.
func (s *TextureSet) Len() int { return len(s.order) }

// Bindings returns all bindings in file order.
func (s *TextureSet) Bindings() []TextureBinding {
	out := make([]TextureBinding, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, TextureBinding{Name: name, Path: s.byName[name]})
	}

	return out
}

// Map returns a plain map copy of the bindings.
func (s *TextureSet) Map() map[string]string {
	out := make(map[string]string, len(s.byName))
	for k, v := range s.byName {
		out[k] = v
	}

	return out
}

// ExtractMeshProps walks a parsed mesh descriptor and collects the material
// game paths bound under Materials. An absent Materials definition yields an
// empty list; a Materials definition of the wrong shape is ErrShape.
// Inline dumps emit one top-level Materials[i] definition per entry, so all
// top-level Materials definitions contribute, in file order.
func ExtractMeshProps(root *Root) (*MeshProps, error) {
	out := &MeshProps{Root: root, Materials: []string{}}

	for _, def := range root.Defs {
		if def.Name != keyMaterials {
			continue
		}

		if !def.HasIndex {
			return nil, shapeErr(def.Pos, "%s is not an array", keyMaterials)
		}

		block, ok := def.Value.(*Block)
		if !ok {
			return nil, shapeErr(def.Pos, "%s is not a structured block", keyMaterials)
		}

		for _, entry := range block.Defs {
			path, ok := entry.Value.(*PathValue)
			if !ok {
				return nil, shapeErr(entry.Pos, "%s entry %q does not hold a path", keyMaterials, entry.Name)
			}

			out.Materials = append(out.Materials, path.Path())
		}
	}

	return out, nil
}

// ExtractMaterialProps walks a parsed material descriptor and collects the
// texture slot bindings and the optional base property overrides. Unknown
// top-level keys are ignored.
func ExtractMaterialProps(root *Root) (*MaterialProps, error) {
	out := &MaterialProps{Root: root, Textures: &TextureSet{}}

	for _, def := range root.Defs {
		switch def.Name {
		case keyTextureParams:
			if err := extractTextures(def, out.Textures); err != nil {
				return nil, err
			}

		case keyBaseOverrides:
			ov, err := extractOverrides(def)
			if err != nil {
				return nil, err
			}

			out.Overrides = ov
		}
	}

	return out, nil
}

// arrayEntries returns the parameter blocks of an array definition. UModel
// emits two layouts: one outer block whose children are the indexed entries,
// and (in inline dumps) one top-level definition per entry, where the block
// itself is the parameter set. Both collapse to a list of entry blocks.
func arrayEntries(def *Definition, key string) ([]*Block, error) {
	if !def.HasIndex {
		return nil, shapeErr(def.Pos, "%s is not an array", key)
	}

	block, ok := def.Value.(*Block)
	if !ok {
		return nil, shapeErr(def.Pos, "%s is not a structured block", key)
	}

	if block.Find(keyParamInfo) != nil {
		return []*Block{block}, nil
	}

	entries := make([]*Block, 0, len(block.Defs))
	for _, entry := range block.Defs {
		params, ok := entry.Value.(*Block)
		if !ok {
			return nil, shapeErr(entry.Pos, "%s entry is not a structured block", key)
		}

		entries = append(entries, params)
	}

	return entries, nil
}

// extractTextures walks one TextureParameterValues array definition.
func extractTextures(def *Definition, set *TextureSet) error {
	entries, err := arrayEntries(def, keyTextureParams)
	if err != nil {
		return err
	}

	for _, params := range entries {
		value := params.Find(keyParamValue)
		if value == nil {
			return shapeErr(params.Pos, "%s entry has no %s", keyTextureParams, keyParamValue)
		}

		// Unset texture slots carry a bare None here; they are not errors.
		path, ok := value.Value.(*PathValue)
		if !ok {
			continue
		}

		name, err := paramName(params, params.Pos)
		if err != nil {
			return err
		}

		set.Set(name, path.Path())
	}

	return nil
}

// paramName digs the human-readable slot name out of ParameterInfo.
func paramName(params *Block, at Pos) (string, error) {
	info := params.Find(keyParamInfo)
	if info == nil {
		return "", shapeErr(at, "parameter entry has no %s", keyParamInfo)
	}

	infoBlock, ok := info.Value.(*Block)
	if !ok {
		return "", shapeErr(info.Pos, "%s is not a structured block", keyParamInfo)
	}

	nameDef := infoBlock.Find(keyParamName)
	if nameDef == nil {
		return "", shapeErr(info.Pos, "%s has no %s", keyParamInfo, keyParamName)
	}

	return defText(nameDef)
}

// extractOverrides walks the BasePropertyOverrides block. Presence of the
// block, not its contents, decides nil-ness of the result.
func extractOverrides(def *Definition) (*BaseOverrides, error) {
	if def.HasIndex {
		return nil, shapeErr(def.Pos, "%s must not be an array", keyBaseOverrides)
	}

	block, ok := def.Value.(*Block)
	if !ok {
		return nil, shapeErr(def.Pos, "%s is not a structured block", keyBaseOverrides)
	}

	ov := &BaseOverrides{}
	for _, prop := range block.Defs {
		switch prop.Name {
		case keyBlendMode:
			text, err := defText(prop)
			if err != nil {
				return nil, err
			}

			ov.BlendMode = &text

		case keyTwoSided:
			sc, ok := prop.Value.(*Scalar)
			if !ok {
				return nil, shapeErr(prop.Pos, "%s does not hold a literal", keyTwoSided)
			}

			// Strict by wire contract: "True" and "1" are false.
			two := sc.Raw == twoSidedTrueWord
			ov.TwoSided = &two

		case keyOpacityClip:
			text, err := defText(prop)
			if err != nil {
				return nil, err
			}

			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, shapeErr(prop.Pos, "%s is not a number: %q", keyOpacityClip, text)
			}

			ov.OpacityMaskClipValue = &f
		}
	}

	return ov, nil
}

// defText returns the textual payload of a definition: a trimmed scalar or
// a quote-stripped path literal.
func defText(def *Definition) (string, error) {
	switch v := def.Value.(type) {
	case *Scalar:
		return strings.TrimSpace(v.Raw), nil
	case *PathValue:
		return strings.TrimSpace(v.Path()), nil
	default:
		return "", shapeErr(def.Pos, "%q does not hold a literal", def.Name)
	}
}

// shapeErr builds an ErrShape-wrapped error with a position.
func shapeErr(at Pos, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrShape, at.Line, at.Col, fmt.Sprintf(format, args...))
}

// Kind classifies a parsed descriptor.
type Kind int

// descriptor kinds.
const (
	KindUnknown  Kind = iota // No recognized top-level keys
	KindMesh                 // Carries a Materials list
	KindMaterial             // Carries material parameter blocks
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindMaterial:
		return "material"
	default:
		return "unknown"
	}
}

// DetectKind classifies a descriptor by its top-level keys. UModel never
// mixes mesh and material dumps in one file.
func DetectKind(root *Root) Kind {
	for _, def := range root.Defs {
		switch def.Name {
		case keyMaterials:
			return KindMesh
		case keyTextureParams, keyVectorParams, keyScalarParams, keyBaseOverrides:
			return KindMaterial
		}
	}

	return KindUnknown
}

// DecodeMeshFile parses a mesh descriptor file and extracts its materials.
func (p *Parser) DecodeMeshFile(path string) (*MeshProps, error) {
	root, err := p.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	return ExtractMeshProps(root)
}

// DecodeMaterialFile parses a material descriptor file and extracts its
// texture bindings and overrides.
func (p *Parser) DecodeMaterialFile(path string) (*MaterialProps, error) {
	root, err := p.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	return ExtractMaterialProps(root)
}

// DecodeMeshFile parses a mesh descriptor file with a fresh parser.
func DecodeMeshFile(path string) (*MeshProps, error) {
	return NewParser().DecodeMeshFile(path)
}

// DecodeMaterialFile parses a material descriptor file with a fresh parser.
func DecodeMaterialFile(path string) (*MaterialProps, error) {
	return NewParser().DecodeMaterialFile(path)
}

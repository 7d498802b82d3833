package propstxt

import (
	"strconv"
	"strings"
)

// Color represents an RGBA color from a vector parameter.
type Color struct {
	R float64 // Red channel component
	G float64 // Green channel component
	B float64 // Blue channel component
	A float64 // Alpha channel component
}

// ToArray converts the color to a float array.
func (c Color) ToArray() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ExtractMaskColors walks VectorParameterValues and collects named RGBA
// colors, keyed by the lowercased parameter name. Color-mask materials
// reference these by name ("color 1", "color 2", ...).
//
// Missing channels default to r=0, g=0, b=0, a=1. Engines also dump
// non-color vectors (tiling, offsets) through the same parameter array; an
// entry with any channel outside r/g/b/a is not a color and is dropped
// whole, never partially kept.
func ExtractMaskColors(root *Root) (map[string]Color, error) {
	out := make(map[string]Color)

	for _, def := range root.Defs {
		if def.Name != keyVectorParams {
			continue
		}

		entries, err := arrayEntries(def, keyVectorParams)
		if err != nil {
			return nil, err
		}

		for _, params := range entries {
			value := params.Find(keyParamValue)
			if value == nil {
				return nil, shapeErr(params.Pos, "%s entry has no %s", keyVectorParams, keyParamValue)
			}

			// Unused placeholder entries hold a bare scalar here.
			channels, ok := value.Value.(*Block)
			if !ok {
				continue
			}

			name, err := paramName(params, params.Pos)
			if err != nil {
				return nil, err
			}

			color, ok, err := readColor(channels)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			out[strings.ToLower(name)] = color
		}
	}

	return out, nil
}

// readColor reads r/g/b/a channel definitions from a vector value block.
// The second return is false when the block is contaminated by a non-color
// channel.
func readColor(channels *Block) (Color, bool, error) {
	color := Color{A: 1}

	for _, ch := range channels.Defs {
		name := strings.ToLower(ch.Name)
		switch name {
		case "r", "g", "b", "a":
		default:
			// Contaminated: this vector is not a color.
			return Color{}, false, nil
		}

		text, err := defText(ch)
		if err != nil {
			return Color{}, false, err
		}

		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Color{}, false, shapeErr(ch.Pos, "channel %q is not a number: %q", ch.Name, text)
		}

		switch name {
		case "r":
			color.R = f
		case "g":
			color.G = f
		case "b":
			color.B = f
		case "a":
			color.A = f
		}
	}

	return color, true, nil
}

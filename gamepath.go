package propstxt

import (
	"path/filepath"
	"strings"
)

// DescriptorSuffix is the double extension UModel appends to property dumps.
const DescriptorSuffix = ".props.txt"

// Texture formats UModel is configured to export.
var textureExts = []string{".png", ".dds", ".tga"}

// GamePath is a parsed engine asset reference, e.g. "/Game/Props/SM_Chair.SM_Chair".
// It addresses an object inside a package and is not a filesystem path.
type GamePath struct {
	Raw     string // Reference as written, quotes already stripped
	Package string // Package part, "/Game/Props/SM_Chair"
	Object  string // Object name after the dot, "SM_Chair"
}

// ParseGamePath splits an engine reference into package and object parts.
// The second return is false for references that do not look like game paths.
func ParseGamePath(raw string) (GamePath, bool) {
	gp := GamePath{Raw: raw}
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.Contains(raw, "..") {
		return gp, false
	}

	dot := strings.LastIndexByte(raw, '.')
	if dot <= 0 || dot == len(raw)-1 {
		return gp, false
	}

	gp.Package = raw[:dot]
	gp.Object = raw[dot+1:]

	if strings.ContainsAny(gp.Object, "/\\") {
		return gp, false
	}

	return gp, true
}

// ShortName returns the object name of a game path, or the raw string when
// it does not parse.
func ShortName(raw string) string {
	if gp, ok := ParseGamePath(raw); ok {
		return gp.Object
	}

	return raw
}

// Resolver maps game paths onto an UModel export directory. UModel mirrors
// the package tree under the export root, minus the leading slash.
type Resolver struct {
	// ExportRoot is the UModel output directory.
	ExportRoot string
	// TextureExt overrides the texture format to look for (default ".png").
	TextureExt string
}

// ResolveTexture returns the expected texture file location for a game path,
// or "" when the path does not parse.
func (r Resolver) ResolveTexture(raw string) string {
	gp, ok := ParseGamePath(raw)
	if !ok {
		return ""
	}

	ext := r.TextureExt
	if ext == "" {
		ext = textureExts[0]
	}

	return filepath.Join(r.ExportRoot, filepath.FromSlash(strings.TrimPrefix(gp.Package, "/"))) + ext
}

// ResolveDescriptor returns the expected .props.txt location for a game
// path, or "" when the path does not parse.
func (r Resolver) ResolveDescriptor(raw string) string {
	gp, ok := ParseGamePath(raw)
	if !ok {
		return ""
	}

	return filepath.Join(r.ExportRoot, filepath.FromSlash(strings.TrimPrefix(gp.Package, "/"))) + DescriptorSuffix
}

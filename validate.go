package propstxt

import (
	"os"
	"strings"
)

// IssueLevel represents severity of a validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel // Severity level
	Code    string     // Machine-readable code
	Message string     // Issue message
	Path    string     // Affected slot or game path
}

// knownBlendModes are the blend mode literals the engine dumps.
var knownBlendModes = map[string]struct{}{
	"BLEND_Opaque (0)":         {},
	"BLEND_Masked (1)":         {},
	"BLEND_Translucent (2)":    {},
	"BLEND_Additive (3)":       {},
	"BLEND_Modulate (4)":       {},
	"BLEND_AlphaComposite (5)": {},
	"BLEND_AlphaHoldout (6)":   {},
}

// Validate checks extracted material properties for values an importer
// could not act on: unknown blend modes, out-of-range clip thresholds,
// malformed texture references, and textures missing from the export
// directory when one is configured.
func Validate(mat *MaterialProps, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	if mat.Overrides != nil {
		if !vopt.DisableBlendModeCheck && mat.Overrides.BlendMode != nil {
			if _, ok := knownBlendModes[*mat.Overrides.BlendMode]; !ok {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    "unknown_blend_mode",
					Message: "unknown BlendMode",
					Path:    *mat.Overrides.BlendMode,
				})
			}
		}

		if clip := mat.Overrides.OpacityMaskClipValue; clip != nil && (*clip < 0 || *clip > 1) {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    "clip_out_of_range",
				Message: "OpacityMaskClipValue outside [0,1]",
			})
		}
	}

	resolver := Resolver{ExportRoot: vopt.ExportRoot, TextureExt: vopt.TextureExt}
	for _, b := range mat.Textures.Bindings() {
		if _, ok := ParseGamePath(b.Path); !ok {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    "bad_game_path",
				Message: "texture reference is not a game path",
				Path:    b.Name + ": " + b.Path,
			})
			continue
		}

		if vopt.DisableFileCheck {
			continue
		}
		if shouldExcludePath(b.Path, vopt.ExcludePaths) {
			continue
		}

		p := resolver.ResolveTexture(b.Path)
		if p != "" {
			if _, err := os.Stat(p); err != nil {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    "missing_texture",
					Message: "texture file not found in export directory",
					Path:    p,
				})
			}
		}
	}

	return out
}

// shouldExcludePath checks if the game path matches an exclude pattern.
func shouldExcludePath(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	norm := normalizePathForMatch(path)
	for _, p := range patterns {
		if p == "" {
			continue
		}

		pp := normalizePathForMatch(p)
		if strings.HasSuffix(pp, "*") {
			if strings.HasPrefix(norm, strings.TrimSuffix(pp, "*")) {
				return true
			}

			continue
		}

		if norm == pp {
			return true
		}
	}

	return false
}

// normalizePathForMatch normalizes a game path for matching.
func normalizePathForMatch(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

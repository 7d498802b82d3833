package propstxt

import (
	"os"
	"strings"
)

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation string for nested blocks (default is one tab,
	// matching UModel output).
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// ExportRoot is the UModel export directory used to check that referenced
	// textures were actually exported. Empty disables file checks.
	ExportRoot string
	// TextureExt is the exported texture format to look for (default ".png").
	TextureExt string
	// ExcludePaths skips file existence checks for matching game paths.
	// Supports exact match and prefix wildcard with a '*' suffix
	// (e.g. "/Game/Effects/*").
	ExcludePaths []string
	// DisableFileCheck disables filesystem existence checks for texture paths.
	// Implied when ExportRoot is empty.
	DisableFileCheck bool
	// DisableBlendModeCheck disables validation of BlendMode against the
	// known engine blend modes.
	DisableBlendModeCheck bool
}

// IsExportRootExist reports whether the export root exists and is a directory.
func (o *ValidateOptions) IsExportRootExist() bool {
	if o == nil {
		return false
	}
	if strings.TrimSpace(o.ExportRoot) == "" {
		return false
	}
	info, err := os.Stat(o.ExportRoot)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "\t"}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "\t"
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{DisableFileCheck: true}
	}

	out := *o
	if out.ExportRoot == "" {
		out.DisableFileCheck = true
	}

	return out
}

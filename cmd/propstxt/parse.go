package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/skarndev/propstxt"
	"github.com/skarndev/propstxt/profile"
)

var (
	ErrNoInputFiles      = errors.New("no input files given")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedMode   = errors.New("unsupported mode")
)

// Output format and mode names.
const (
	formatJSON  = "json"
	formatTable = "table"
	formatNone  = "none"

	modeAuto     = "auto"
	modeMesh     = "mesh"
	modeMaterial = "material"
)

func parseCmd() *cobra.Command {
	var mode, output, format string

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse descriptor files and print the extracted properties",
		Long: `Parse .props.txt descriptor files and print the extracted properties.

Examples:
  propstxt parse MI_Chair.props.txt          # Parse one material descriptor
  propstxt parse -m mesh SM_Chair.props.txt  # Force mesh mode
  propstxt parse -f json *.props.txt         # Output as JSON
  propstxt parse -f none *.props.txt         # Parse only, report errors
  propstxt parse -o report.json -f json x.props.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, mode, output, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", modeAuto, "descriptor mode (auto, mesh, material)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (json, table, none; default from config)")

	return cmd
}

// parseReport is the per-file result of a parse run.
type parseReport struct {
	File       string               `json:"file"`
	Kind       string               `json:"kind"`
	Materials  []string             `json:"materials,omitempty"`
	Textures   []textureReport      `json:"textures,omitempty"`
	Overrides  *overridesReport     `json:"overrides,omitempty"`
	MaskColors map[string][]float64 `json:"maskColors,omitempty"`
}

// textureReport is one texture slot binding in a report.
type textureReport struct {
	Slot    string `json:"slot"`
	Path    string `json:"path"`
	MapType string `json:"mapType,omitempty"`
}

// overridesReport mirrors BaseOverrides with omitted absent fields.
type overridesReport struct {
	BlendMode            *string  `json:"blendMode,omitempty"`
	TwoSided             *bool    `json:"twoSided,omitempty"`
	OpacityMaskClipValue *float64 `json:"opacityMaskClipValue,omitempty"`
}

func runParse(files []string, mode, output, format string, writer io.Writer) error {
	if len(files) == 0 {
		return ErrNoInputFiles
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if format == "" {
		format = cfg.Output.Format
	}

	switch format {
	case formatJSON, formatTable, formatNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	switch mode {
	case modeAuto, modeMesh, modeMaterial:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}

	if output != "" {
		f, createErr := os.Create(output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer f.Close()

		writer = f
	}

	prof, _ := profile.Lookup(cfg.Export.Profile)
	parser := propstxt.NewParser()

	reports := make([]parseReport, 0, len(files))
	for _, file := range files {
		slog.Debug("parsing descriptor", "file", file)

		report, parseErr := parseFile(parser, file, mode, prof)
		if parseErr != nil {
			return fmt.Errorf("failed to parse %s: %w", file, parseErr)
		}

		reports = append(reports, *report)
	}

	return renderReports(writer, reports, format)
}

// parseFile parses one descriptor and builds its report.
func parseFile(parser *propstxt.Parser, file, mode string, prof profile.Profile) (*parseReport, error) {
	root, err := parser.DecodeFile(file)
	if err != nil {
		return nil, err
	}

	kind := propstxt.DetectKind(root)
	switch mode {
	case modeMesh:
		kind = propstxt.KindMesh
	case modeMaterial:
		kind = propstxt.KindMaterial
	}

	report := &parseReport{File: file, Kind: kind.String()}

	switch kind {
	case propstxt.KindMesh:
		mesh, err := propstxt.ExtractMeshProps(root)
		if err != nil {
			return nil, err
		}

		report.Materials = mesh.Materials

	case propstxt.KindMaterial:
		mat, err := propstxt.ExtractMaterialProps(root)
		if err != nil {
			return nil, err
		}

		colors, err := propstxt.ExtractMaskColors(root)
		if err != nil {
			return nil, err
		}

		fillMaterialReport(report, mat, colors, prof)
	}

	return report, nil
}

// fillMaterialReport fills the material-specific report fields.
func fillMaterialReport(report *parseReport, mat *propstxt.MaterialProps,
	colors map[string]propstxt.Color, prof profile.Profile,
) {
	for _, b := range mat.Textures.Bindings() {
		tr := textureReport{Slot: b.Name, Path: b.Path}
		if t, ok := prof.Classify(b.Name, propstxt.ShortName(b.Path)); ok {
			tr.MapType = t.String()
		}

		report.Textures = append(report.Textures, tr)
	}

	if mat.Overrides != nil {
		report.Overrides = &overridesReport{
			BlendMode:            mat.Overrides.BlendMode,
			TwoSided:             mat.Overrides.TwoSided,
			OpacityMaskClipValue: mat.Overrides.OpacityMaskClipValue,
		}
	}

	if len(colors) > 0 {
		report.MaskColors = make(map[string][]float64, len(colors))
		for name, c := range colors {
			report.MaskColors[name] = c.ToArray()
		}
	}
}

// renderReports writes the collected reports in the requested format.
func renderReports(writer io.Writer, reports []parseReport, format string) error {
	switch format {
	case formatNone:
		return nil

	case formatJSON:
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")

		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}

		return enc.Encode(reports)

	default:
		for _, r := range reports {
			renderReportTable(writer, r)
		}

		return nil
	}
}

// renderReportTable renders one report as a go-pretty table.
func renderReportTable(writer io.Writer, r parseReport) {
	fmt.Fprintf(writer, "%s (%s)\n", r.File, r.Kind)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(writer)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	switch {
	case r.Materials != nil:
		tbl.AppendHeader(table.Row{"#", "Material"})
		for i, m := range r.Materials {
			tbl.AppendRow(table.Row{i, m})
		}

	default:
		tbl.AppendHeader(table.Row{"Slot", "Type", "Path"})
		for _, t := range r.Textures {
			tbl.AppendRow(table.Row{t.Slot, t.MapType, t.Path})
		}
	}

	tbl.Render()

	if r.Overrides != nil {
		if r.Overrides.BlendMode != nil {
			fmt.Fprintf(writer, "BlendMode: %s\n", *r.Overrides.BlendMode)
		}
		if r.Overrides.TwoSided != nil {
			fmt.Fprintf(writer, "TwoSided: %v\n", *r.Overrides.TwoSided)
		}
		if r.Overrides.OpacityMaskClipValue != nil {
			fmt.Fprintf(writer, "OpacityMaskClipValue: %g\n", *r.Overrides.OpacityMaskClipValue)
		}
	}

	for name, c := range r.MaskColors {
		fmt.Fprintf(writer, "MaskColor %q: %v\n", name, c)
	}
}

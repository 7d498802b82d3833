package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skarndev/propstxt"
)

var ErrValidationFailed = errors.New("validation failed")

func validateCmd() *cobra.Command {
	var exportRoot string

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate material descriptors",
		Long: `Validate material descriptors: check blend modes, clip thresholds,
texture references, and (when an export root is configured) that the
referenced textures were actually exported.

Examples:
  propstxt validate MI_Chair.props.txt
  propstxt validate --export-root ./export MI_*.props.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, exportRoot, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&exportRoot, "export-root", "", "UModel export directory (default from config)")

	return cmd
}

func runValidate(files []string, exportRoot string, writer io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !cfg.Output.Color {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	if exportRoot == "" {
		exportRoot = cfg.Export.Root
	}

	opt := &propstxt.ValidateOptions{
		ExportRoot:            exportRoot,
		TextureExt:            cfg.Export.TextureExt,
		ExcludePaths:          cfg.Validate.ExcludePaths,
		DisableFileCheck:      cfg.Validate.DisableFileCheck,
		DisableBlendModeCheck: cfg.Validate.DisableBlendModeCheck,
	}

	if exportRoot != "" && !opt.IsExportRootExist() {
		fmt.Fprintf(os.Stderr, "Warning: export root %q does not exist, file checks disabled\n", exportRoot)
		opt.DisableFileCheck = true
	}

	parser := propstxt.NewParser()
	failed := 0

	for _, file := range files {
		issues, err := validateFile(parser, file, opt)
		if err != nil {
			color.New(color.FgRed).Fprintf(writer, "%s: %v\n", file, err)
			failed++

			continue
		}

		if len(issues) == 0 {
			color.New(color.FgGreen).Fprintf(writer, "%s: ok\n", file)
			continue
		}

		failed++
		color.New(color.FgYellow).Fprintf(writer, "%s: %d issue(s)\n", file, len(issues))

		for _, issue := range issues {
			line := fmt.Sprintf("  - [%s] %s", issue.Code, issue.Message)
			if issue.Path != "" {
				line += ": " + issue.Path
			}

			switch issue.Level {
			case propstxt.IssueError:
				color.New(color.FgRed).Fprintln(writer, line)
			default:
				color.New(color.FgYellow).Fprintln(writer, line)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrValidationFailed, failed, len(files))
	}

	return nil
}

// validateFile parses one material descriptor and runs validation on it.
func validateFile(parser *propstxt.Parser, file string, opt *propstxt.ValidateOptions) ([]propstxt.Issue, error) {
	mat, err := parser.DecodeMaterialFile(file)
	if err != nil {
		return nil, err
	}

	return propstxt.Validate(mat, opt), nil
}

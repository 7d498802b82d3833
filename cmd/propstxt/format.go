package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/skarndev/propstxt"
)

func formatCmd() *cobra.Command {
	var write bool
	var indent string

	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Reformat descriptor files in UModel dump style",
		Long: `Parse descriptor files and print them back in UModel's dump style:
brace blocks on their own lines, one definition per line. Inline
paren-style descriptors come out normalized.

Examples:
  propstxt format MI_Chair.props.txt       # Print reformatted to stdout
  propstxt format -w MI_Chair.props.txt    # Rewrite the file in place`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(args, write, indent, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place instead of printing")
	cmd.Flags().StringVar(&indent, "indent", "\t", "indentation string for nested blocks")

	return cmd
}

func runFormat(files []string, write bool, indent string, writer io.Writer) error {
	parser := propstxt.NewParser()
	opt := &propstxt.FormatOptions{Indent: indent}

	for _, file := range files {
		root, err := parser.DecodeFile(file)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}

		if write {
			if err := propstxt.EncodeFile(file, root, opt); err != nil {
				return fmt.Errorf("failed to rewrite %s: %w", file, err)
			}

			continue
		}

		if err := propstxt.Encode(writer, root, opt); err != nil {
			return fmt.Errorf("failed to format %s: %w", file, err)
		}
	}

	return nil
}

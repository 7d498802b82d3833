package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/skarndev/propstxt"
)

var ErrNoDescriptors = errors.New("no descriptor files found")

func scanCmd() *cobra.Command {
	var workers int
	var progress bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan an export directory for descriptor files",
		Long: `Scan a UModel export directory recursively for .props.txt files,
parse each one and summarize what was found.

Examples:
  propstxt scan ./export          # Scan an export directory
  propstxt scan -w 8 ./export     # Scan with 8 parallel workers`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			return runScan(dir, workers, progress, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel workers (default from config)")
	cmd.Flags().BoolVarP(&progress, "progress", "p", false, "show per-file progress")

	return cmd
}

// scanResult is the outcome of parsing one descriptor during a scan.
type scanResult struct {
	file string
	kind propstxt.Kind
	size int64
	err  error
}

func runScan(dir string, workers int, progress bool, writer io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if workers <= 0 {
		workers = cfg.Scan.Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	files, err := collectDescriptors(dir)
	if err != nil {
		return fmt.Errorf("failed to collect descriptor files: %w", err)
	}
	if len(files) == 0 {
		return ErrNoDescriptors
	}

	slog.Debug("scanning export directory", "dir", dir, "files", len(files), "workers", workers)

	results := scanParallel(files, workers, progress)

	return renderScanSummary(writer, results)
}

// collectDescriptors walks dir recursively and returns all descriptor files.
func collectDescriptors(dir string) ([]string, error) {
	var out []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories, UModel never creates them.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			return nil
		}
		if strings.HasSuffix(d.Name(), propstxt.DescriptorSuffix) {
			out = append(out, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// scanParallel parses files concurrently using a worker pool. Each worker
// gets its own Parser instance.
func scanParallel(files []string, workers int, progress bool) []scanResult {
	if workers > len(files) {
		workers = len(files)
	}

	fileCh := make(chan int, workers)
	results := make([]scanResult, len(files))

	var completed atomic.Int64
	total := int64(len(files))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			parser := propstxt.NewParser()
			for idx := range fileCh {
				results[idx] = scanOne(parser, files[idx])

				done := completed.Add(1)
				if progress {
					fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, files[idx])
				}
			}
		}()
	}

	for idx := range files {
		fileCh <- idx
	}
	close(fileCh)
	wg.Wait()

	return results
}

// scanOne parses and classifies a single descriptor file.
func scanOne(parser *propstxt.Parser, file string) scanResult {
	res := scanResult{file: file, kind: propstxt.KindUnknown}

	info, err := os.Stat(file)
	if err != nil {
		res.err = err
		return res
	}

	res.size = info.Size()

	root, err := parser.DecodeFile(file)
	if err != nil {
		res.err = err
		return res
	}

	res.kind = propstxt.DetectKind(root)

	return res
}

// renderScanSummary prints per-kind counts and the failures.
func renderScanSummary(writer io.Writer, results []scanResult) error {
	var meshes, materials, unknown, failed int
	var totalSize int64

	for _, r := range results {
		totalSize += r.size

		switch {
		case r.err != nil:
			failed++
		case r.kind == propstxt.KindMesh:
			meshes++
		case r.kind == propstxt.KindMaterial:
			materials++
		default:
			unknown++
		}
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(writer)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Kind", "Count"})
	tbl.AppendRow(table.Row{"mesh", meshes})
	tbl.AppendRow(table.Row{"material", materials})
	tbl.AppendRow(table.Row{"unknown", unknown})
	tbl.AppendRow(table.Row{"failed", failed})
	tbl.AppendFooter(table.Row{"total", len(results)})
	tbl.Render()

	fmt.Fprintf(writer, "Scanned %s of descriptors\n", humanize.Bytes(uint64(totalSize)))

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(writer, "failed: %s: %v\n", r.file, r.err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d descriptors failed to parse", failed, len(results))
	}

	return nil
}

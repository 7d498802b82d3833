package propstxt

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes a descriptor AST to writer in UModel's dump style: brace
// blocks on their own lines, one definition per line.
func Encode(w io.Writer, root *Root, opt *FormatOptions) error {
	fopt := opt.normalize()
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent}
	if err := wr.writeDefs(root.Defs); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a descriptor AST to a file. An existing file keeps its
// permissions; a new file is created with 0o600.
func EncodeFile(path string, root *Root, opt *FormatOptions) error {
	b, err := Format(root, opt)
	if err != nil {
		return err
	}

	mode := os.FileMode(0o600)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	return os.WriteFile(path, b, mode)
}

// Format renders a descriptor AST to bytes.
func Format(root *Root, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a descriptor AST to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation string
	cache  []string  // Cache of indentation strings
	level  int       // Current nesting level
}

// writeDefs writes a definition list at the current level.
func (w *writer) writeDefs(defs []*Definition) error {
	for _, d := range defs {
		if err := w.writeDef(d); err != nil {
			return err
		}
	}

	return nil
}

// writeDef writes one definition and its value.
func (w *writer) writeDef(d *Definition) error {
	if err := w.writeString(w.prefix()); err != nil {
		return err
	}
	if err := w.writeString(d.Name); err != nil {
		return err
	}
	if d.HasIndex {
		if err := w.writeString("[" + strconv.Itoa(d.Index) + "]"); err != nil {
			return err
		}
	}
	if err := w.writeString(" ="); err != nil {
		return err
	}

	switch v := d.Value.(type) {
	case nil:
		return w.writeString("\n")

	case *Scalar:
		return w.writeString(" " + strings.TrimSpace(v.Raw) + "\n")

	case *PathValue:
		return w.writeString(" " + v.Class + v.Literal + "\n")

	case *Block:
		if err := w.writeString("\n" + w.prefix() + "{\n"); err != nil {
			return err
		}

		w.level++
		if err := w.writeDefs(v.Defs); err != nil {
			return err
		}
		w.level--

		return w.writeString(w.prefix() + "}\n")

	default:
		// New Value variants must be handled here before they can be emitted.
		return shapeErr(d.Pos, "unknown value variant for %q", d.Name)
	}
}

// prefix returns the indentation string for the current level.
func (w *writer) prefix() string {
	for len(w.cache) <= w.level {
		w.cache = append(w.cache, strings.Repeat(w.indent, len(w.cache)))
	}

	return w.cache[w.level]
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

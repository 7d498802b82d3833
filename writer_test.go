package propstxt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range []string{"sm_chair.props.txt", "mi_chair.props.txt"} {
		root, err := DecodeFile(filepath.Join("testdata", f))
		if err != nil {
			t.Fatalf("decode %s: %v", f, err)
		}

		first, err := Format(root, nil)
		if err != nil {
			t.Fatalf("format %s: %v", f, err)
		}

		reparsed, err := Parse(first)
		if err != nil {
			t.Fatalf("reparse %s: %v", f, err)
		}

		second, err := Format(reparsed, nil)
		if err != nil {
			t.Fatalf("reformat %s: %v", f, err)
		}

		if !bytes.Equal(first, second) {
			t.Fatalf("%s: format is not a fixed point:\n%s\n---\n%s", f, first, second)
		}
	}
}

func TestFormatMatchesDumpStyle(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "sm_chair.props.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	root, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out, err := Format(root, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	// The sample is already in dump style, so formatting reproduces it.
	if !bytes.Equal(out, data) {
		t.Fatalf("format diverged from dump style:\n%s", out)
	}
}

func TestFormatIndent(t *testing.T) {
	root := mustParse(t, "A =\n{\n\tB = 1\n}\n")

	out, err := Format(root, &FormatOptions{Indent: "  "})
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	want := "A =\n{\n  B = 1\n}\n"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEncodeFile(t *testing.T) {
	root := mustParse(t, "A = 1\n")
	path := filepath.Join(t.TempDir(), "out.props.txt")

	if err := EncodeFile(path, root, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "A = 1\n" {
		t.Fatalf("got %q", data)
	}
}

func TestEncodeFileKeepsMode(t *testing.T) {
	root := mustParse(t, "A = 1\n")
	path := filepath.Join(t.TempDir(), "out.props.txt")

	if err := os.WriteFile(path, []byte("A = 2\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := EncodeFile(path, root, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Fatalf("mode changed on rewrite: got %o, want 644", got)
	}
}

func TestFormatEmptyValue(t *testing.T) {
	root := mustParse(t, "Key =\n")

	out, err := Format(root, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	// The '=' ends the line directly, no trailing whitespace.
	if string(out) != "Key =\n" {
		t.Fatalf("got %q, want %q", out, "Key =\n")
	}
}

package propstxt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSamples(t *testing.T) {
	files := []string{
		"sm_chair.props.txt",
		"sm_inline.props.txt",
		"sm_empty.props.txt",
		"mi_chair.props.txt",
		"mi_inline.props.txt",
		"mi_empty_overrides.props.txt",
	}
	for _, f := range files {
		if _, err := DecodeFile(filepath.Join("testdata", f)); err != nil {
			t.Fatalf("parse %s: %v", f, err)
		}
	}
}

func TestMeshMaterialsOrder(t *testing.T) {
	mesh, err := DecodeMeshFile(filepath.Join("testdata", "sm_chair.props.txt"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []string{
		"/Game/Furniture/Materials/MI_Chair_Wood.MI_Chair_Wood",
		"/Game/Furniture/Materials/MI_Chair_Metal.MI_Chair_Metal",
	}
	if len(mesh.Materials) != len(want) {
		t.Fatalf("materials count: got %d, want %d", len(mesh.Materials), len(want))
	}
	for i := range want {
		if mesh.Materials[i] != want[i] {
			t.Fatalf("materials[%d]: got %q, want %q", i, mesh.Materials[i], want[i])
		}
	}
}

func TestMeshInlineDefinition(t *testing.T) {
	mesh, err := DecodeMeshFile(filepath.Join("testdata", "sm_inline.props.txt"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(mesh.Materials) != 1 || mesh.Materials[0] != "/Game/Foo/Bar.Bar" {
		t.Fatalf("unexpected materials: %v", mesh.Materials)
	}
}

func TestMeshInlineMultipleEntries(t *testing.T) {
	src := "Materials[0]=(Path=\"/Game/A.A\")\n" +
		"Materials[1]=(Path=\"/Game/B.B\")\n"

	root, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	mesh, err := ExtractMeshProps(root)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := []string{"/Game/A.A", "/Game/B.B"}
	if len(mesh.Materials) != len(want) {
		t.Fatalf("materials count: got %d, want %d: %v", len(mesh.Materials), len(want), mesh.Materials)
	}
	for i := range want {
		if mesh.Materials[i] != want[i] {
			t.Fatalf("materials[%d]: got %q, want %q", i, mesh.Materials[i], want[i])
		}
	}
}

func TestMeshWithoutMaterials(t *testing.T) {
	mesh, err := DecodeMeshFile(filepath.Join("testdata", "sm_empty.props.txt"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if mesh.Materials == nil || len(mesh.Materials) != 0 {
		t.Fatalf("expected empty materials list, got %v", mesh.Materials)
	}
}

func TestMeshShapeViolation(t *testing.T) {
	root, err := Parse([]byte("Materials = 5\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, err := ExtractMeshProps(root); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestMalformedInput(t *testing.T) {
	p := NewParser()

	root, err := p.DecodeFile(filepath.Join("testdata", "malformed.props.txt"))
	if err == nil {
		t.Fatalf("expected failure on unterminated literal")
	}
	if root != nil {
		t.Fatalf("no partial AST expected on failure")
	}
	if !errors.Is(err, ErrLex) && !errors.Is(err, ErrParse) {
		t.Fatalf("expected lex or parse error, got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := DecodeFile(filepath.Join("testdata", "does_not_exist.props.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("Key = ok\n= broken\n"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, " 2:") {
		t.Fatalf("expected a line 2 position in %q", got)
	}
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		file string
		want Kind
	}{
		{"sm_chair.props.txt", KindMesh},
		{"sm_inline.props.txt", KindMesh},
		{"mi_chair.props.txt", KindMaterial},
		{"mi_inline.props.txt", KindMaterial},
		{"mi_empty_overrides.props.txt", KindMaterial},
		{"sm_empty.props.txt", KindUnknown},
	}
	for _, tc := range cases {
		root, err := DecodeFile(filepath.Join("testdata", tc.file))
		if err != nil {
			t.Fatalf("parse %s: %v", tc.file, err)
		}
		if got := DetectKind(root); got != tc.want {
			t.Fatalf("%s: kind %v, want %v", tc.file, got, tc.want)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	root, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	if len(root.Defs) != 0 {
		t.Fatalf("expected no definitions, got %d", len(root.Defs))
	}
}

func TestAmbiguityPolicy(t *testing.T) {
	// A parenthesized group after '=' opens a block, not a scalar.
	root, err := Parse([]byte("A=(B=1)\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := root.Defs[0].Value.(*Block); !ok {
		t.Fatalf("expected block value, got %T", root.Defs[0].Value)
	}

	// A group glued to a preceding word stays inside the scalar.
	root, err = Parse([]byte("A=BLEND_Masked (1)\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sc, ok := root.Defs[0].Value.(*Scalar)
	if !ok {
		t.Fatalf("expected scalar value, got %T", root.Defs[0].Value)
	}
	if sc.Raw != "BLEND_Masked (1)" {
		t.Fatalf("unexpected scalar span %q", sc.Raw)
	}

	// A quoted literal is a path before it is a scalar.
	root, err = Parse([]byte("A=\"/Game/X.X\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pv, ok := root.Defs[0].Value.(*PathValue)
	if !ok {
		t.Fatalf("expected path value, got %T", root.Defs[0].Value)
	}
	if pv.Path() != "/Game/X.X" {
		t.Fatalf("unexpected path %q", pv.Path())
	}
}

func TestStripQuotes(t *testing.T) {
	cases := map[string]string{
		`"/Game/Foo/Bar.Bar"`: "/Game/Foo/Bar.Bar",
		`'MI_Chair.MI_Chair'`: "MI_Chair.MI_Chair",
		`""`:                  "",
		`x`:                   "x",
	}
	for raw, want := range cases {
		if got := StripQuotes(raw); got != want {
			t.Fatalf("StripQuotes(%q): got %q, want %q", raw, got, want)
		}
	}
}

func TestParserConcurrentUse(t *testing.T) {
	p := NewParser()
	data, err := os.ReadFile(filepath.Join("testdata", "mi_chair.props.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := p.Parse(data)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent parse: %v", err)
		}
	}
}

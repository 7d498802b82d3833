package propstxt

import (
	"path/filepath"
	"testing"
)

func TestParseGamePath(t *testing.T) {
	gp, ok := ParseGamePath("/Game/Furniture/Textures/T_Chair_D.T_Chair_D")
	if !ok {
		t.Fatalf("expected a valid game path")
	}
	if gp.Package != "/Game/Furniture/Textures/T_Chair_D" {
		t.Fatalf("package: got %q", gp.Package)
	}
	if gp.Object != "T_Chair_D" {
		t.Fatalf("object: got %q", gp.Object)
	}
}

func TestParseGamePathRejects(t *testing.T) {
	bad := []string{
		"",
		"None",
		"Game/No/Leading.Slash",
		"/Game/../Escape.Escape",
		"/Game/NoObject.",
		"/Game/Dot.In/Slash",
	}
	for _, raw := range bad {
		if _, ok := ParseGamePath(raw); ok {
			t.Fatalf("%q must not parse", raw)
		}
	}
}

func TestShortName(t *testing.T) {
	if got := ShortName("/Game/A/B.C"); got != "C" {
		t.Fatalf("got %q", got)
	}
	if got := ShortName("None"); got != "None" {
		t.Fatalf("fallback: got %q", got)
	}
}

func TestResolver(t *testing.T) {
	r := Resolver{ExportRoot: filepath.Join("out", "export")}

	got := r.ResolveTexture("/Game/Tiles/T_Floor.T_Floor")
	want := filepath.Join("out", "export", "Game", "Tiles", "T_Floor") + ".png"
	if got != want {
		t.Fatalf("texture: got %q, want %q", got, want)
	}

	r.TextureExt = ".dds"
	got = r.ResolveTexture("/Game/Tiles/T_Floor.T_Floor")
	want = filepath.Join("out", "export", "Game", "Tiles", "T_Floor") + ".dds"
	if got != want {
		t.Fatalf("texture ext: got %q, want %q", got, want)
	}

	got = r.ResolveDescriptor("/Game/Tiles/MI_Floor.MI_Floor")
	want = filepath.Join("out", "export", "Game", "Tiles", "MI_Floor") + DescriptorSuffix
	if got != want {
		t.Fatalf("descriptor: got %q, want %q", got, want)
	}

	if r.ResolveTexture("not a path") != "" {
		t.Fatalf("bad references resolve to empty")
	}
}

package propstxt

import (
	"os"
	"path/filepath"
	"testing"
)

func benchData(b *testing.B, name string) []byte {
	b.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		b.Fatalf("read %s: %v", name, err)
	}

	return data
}

func BenchmarkParseMesh(b *testing.B) {
	data := benchData(b, "sm_chair.props.txt")
	p := NewParser()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMaterial(b *testing.B) {
	data := benchData(b, "mi_chair.props.txt")
	p := NewParser()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtractMaterial(b *testing.B) {
	root, err := NewParser().Parse(benchData(b, "mi_chair.props.txt"))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ExtractMaterialProps(root); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	root, err := NewParser().Parse(benchData(b, "mi_chair.props.txt"))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Format(root, nil); err != nil {
			b.Fatal(err)
		}
	}
}

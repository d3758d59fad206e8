package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgio "github.com/matzehuels/gotsort/pkg/io"
)

func TestParseCommandText(t *testing.T) {
	in := writeTempFile(t, "deps.txt", "a b c\nb d\n")
	out := filepath.Join(t.TempDir(), "graph.json")

	if err := runCommand(t, "parse", in, "-o", out); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	g, err := pkgio.ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if g.Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.Len())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
}

func TestParseCommandTOML(t *testing.T) {
	in := writeTempFile(t, "Manifest.toml", "[deps]\napp = [\"lib\"]\n")
	out := filepath.Join(t.TempDir(), "graph.json")

	if err := runCommand(t, "parse", in, "-o", out); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	g, err := pkgio.ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestParseCommandForcedFormat(t *testing.T) {
	// A .txt extension with TOML contents, forced with --format
	in := writeTempFile(t, "deps.txt", "[deps]\napp = [\"lib\"]\n")
	out := filepath.Join(t.TempDir(), "graph.json")

	if err := runCommand(t, "parse", in, "--format", "toml", "-o", out); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	g, err := pkgio.ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestParseCommandInvalidFormat(t *testing.T) {
	in := writeTempFile(t, "deps.txt", "a b\n")

	if err := runCommand(t, "parse", in, "--format", "yaml"); err == nil {
		t.Fatal("parse should reject unknown input formats")
	}
}

func TestParseCommandInvalidTOML(t *testing.T) {
	in := writeTempFile(t, "deps.toml", "not valid toml [\n")

	err := runCommand(t, "parse", in)
	if err == nil {
		t.Fatal("parse should fail on malformed TOML")
	}
	if !strings.Contains(err.Error(), "manifest") {
		t.Errorf("error = %v, should mention the manifest", err)
	}
}

func TestParseCommandRoundTrip(t *testing.T) {
	in := writeTempFile(t, "deps.txt", "a b\nb c\n")
	graphPath := filepath.Join(t.TempDir(), "graph.json")
	orderPath := filepath.Join(t.TempDir(), "order.txt")

	if err := runCommand(t, "parse", in, "-o", graphPath); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := runCommand(t, "sort", graphPath, "-o", orderPath); err != nil {
		t.Fatalf("sort failed: %v", err)
	}

	data, err := os.ReadFile(orderPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb\nc\n" {
		t.Errorf("round trip order = %q, want %q", data, "a\nb\nc\n")
	}
}

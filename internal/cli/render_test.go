package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "dot", []string{"dot"}},
		{"multiple formats", "dot,svg", []string{"dot", "svg"}},
		{"svg only", "svg", []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateRenderFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid dot", []string{"dot"}, false},
		{"valid multiple", []string{"dot", "svg"}, false},
		{"text not renderable", []string{"text"}, true},
		{"json not renderable", []string{"json"}, true},
		{"invalid format", []string{"png"}, true},
		{"mixed valid invalid", []string{"svg", "png"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRenderFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRenderFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "graph.json", "graph"},
		{"derive from nested input", "", "out/deps.txt", "out/deps"},
		{"stdin defaults to graph", "", "", "graph"},
		{"dash defaults to graph", "", "-", "graph"},
		{"output without extension", "result", "graph.json", "result"},
		{"output with format extension", "result.svg", "graph.json", "result"},
		{"output with dot extension", "result.dot", "graph.json", "result"},
		{"output with unrelated extension", "result.out", "graph.json", "result.out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderCommandDOT(t *testing.T) {
	in := writeTempFile(t, "deps.txt", "a b\n")
	base := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "render", in, "-f", "dot", "-o", base, "--no-cache"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("expected DOT output at %s.dot: %v", base, err)
	}

	dot := string(data)
	if !strings.Contains(dot, "digraph G {") {
		t.Errorf("DOT output missing header:\n%s", dot)
	}
	if !strings.Contains(dot, `"a" -> "b";`) {
		t.Errorf("DOT output missing edge:\n%s", dot)
	}
}

func TestRenderCommandRankdir(t *testing.T) {
	in := writeTempFile(t, "deps.txt", "a b\n")
	base := filepath.Join(t.TempDir(), "out")

	if err := runCommand(t, "render", in, "-f", "dot", "-o", base, "--rankdir", "LR", "--no-cache"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "rankdir=LR;") {
		t.Errorf("DOT output should honor --rankdir LR:\n%s", data)
	}
}

func TestRenderCommandInvalidRankdir(t *testing.T) {
	in := writeTempFile(t, "deps.txt", "a b\n")

	if err := runCommand(t, "render", in, "--rankdir", "XX", "--no-cache"); err == nil {
		t.Fatal("render should reject an unknown rankdir")
	}
}

func TestRenderCommandCycle(t *testing.T) {
	in := writeTempFile(t, "deps.txt", "a b\nb a\n")

	if err := runCommand(t, "render", in, "-f", "dot", "--no-cache"); err == nil {
		t.Fatal("render should fail on cyclic input")
	}
}

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCacheUsage(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "ab"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ab", "one.json"), []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ab", "two.json"), []byte("123"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, size, err := cacheUsage(dir)
	if err != nil {
		t.Fatalf("cacheUsage() error: %v", err)
	}
	if entries != 2 {
		t.Errorf("entries = %d, want 2", entries)
	}
	if size != 8 {
		t.Errorf("size = %d, want 8", size)
	}
}

func TestCacheUsageMissingDir(t *testing.T) {
	entries, size, err := cacheUsage(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("cacheUsage() error: %v", err)
	}
	if entries != 0 || size != 0 {
		t.Errorf("usage of missing dir = %d entries, %d bytes, want 0, 0", entries, size)
	}
}

func TestCacheClearCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "ab"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ab", "entry.json"), []byte("cached"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("cache dir still exists after clear: %v", err)
	}
}

func TestCacheClearCommandEmpty(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if err := runCommand(t, "cache", "clear"); err != nil {
		t.Errorf("cache clear on empty cache failed: %v", err)
	}
}

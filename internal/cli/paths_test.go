package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		format string
		want   string
	}{
		{name: "explicit output wins", input: "g.json", output: "out.svg", format: "svg", want: "out.svg"},
		{name: "derived from input", input: "graphs/g.json", output: "", format: "svg", want: "graphs/g.svg"},
		{name: "toml input", input: "g.toml", output: "", format: "png", want: "g.png"},
		{name: "no extension", input: "g", output: "", format: "dot", want: "g.dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.input, tt.output, tt.format); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"svg", "png", "dot"} {
		if err := validateFormat(format); err != nil {
			t.Errorf("validateFormat(%q) = %v", format, err)
		}
	}
	if err := validateFormat("pdf"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

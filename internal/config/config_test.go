package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("ANALYZER_API_URL", "http://localhost:5000")
	t.Setenv("ANALYZER_EXPORT_DIR", "/tmp/reports")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AnalyzerURL != "http://localhost:5000" {
		t.Fatalf("analyzer url = %q", cfg.AnalyzerURL)
	}
	if cfg.ExportDir != "/tmp/reports" {
		t.Fatalf("export dir = %q", cfg.ExportDir)
	}
}

func TestLoadExportDirDefault(t *testing.T) {
	t.Setenv("ANALYZER_API_URL", "http://localhost:5000")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExportDir != "." {
		t.Fatalf("export dir = %q, want current directory default", cfg.ExportDir)
	}
}

func TestLoadMissingAnalyzerURL(t *testing.T) {
	// Setenv registers the restore; Unsetenv makes the variable truly absent.
	t.Setenv("ANALYZER_API_URL", "")
	os.Unsetenv("ANALYZER_API_URL")

	if _, err := Load(); err == nil {
		t.Fatal("want error when ANALYZER_API_URL is unset")
	}
}

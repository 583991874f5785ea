package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which needs a newer Go than this build uses.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so a developer's own .caplint.yaml cannot
	// leak into the test.
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxNumberOfProblems != 1000 {
		t.Fatalf("got maxNumberOfProblems %d, want 1000", cfg.MaxNumberOfProblems)
	}
	if cfg.Format != "text" {
		t.Fatalf("got format %q, want text", cfg.Format)
	}
	if cfg.PDFReport != "" {
		t.Fatalf("got pdfReport %q, want empty", cfg.PDFReport)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caplint.yaml")
	body := "maxNumberOfProblems: 25\nformat: json\npdfReport: out.pdf\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxNumberOfProblems != 25 {
		t.Fatalf("got maxNumberOfProblems %d, want 25", cfg.MaxNumberOfProblems)
	}
	if cfg.Format != "json" {
		t.Fatalf("got format %q, want json", cfg.Format)
	}
	if cfg.PDFReport != "out.pdf" {
		t.Fatalf("got pdfReport %q, want out.pdf", cfg.PDFReport)
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CAPLINT_FORMAT", "json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("got format %q, want json from environment", cfg.Format)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"negative max", Config{MaxNumberOfProblems: -1, Format: "text"}},
		{"unknown format", Config{MaxNumberOfProblems: 10, Format: "xml"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Fatalf("expected Validate to reject %+v", tc.cfg)
			}
		})
	}
}

func TestValidate_ZeroMaxIsAllowed(t *testing.T) {
	cfg := Config{MaxNumberOfProblems: 0, Format: "text"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

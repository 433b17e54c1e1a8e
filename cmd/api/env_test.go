package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	t.Setenv("DOTENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	if err := loadDotEnv(); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("HTTP_ADDR=:7070\nCALC_DOTENV_ONLY=yes\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	t.Setenv("DOTENV_FILE", path)
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CALC_DOTENV_ONLY", "")
	os.Unsetenv("CALC_DOTENV_ONLY")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("HTTP_ADDR"); got != ":9999" {
		t.Fatalf("expected HTTP_ADDR to stay %q, got %q", ":9999", got)
	}
	if got := os.Getenv("CALC_DOTENV_ONLY"); got != "yes" {
		t.Fatalf("expected CALC_DOTENV_ONLY from file, got %q", got)
	}
}

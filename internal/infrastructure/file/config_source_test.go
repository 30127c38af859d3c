package file_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	domain "github.com/sqlplayground/playground/internal/domain/seed"
	"github.com/sqlplayground/playground/internal/infrastructure/file"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestConfigSourceLoadsAndOverlaysDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "generation.json", `{
		"users": 10,
		"orders": 40,
		"errorConfig": {"enabled": true, "emailErrors": 15}
	}`)

	cfg, err := file.NewConfigSource(dir).Load("generation.json", testNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Users != 10 || cfg.Orders != 40 {
		t.Fatalf("unexpected counts: %+v", cfg)
	}
	if cfg.Countries != 25 {
		t.Fatalf("omitted field lost its default: %d", cfg.Countries)
	}
	if !cfg.ErrorConfig.Enabled || cfg.ErrorConfig.EmailErrors != 15 {
		t.Fatalf("unexpected error config: %+v", cfg.ErrorConfig)
	}
}

func TestConfigSourceAcceptsAbsolutePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "generation.json", `{"users": 3}`)

	cfg, err := file.NewConfigSource("/somewhere/else").Load(path, testNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Users != 3 {
		t.Fatalf("unexpected users: %d", cfg.Users)
	}
}

func TestConfigSourceRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "broken.json", `{"users": `)

	_, err := file.NewConfigSource(dir).Load("broken.json", testNow)
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfigSourceReportsMissingFiles(t *testing.T) {
	t.Parallel()

	_, err := file.NewConfigSource(t.TempDir()).Load("nope.json", testNow)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

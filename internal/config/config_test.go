package config

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{
		OutputDir:        "datasets",
		HTTPTimeoutSec:   30,
		RetryMaxAttempts: 5,
		RetryBaseDelayMs: 100,
		RetryMaxDelayMs:  2000,
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.OutputDir != want.OutputDir {
		t.Fatalf("output_dir: got %q, want %q", got.OutputDir, want.OutputDir)
	}
	if got.HTTPTimeoutSec != want.HTTPTimeoutSec {
		t.Fatalf("http_timeout_sec: got %d, want %d", got.HTTPTimeoutSec, want.HTTPTimeoutSec)
	}
	if got.RetryMaxAttempts != want.RetryMaxAttempts {
		t.Fatalf("retry_max_attempts: got %d, want %d", got.RetryMaxAttempts, want.RetryMaxAttempts)
	}
	if got.RetryBaseDelayMs != want.RetryBaseDelayMs {
		t.Fatalf("retry_base_delay_ms: got %d, want %d", got.RetryBaseDelayMs, want.RetryBaseDelayMs)
	}
	if got.RetryMaxDelayMs != want.RetryMaxDelayMs {
		t.Fatalf("retry_max_delay_ms: got %d, want %d", got.RetryMaxDelayMs, want.RetryMaxDelayMs)
	}
}

func TestLoadDefaults(t *testing.T) {
	// A missing config file falls back to every default.
	path := filepath.Join(t.TempDir(), "config.yaml")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.OutputDir != filepath.Join("data", "raw") {
		t.Fatalf("unexpected default output_dir: %q", got.OutputDir)
	}
	if got.HTTPTimeoutSec != 60 || got.RetryMaxAttempts != 3 {
		t.Fatalf("unexpected HTTP defaults: %+v", got)
	}
}

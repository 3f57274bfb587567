package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
sauna:
  host: 192.168.1.50
  port: 502
  unit_id: 1
  timeout_ms: 5000
  write_settle_ms: 1000
poll:
  interval_ms: 30000
log:
  level: debug
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saunumctl.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}

	if cfg.Sauna.Host != "192.168.1.50" {
		t.Errorf("host: got %q", cfg.Sauna.Host)
	}
	if cfg.Sauna.TimeoutMs != 5000 {
		t.Errorf("timeout_ms: got %d", cfg.Sauna.TimeoutMs)
	}
	if cfg.Poll.IntervalMs != 30000 {
		t.Errorf("interval_ms: got %d", cfg.Poll.IntervalMs)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level: got %q", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLoad_BadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("sauna: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error, got nil")
	}
}

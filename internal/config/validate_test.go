package config

import "testing"

func valid() *Config {
	return &Config{
		Sauna: SaunaConfig{
			Host:      "192.168.1.50",
			Port:      502,
			UnitID:    1,
			TimeoutMs: 5000,
		},
		Poll: PollConfig{IntervalMs: 10000},
		Log:  LogConfig{Level: "info"},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_HostRequired(t *testing.T) {
	cfg := valid()
	cfg.Sauna.Host = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := valid()
	cfg.Sauna.Port = 70000
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := valid()
	cfg.Sauna.TimeoutMs = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_UnknownLogLevel(t *testing.T) {
	cfg := valid()
	cfg.Log.Level = "verbose"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_SettleDisableAllowed(t *testing.T) {
	cfg := valid()
	cfg.Sauna.WriteSettleMs = -1
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Sauna.WriteSettleMs = -2
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{Sauna: SaunaConfig{Host: "sauna.local"}}

	Normalize(cfg)

	if cfg.Poll.IntervalMs != 10000 {
		t.Errorf("interval default: got %d, want 10000", cfg.Poll.IntervalMs)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level default: got %q, want info", cfg.Log.Level)
	}

	// Must tolerate nil.
	Normalize(nil)
}

package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Sauna.Host == "" {
		return fmt.Errorf("sauna: host is required")
	}
	if cfg.Sauna.Port < 0 || cfg.Sauna.Port > 65535 {
		return fmt.Errorf("sauna: port %d out of range", cfg.Sauna.Port)
	}
	if cfg.Sauna.TimeoutMs < 0 {
		return fmt.Errorf("sauna: timeout_ms must be >= 0")
	}
	if cfg.Sauna.WriteSettleMs < -1 {
		return fmt.Errorf("sauna: write_settle_ms must be >= -1")
	}
	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0")
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", cfg.Log.Level)
	}

	return nil
}

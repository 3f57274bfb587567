package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Connection defaults (port, unit id, timeout, settle) belong to
	// the saunum package; only CLI-level knobs are defaulted here.
	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = 10000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

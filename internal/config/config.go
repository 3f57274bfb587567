// Package config holds the saunumctl configuration file schema.
package config

type Config struct {
	Sauna SaunaConfig `yaml:"sauna"`
	Poll  PollConfig  `yaml:"poll"`
	Log   LogConfig   `yaml:"log"`
}

// ---- CONTROLLER ----

type SaunaConfig struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	UnitID        uint8  `yaml:"unit_id"`
	TimeoutMs     int    `yaml:"timeout_ms"`
	WriteSettleMs int    `yaml:"write_settle_ms"` // -1 disables the settle pause
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}

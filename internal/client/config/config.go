package config

// Config holds runtime settings for the crystalpad shell.
//
// Fields:
//   - DatabasePath: SQLite file holding notes and settings (":memory:" is accepted).
//   - SystemLanguage: locale the "system" language preference resolves against.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	DatabasePath   string
	SystemLanguage string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "crystalpad.db"
	c.SystemLanguage = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

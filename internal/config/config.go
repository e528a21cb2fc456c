package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - ExportPath: file the "export" command writes the catalog snapshot to.
type Config struct {
	DatabasePath string
	ExportPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "edukit.db"
	c.ExportPath = "edukit-data.json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

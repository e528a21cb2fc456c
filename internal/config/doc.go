// Package config loads runtime configuration for the EduKit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local SQLite database file
//	-e string   file the export command writes the catalog snapshot to
//
// # JSON schema
//
//	{
//	  "database_path": "edukit.db",
//	  "export_path": "edukit-data.json"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabasePath and ExportPath
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

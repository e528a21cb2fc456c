package config

import (
	"flag"
	"os"

	"github.com/edukit/edukit/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local SQLite database file (default from Config)
//	-e string   export file for the catalog snapshot (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local SQLite database file")
	fs.StringVar(&cfg.ExportPath, "e", cfg.ExportPath, "export file for the catalog snapshot")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package config

import (
	"flag"
	"os"

	"github.com/Hari20032005/assignment-nudge/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-e string   directory for export artifacts
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for export artifacts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

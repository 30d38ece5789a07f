package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/wifikeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-f string   path of the local session database file
//
// os.Args is filtered through flagx.FilterArgs so unrelated flags parsed by
// other components do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.SessionDBPath, "f", cfg.SessionDBPath, "path of the session database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

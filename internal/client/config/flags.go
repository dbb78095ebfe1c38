package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-d", "-o", "-p"}

// parseFlags populates selected Config fields from command-line flags.
// Unknown arguments are filtered out with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the admin API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "path of the local credential store")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "directory for CSV exports")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "default page size")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bankist/internal/flagx"
)

// parseFlags overlays cfg with -t, -l, -s, -j and -v. Other arguments are
// filtered out first so -c/-config can share os.Args. Invalid values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-t", "-l", "-s", "-j", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	timeout := fs.Int("t", int(cfg.SessionTimeout/time.Second), "session timeout (in seconds)")
	loanDelay := fs.Int("l", int(cfg.LoanDelay/time.Millisecond), "loan processing delay (in milliseconds)")
	fs.StringVar(&cfg.SeedFile, "s", cfg.SeedFile, "YAML seed file with the demo accounts")
	fs.StringVar(&cfg.JournalDSN, "j", cfg.JournalDSN, "activity journal DSN, empty disables it")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTimeout = time.Duration(*timeout) * time.Second
	cfg.LoanDelay = time.Duration(*loanDelay) * time.Millisecond
}

// Package config loads runtime configuration for the bankist CLI.
//
// Sources, in order of precedence (later wins):
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Command-line flags (see parseFlags).
//
// Supported flags
//
//	-t int      session timeout in seconds
//	-l int      loan processing delay in milliseconds
//	-s string   YAML seed file with the demo accounts ("" = embedded seed)
//	-j string   activity journal DSN (":memory:" by default, "" disables it)
//	-v string   log level: debug, info, warn or error
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings such as "2.5s" or
// integer nanoseconds. Absent keys keep their earlier value:
//
//	{
//	  "session_timeout": "2m",
//	  "tick_interval": "1s",
//	  "loan_delay": "2.5s",
//	  "seed_file": "accounts.yaml",
//	  "journal_dsn": "file:bankist.db",
//	  "pin_cost": 10,
//	  "log_level": "info",
//	  "default_currency_symbol": "€"
//	}
package config

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bankist/internal/flagx"
	"github.com/dmitrijs2005/bankist/internal/timex"
)

// JsonConfig is the on-disk shape. Pointer fields tell an absent key from a
// zero value, which matters for journal_dsn where "" disables the journal.
type JsonConfig struct {
	SessionTimeout        *timex.Duration `json:"session_timeout"`
	TickInterval          *timex.Duration `json:"tick_interval"`
	LoanDelay             *timex.Duration `json:"loan_delay"`
	SeedFile              *string         `json:"seed_file"`
	JournalDSN            *string         `json:"journal_dsn"`
	PinCost               *int            `json:"pin_cost"`
	LogLevel              *string         `json:"log_level"`
	DefaultCurrencySymbol *string         `json:"default_currency_symbol"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics when
// the file cannot be read or decoded.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.SessionTimeout != nil {
		cfg.SessionTimeout = jc.SessionTimeout.Duration
	}
	if jc.TickInterval != nil {
		cfg.TickInterval = jc.TickInterval.Duration
	}
	if jc.LoanDelay != nil {
		cfg.LoanDelay = jc.LoanDelay.Duration
	}
	if jc.SeedFile != nil {
		cfg.SeedFile = *jc.SeedFile
	}
	if jc.JournalDSN != nil {
		cfg.JournalDSN = *jc.JournalDSN
	}
	if jc.PinCost != nil {
		cfg.PinCost = *jc.PinCost
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.DefaultCurrencySymbol != nil {
		cfg.DefaultCurrencySymbol = *jc.DefaultCurrencySymbol
	}
}

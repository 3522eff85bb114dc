package config

import (
	"time"

	"github.com/dmitrijs2005/bankist/internal/format"
)

// Config holds runtime settings for the bankist CLI.
type Config struct {
	SessionTimeout        time.Duration
	TickInterval          time.Duration
	LoanDelay             time.Duration
	SeedFile              string
	JournalDSN            string
	PinCost               int
	LogLevel              string
	DefaultCurrencySymbol string
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.SessionTimeout = 120 * time.Second
	c.TickInterval = time.Second
	c.LoanDelay = 2500 * time.Millisecond
	c.SeedFile = ""
	c.JournalDSN = ":memory:"
	c.PinCost = 10
	c.LogLevel = "warn"
	c.DefaultCurrencySymbol = format.DefaultSymbol
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

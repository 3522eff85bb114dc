package accounts

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed/accounts.yaml
var defaultSeed []byte

var validate = validator.New()

var maxInterestRate = decimal.NewFromInt(100)

// Record is the raw shape of an account in a seed file. Dates, currency and
// locale are optional; an account without dates runs in degraded mode.
type Record struct {
	Owner         string            `yaml:"owner" validate:"required"`
	Pin           int               `yaml:"pin" validate:"gt=0"`
	InterestRate  decimal.Decimal   `yaml:"interest_rate"`
	Movements     []decimal.Decimal `yaml:"movements"`
	MovementDates []time.Time       `yaml:"movement_dates"`
	Currency      string            `yaml:"currency" validate:"omitempty,iso4217"`
	Locale        string            `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
}

type seedFile struct {
	Accounts []Record `yaml:"accounts" validate:"required,min=1"`
}

// Validate checks the struct tags and the rules the tags cannot express.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidRecord, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if r.InterestRate.IsNegative() || r.InterestRate.GreaterThan(maxInterestRate) {
		return fmt.Errorf("%w: interest rate %s outside 0..100", ErrInvalidRecord, r.InterestRate)
	}
	if len(r.MovementDates) > 0 && len(r.MovementDates) != len(r.Movements) {
		return fmt.Errorf("%w: %d movements, %d dates", ErrInvalidRecord, len(r.Movements), len(r.MovementDates))
	}
	return nil
}

// DecodeSeed parses a YAML seed document.
func DecodeSeed(r io.Reader) ([]Record, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if len(f.Accounts) == 0 {
		return nil, fmt.Errorf("%w: seed has no accounts", ErrInvalidRecord)
	}
	return f.Accounts, nil
}

// LoadSeed reads the seed file at path, or the built-in demo accounts when
// path is empty.
func LoadSeed(path string) ([]Record, error) {
	if path == "" {
		return DecodeSeed(bytes.NewReader(defaultSeed))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return DecodeSeed(f)
}

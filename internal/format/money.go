// Package format turns ledger values into display strings: money in the
// account's locale and currency, movement dates relative to today, and the
// logout countdown.
package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultSymbol is appended to amounts of accounts without currency hints.
const DefaultSymbol = "€"

// Money formats amount for an account. With both a locale and a valid ISO
// currency code the locale's digit grouping and currency symbol are used;
// otherwise the amount is printed with two decimals followed by fallback.
//
// English locales put the symbol first ("-$1,300.00"), all others after
// the number ("1.300,00 €").
func Money(amount decimal.Decimal, currencyCode, locale, fallback string) string {
	unit, err := currency.ParseISO(currencyCode)
	if currencyCode == "" || locale == "" || err != nil {
		return Plain(amount, fallback)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Plain(amount, fallback)
	}

	p := message.NewPrinter(tag)
	sym := p.Sprint(currency.Symbol(unit))
	digits := localizedDigits(p, amount.Abs().Round(2))
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	if base, _ := tag.Base(); base.String() == "en" {
		return sign + sym + digits
	}
	return sign + digits + " " + sym
}

// localizedDigits renders a non-negative amount with two decimals. x/text only
// converts machine numbers, so the whole part goes through as an integer and
// the cents as a fraction below one, keeping the amount exact.
func localizedDigits(p *message.Printer, amount decimal.Decimal) string {
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Shift(2).IntPart()

	intPart := p.Sprint(number.Decimal(whole.IntPart()))
	frac := p.Sprint(number.Decimal(float64(cents)/100, number.Scale(2)))
	// frac is "0.37" in the locale's digits; drop the leading zero.
	_, size := utf8.DecodeRuneInString(frac)
	return intPart + frac[size:]
}

// Plain is the locale independent format: "1300.00€".
func Plain(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return fmt.Sprintf("%s%s", amount.StringFixed(2), symbol)
}

// Package format is the single boundary where numbers become display text.
// The valuation and simulation engines never import it.
package format

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders money and percentages for one currency and locale.
type Formatter struct {
	currency *money.Currency
	printer  *message.Printer
}

// New returns a Formatter for the ISO 4217 code and BCP 47 locale.
// Unknown currencies fall back to the bare code as symbol with two decimals;
// unparseable locales fall back to English digits.
func New(currencyCode, locale string) *Formatter {
	cur := money.GetCurrency(strings.ToUpper(currencyCode))
	if cur == nil {
		cur = &money.Currency{
			Code:     strings.ToUpper(currencyCode),
			Fraction: 2,
			Grapheme: strings.ToUpper(currencyCode),
			Template: "1 $",
		}
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &Formatter{
		currency: cur,
		printer:  message.NewPrinter(tag),
	}
}

// Currency formats amount using the locale's digit grouping and the currency's
// symbol placement, rounded half-away-from-zero to the currency's fraction.
func (f *Formatter) Currency(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(int32(f.currency.Fraction))

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	digits := f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(f.currency.Fraction)))
	return sign + strings.NewReplacer("1", digits, "$", f.currency.Grapheme).Replace(f.currency.Template)
}

// Percent formats v (already in percent units) with the given decimals.
func (f *Formatter) Percent(v float64, decimals int) string {
	rounded := decimal.NewFromFloat(v).Round(int32(decimals)).InexactFloat64()
	return f.printer.Sprint(number.Decimal(rounded, number.Scale(decimals))) + "%"
}

// SignedCurrency prefixes non-negative amounts with "+", as the dashboard
// does for profit figures.
func (f *Formatter) SignedCurrency(amount float64) string {
	if amount >= 0 {
		return "+" + f.Currency(amount)
	}
	return f.Currency(amount)
}

// Code returns the ISO currency code in use.
func (f *Formatter) Code() string {
	return f.currency.Code
}

// Currency is the one-shot form of New(currencyCode, locale).Currency(amount).
func Currency(amount float64, currencyCode, locale string) string {
	return New(currencyCode, locale).Currency(amount)
}

package cartview

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var symbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Formatter renders money amounts for one locale and currency.
type Formatter struct {
	printer *message.Printer
	symbol  string
	scale   int
}

// NewFormatter builds a Formatter for a BCP 47 locale ("pt-BR") and an ISO
// 4217 currency code ("BRL").
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String()
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
		scale:   scale,
	}, nil
}

// Format renders d with the currency symbol and the locale's separators.
func (f *Formatter) Format(d decimal.Decimal) string {
	v := d.Round(int32(f.scale)).InexactFloat64()
	return f.symbol + " " + f.printer.Sprintf("%v", number.Decimal(v, number.Scale(f.scale)))
}

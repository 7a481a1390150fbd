package services

import (
	"fmt"
	"strings"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// languages that write the currency symbol after the amount
var symbolAfterAmount = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
}

// CurrencyFormatter renders amounts in one currency using the locale
// attached to that currency.
type CurrencyFormatter struct {
	currency models.Currency
	printer  *message.Printer
	symbol   string
	scale    int
	suffix   bool
}

// FormatterForCurrency returns a formatter for code. Unknown codes fall back
// to the default currency.
func FormatterForCurrency(code string) *CurrencyFormatter {
	c, ok := models.LookupCurrency(code)
	if !ok {
		c, _ = models.LookupCurrency(models.DefaultCurrency)
	}

	tag := language.Make(c.Locale)
	unit := currency.MustParseISO(c.Code)
	scale, _ := currency.Standard.Rounding(unit)
	printer := message.NewPrinter(tag)
	base, _ := tag.Base()

	return &CurrencyFormatter{
		currency: c,
		printer:  printer,
		symbol:   printer.Sprint(currency.Symbol(unit)),
		scale:    scale,
		suffix:   symbolAfterAmount[base.String()],
	}
}

func (f *CurrencyFormatter) Currency() models.Currency {
	return f.currency
}

// Format renders amount with locale grouping, the currency's standard
// number of decimals and its symbol.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(int32(f.scale))
	number := f.printer.Sprintf(fmt.Sprintf("%%.%df", f.scale), rounded.Abs().InexactFloat64())

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	if f.suffix {
		b.WriteString(number)
		b.WriteString(" ")
		b.WriteString(f.symbol)
	} else {
		b.WriteString(f.symbol)
		b.WriteString(number)
	}
	return b.String()
}

package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPrice formats amount for currencyCode, e.g. "$1,234.50", "RM59.00",
// "1 234,00 kr". Unknown currencies use USD rules.
func DisplayPrice(amount decimal.Decimal, currencyCode string) string {
	c := LookupCurrency(currencyCode)

	thousands := c.ThousandsSep
	if thousands == "" {
		thousands = ","
	}
	decimalSep := c.DecimalSep
	if decimalSep == "" {
		decimalSep = "."
	}

	rounded := amount.Round(c.Decimals)
	negative := rounded.IsNegative()
	fixed := rounded.Abs().StringFixed(c.Decimals)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	b.WriteString(groupThousands(intPart, thousands))
	if c.Decimals > 0 {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	number := b.String()

	sep := ""
	if c.Spaced {
		sep = " "
	}
	var out string
	if c.Position == SymbolAfter {
		out = number + sep + c.Symbol
	} else {
		out = c.Symbol + sep + number
	}
	if negative {
		return "-" + out
	}
	return out
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

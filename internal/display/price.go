package display

import (
	"math"

	"github.com/campusfood/displayfmt/pkg/decimal"
)

// FormatPrice renders amount as "<symbol> <grouped units>", rounded to whole
// units half away from zero. Negative amounts are prefixed with "-", even
// when they round to zero. NaN and infinities are rendered, never rejected.
func (f *Formatter) FormatPrice(amount float64) string {
	sym := f.locale.CurrencySymbol
	switch {
	case math.IsNaN(amount):
		return sym + " NaN"
	case math.IsInf(amount, 1):
		return sym + " ∞"
	case math.IsInf(amount, -1):
		return "-" + sym + " ∞"
	}
	return f.price(decimal.NewMoney(amount), amount < 0)
}

// FormatPriceMoney is FormatPrice for amounts already held as Money.
func (f *Formatter) FormatPriceMoney(m decimal.Money) string {
	return f.price(m, m.IsNegative())
}

func (f *Formatter) price(m decimal.Money, negative bool) string {
	out := f.locale.CurrencySymbol + " " + m.Grouped(f.locale.ThousandsSep)
	if negative {
		return "-" + out
	}
	return out
}

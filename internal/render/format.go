package render

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// IDR formats a whole-unit rupiah amount for display, e.g. "Rp1.000".
// Amounts are tracked in whole units, so the fractional digits the
// currency table carries are dropped.
func IDR(d decimal.Decimal) string {
	f := *money.GetCurrency(money.IDR).Formatter()
	f.Fraction = 0
	return f.Format(d.Round(0).IntPart())
}

// SignedIDR is IDR with an explicit leading + on positive amounts.
func SignedIDR(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + IDR(d)
	}
	return IDR(d)
}

// Percent formats a percentage with two decimals, e.g. "2.11%".
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// MinorUnits converts the amount to the smallest denomination of the currency
// (e.g. cents), rounding half away from zero.
func (m Money) MinorUnits() int64 {
	return m.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

package trade

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CalculateCommission returns the platform cut of amount at rate percent, rounded half up
// to a whole FCFA. A zero (or negative) amount or rate yields 0.
func CalculateCommission(amount, rate decimal.Decimal) int64 {
	if !amount.IsPositive() || !rate.IsPositive() {
		return 0
	}
	return amount.Mul(rate).Div(hundred).Round(0).IntPart()
}

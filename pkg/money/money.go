package money

import "github.com/shopspring/decimal"

// Format renders an amount the way invoices and emails print it: "$" plus two decimals.
func Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// Sum adds the given amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Equal compares two amounts at cent precision.
func Equal(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}

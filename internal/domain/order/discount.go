package order

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/order-management/internal/domain/item"
)

var hundred = decimal.NewFromInt(100)

// calcSubtotal returns the sum of item prices.
func calcSubtotal(items []*item.Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price())
	}
	return sum
}

// applyPercentage reduces subtotal by percent/100 of itself. The result is
// not rounded or floored, so percentages outside 0..100 yield a surcharge or
// a negative total.
func applyPercentage(subtotal, percent decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(subtotal.Mul(percent).Div(hundred))
}

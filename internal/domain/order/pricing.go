package order

import "github.com/shopspring/decimal"

// TotalPrice sums qty × unit_price over all items using exact decimal
// arithmetic. Monetary values never pass through float64.
func TotalPrice(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Qty)))
		total = total.Add(line)
	}
	return total
}

// Convert produces the total expressed in every target currency. The base
// currency's entry is the input total itself, never recomputed through an
// identity rate, so no rounding can creep in. Currencies without a rate
// stay nil.
func Convert(total decimal.Decimal, base Currency, rates map[Currency]decimal.Decimal) ConvertedPrices {
	byRate := func(c Currency) *decimal.Decimal {
		if c == base {
			t := total
			return &t
		}
		rate, ok := rates[c]
		if !ok {
			return nil
		}
		v := total.Mul(rate)
		return &v
	}

	return ConvertedPrices{
		BRL: byRate(BRL),
		USD: byRate(USD),
		EUR: byRate(EUR),
	}
}

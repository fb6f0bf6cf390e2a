package bill

import (
	"fmt"

	"github.com/flick2split/backend/internal/money"
)

// Expand turns the bill's line items into one unit-priced record per quantity
// unit. Unit ids are derived from the source index and unit index, so
// expanding the same items again yields identical ids. The second return
// value is the recomputed subtotal (the sum of all line prices), used to
// detect drift from upstream editing.
//
// Expansion never fails: a quantity below 1 is treated as 1 and prices are
// already coerced to non-negative cents at ingestion. A line's price is
// distributed across its units exactly, leftover cents going to the leading
// units, so the units of a line always sum back to the line's price.
func Expand(items []LineItem) ([]Unit, money.Money) {
	var units []Unit
	var subtotal money.Money

	for i, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		price := item.Price
		if price < 0 {
			price = 0
		}
		subtotal += price

		shares := price.SplitN(qty)
		for u := 0; u < qty; u++ {
			units = append(units, Unit{
				ID:         fmt.Sprintf("item-%d-%d", i, u),
				OriginalID: fmt.Sprintf("item-%d", i),
				Name:       item.Name,
				Price:      shares[u],
			})
		}
	}

	return units, subtotal
}

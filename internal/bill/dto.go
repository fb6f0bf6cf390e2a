package bill

import (
	"strings"

	"github.com/flick2split/backend/internal/currency"
	"github.com/flick2split/backend/internal/money"
)

// LineItemRequest is one line item as sent by the client. Quantity and Price
// are untyped because the OCR pipeline sometimes delivers them as strings.
type LineItemRequest struct {
	Name     string `json:"name"`
	Quantity any    `json:"quantity"`
	Price    any    `json:"price"`
}

// BillRequest is the payload that opens a splitting session. All numeric
// fields are coerced defensively: missing or malformed values fall back to
// safe defaults instead of failing the request.
type BillRequest struct {
	Items      []LineItemRequest `json:"items"`
	Subtotal   any               `json:"subtotal"`
	Tax        any               `json:"tax"`
	Tip        any               `json:"tip"`
	TipPercent any               `json:"tip_percent,omitempty"`
	Total      any               `json:"total"`
	Currency   string            `json:"currency,omitempty"`
}

// ToBill coerces the request into a Bill. Prices and tax/tip default to 0,
// quantities to 1, negative amounts are clamped to 0. When no flat tip is
// given but a tip percentage is, the tip is computed from the subtotal. The
// total is always recomputed as subtotal + tax + tip so a stale upstream
// total cannot leak into settlement.
func (r *BillRequest) ToBill() Bill {
	items := make([]LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		price := money.Parse(it.Price, 0)
		if price < 0 {
			price = 0
		}
		items = append(items, LineItem{
			Name:     strings.TrimSpace(it.Name),
			Quantity: money.ParseCount(it.Quantity, 1),
			Price:    price,
		})
	}

	subtotal := money.Parse(r.Subtotal, 0)
	if subtotal < 0 {
		subtotal = 0
	}
	tax := money.Parse(r.Tax, 0)
	if tax < 0 {
		tax = 0
	}
	tip := money.Parse(r.Tip, 0)
	if tip < 0 {
		tip = 0
	}
	if tip == 0 {
		if pct := parsePercent(r.TipPercent); pct > 0 {
			tip = money.FromFloat(subtotal.Float64() * pct / 100)
		}
	}

	code := strings.ToUpper(strings.TrimSpace(r.Currency))
	if code == "" {
		code = "USD"
	}

	return Bill{
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Tip:      tip,
		Total:    subtotal + tax + tip,
		Currency: code,
		Symbol:   currency.Symbol(code),
	}
}

func parsePercent(v any) float64 {
	// Percent values ride the same noisy channel as amounts; reuse the money
	// coercion and scale back down.
	return money.Parse(v, 0).Float64()
}

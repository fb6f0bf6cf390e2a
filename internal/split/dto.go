package split

import (
	"fmt"
	"strings"

	"github.com/flick2split/backend/internal/currency"
	"github.com/flick2split/backend/internal/money"
)

// EvenSplitRequest carries the bill figures for an even split. Numeric fields
// are untyped and coerced like all ingestion: malformed values default to 0,
// people to 1. A tip may be given flat or as a percentage of the subtotal.
type EvenSplitRequest struct {
	Subtotal   any    `json:"subtotal"`
	Tax        any    `json:"tax"`
	Tip        any    `json:"tip"`
	TipPercent any    `json:"tip_percent,omitempty"`
	People     any    `json:"people"`
	Currency   string `json:"currency,omitempty"`
}

// EvenSplitResponse is the calculated per-person share plus a ready-to-share
// payment request message.
type EvenSplitResponse struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Tip       float64 `json:"tip"`
	Total     float64 `json:"total"`
	People    int     `json:"people"`
	PerPerson float64 `json:"per_person"`
	Message   string  `json:"message"`
}

// Calculate coerces the request and runs the even split.
func (r *EvenSplitRequest) Calculate() Breakdown {
	subtotal := money.Parse(r.Subtotal, 0)
	if subtotal < 0 {
		subtotal = 0
	}
	tax := money.Parse(r.Tax, 0)
	if tax < 0 {
		tax = 0
	}
	tip := money.Parse(r.Tip, 0)
	if tip <= 0 {
		tip = TipFromPercent(subtotal, money.Parse(r.TipPercent, 0).Float64())
	}

	return Even(subtotal, tax, tip, money.ParseCount(r.People, 1))
}

// ToResponse renders the breakdown with its share message.
func (b Breakdown) ToResponse(currencyCode string) EvenSplitResponse {
	symbol := currency.Symbol(strings.ToUpper(strings.TrimSpace(currencyCode)))

	return EvenSplitResponse{
		Subtotal:  b.Subtotal.Float64(),
		Tax:       b.Tax.Float64(),
		Tip:       b.Tip.Float64(),
		Total:     b.Total.Float64(),
		People:    b.People,
		PerPerson: b.PerPerson.Float64(),
		Message:   b.Message(symbol),
	}
}

// Message formats the payment request text shared after an even split.
func (b Breakdown) Message(symbol string) string {
	var sb strings.Builder

	sb.WriteString("💰 PAYMENT REQUEST 💰\n\n")
	fmt.Fprintf(&sb, "You guys all owe me %s each for our meal.\n\n", b.PerPerson.Format(symbol))
	sb.WriteString("Bill Details:\n")
	fmt.Fprintf(&sb, "- Subtotal: %s\n", b.Subtotal.Format(symbol))
	fmt.Fprintf(&sb, "- Tax: %s\n", b.Tax.Format(symbol))
	fmt.Fprintf(&sb, "- Tip: %s\n", b.Tip.Format(symbol))
	fmt.Fprintf(&sb, "- Total: %s\n\n", b.Total.Format(symbol))
	fmt.Fprintf(&sb, "Split between %d people\n", b.People)
	sb.WriteString("Please Venmo or pay me in cash!\n\n")
	sb.WriteString("Sent via Flick2Split")

	return sb.String()
}

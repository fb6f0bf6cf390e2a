package bill

import "github.com/flick2split/backend/internal/money"

// LineItem is one confirmed line on the bill: a name, how many were ordered,
// and the total price for the full quantity.
type LineItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    money.Money `json:"price"`
}

// Bill is the confirmed bill as received from the OCR backend or manual
// entry. The engine treats Subtotal as the authoritative denominator for
// proportional tax/tip allocation and never mutates a Bill after session
// creation.
type Bill struct {
	Items    []LineItem  `json:"items"`
	Subtotal money.Money `json:"subtotal"`
	Tax      money.Money `json:"tax"`
	Tip      money.Money `json:"tip"`
	Total    money.Money `json:"total"`
	Currency string      `json:"currency"`
	Symbol   string      `json:"currency_symbol"`
}

// Unit is one indivisible priced piece derived from a LineItem's quantity.
// Units are what guests select; a Unit can be replaced by split fragments but
// a fragment itself can never be split again.
type Unit struct {
	ID         string      `json:"id"`
	OriginalID string      `json:"original_id"`
	Name       string      `json:"name"`
	Price      money.Money `json:"price"`
	IsSplit    bool        `json:"is_split"`
	SplitPart  int         `json:"split_part,omitempty"`
	SplitTotal int         `json:"split_total,omitempty"`
}

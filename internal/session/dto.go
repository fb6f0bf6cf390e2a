package session

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/flick2split/backend/internal/bill"
)

// BeginGuestRequest names the next guest.
type BeginGuestRequest struct {
	Name string `json:"name"`
}

// ToggleRequest flips one pool unit in or out of the current selection.
type ToggleRequest struct {
	UnitID string `json:"unit_id"`
}

// SplitRequest divides one pool unit into Ways fragments. Ways is untyped
// because the UI sends it as a string; unlike bill amounts it is not coerced
// to a default — a non-integer or sub-2 value is a validation error.
type SplitRequest struct {
	UnitID string `json:"unit_id"`
	Ways   any    `json:"ways"`
}

// ParseWays extracts the split count. The boolean is false when the value is
// missing or not a whole number; range checking is left to the ledger.
func (r *SplitRequest) ParseWays() (int, bool) {
	switch w := r.Ways.(type) {
	case float64:
		if w != math.Trunc(w) {
			return 0, false
		}
		return int(w), true
	case json.Number:
		i, err := w.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// UnitResponse is one selectable unit as shown to the client.
type UnitResponse struct {
	ID         string  `json:"id"`
	OriginalID string  `json:"original_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	IsSplit    bool    `json:"is_split"`
	SplitPart  int     `json:"split_part,omitempty"`
	SplitTotal int     `json:"split_total,omitempty"`
}

// GuestResponse is one settled guest's breakdown.
type GuestResponse struct {
	Name     string         `json:"name"`
	Items    []UnitResponse `json:"items"`
	Subtotal float64        `json:"subtotal"`
	Tax      float64        `json:"tax"`
	Tip      float64        `json:"tip"`
	Total    float64        `json:"total"`
}

// BillResponse echoes the bill totals the session was opened with.
type BillResponse struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	Symbol   string  `json:"currency_symbol"`
}

// SessionResponse is the full client view of a session.
type SessionResponse struct {
	ID           string          `json:"id"`
	Phase        Phase           `json:"phase"`
	CurrentGuest string          `json:"current_guest,omitempty"`
	Selection    []string        `json:"selection,omitempty"`
	Pool         []UnitResponse  `json:"pool"`
	Guests       []GuestResponse `json:"guests"`
	Bill         BillResponse    `json:"bill"`
}

func toUnitResponse(u bill.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		OriginalID: u.OriginalID,
		Name:       u.Name,
		Price:      u.Price.Float64(),
		IsSplit:    u.IsSplit,
		SplitPart:  u.SplitPart,
		SplitTotal: u.SplitTotal,
	}
}

func toUnitResponses(units []bill.Unit) []UnitResponse {
	out := make([]UnitResponse, len(units))
	for i, u := range units {
		out[i] = toUnitResponse(u)
	}
	return out
}

// ToResponse converts a guest record to its response DTO.
func (g GuestRecord) ToResponse() GuestResponse {
	return GuestResponse{
		Name:     g.Name,
		Items:    toUnitResponses(g.Items),
		Subtotal: g.Subtotal.Float64(),
		Tax:      g.Tax.Float64(),
		Tip:      g.Tip.Float64(),
		Total:    g.Total.Float64(),
	}
}

// ToResponse converts a snapshot to the full session DTO.
func (s Snapshot) ToResponse() SessionResponse {
	guests := make([]GuestResponse, len(s.Guests))
	for i, g := range s.Guests {
		guests[i] = g.ToResponse()
	}

	return SessionResponse{
		ID:           s.ID,
		Phase:        s.Phase,
		CurrentGuest: s.CurrentGuest,
		Selection:    s.Selection,
		Pool:         toUnitResponses(s.Pool),
		Guests:       guests,
		Bill: BillResponse{
			Subtotal: s.Bill.Subtotal.Float64(),
			Tax:      s.Bill.Tax.Float64(),
			Tip:      s.Bill.Tip.Float64(),
			Total:    s.Bill.Total.Float64(),
			Currency: s.Bill.Currency,
			Symbol:   s.Bill.Symbol,
		},
	}
}

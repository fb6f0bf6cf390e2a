package report

// ItemLine is one assigned or remaining unit in the report response.
type ItemLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GuestLineResponse is one guest's breakdown in the report response.
type GuestLineResponse struct {
	Name     string     `json:"name"`
	Items    []ItemLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Tip      float64    `json:"tip"`
	Total    float64    `json:"total"`
}

// ReportResponse is the settlement report as returned to clients.
type ReportResponse struct {
	Guests         []GuestLineResponse `json:"guests"`
	BillSubtotal   float64             `json:"bill_subtotal"`
	BillTax        float64             `json:"bill_tax"`
	BillTip        float64             `json:"bill_tip"`
	BillTotal      float64             `json:"bill_total"`
	TotalCollected float64             `json:"total_collected"`
	Complete       bool                `json:"complete"`
	Balanced       bool                `json:"balanced"`
	Remaining      []ItemLine          `json:"remaining,omitempty"`
	RemainingValue float64             `json:"remaining_value,omitempty"`
	Currency       string              `json:"currency"`
	Symbol         string              `json:"currency_symbol"`
	Converted      bool                `json:"converted,omitempty"`
	FromCurrency   string              `json:"from_currency,omitempty"`
	Rate           float64             `json:"exchange_rate,omitempty"`
}

// MessageResponse wraps the shareable summary text.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToResponse converts a report to its response DTO.
func (r Report) ToResponse() ReportResponse {
	guests := make([]GuestLineResponse, len(r.Guests))
	for i, g := range r.Guests {
		items := make([]ItemLine, len(g.Items))
		for j, it := range g.Items {
			items[j] = ItemLine{ID: it.ID, Name: it.Name, Price: it.Price.Float64()}
		}
		guests[i] = GuestLineResponse{
			Name:     g.Name,
			Items:    items,
			Subtotal: g.Subtotal.Float64(),
			Tax:      g.Tax.Float64(),
			Tip:      g.Tip.Float64(),
			Total:    g.Total.Float64(),
		}
	}

	remaining := make([]ItemLine, len(r.Remaining))
	for i, u := range r.Remaining {
		remaining[i] = ItemLine{ID: u.ID, Name: u.Name, Price: u.Price.Float64()}
	}

	resp := ReportResponse{
		Guests:         guests,
		BillSubtotal:   r.BillSubtotal.Float64(),
		BillTax:        r.BillTax.Float64(),
		BillTip:        r.BillTip.Float64(),
		BillTotal:      r.BillTotal.Float64(),
		TotalCollected: r.TotalCollected.Float64(),
		Complete:       r.Complete,
		Balanced:       r.Balanced,
		Remaining:      remaining,
		RemainingValue: r.RemainingValue.Float64(),
		Currency:       r.Currency,
		Symbol:         r.Symbol,
	}
	if r.Converted {
		resp.Converted = true
		resp.FromCurrency = r.FromCurrency
		resp.Rate = r.Rate
	}
	return resp
}

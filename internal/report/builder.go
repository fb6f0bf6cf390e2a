package report

import (
	"github.com/flick2split/backend/internal/bill"
	"github.com/flick2split/backend/internal/currency"
	"github.com/flick2split/backend/internal/money"
	"github.com/flick2split/backend/internal/session"
)

// GuestLine is one guest's breakdown inside a report.
type GuestLine struct {
	Name     string
	Items    []bill.Unit
	Subtotal money.Money
	Tax      money.Money
	Tip      money.Money
	Total    money.Money
}

// Report is the aggregated, auditable view of all settled guests against the
// original bill. While units remain unassigned the report is explicitly
// partial: Complete is false and the remaining pool value is exposed instead
// of presenting an incomplete split as final.
type Report struct {
	Guests         []GuestLine
	BillSubtotal   money.Money
	BillTax        money.Money
	BillTip        money.Money
	BillTotal      money.Money
	TotalCollected money.Money
	Complete       bool
	Balanced       bool
	Remaining      []bill.Unit
	RemainingValue money.Money
	Currency       string
	Symbol         string

	// Conversion state; display-only, settled records are never touched.
	Converted    bool
	FromCurrency string
	Rate         float64
}

// Build aggregates the guest history and remaining pool into a report. The
// conservation check allows one cent of rounding slack per guest, though with
// exact remainder absorption in the ledger a complete split balances to zero.
func Build(b bill.Bill, guests []session.GuestRecord, remaining []bill.Unit) Report {
	lines := make([]GuestLine, len(guests))
	var collected money.Money
	for i, g := range guests {
		lines[i] = GuestLine{
			Name:     g.Name,
			Items:    g.Items,
			Subtotal: g.Subtotal,
			Tax:      g.Tax,
			Tip:      g.Tip,
			Total:    g.Total,
		}
		collected += g.Total
	}

	var remainingValue money.Money
	for _, u := range remaining {
		remainingValue += u.Price
	}

	complete := len(remaining) == 0
	drift := collected - b.Total
	if drift < 0 {
		drift = -drift
	}

	return Report{
		Guests:         lines,
		BillSubtotal:   b.Subtotal,
		BillTax:        b.Tax,
		BillTip:        b.Tip,
		BillTotal:      b.Total,
		TotalCollected: collected,
		Complete:       complete,
		Balanced:       complete && drift <= money.Money(max(len(guests), 1)),
		Remaining:      remaining,
		RemainingValue: remainingValue,
		Currency:       b.Currency,
		Symbol:         b.Symbol,
		Rate:           1,
	}
}

// Convert re-expresses every monetary figure at the given rate. It returns a
// new report; the one it is called on, and the guest records underneath, keep
// their settled amounts.
func (r Report) Convert(target string, rate float64) Report {
	if rate <= 0 {
		rate = 1
	}

	out := r
	out.Guests = make([]GuestLine, len(r.Guests))
	for i, g := range r.Guests {
		out.Guests[i] = GuestLine{
			Name:     g.Name,
			Items:    convertUnits(g.Items, rate),
			Subtotal: g.Subtotal.Convert(rate),
			Tax:      g.Tax.Convert(rate),
			Tip:      g.Tip.Convert(rate),
			Total:    g.Total.Convert(rate),
		}
	}
	out.Remaining = convertUnits(r.Remaining, rate)
	out.BillSubtotal = r.BillSubtotal.Convert(rate)
	out.BillTax = r.BillTax.Convert(rate)
	out.BillTip = r.BillTip.Convert(rate)
	out.BillTotal = r.BillTotal.Convert(rate)
	out.TotalCollected = r.TotalCollected.Convert(rate)
	out.RemainingValue = r.RemainingValue.Convert(rate)

	out.Converted = true
	out.FromCurrency = r.Currency
	out.Currency = target
	out.Symbol = currency.Symbol(target)
	out.Rate = rate
	return out
}

func convertUnits(units []bill.Unit, rate float64) []bill.Unit {
	out := make([]bill.Unit, len(units))
	for i, u := range units {
		out[i] = u
		out[i].Price = u.Price.Convert(rate)
	}
	return out
}

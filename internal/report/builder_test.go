package report

import (
	"testing"

	"github.com/flick2split/backend/internal/bill"
	"github.com/flick2split/backend/internal/session"
)

func testBill() bill.Bill {
	return bill.Bill{
		Subtotal: 10000,
		Tax:      1000,
		Tip:      2000,
		Total:    13000,
		Currency: "USD",
		Symbol:   "$",
	}
}

func guestA() session.GuestRecord {
	return session.GuestRecord{
		Name: "Ana",
		Items: []bill.Unit{
			{ID: "item-0-0", OriginalID: "item-0", Name: "Steak", Price: 4000},
		},
		Subtotal: 4000,
		Tax:      400,
		Tip:      800,
		Total:    5200,
	}
}

func guestB() session.GuestRecord {
	return session.GuestRecord{
		Name: "Ben",
		Items: []bill.Unit{
			{ID: "item-1-0", OriginalID: "item-1", Name: "Pasta", Price: 6000},
		},
		Subtotal: 6000,
		Tax:      600,
		Tip:      1200,
		Total:    7800,
	}
}

func TestBuildPartial(t *testing.T) {
	remaining := []bill.Unit{
		{ID: "item-1-0", OriginalID: "item-1", Name: "Pasta", Price: 6000},
	}

	r := Build(testBill(), []session.GuestRecord{guestA()}, remaining)

	if r.Complete {
		t.Error("report with a non-empty pool claims to be complete")
	}
	if r.Balanced {
		t.Error("partial report claims to be balanced")
	}
	if r.TotalCollected != 5200 {
		t.Errorf("TotalCollected = %d, want 5200", r.TotalCollected)
	}
	if r.TotalCollected >= r.BillTotal {
		t.Errorf("partial report collected %d >= bill total %d", r.TotalCollected, r.BillTotal)
	}
	if r.RemainingValue != 6000 {
		t.Errorf("RemainingValue = %d, want 6000", r.RemainingValue)
	}
}

func TestBuildComplete(t *testing.T) {
	r := Build(testBill(), []session.GuestRecord{guestA(), guestB()}, nil)

	if !r.Complete {
		t.Error("report with empty pool not complete")
	}
	if !r.Balanced {
		t.Errorf("collected %d vs bill %d not balanced", r.TotalCollected, r.BillTotal)
	}
	if r.TotalCollected != 13000 {
		t.Errorf("TotalCollected = %d, want 13000", r.TotalCollected)
	}
	if r.Converted {
		t.Error("unconverted report flagged as converted")
	}
	if r.Rate != 1 {
		t.Errorf("Rate = %v, want 1", r.Rate)
	}
}

func TestBuildUnbalancedDrift(t *testing.T) {
	// A guest record whose total drifted beyond the per-guest cent slack.
	bad := guestA()
	bad.Total += 500

	r := Build(testBill(), []session.GuestRecord{bad, guestB()}, nil)
	if r.Balanced {
		t.Errorf("drifted report (collected %d, bill %d) claims balance", r.TotalCollected, r.BillTotal)
	}
}

func TestConvertIsDisplayOnly(t *testing.T) {
	guests := []session.GuestRecord{guestA(), guestB()}
	r := Build(testBill(), guests, nil)

	converted := r.Convert("EUR", 2)

	if converted.TotalCollected != 26000 || converted.BillTotal != 26000 {
		t.Errorf("converted totals = %d/%d, want 26000", converted.TotalCollected, converted.BillTotal)
	}
	if converted.Guests[0].Total != 10400 || converted.Guests[0].Items[0].Price != 8000 {
		t.Errorf("converted guest = %+v", converted.Guests[0])
	}
	if converted.Currency != "EUR" || converted.Symbol != "€" || converted.FromCurrency != "USD" || !converted.Converted {
		t.Errorf("conversion metadata = %+v", converted)
	}

	// The original report and the settled records underneath are untouched.
	if r.TotalCollected != 13000 || r.Guests[0].Total != 5200 {
		t.Errorf("source report mutated by Convert: %+v", r)
	}
	if guests[0].Total != 5200 || guests[0].Items[0].Price != 4000 {
		t.Errorf("guest record mutated by Convert: %+v", guests[0])
	}
}

func TestConvertBadRateFallsBack(t *testing.T) {
	r := Build(testBill(), []session.GuestRecord{guestA(), guestB()}, nil)
	converted := r.Convert("EUR", 0)
	if converted.TotalCollected != r.TotalCollected {
		t.Errorf("zero rate changed amounts: %d", converted.TotalCollected)
	}
	if converted.Rate != 1 {
		t.Errorf("fallback rate = %v, want 1", converted.Rate)
	}
}

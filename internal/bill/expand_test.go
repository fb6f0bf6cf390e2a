package bill

import (
	"reflect"
	"testing"

	"github.com/flick2split/backend/internal/money"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		wantCount    int
		wantSubtotal money.Money
		validateFunc func(t *testing.T, units []Unit)
	}{
		{
			name: "quantity expands into unit-priced records",
			items: []LineItem{
				{Name: "Beer", Quantity: 3, Price: 900},
				{Name: "Burger", Quantity: 1, Price: 1250},
			},
			wantCount:    4,
			wantSubtotal: 2150,
			validateFunc: func(t *testing.T, units []Unit) {
				for i, u := range units[:3] {
					if u.Price != 300 {
						t.Errorf("beer unit %d price = %d, want 300", i, u.Price)
					}
					if u.OriginalID != "item-0" {
						t.Errorf("beer unit %d originalID = %q, want item-0", i, u.OriginalID)
					}
				}
				if units[0].ID != "item-0-0" || units[1].ID != "item-0-1" {
					t.Errorf("unexpected unit ids: %q, %q", units[0].ID, units[1].ID)
				}
				if units[3].ID != "item-1-0" || units[3].Price != 1250 {
					t.Errorf("burger unit = %+v", units[3])
				}
			},
		},
		{
			name:         "indivisible price conserves total across units",
			items:        []LineItem{{Name: "Wine", Quantity: 3, Price: 1000}},
			wantCount:    3,
			wantSubtotal: 1000,
			validateFunc: func(t *testing.T, units []Unit) {
				var sum money.Money
				for _, u := range units {
					sum += u.Price
				}
				if sum != 1000 {
					t.Errorf("unit prices sum to %d, want 1000", sum)
				}
				if units[0].Price != 334 || units[1].Price != 333 {
					t.Errorf("remainder cents not on leading units: %d, %d", units[0].Price, units[1].Price)
				}
			},
		},
		{
			name:         "zero quantity treated as one",
			items:        []LineItem{{Name: "Soup", Quantity: 0, Price: 600}},
			wantCount:    1,
			wantSubtotal: 600,
		},
		{
			name:         "negative price coerced to zero",
			items:        []LineItem{{Name: "Discount", Quantity: 1, Price: -500}},
			wantCount:    1,
			wantSubtotal: 0,
		},
		{
			name:         "no items",
			items:        nil,
			wantCount:    0,
			wantSubtotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, subtotal := Expand(tt.items)
			if len(units) != tt.wantCount {
				t.Fatalf("Expand() returned %d units, want %d", len(units), tt.wantCount)
			}
			if subtotal != tt.wantSubtotal {
				t.Errorf("recalculated subtotal = %d, want %d", subtotal, tt.wantSubtotal)
			}
			for _, u := range units {
				if u.IsSplit || u.SplitPart != 0 || u.SplitTotal != 0 {
					t.Errorf("expanded unit %q carries split lineage: %+v", u.ID, u)
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, units)
			}
		})
	}
}

func TestExpandIdempotence(t *testing.T) {
	items := []LineItem{
		{Name: "Pad Thai", Quantity: 2, Price: 2399},
		{Name: "Spring Rolls", Quantity: 3, Price: 1000},
	}

	first, firstSub := Expand(items)
	second, secondSub := Expand(items)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expanding the same items twice produced different units:\n%+v\n%+v", first, second)
	}
	if firstSub != secondSub {
		t.Errorf("subtotals differ: %d vs %d", firstSub, secondSub)
	}
}

func TestBillRequestToBill(t *testing.T) {
	tests := []struct {
		name         string
		req          BillRequest
		validateFunc func(t *testing.T, b Bill)
	}{
		{
			name: "noisy string fields coerced",
			req: BillRequest{
				Items: []LineItemRequest{
					{Name: " Pizza ", Quantity: "2", Price: "20.00"},
					{Name: "Salad", Quantity: nil, Price: nil},
				},
				Subtotal: "20.00",
				Tax:      "1.80",
				Tip:      "bogus",
			},
			validateFunc: func(t *testing.T, b Bill) {
				if b.Items[0].Name != "Pizza" || b.Items[0].Quantity != 2 || b.Items[0].Price != 2000 {
					t.Errorf("item 0 = %+v", b.Items[0])
				}
				if b.Items[1].Quantity != 1 || b.Items[1].Price != 0 {
					t.Errorf("item 1 defaults not applied: %+v", b.Items[1])
				}
				if b.Subtotal != 2000 || b.Tax != 180 || b.Tip != 0 {
					t.Errorf("totals = %d/%d/%d", b.Subtotal, b.Tax, b.Tip)
				}
				if b.Total != 2180 {
					t.Errorf("total = %d, want 2180", b.Total)
				}
				if b.Currency != "USD" || b.Symbol != "$" {
					t.Errorf("currency defaults = %q %q", b.Currency, b.Symbol)
				}
			},
		},
		{
			name: "tip percent fills a missing flat tip",
			req: BillRequest{
				Subtotal:   100.0,
				TipPercent: 18.0,
			},
			validateFunc: func(t *testing.T, b Bill) {
				if b.Tip != 1800 {
					t.Errorf("tip = %d, want 1800", b.Tip)
				}
				if b.Total != 11800 {
					t.Errorf("total = %d, want 11800", b.Total)
				}
			},
		},
		{
			name: "flat tip wins over percent",
			req: BillRequest{
				Subtotal:   100.0,
				Tip:        5.0,
				TipPercent: 18.0,
			},
			validateFunc: func(t *testing.T, b Bill) {
				if b.Tip != 500 {
					t.Errorf("tip = %d, want 500", b.Tip)
				}
			},
		},
		{
			name: "negative amounts clamped",
			req: BillRequest{
				Subtotal: -10.0,
				Tax:      -1.0,
				Tip:      -2.0,
			},
			validateFunc: func(t *testing.T, b Bill) {
				if b.Subtotal != 0 || b.Tax != 0 || b.Tip != 0 || b.Total != 0 {
					t.Errorf("negative amounts not clamped: %+v", b)
				}
			},
		},
		{
			name: "known currency keeps its symbol",
			req: BillRequest{
				Currency: "eur",
			},
			validateFunc: func(t *testing.T, b Bill) {
				if b.Currency != "EUR" || b.Symbol != "€" {
					t.Errorf("currency = %q %q", b.Currency, b.Symbol)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, tt.req.ToBill())
		})
	}
}

package money

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  Money
		want Money
	}{
		{name: "plain float", in: 12.34, def: 0, want: 1234},
		{name: "integer float", in: 40.0, def: 0, want: 4000},
		{name: "numeric string", in: "12.34", def: 0, want: 1234},
		{name: "string with symbol", in: "$5", def: 0, want: 500},
		{name: "string with spaces", in: " 7.5 ", def: 0, want: 750},
		{name: "garbage string", in: "abc", def: 99, want: 99},
		{name: "empty string", in: "", def: 99, want: 99},
		{name: "missing value", in: nil, def: 99, want: 99},
		{name: "wrong type", in: true, def: 99, want: 99},
		{name: "NaN", in: math.NaN(), def: 99, want: 0},
		{name: "rounds to nearest cent", in: 0.005, def: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.in, tt.def); got != tt.want {
				t.Errorf("Parse(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  int
		want int
	}{
		{name: "float", in: 3.0, def: 1, want: 3},
		{name: "string", in: "4", def: 1, want: 4},
		{name: "zero falls back", in: 0.0, def: 1, want: 1},
		{name: "negative falls back", in: -2.0, def: 1, want: 1},
		{name: "garbage falls back", in: "x", def: 2, want: 2},
		{name: "missing falls back", in: nil, def: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCount(tt.in, tt.def); got != tt.want {
				t.Errorf("ParseCount(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitN(t *testing.T) {
	tests := []struct {
		name  string
		total Money
		n     int
		want  []Money
	}{
		{name: "even division", total: 900, n: 3, want: []Money{300, 300, 300}},
		{name: "remainder to leading parts", total: 1000, n: 3, want: []Money{334, 333, 333}},
		{name: "two cent remainder", total: 1001, n: 3, want: []Money{334, 334, 333}},
		{name: "single part", total: 500, n: 1, want: []Money{500}},
		{name: "n below one coerced", total: 500, n: 0, want: []Money{500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.total.SplitN(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitN(%d) returned %d parts, want %d", tt.n, len(got), len(tt.want))
			}
			var sum Money
			for i, p := range got {
				if p != tt.want[i] {
					t.Errorf("part %d = %d, want %d", i, p, tt.want[i])
				}
				sum += p
			}
			if sum != tt.total {
				t.Errorf("parts sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestAllocate(t *testing.T) {
	// Bill tax $10.00 allocated to a $40.00 share of a $100.00 subtotal is $4.00.
	if got := Money(1000).Allocate(4000, 10000); got != 400 {
		t.Errorf("Allocate(4000, 10000) = %d, want 400", got)
	}
	// Rounds to the nearest cent: 10.00 * 1/3 = 3.33.
	if got := Money(1000).Allocate(1, 3); got != 333 {
		t.Errorf("Allocate(1, 3) = %d, want 333", got)
	}
	// Half cents round up: 1.00 * 1/200 = 0.005 -> 0.01.
	if got := Money(100).Allocate(1, 200); got != 1 {
		t.Errorf("Allocate(1, 200) = %d, want 1", got)
	}
	// Zero denominator yields zero, never NaN or a panic.
	if got := Money(1000).Allocate(500, 0); got != 0 {
		t.Errorf("Allocate with zero denominator = %d, want 0", got)
	}
}

func TestFormatting(t *testing.T) {
	if got := Money(3150).String(); got != "31.50" {
		t.Errorf("String() = %q, want %q", got, "31.50")
	}
	if got := Money(5).String(); got != "0.05" {
		t.Errorf("String() = %q, want %q", got, "0.05")
	}
	if got := Money(1234).Format("€"); got != "€12.34" {
		t.Errorf("Format() = %q, want %q", got, "€12.34")
	}
	if got := Money(1234).Format(""); got != "$12.34" {
		t.Errorf("Format with empty symbol = %q, want %q", got, "$12.34")
	}
	if got := Money(1234).Float64(); got != 12.34 {
		t.Errorf("Float64() = %v, want 12.34", got)
	}
}

func TestConvert(t *testing.T) {
	if got := Money(1000).Convert(0.91); got != 910 {
		t.Errorf("Convert(0.91) = %d, want 910", got)
	}
	if got := Money(1000).Convert(1); got != 1000 {
		t.Errorf("Convert(1) = %d, want 1000", got)
	}
	if got := Money(1000).Convert(math.NaN()); got != 1000 {
		t.Errorf("Convert(NaN) = %d, want 1000", got)
	}
}

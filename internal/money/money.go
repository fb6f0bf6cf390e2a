package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in minor units (cents). All arithmetic in the
// engine happens on this type; floats only appear at parse and display
// boundaries.
type Money int64

// Zero is the zero amount.
const Zero Money = 0

// FromFloat converts a decimal amount (e.g. 12.34) to cents, rounding to the
// nearest cent. NaN and infinities convert to zero.
func FromFloat(f float64) Money {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero
	}
	d := decimal.NewFromFloat(f).Mul(decimal.NewFromInt(100)).Round(0)
	return Money(d.IntPart())
}

// Parse coerces a raw JSON value into Money. Upstream bill data comes from an
// OCR pipeline and may carry numbers, numeric strings, or garbage; anything
// unparseable yields def. Mirrors the parseFloat-or-default ingestion rule.
func Parse(v any, def Money) Money {
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		return FromFloat(n)
	case int:
		return FromFloat(float64(n))
	case int64:
		return FromFloat(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def
		}
		return FromFloat(f)
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(n), "$"))
		if s == "" {
			return def
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return def
		}
		return Money(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	default:
		return def
	}
}

// ParseCount coerces a raw JSON value into a positive integer count,
// falling back to def when the value is missing, unparseable, or < 1.
func ParseCount(v any, def int) int {
	n := def
	switch c := v.(type) {
	case float64:
		n = int(c)
	case int:
		n = c
	case json.Number:
		if i, err := c.Int64(); err == nil {
			n = int(i)
		} else if f, err := c.Float64(); err == nil {
			n = int(f)
		}
	case string:
		s := strings.TrimSpace(c)
		if i, err := strconv.Atoi(s); err == nil {
			n = i
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			n = int(f)
		}
	}
	if n < 1 {
		return def
	}
	return n
}

// Float64 returns the amount in major units (dollars).
func (m Money) Float64() float64 {
	f, _ := decimal.New(int64(m), -2).Float64()
	return f
}

// String formats the amount with two decimal places and no symbol, e.g. "12.34".
func (m Money) String() string {
	return decimal.New(int64(m), -2).StringFixed(2)
}

// Format renders the amount with a currency symbol prefix, e.g. "$12.34".
func (m Money) Format(symbol string) string {
	if symbol == "" {
		symbol = "$"
	}
	return symbol + m.String()
}

// Allocate returns this amount scaled by num/den, rounded to the nearest
// cent. Used for proportional tax and tip shares where den is the bill
// subtotal. A zero or negative denominator yields zero rather than NaN.
func (m Money) Allocate(num, den Money) Money {
	if den <= 0 {
		return Zero
	}
	v := int64(m) * int64(num)
	q := v / int64(den)
	if 2*(v%int64(den)) >= int64(den) {
		q++
	}
	return Money(q)
}

// SplitN divides the amount into n parts that sum back to it exactly: every
// part gets the floor share and the leftover cents go one each to the leading
// parts. n < 1 yields a single part holding the whole amount.
func (m Money) SplitN(n int) []Money {
	if n < 1 {
		n = 1
	}
	base := int64(m) / int64(n)
	rem := int64(m) % int64(n)
	parts := make([]Money, n)
	for i := range parts {
		parts[i] = Money(base)
		if int64(i) < rem {
			parts[i]++
		}
	}
	return parts
}

// Convert re-expresses the amount in another currency at the given rate,
// rounding to the nearest cent. Display-only: callers must not write the
// result back into settled records.
func (m Money) Convert(rate float64) Money {
	if rate == 1 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return m
	}
	d := decimal.New(int64(m), 0).Mul(decimal.NewFromFloat(rate)).Round(0)
	return Money(d.IntPart())
}

// Sum adds a list of amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}

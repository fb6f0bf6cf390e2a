package split

// =============================================================================
// EVEN SPLIT
// Divides the whole bill equally among all people, no item assignment
// =============================================================================

import "github.com/flick2split/backend/internal/money"

// Breakdown is the result of an even split.
type Breakdown struct {
	Subtotal  money.Money
	Tax       money.Money
	Tip       money.Money
	Total     money.Money
	People    int
	PerPerson money.Money
}

// Even splits subtotal + tax + tip evenly across the given number of people.
// A people count below 1 is coerced to 1. The per-person amount is rounded to
// the nearest cent.
func Even(subtotal, tax, tip money.Money, people int) Breakdown {
	if people < 1 {
		people = 1
	}
	total := subtotal + tax + tip

	perPerson := total / money.Money(people)
	if 2*(total%money.Money(people)) >= money.Money(people) {
		perPerson++
	}

	return Breakdown{
		Subtotal:  subtotal,
		Tax:       tax,
		Tip:       tip,
		Total:     total,
		People:    people,
		PerPerson: perPerson,
	}
}

// TipFromPercent computes a tip as a percentage of the subtotal, the way the
// tip buttons on the entry screen do. Negative percentages yield zero.
func TipFromPercent(subtotal money.Money, percent float64) money.Money {
	if percent <= 0 {
		return 0
	}
	return money.FromFloat(subtotal.Float64() * percent / 100)
}

package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flick2split/backend/internal/bill"
	"github.com/flick2split/backend/internal/money"
)

// Common errors
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyName         = errors.New("guest name is required")
	ErrDuplicateName     = errors.New("a guest with this name already exists")
	ErrGuestInProgress   = errors.New("a guest is already selecting items")
	ErrNoGuestInProgress = errors.New("no guest is currently selecting items")
	ErrAllAssigned       = errors.New("all items have already been assigned")
	ErrUnitNotFound      = errors.New("item not found in the pool")
	ErrUnitNotSplittable = errors.New("item is already a split fragment")
	ErrInvalidSplitCount = errors.New("split count must be a whole number of at least 2")
	ErrNoItemsSelected   = errors.New("select at least one item before confirming")
)

// BeginGuest starts the select-items cycle for a new guest. Names must be
// non-empty and unique (case-insensitively) among this session's confirmed
// guests. Rejection leaves the session state untouched.
func (s *Session) BeginGuest(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	switch s.phase {
	case PhaseSelecting:
		return ErrGuestInProgress
	case PhaseAllAssigned:
		return ErrAllAssigned
	}

	for _, g := range s.guests {
		if strings.EqualFold(g.Name, name) {
			return ErrDuplicateName
		}
	}

	s.guestName = name
	s.selection = nil
	s.phase = PhaseSelecting
	return nil
}

// ToggleSelect adds the unit to the current guest's selection if absent, or
// removes it if present. The pool itself is untouched. Returns whether the
// unit is selected after the toggle.
func (s *Session) ToggleSelect(unitID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSelecting {
		return false, ErrNoGuestInProgress
	}
	if s.poolIndex(unitID) < 0 {
		return false, ErrUnitNotFound
	}

	for i, id := range s.selection {
		if id == unitID {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return false, nil
		}
	}
	s.selection = append(s.selection, unitID)
	return true, nil
}

// Split replaces one live unit with n equal-priced fragments. The fragments
// carry their lineage (split part, split total, shared original id) and are
// inserted contiguously with any existing fragments of the same original
// item, so related pieces stay grouped for selection and auditing. A fragment
// cannot be split again. If the unit sits in the current guest's selection it
// is deselected first.
func (s *Session) Split(unitID string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 2 {
		return ErrInvalidSplitCount
	}

	idx := s.poolIndex(unitID)
	if idx < 0 {
		return ErrUnitNotFound
	}
	original := s.pool[idx]
	if original.IsSplit {
		return ErrUnitNotSplittable
	}

	for i, id := range s.selection {
		if id == unitID {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			break
		}
	}

	fragments := splitUnit(original, n)
	pool := append(s.pool[:idx:idx], s.pool[idx+1:]...)

	// Keep fragments of the same original item contiguous: append after the
	// last existing sibling run, otherwise take over the removed unit's spot.
	at := idx
	if first := firstSibling(pool, original.OriginalID); first >= 0 {
		last := first
		for last+1 < len(pool) && pool[last+1].OriginalID == original.OriginalID && pool[last+1].IsSplit {
			last++
		}
		at = last + 1
	}

	s.pool = append(pool[:at:at], append(fragments, pool[at:]...)...)
	return nil
}

// splitUnit builds the n fragments for one unit. Fragment prices come from an
// exact distribution, so they always sum back to the original price.
func splitUnit(u bill.Unit, n int) []bill.Unit {
	shares := u.Price.SplitN(n)
	fragments := make([]bill.Unit, n)
	for i := range fragments {
		fragments[i] = bill.Unit{
			ID:         fmt.Sprintf("%s-split-%d", u.ID, i+1),
			OriginalID: u.OriginalID,
			Name:       fmt.Sprintf("%d/%d %s", i+1, n, u.Name),
			Price:      shares[i],
			IsSplit:    true,
			SplitPart:  i + 1,
			SplitTotal: n,
		}
	}
	return fragments
}

// Confirm settles the current guest: computes their subtotal plus
// proportional tax and tip, removes the selected units from the pool, and
// appends an immutable GuestRecord. The proportion denominator is the bill
// subtotal for the whole session, not the shrinking pool, so guest shares
// converge to the bill's tax and tip as the pool empties. The confirm that
// empties the pool absorbs any residual cents, making the conservation exact.
func (s *Session) Confirm() (GuestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSelecting {
		return GuestRecord{}, ErrNoGuestInProgress
	}
	if len(s.selection) == 0 {
		return GuestRecord{}, ErrNoItemsSelected
	}

	selected := make(map[string]bool, len(s.selection))
	items := make([]bill.Unit, 0, len(s.selection))
	var subtotal money.Money
	for _, id := range s.selection {
		idx := s.poolIndex(id)
		if idx < 0 {
			// Selection only ever references live pool units.
			continue
		}
		selected[id] = true
		items = append(items, s.pool[idx])
		subtotal += s.pool[idx].Price
	}

	// Zero bill subtotal would make the proportion undefined; shares stay 0
	// until the pool-emptying confirm, which then carries the full tax/tip.
	tax := s.Bill.Tax.Allocate(subtotal, s.Bill.Subtotal)
	tip := s.Bill.Tip.Allocate(subtotal, s.Bill.Subtotal)

	remaining := make([]bill.Unit, 0, len(s.pool)-len(items))
	for _, u := range s.pool {
		if !selected[u.ID] {
			remaining = append(remaining, u)
		}
	}

	if len(remaining) == 0 {
		var priorTax, priorTip money.Money
		for _, g := range s.guests {
			priorTax += g.Tax
			priorTip += g.Tip
		}
		tax = s.Bill.Tax - priorTax
		tip = s.Bill.Tip - priorTip
	}

	record := GuestRecord{
		Name:     s.guestName,
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Tip:      tip,
		Total:    subtotal + tax + tip,
	}

	s.guests = append(s.guests, record)
	s.pool = remaining
	s.selection = nil
	s.guestName = ""
	if len(s.pool) == 0 {
		s.phase = PhaseAllAssigned
	} else {
		s.phase = PhaseAwaitingName
	}

	return record, nil
}

func (s *Session) poolIndex(unitID string) int {
	for i, u := range s.pool {
		if u.ID == unitID {
			return i
		}
	}
	return -1
}

func firstSibling(pool []bill.Unit, originalID string) int {
	for i, u := range pool {
		if u.OriginalID == originalID && u.IsSplit {
			return i
		}
	}
	return -1
}

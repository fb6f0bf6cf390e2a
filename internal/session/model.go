package session

import (
	"sync"
	"time"

	"github.com/flick2split/backend/internal/bill"
	"github.com/flick2split/backend/internal/money"
)

// Phase is the state of the guest-assignment cycle.
type Phase string

const (
	// PhaseAwaitingName: no guest in progress, waiting for the next name.
	PhaseAwaitingName Phase = "AWAITING_NAME"
	// PhaseSelecting: a named guest is picking items from the pool.
	PhaseSelecting Phase = "SELECTING_ITEMS"
	// PhaseAllAssigned: the pool is empty, the split is done.
	PhaseAllAssigned Phase = "ALL_ASSIGNED"
)

// GuestRecord is the finalized cost breakdown for one guest. It is created
// exactly once, when the guest's selection is confirmed, and never mutated.
type GuestRecord struct {
	Name     string
	Items    []bill.Unit
	Subtotal money.Money
	Tax      money.Money
	Tip      money.Money
	Total    money.Money
}

// Session is one in-memory splitting session: the confirmed bill, the pool of
// unassigned units, the guest currently selecting, and the append-only guest
// history. All mutation goes through the ledger methods, which serialize
// access with the session mutex; the engine itself is strictly sequential,
// the lock only guards against concurrent HTTP requests on the same session.
type Session struct {
	ID        string
	Bill      bill.Bill
	CreatedAt time.Time

	mu        sync.Mutex
	phase     Phase
	pool      []bill.Unit
	guestName string
	selection []string
	guests    []GuestRecord
}

// New builds a session from a confirmed bill: expands line items into the
// unit pool and replaces the bill subtotal and total with recomputed ones,
// so drift from upstream editing cannot skew the allocation denominator.
func New(id string, b bill.Bill) *Session {
	units, recalculated := bill.Expand(b.Items)
	b.Subtotal = recalculated
	b.Total = b.Subtotal + b.Tax + b.Tip

	phase := PhaseAwaitingName
	if len(units) == 0 {
		phase = PhaseAllAssigned
	}

	return &Session{
		ID:        id,
		Bill:      b,
		CreatedAt: time.Now(),
		phase:     phase,
		pool:      units,
	}
}

// Snapshot is a consistent read-only view of the session state.
type Snapshot struct {
	ID           string
	Bill         bill.Bill
	Phase        Phase
	CurrentGuest string
	Selection    []string
	Pool         []bill.Unit
	Guests       []GuestRecord
}

// Snapshot copies the mutable state under the lock so callers can render or
// report without racing ledger operations.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:           s.ID,
		Bill:         s.Bill,
		Phase:        s.phase,
		CurrentGuest: s.guestName,
		Selection:    append([]string(nil), s.selection...),
		Pool:         append([]bill.Unit(nil), s.pool...),
		Guests:       append([]GuestRecord(nil), s.guests...),
	}
}

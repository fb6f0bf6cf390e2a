package session

import (
	"github.com/flick2split/backend/internal/bill"
)

// Service handles session business logic on top of the in-memory store.
// Handlers stay thin: decode, call here, encode.
type Service struct {
	store *Store
}

// NewService creates a new session service.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Create coerces the incoming bill payload and opens a session for it.
func (s *Service) Create(req *bill.BillRequest) *Session {
	return s.store.Create(req.ToBill())
}

// Get returns a consistent snapshot of a session.
func (s *Service) Get(id string) (Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Delete discards a session.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}

// BeginGuest starts the selection cycle for a named guest.
func (s *Service) BeginGuest(id, name string) (Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := sess.BeginGuest(name); err != nil {
		return Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// ToggleSelect flips a unit in or out of the current guest's selection.
func (s *Service) ToggleSelect(id, unitID string) (bool, Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return false, Snapshot{}, err
	}
	selected, err := sess.ToggleSelect(unitID)
	if err != nil {
		return false, Snapshot{}, err
	}
	return selected, sess.Snapshot(), nil
}

// Split divides a live unit into n fragments.
func (s *Service) Split(id, unitID string, n int) (Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := sess.Split(unitID, n); err != nil {
		return Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Confirm settles the current guest's selection into a GuestRecord.
func (s *Service) Confirm(id string) (GuestRecord, Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return GuestRecord{}, Snapshot{}, err
	}
	record, err := sess.Confirm()
	if err != nil {
		return GuestRecord{}, Snapshot{}, err
	}
	return record, sess.Snapshot(), nil
}

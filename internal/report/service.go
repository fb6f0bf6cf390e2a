package report

import (
	"context"
	"strings"

	"github.com/flick2split/backend/internal/currency"
	"github.com/flick2split/backend/internal/session"
)

// Service builds settlement reports from live sessions, with optional
// display-only currency conversion through the rate client.
type Service struct {
	sessions *session.Service
	rates    *currency.Client
}

// NewService creates a new report service.
func NewService(sessions *session.Service, rates *currency.Client) *Service {
	return &Service{sessions: sessions, rates: rates}
}

// Build aggregates the session into a report. A non-empty target currency
// different from the bill's converts all figures at the fetched rate; the
// rate client degrades to 1:1 on any failure, so this never errors for
// conversion reasons.
func (s *Service) Build(ctx context.Context, sessionID, target string) (Report, error) {
	snap, err := s.sessions.Get(sessionID)
	if err != nil {
		return Report{}, err
	}

	r := Build(snap.Bill, snap.Guests, snap.Pool)

	target = strings.ToUpper(strings.TrimSpace(target))
	if target != "" && target != r.Currency {
		r = r.Convert(target, s.rates.Rate(ctx, r.Currency, target))
	}
	return r, nil
}

// BuildMessage renders the shareable summary text for a session.
func (s *Service) BuildMessage(ctx context.Context, sessionID, target string) (string, error) {
	r, err := s.Build(ctx, sessionID, target)
	if err != nil {
		return "", err
	}
	return Message(r), nil
}

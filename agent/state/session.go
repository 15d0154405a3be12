package state

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SessionState is the per-conversation memory the coordinator reads and
// writes on every turn. It is owned by exactly one conversation and is
// only mutated by the coordinator after a turn completes.
type SessionState struct {
	SessionID     string `json:"session_id"`
	CustomerEmail string `json:"customer_email,omitempty"`

	// History is append-only; every completed turn adds one entry.
	History []Turn `json:"history,omitempty"`

	// Last-seen markers, updated from the executed route plan.
	LastProductQuery       string               `json:"last_product_query,omitempty"`
	LastCompatibilityQuery string               `json:"last_compatibility_query,omitempty"`
	LastWarrantyCheck      string               `json:"last_warranty_check,omitempty"`
	LastVerification       *VerificationRequest `json:"last_verification,omitempty"`
	LastRegistration       *RegistrationRequest `json:"last_registration,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

type Turn struct {
	Query string    `json:"query"`
	Reply string    `json:"reply"`
	At    time.Time `json:"at"`
}

type VerificationRequest struct {
	Email   string `json:"email"`
	Product string `json:"product"`
}

type RegistrationRequest struct {
	Email  string `json:"email"`
	Serial string `json:"serial"`
}

var (
	ErrEmptySessionID = errors.New("session id is empty")
	ErrHistoryCorrupt = errors.New("history entry is incomplete")
)

func NewSessionState(sessionID, customerEmail string, now time.Time) *SessionState {
	return &SessionState{
		SessionID:     strings.TrimSpace(sessionID),
		CustomerEmail: strings.TrimSpace(customerEmail),
		UpdatedAt:     now.UTC(),
	}
}

func (s *SessionState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// AppendTurn records a completed query/reply pair. History never shrinks.
func (s *SessionState) AppendTurn(query, reply string, now time.Time) {
	s.History = append(s.History, Turn{
		Query: query,
		Reply: reply,
		At:    now.UTC(),
	})
	s.Touch(now)
}

// SetEmail stores the customer email once known. A session keeps the
// first email it saw; later turns without one reuse it.
func (s *SessionState) SetEmail(email string) {
	email = strings.TrimSpace(email)
	if email != "" && s.CustomerEmail == "" {
		s.CustomerEmail = email
	}
}

// RecentTurns returns up to n most recent turns, oldest first.
func (s *SessionState) RecentTurns(n int) []Turn {
	if s == nil || n <= 0 || len(s.History) == 0 {
		return nil
	}
	if len(s.History) <= n {
		out := make([]Turn, len(s.History))
		copy(out, s.History)
		return out
	}
	out := make([]Turn, n)
	copy(out, s.History[len(s.History)-n:])
	return out
}

func (s *SessionState) Validate() error {
	if strings.TrimSpace(s.SessionID) == "" {
		return ErrEmptySessionID
	}
	for i, turn := range s.History {
		if strings.TrimSpace(turn.Query) == "" {
			return fmt.Errorf("%w: turn %d has empty query", ErrHistoryCorrupt, i)
		}
	}
	return nil
}

package gateway

import (
	"log/slog"
	"sync"
	"time"
)

// State identifies where a session is in its lifecycle.
type State int

const (
	// StateOpen is the initial state: the payer may select a method,
	// confirm, or cancel.
	StateOpen State = iota
	// StateProcessing means payment was confirmed and the simulated
	// authorization delay is running. It cannot be cancelled.
	StateProcessing
	// StateCompleted is terminal: the receipt was issued and the
	// completion handler invoked.
	StateCompleted
	// StateCancelled is terminal: the payer dismissed the flow before
	// confirming. The completion handler is never invoked.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateProcessing:
		return "processing"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session is one ephemeral payment flow. All transitions are guarded by
// the session mutex, which also guarantees the completion handler runs
// at most once regardless of how often the payer hits the pay control.
type Session struct {
	id      string
	gateway *Gateway
	cfg     Config
	opened  time.Time

	mu     sync.Mutex
	state  State
	method string
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Amount returns the requested amount in minor units.
func (s *Session) Amount() int64 { return s.cfg.Amount }

// MerchantName returns the configured merchant display name.
func (s *Session) MerchantName() string { return s.cfg.MerchantName }

// Description returns the configured payment description.
func (s *Session) Description() string { return s.cfg.Description }

// OpenedAt returns when the session was opened.
func (s *Session) OpenedAt() time.Time { return s.opened }

// Methods returns the configured payment method labels.
func (s *Session) Methods() []string { return s.cfg.Methods }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Method returns the currently selected payment method.
func (s *Session) Method() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// SelectMethod switches the presented payment method. It has no
// semantic effect on the outcome and is only valid while Open.
func (s *Session) SelectMethod(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateProcessing:
		return ErrSessionProcessing
	case StateCompleted, StateCancelled:
		return ErrSessionClosed
	}
	for _, m := range s.cfg.Methods {
		if m == name {
			s.method = name
			return nil
		}
	}
	return ErrUnknownMethod
}

// Confirm moves the session from Open to Processing and schedules the
// simulated authorization. Repeat calls while Processing are no-ops, so
// rapid repeated confirmation cannot double-complete the flow. A closed
// session reports ErrSessionClosed.
func (s *Session) Confirm() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateProcessing:
		return nil
	case StateCompleted, StateCancelled:
		return ErrSessionClosed
	}
	s.state = StateProcessing
	time.AfterFunc(s.gateway.delay, s.complete)
	return nil
}

// Cancel dismisses the flow. Only an Open session can be cancelled:
// once Processing has started the simulated delay runs to completion.
// Cancellation leaves no trace and never invokes the handler.
func (s *Session) Cancel() error {
	s.mu.Lock()
	switch s.state {
	case StateProcessing:
		s.mu.Unlock()
		return ErrSessionProcessing
	case StateCompleted, StateCancelled:
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.state = StateCancelled
	s.mu.Unlock()

	s.gateway.evict(s.id)
	if s.gateway.logger != nil {
		s.gateway.logger.Info("payment session cancelled", slog.String("session_id", s.id))
	}
	return nil
}

// expire evicts a session the payer abandoned without confirming or
// cancelling. Only an Open session can expire; anything past that is
// already on its way to a terminal state.
func (s *Session) expire() {
	s.mu.Lock()
	if s.state != StateOpen {
		s.mu.Unlock()
		return
	}
	s.state = StateCancelled
	s.mu.Unlock()

	s.gateway.evict(s.id)
	if s.gateway.logger != nil {
		s.gateway.logger.Info("payment session expired",
			slog.String("session_id", s.id),
			slog.Time("opened_at", s.opened))
	}
}

// complete fires once the simulated delay elapses. The Processing check
// under the mutex is the single-shot guard: the state moves to
// Completed before the handler runs, so the handler can never run twice.
func (s *Session) complete() {
	s.mu.Lock()
	if s.state != StateProcessing {
		s.mu.Unlock()
		return
	}
	s.state = StateCompleted
	handler := s.cfg.OnSuccess
	s.mu.Unlock()

	receipt := newReceipt()
	handler(receipt)

	s.gateway.evict(s.id)
	if s.gateway.logger != nil {
		s.gateway.logger.Info("payment session completed",
			slog.String("session_id", s.id),
			slog.String("payment_id", receipt.PaymentID))
	}
}

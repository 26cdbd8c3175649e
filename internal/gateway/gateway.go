// Package gateway simulates a third-party payment authorization flow.
// No network call is made, but the shape of the handshake is preserved:
// a session is opened with an amount and merchant metadata, the payer
// confirms, and after a fixed simulated delay the gateway synthesizes
// an authorization receipt and invokes the caller's completion handler
// exactly once. There is no decline path: every confirmed flow succeeds.
package gateway

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidAmount occurs when a session is opened with a
	// non-positive amount.
	ErrInvalidAmount = errors.New("gateway: amount must be positive")

	// ErrNilHandler occurs when a session is opened without a
	// completion handler.
	ErrNilHandler = errors.New("gateway: completion handler is required")

	// ErrSessionClosed occurs when interacting with a completed or
	// cancelled session.
	ErrSessionClosed = errors.New("gateway: session already closed")

	// ErrSessionProcessing occurs when cancelling or re-configuring a
	// session after payment has been confirmed.
	ErrSessionProcessing = errors.New("gateway: session is processing")

	// ErrUnknownMethod occurs when selecting a method the session was
	// not configured with.
	ErrUnknownMethod = errors.New("gateway: unknown payment method")
)

// DefaultMethods lists the payment methods presented when the caller
// does not configure any. Selection is purely presentational.
var DefaultMethods = []string{"Card (Visa/Mastercard)", "UPI / Google Pay"}

// Receipt is the opaque identifier bundle a completed flow yields. The
// identifiers carry no cryptographic meaning.
type Receipt struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Signature string `json:"signature"`
}

// Config describes one payment flow. Amount is in minor units (paise).
// OnSuccess is invoked at most once, only when the flow completes.
type Config struct {
	Amount       int64
	MerchantName string
	Description  string
	IconURL      string
	Methods      []string
	OnSuccess    func(Receipt)
}

// defaultSessionTTL bounds how long an opened session waits for the
// payer. A modal left behind by a closed tab expires instead of
// occupying the registry forever.
const defaultSessionTTL = 15 * time.Minute

// Gateway issues payment sessions and tracks the live ones so HTTP
// handlers can drive the payer interaction.
type Gateway struct {
	delay      time.Duration
	sessionTTL time.Duration
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// New builds a gateway whose confirmed sessions complete after the
// given simulated delay.
func New(delay time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		delay:      delay,
		sessionTTL: defaultSessionTTL,
		logger:     logger,
		sessions:   make(map[string]*Session),
	}
}

// Open starts a payment session in the Open state. The call is
// fire-and-forget with respect to the payment outcome: all wallet
// mutation happens inside the configured OnSuccess handler.
func (g *Gateway) Open(cfg Config) (*Session, error) {
	if cfg.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if cfg.OnSuccess == nil {
		return nil, ErrNilHandler
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultMethods
	}

	s := &Session{
		id:      uuid.NewString(),
		gateway: g,
		cfg:     cfg,
		state:   StateOpen,
		method:  cfg.Methods[0],
		opened:  time.Now().UTC(),
	}

	g.mu.Lock()
	g.sessions[s.id] = s
	g.mu.Unlock()

	time.AfterFunc(g.sessionTTL, s.expire)

	if g.logger != nil {
		g.logger.Info("payment session opened",
			slog.String("session_id", s.id),
			slog.Int64("amount_minor", cfg.Amount),
			slog.String("description", cfg.Description))
	}
	return s, nil
}

// Session returns a live session by identifier. Completed and cancelled
// sessions are evicted and no longer resolvable.
func (g *Gateway) Session(id string) (*Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[id]
	return s, ok
}

func (g *Gateway) evict(id string) {
	g.mu.Lock()
	delete(g.sessions, id)
	g.mu.Unlock()
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func token() string {
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return string(buf)
}

func newReceipt() Receipt {
	return Receipt{
		PaymentID: "pay_" + token(),
		OrderID:   "order_" + token(),
		Signature: "sig_" + token(),
	}
}

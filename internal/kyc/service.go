// Package kyc simulates identity verification against a government
// database. Like the payment gateway there is no real integration and
// no rejection path: an accepted submission always verifies after a
// fixed delay.
package kyc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/logismart/logismart/internal/profile"
)

// Verification statuses persisted on the user.
const (
	StatusVerifying = "Verifying"
	StatusVerified  = "Verified"
)

const defaultMobile = "9876543210"

var (
	// ErrDeclarationsRequired occurs when a submission is missing either
	// declaration checkbox.
	ErrDeclarationsRequired = errors.New("all declarations must be accepted")
	// ErrAlreadySubmitted occurs when verification is already underway
	// or complete.
	ErrAlreadySubmitted = errors.New("kyc verification already submitted")
)

// Service runs the simulated KYC verification flow.
type Service struct {
	profiles *profile.Service
	delay    time.Duration
	logger   *slog.Logger
}

// NewService builds a KYC service whose verifications complete after
// the given simulated delay.
func NewService(profiles *profile.Service, delay time.Duration, logger *slog.Logger) *Service {
	return &Service{profiles: profiles, delay: delay, logger: logger}
}

// Status describes the current verification state for an owner.
type Status struct {
	Mobile    string
	KYCStatus string
}

// Status returns the registered mobile and verification state.
func (s *Service) Status(ctx context.Context, owner string) (Status, error) {
	p, err := s.profiles.Get(ctx, owner)
	if err != nil {
		return Status{}, err
	}
	mobile := p.User.Phone
	if mobile == "" {
		mobile = defaultMobile
	}
	return Status{Mobile: "+91 " + mobile, KYCStatus: p.User.KYCStatus}, nil
}

// SubmitInput captures the verification form.
type SubmitInput struct {
	Owner               string
	MobileLinkDeclared  bool
	KYCDeclarationGiven bool
}

// Submit starts verification. Both declarations must be accepted. The
// user is marked Verifying immediately and Verified once the simulated
// government lookup completes.
func (s *Service) Submit(ctx context.Context, in SubmitInput) error {
	if !in.MobileLinkDeclared || !in.KYCDeclarationGiven {
		return ErrDeclarationsRequired
	}

	if _, err := s.profiles.Update(ctx, in.Owner, func(p *profile.Profile) error {
		if p.User.KYCStatus == StatusVerifying || p.User.KYCStatus == StatusVerified {
			return ErrAlreadySubmitted
		}
		p.User.KYCStatus = StatusVerifying
		return nil
	}); err != nil {
		return err
	}

	owner := in.Owner
	time.AfterFunc(s.delay, func() {
		if _, err := s.profiles.Update(context.Background(), owner, func(p *profile.Profile) error {
			p.User.KYCStatus = StatusVerified
			return nil
		}); err != nil {
			s.logger.Error("complete kyc verification", "owner", owner, "error", err)
			return
		}
		s.logger.Info("kyc verified", slog.String("owner", owner))
	})
	return nil
}

package kyc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/logismart/logismart/internal/logging"
	"github.com/logismart/logismart/internal/profile"
)

func newTestService() (*Service, *profile.Service) {
	profiles := profile.NewService(profile.NewMemoryStore())
	return NewService(profiles, 5*time.Millisecond, logging.Discard()), profiles
}

func waitForStatus(t *testing.T, profiles *profile.Service, want string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		p, err := profiles.Get(context.Background(), profile.DefaultOwner)
		if err != nil {
			t.Fatalf("get profile: %v", err)
		}
		if p.User.KYCStatus == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("kyc status never reached %q", want)
}

func TestSubmitVerifiesAfterDelay(t *testing.T) {
	svc, profiles := newTestService()
	ctx := context.Background()

	if err := svc.Submit(ctx, SubmitInput{Owner: profile.DefaultOwner, MobileLinkDeclared: true, KYCDeclarationGiven: true}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	p, err := profiles.Get(ctx, profile.DefaultOwner)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.User.KYCStatus != StatusVerifying {
		t.Fatalf("expected Verifying, got %q", p.User.KYCStatus)
	}

	waitForStatus(t, profiles, StatusVerified)
}

func TestSubmitRequiresDeclarations(t *testing.T) {
	svc, profiles := newTestService()
	ctx := context.Background()

	if err := svc.Submit(ctx, SubmitInput{Owner: profile.DefaultOwner, MobileLinkDeclared: true}); !errors.Is(err, ErrDeclarationsRequired) {
		t.Fatalf("expected ErrDeclarationsRequired, got %v", err)
	}

	p, _ := profiles.Get(ctx, profile.DefaultOwner)
	if p.User.KYCStatus != "" {
		t.Fatalf("rejected submission mutated status: %q", p.User.KYCStatus)
	}
}

func TestSubmitTwiceRejected(t *testing.T) {
	svc, profiles := newTestService()
	ctx := context.Background()

	if err := svc.Submit(ctx, SubmitInput{Owner: profile.DefaultOwner, MobileLinkDeclared: true, KYCDeclarationGiven: true}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.Submit(ctx, SubmitInput{Owner: profile.DefaultOwner, MobileLinkDeclared: true, KYCDeclarationGiven: true}); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	waitForStatus(t, profiles, StatusVerified)
}

func TestStatusUsesDefaultMobile(t *testing.T) {
	svc, _ := newTestService()

	status, err := svc.Status(context.Background(), profile.DefaultOwner)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Mobile != "+91 9876543210" {
		t.Fatalf("unexpected mobile %q", status.Mobile)
	}
}

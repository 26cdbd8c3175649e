package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/logismart/logismart/internal/profile"
)

func newTestService() *Service {
	return NewService(profile.NewService(profile.NewMemoryStore()))
}

func TestUpdateJoinsName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Update(ctx, UpdateInput{
		Owner:              profile.DefaultOwner,
		FirstName:          "Ravi",
		LastName:           "Kumar",
		Email:              "ravi.kumar@logismart.com",
		EmailNotifications: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.Name != "Ravi Kumar" {
		t.Fatalf("expected joined name, got %q", user.Name)
	}
	if !user.Notifications.Email || user.Notifications.SMS {
		t.Fatalf("unexpected notification toggles: %+v", user.Notifications)
	}

	got, err := svc.Get(ctx, profile.DefaultOwner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "ravi.kumar@logismart.com" {
		t.Fatalf("update not persisted: %q", got.Email)
	}
}

func TestUpdateRequiresName(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Update(context.Background(), UpdateInput{Owner: profile.DefaultOwner, Email: "x@example.com"}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name    string
		input   ChangePasswordInput
		wantErr error
	}{
		{"empty fields", ChangePasswordInput{Owner: profile.DefaultOwner}, ErrPasswordRequired},
		{"mismatch", ChangePasswordInput{Owner: profile.DefaultOwner, NewPassword: "secret1", ConfirmPassword: "secret2"}, ErrPasswordMismatch},
		{"too short", ChangePasswordInput{Owner: profile.DefaultOwner, NewPassword: "abc", ConfirmPassword: "abc"}, ErrPasswordTooShort},
	}
	for _, tc := range cases {
		if err := svc.ChangePassword(ctx, tc.input); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}

	if err := svc.ChangePassword(ctx, ChangePasswordInput{Owner: profile.DefaultOwner, NewPassword: "hunter22", ConfirmPassword: "hunter22"}); err != nil {
		t.Fatalf("change password: %v", err)
	}

	ok, err := svc.VerifyPassword(ctx, profile.DefaultOwner, "hunter22")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("stored password did not verify")
	}

	ok, _ = svc.VerifyPassword(ctx, profile.DefaultOwner, "wrong")
	if ok {
		t.Fatal("wrong password verified")
	}

	user, _ := svc.Get(ctx, profile.DefaultOwner)
	if user.PasswordHash == "hunter22" {
		t.Fatal("password stored in clear")
	}
}

func TestUpdateAvatar(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.UpdateAvatar(ctx, profile.DefaultOwner, "https://example.com/avatar.png"); err != nil {
		t.Fatalf("update avatar: %v", err)
	}
	user, _ := svc.Get(ctx, profile.DefaultOwner)
	if user.Avatar != "https://example.com/avatar.png" {
		t.Fatalf("avatar not stored: %q", user.Avatar)
	}
}

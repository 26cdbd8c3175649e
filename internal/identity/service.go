package identity

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/logismart/logismart/internal/profile"
)

const minPasswordLength = 6

var (
	// ErrPasswordTooShort occurs when the new password is under the
	// minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrPasswordMismatch occurs when the confirmation does not match.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrPasswordRequired occurs when either password field is empty.
	ErrPasswordRequired = errors.New("both password fields are required")
	// ErrNameRequired occurs when a profile update would blank the name.
	ErrNameRequired = errors.New("name is required")
)

// Service manages account settings for the profile owner.
type Service struct {
	profiles *profile.Service
}

// NewService builds an identity service.
func NewService(profiles *profile.Service) *Service {
	return &Service{profiles: profiles}
}

// Get returns the owner's account settings.
func (s *Service) Get(ctx context.Context, owner string) (profile.User, error) {
	p, err := s.profiles.Get(ctx, owner)
	if err != nil {
		return profile.User{}, err
	}
	return p.User, nil
}

// UpdateInput captures editable account fields.
type UpdateInput struct {
	Owner              string
	FirstName          string
	LastName           string
	Email              string
	EmailNotifications bool
	SMSNotifications   bool
}

// Update saves the owner's name, email and notification toggles.
func (s *Service) Update(ctx context.Context, in UpdateInput) (profile.User, error) {
	name := strings.TrimSpace(strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName))
	if name == "" {
		return profile.User{}, ErrNameRequired
	}

	p, err := s.profiles.Update(ctx, in.Owner, func(p *profile.Profile) error {
		p.User.Name = name
		p.User.Email = in.Email
		p.User.Notifications.Email = in.EmailNotifications
		p.User.Notifications.SMS = in.SMSNotifications
		return nil
	})
	if err != nil {
		return profile.User{}, err
	}
	return p.User, nil
}

// ChangePasswordInput captures a password update.
type ChangePasswordInput struct {
	Owner           string
	NewPassword     string
	ConfirmPassword string
}

// ChangePassword validates and stores a bcrypt hash of the new password.
func (s *Service) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	if in.NewPassword == "" || in.ConfirmPassword == "" {
		return ErrPasswordRequired
	}
	if in.NewPassword != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(in.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.profiles.Update(ctx, in.Owner, func(p *profile.Profile) error {
		p.User.PasswordHash = string(hash)
		return nil
	})
	return err
}

// VerifyPassword reports whether the candidate matches the stored hash.
func (s *Service) VerifyPassword(ctx context.Context, owner, candidate string) (bool, error) {
	p, err := s.profiles.Get(ctx, owner)
	if err != nil {
		return false, err
	}
	if p.User.PasswordHash == "" {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(p.User.PasswordHash), []byte(candidate)) == nil, nil
}

// UpdateAvatar stores the owner's avatar image reference.
func (s *Service) UpdateAvatar(ctx context.Context, owner, avatar string) error {
	_, err := s.profiles.Update(ctx, owner, func(p *profile.Profile) error {
		p.User.Avatar = avatar
		return nil
	})
	return err
}

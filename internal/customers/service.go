package customers

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/logismart/logismart/internal/profile"
)

// Customer statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var (
	// ErrNameRequired occurs when a customer is added without a name.
	ErrNameRequired = errors.New("customer name is required")
	// ErrEmailRequired occurs when a customer is added without an email.
	ErrEmailRequired = errors.New("customer email is required")
)

// Service manages the customer address book inside the profile.
type Service struct {
	profiles *profile.Service
}

// NewService builds a customer service.
func NewService(profiles *profile.Service) *Service {
	return &Service{profiles: profiles}
}

// AddInput captures a new customer record.
type AddInput struct {
	Owner    string
	Name     string
	Email    string
	Location string
	Status   string
}

// Add records a customer with zeroed order history, newest first.
func (s *Service) Add(ctx context.Context, in AddInput) (profile.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return profile.Customer{}, ErrNameRequired
	}
	if strings.TrimSpace(in.Email) == "" {
		return profile.Customer{}, ErrEmailRequired
	}
	status := in.Status
	if status == "" {
		status = StatusActive
	}

	var customer profile.Customer
	_, err := s.profiles.Update(ctx, in.Owner, func(p *profile.Profile) error {
		customer = profile.Customer{
			ID:      len(p.Customers) + 1,
			Name:    in.Name,
			Company: in.Location,
			Email:   in.Email,
			Orders:  0,
			Spent:   decimal.Zero,
			Status:  status,
		}
		p.Customers = append([]profile.Customer{customer}, p.Customers...)
		return nil
	})
	if err != nil {
		return profile.Customer{}, err
	}
	return customer, nil
}

// List returns all customers, newest first.
func (s *Service) List(ctx context.Context, owner string) ([]profile.Customer, error) {
	p, err := s.profiles.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	return p.Customers, nil
}

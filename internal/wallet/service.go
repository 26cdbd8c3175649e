package wallet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/logismart/logismart/internal/profile"
)

// Service is the wallet ledger: it owns the balance and the append-only
// transaction log, and is the only sanctioned mutation path. Balance
// and transaction append happen in one atomic step against the profile
// store, so `balance == sum of transaction amounts` holds after every
// call.
type Service struct {
	profiles *profile.Service
}

// NewService builds the ledger on top of the profile store.
func NewService(profiles *profile.Service) *Service {
	return &Service{profiles: profiles}
}

// CreditInput captures a credit posting. ID is optional: when empty a
// #PAY identifier is generated. Status defaults to Success.
type CreditInput struct {
	Owner       string
	Amount      decimal.Decimal
	Description string
	Method      string
	Status      string
	ID          string
}

// DebitInput captures a debit posting. The amount is supplied positive;
// the recorded transaction carries the negated amount. ID defaults to a
// #WD identifier and Status to Processed.
type DebitInput struct {
	Owner       string
	Amount      decimal.Decimal
	Description string
	Method      string
	Status      string
	ID          string
}

// Credit increases the balance and prepends a credit transaction. The
// whole profile is persisted before the call returns.
func (s *Service) Credit(ctx context.Context, in CreditInput) (profile.Transaction, error) {
	if in.Amount.Sign() <= 0 {
		return profile.Transaction{}, ErrInvalidAmount
	}
	if in.ID == "" {
		in.ID = NewPaymentID()
	}
	if in.Status == "" {
		in.Status = profile.StatusSuccess
	}

	tx := profile.Transaction{
		ID:          in.ID,
		Date:        time.Now().UTC(),
		Description: in.Description,
		Method:      in.Method,
		Amount:      in.Amount,
		Type:        profile.TypeCredit,
		Status:      in.Status,
	}

	_, err := s.profiles.Update(ctx, in.Owner, func(p *profile.Profile) error {
		p.Wallet.Balance = p.Wallet.Balance.Add(in.Amount)
		p.Wallet.Transactions = append([]profile.Transaction{tx}, p.Wallet.Transactions...)
		return nil
	})
	if err != nil {
		return profile.Transaction{}, err
	}
	return tx, nil
}

// Debit decreases the balance and prepends a debit transaction. A debit
// exceeding the balance fails with ErrInsufficientFunds and leaves both
// balance and log untouched.
func (s *Service) Debit(ctx context.Context, in DebitInput) (profile.Transaction, error) {
	if in.Amount.Sign() <= 0 {
		return profile.Transaction{}, ErrInvalidAmount
	}
	if in.ID == "" {
		in.ID = NewWithdrawalID()
	}
	if in.Status == "" {
		in.Status = profile.StatusProcessed
	}

	tx := profile.Transaction{
		ID:          in.ID,
		Date:        time.Now().UTC(),
		Description: in.Description,
		Method:      in.Method,
		Amount:      in.Amount.Neg(),
		Type:        profile.TypeDebit,
		Status:      in.Status,
	}

	_, err := s.profiles.Update(ctx, in.Owner, func(p *profile.Profile) error {
		if in.Amount.GreaterThan(p.Wallet.Balance) {
			return ErrInsufficientFunds
		}
		p.Wallet.Balance = p.Wallet.Balance.Sub(in.Amount)
		p.Wallet.Transactions = append([]profile.Transaction{tx}, p.Wallet.Transactions...)
		return nil
	})
	if err != nil {
		return profile.Transaction{}, err
	}
	return tx, nil
}

// Snapshot returns the current wallet state: balance, spending limit
// and the transaction log, newest first.
func (s *Service) Snapshot(ctx context.Context, owner string) (profile.Wallet, error) {
	p, err := s.profiles.Get(ctx, owner)
	if err != nil {
		return profile.Wallet{}, err
	}
	return p.Wallet, nil
}

// Balance returns the current balance in major units.
func (s *Service) Balance(ctx context.Context, owner string) (decimal.Decimal, error) {
	w, err := s.Snapshot(ctx, owner)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return w.Balance, nil
}

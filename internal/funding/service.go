package funding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/logismart/logismart/internal/gateway"
	"github.com/logismart/logismart/internal/notification"
	"github.com/logismart/logismart/internal/profile"
	"github.com/logismart/logismart/internal/wallet"
)

const (
	rechargeDescription = "Wallet Recharge"
	rechargeMethod      = "Card/UPI"
	withdrawDescription = "Withdrawal to Bank"
	withdrawMethod      = "Bank Transfer"
)

// Merchant describes how the wallet owner appears on the gateway modal.
type Merchant struct {
	Name    string
	IconURL string
}

// Service orchestrates wallet top-ups through the payment gateway and
// direct withdrawals against the ledger. The ledger never talks to the
// gateway itself; this service supplies the completion handler that
// applies the credit once a flow finishes.
type Service struct {
	wallets  *wallet.Service
	gateway  *gateway.Gateway
	notifier notification.Notifier
	merchant Merchant
	logger   *slog.Logger
}

// NewService builds a funding service.
func NewService(wallets *wallet.Service, gw *gateway.Gateway, notifier notification.Notifier, merchant Merchant, logger *slog.Logger) *Service {
	return &Service{wallets: wallets, gateway: gw, notifier: notifier, merchant: merchant, logger: logger}
}

// TopUpInput captures a wallet recharge request in major units.
type TopUpInput struct {
	Owner  string
	Amount decimal.Decimal
}

// BeginTopUp opens a gateway session for the requested amount. The
// wallet is credited only when the payer completes the flow; cancelling
// leaves no trace.
func (s *Service) BeginTopUp(ctx context.Context, in TopUpInput) (*gateway.Session, error) {
	if in.Amount.Sign() <= 0 {
		return nil, wallet.ErrInvalidAmount
	}
	owner := in.Owner
	amount := in.Amount

	return s.gateway.Open(gateway.Config{
		Amount:       wallet.MinorUnits(amount),
		MerchantName: s.merchant.Name,
		Description:  rechargeDescription,
		IconURL:      s.merchant.IconURL,
		OnSuccess: func(r gateway.Receipt) {
			// Completion is asynchronous relative to the request that
			// opened the session, so it runs on a fresh context.
			ctx := context.Background()
			tx, err := s.wallets.Credit(ctx, wallet.CreditInput{
				Owner:       owner,
				Amount:      amount,
				Description: rechargeDescription,
				Method:      rechargeMethod,
				Status:      profile.StatusSuccess,
				ID:          r.PaymentID,
			})
			if err != nil {
				s.logger.Error("apply top-up credit", "owner", owner, "error", err)
				return
			}
			s.notify(ctx, owner, notification.KindWalletCredit,
				fmt.Sprintf("%s added to your wallet (%s)", amount.StringFixed(2), tx.ID))
		},
	})
}

// WithdrawInput captures a withdrawal request in major units.
type WithdrawInput struct {
	Owner  string
	Amount decimal.Decimal
}

// Withdraw debits the wallet in favor of the linked bank account. An
// amount above the balance fails with wallet.ErrInsufficientFunds and
// has no side effect.
func (s *Service) Withdraw(ctx context.Context, in WithdrawInput) (profile.Transaction, error) {
	tx, err := s.wallets.Debit(ctx, wallet.DebitInput{
		Owner:       in.Owner,
		Amount:      in.Amount,
		Description: withdrawDescription,
		Method:      withdrawMethod,
		Status:      profile.StatusProcessed,
		ID:          wallet.NewWithdrawalID(),
	})
	if err != nil {
		return profile.Transaction{}, err
	}

	s.notify(ctx, in.Owner, notification.KindWithdrawal,
		fmt.Sprintf("Withdrawal of %s to linked bank account processed (%s)", in.Amount.StringFixed(2), tx.ID))
	return tx, nil
}

func (s *Service) notify(ctx context.Context, owner, kind, body string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{Kind: kind, Destination: owner, Body: body})
}

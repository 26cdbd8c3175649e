package shipments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/logismart/logismart/internal/gateway"
	"github.com/logismart/logismart/internal/notification"
	"github.com/logismart/logismart/internal/profile"
	"github.com/logismart/logismart/internal/wallet"
)

// Shipment statuses.
const (
	StatusPending   = "Pending"
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
	StatusException = "Exception"
)

// Service tiers.
const (
	ServiceExpress  = "Express"
	ServiceStandard = "Standard"
)

const (
	defaultPageSize = 10
	rechargeMethod  = "Card/UPI"
)

// ErrUnknownService occurs when a booking names a service tier that is
// not offered.
var ErrUnknownService = errors.New("unknown service tier")

// Merchant describes the checkout merchant shown on the gateway modal.
type Merchant struct {
	Name    string
	IconURL string
}

// Service books shipments against the wallet. When the balance covers
// the price the debit is immediate; otherwise checkout routes through
// the payment gateway, and the completion handler credits the shortfall
// recharge and then performs the same debit-and-book step.
type Service struct {
	profiles *profile.Service
	wallets  *wallet.Service
	gateway  *gateway.Gateway
	notifier notification.Notifier
	merchant Merchant
	logger   *slog.Logger
}

// NewService builds a shipment service.
func NewService(profiles *profile.Service, wallets *wallet.Service, gw *gateway.Gateway, notifier notification.Notifier, merchant Merchant, logger *slog.Logger) *Service {
	return &Service{profiles: profiles, wallets: wallets, gateway: gw, notifier: notifier, merchant: merchant, logger: logger}
}

// Quote prices a booking. Express is 350 plus 100 per kg, Standard 150
// plus 50 per kg, rounded to whole rupees. Weights at or below zero are
// priced as the 0.5 kg minimum.
func Quote(service string, weightKg decimal.Decimal) (decimal.Decimal, error) {
	if weightKg.Sign() <= 0 {
		weightKg = decimal.RequireFromString("0.5")
	}
	switch service {
	case ServiceExpress:
		return decimal.NewFromInt(350).Add(weightKg.Mul(decimal.NewFromInt(100))).Round(0), nil
	case ServiceStandard:
		return decimal.NewFromInt(150).Add(weightKg.Mul(decimal.NewFromInt(50))).Round(0), nil
	default:
		return decimal.Decimal{}, ErrUnknownService
	}
}

// NewTrackingID generates a shipment tracking identifier.
func NewTrackingID() string {
	return fmt.Sprintf("#TRK-%d", 1000+rand.IntN(90000))
}

// CreateInput captures a booking request.
type CreateInput struct {
	Owner        string
	SenderName   string
	SenderCity   string
	ReceiverCity string
	ReceiverPIN  string
	WeightKg     decimal.Decimal
	Service      string
}

// CreateResult is either a booked shipment or a pending payment
// session, never both.
type CreateResult struct {
	Shipment *profile.Shipment
	Price    decimal.Decimal
	Payment  *gateway.Session
}

// Create books a shipment. With sufficient balance the wallet is
// debited and the shipment recorded immediately. On insufficient funds
// a gateway session for the full price is opened instead; completing it
// credits the wallet and then books the shipment through the same path.
func (s *Service) Create(ctx context.Context, in CreateInput) (CreateResult, error) {
	price, err := Quote(in.Service, in.WeightKg)
	if err != nil {
		return CreateResult{}, err
	}

	shipment, err := s.book(ctx, in, price)
	if err == nil {
		return CreateResult{Shipment: shipment, Price: price}, nil
	}
	if !errors.Is(err, wallet.ErrInsufficientFunds) {
		return CreateResult{}, err
	}

	session, err := s.gateway.Open(gateway.Config{
		Amount:       wallet.MinorUnits(price),
		MerchantName: s.merchant.Name,
		Description:  "Shipment Payment",
		IconURL:      s.merchant.IconURL,
		OnSuccess: func(r gateway.Receipt) {
			ctx := context.Background()
			if _, err := s.wallets.Credit(ctx, wallet.CreditInput{
				Owner:       in.Owner,
				Amount:      price,
				Description: "Auto-Recharge for Shipment",
				Method:      rechargeMethod,
				Status:      profile.StatusSuccess,
				ID:          r.PaymentID,
			}); err != nil {
				s.logger.Error("apply shipment recharge", "owner", in.Owner, "error", err)
				return
			}
			if _, err := s.book(ctx, in, price); err != nil {
				s.logger.Error("book shipment after recharge", "owner", in.Owner, "error", err)
			}
		},
	})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Price: price, Payment: session}, nil
}

// book debits the wallet and records the shipment. The debit carries a
// #TXN identifier and the Completed status; the shipment starts Pending.
func (s *Service) book(ctx context.Context, in CreateInput, price decimal.Decimal) (*profile.Shipment, error) {
	shipment := profile.Shipment{
		ID:          NewTrackingID(),
		Customer:    in.SenderName,
		Origin:      in.SenderCity,
		Destination: strings.TrimSuffix(in.ReceiverCity+", "+in.ReceiverPIN, ", "),
		Date:        time.Now().UTC(),
		Status:      StatusPending,
		Amount:      price,
	}

	if _, err := s.wallets.Debit(ctx, wallet.DebitInput{
		Owner:       in.Owner,
		Amount:      price,
		Description: "Shipment " + shipment.ID,
		Method:      "Wallet Balance",
		Status:      profile.StatusCompleted,
		ID:          wallet.NewShipmentTxnID(),
	}); err != nil {
		return nil, err
	}

	if _, err := s.profiles.Update(ctx, in.Owner, func(p *profile.Profile) error {
		p.Shipments = append([]profile.Shipment{shipment}, p.Shipments...)
		return nil
	}); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindShipmentCreated,
			Destination: in.Owner,
			Body:        fmt.Sprintf("Shipment %s booked for %s", shipment.ID, price.StringFixed(2)),
		})
	}
	return &shipment, nil
}

// ListInput captures shipment listing filters. Date filters by
// YYYY-MM-DD prefix; Status by exact match. Page is 1-based.
type ListInput struct {
	Owner   string
	Status  string
	Date    string
	Page    int
	PerPage int
}

// ListResult is one page of shipments plus paging metadata.
type ListResult struct {
	Items      []profile.Shipment
	TotalItems int
	Page       int
	TotalPages int
}

// List returns shipments filtered and paginated, newest first.
func (s *Service) List(ctx context.Context, in ListInput) (ListResult, error) {
	p, err := s.profiles.Get(ctx, in.Owner)
	if err != nil {
		return ListResult{}, err
	}

	filtered := make([]profile.Shipment, 0, len(p.Shipments))
	for _, sh := range p.Shipments {
		if in.Status != "" && sh.Status != in.Status {
			continue
		}
		if in.Date != "" && !strings.HasPrefix(sh.Date.Format("2006-01-02"), in.Date) {
			continue
		}
		filtered = append(filtered, sh)
	}

	perPage := in.PerPage
	if perPage <= 0 {
		perPage = defaultPageSize
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return ListResult{
		Items:      filtered[start:end],
		TotalItems: total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

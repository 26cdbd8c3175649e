package shipments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/logismart/logismart/internal/gateway"
	"github.com/logismart/logismart/internal/logging"
	"github.com/logismart/logismart/internal/profile"
	"github.com/logismart/logismart/internal/wallet"
)

func newTestService() (*Service, *wallet.Service, *profile.Service) {
	profiles := profile.NewService(profile.NewMemoryStore())
	wallets := wallet.NewService(profiles)
	gw := gateway.New(5*time.Millisecond, logging.Discard())
	svc := NewService(profiles, wallets, gw, nil, Merchant{Name: "LogiSmart Logistics"}, logging.Discard())
	return svc, wallets, profiles
}

func TestQuote(t *testing.T) {
	cases := []struct {
		service string
		weight  string
		want    string
	}{
		{ServiceExpress, "2", "550"},
		{ServiceExpress, "0", "400"},   // minimum 0.5 kg
		{ServiceStandard, "2", "250"},
		{ServiceStandard, "0", "175"},
	}
	for _, tc := range cases {
		got, err := Quote(tc.service, decimal.RequireFromString(tc.weight))
		if err != nil {
			t.Fatalf("quote %s/%s: %v", tc.service, tc.weight, err)
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("quote %s/%s: expected %s, got %s", tc.service, tc.weight, tc.want, got)
		}
	}

	if _, err := Quote("Overnight", decimal.NewFromInt(1)); !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
}

func TestCreateWithSufficientBalance(t *testing.T) {
	svc, wallets, _ := newTestService()
	ctx := context.Background()

	if _, err := wallets.Credit(ctx, wallet.CreditInput{Owner: profile.DefaultOwner, Amount: decimal.NewFromInt(1000)}); err != nil {
		t.Fatalf("seed credit: %v", err)
	}

	result, err := svc.Create(ctx, CreateInput{
		Owner:        profile.DefaultOwner,
		SenderName:   "Priya Shah",
		SenderCity:   "Mumbai",
		ReceiverCity: "Delhi",
		ReceiverPIN:  "110001",
		WeightKg:     decimal.NewFromInt(2),
		Service:      ServiceExpress,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.Payment != nil {
		t.Fatal("expected immediate booking, got payment session")
	}
	if result.Shipment.Status != StatusPending {
		t.Fatalf("expected Pending shipment, got %s", result.Shipment.Status)
	}
	if result.Shipment.Destination != "Delhi, 110001" {
		t.Fatalf("unexpected destination %q", result.Shipment.Destination)
	}

	w, _ := wallets.Snapshot(ctx, profile.DefaultOwner)
	if !w.Balance.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected balance 450, got %s", w.Balance)
	}
	debit := w.Transactions[0]
	if debit.Type != profile.TypeDebit || debit.Status != profile.StatusCompleted {
		t.Fatalf("unexpected debit entry: %+v", debit)
	}
	if !debit.Amount.Equal(decimal.NewFromInt(-550)) {
		t.Fatalf("expected debit -550, got %s", debit.Amount)
	}
	if debit.ID[:5] != "#TXN-" {
		t.Fatalf("expected #TXN identifier, got %q", debit.ID)
	}
}

func TestCreateInsufficientBalanceRoutesThroughGateway(t *testing.T) {
	svc, wallets, profiles := newTestService()
	ctx := context.Background()

	result, err := svc.Create(ctx, CreateInput{
		Owner:        profile.DefaultOwner,
		SenderName:   "Priya Shah",
		SenderCity:   "Mumbai",
		ReceiverCity: "Delhi",
		ReceiverPIN:  "110001",
		WeightKg:     decimal.NewFromInt(2),
		Service:      ServiceStandard,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.Shipment != nil {
		t.Fatal("expected payment session, got booked shipment")
	}
	if result.Payment == nil {
		t.Fatal("expected payment session")
	}
	if result.Payment.Amount() != 25000 {
		t.Fatalf("expected 25000 minor units, got %d", result.Payment.Amount())
	}

	if err := result.Payment.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for {
		p, err := profiles.Get(ctx, profile.DefaultOwner)
		if err != nil {
			t.Fatalf("get profile: %v", err)
		}
		if len(p.Shipments) == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("shipment never booked after payment")
		}
		time.Sleep(time.Millisecond)
	}

	// credit then debit: net zero balance, two ledger entries
	w, _ := wallets.Snapshot(ctx, profile.DefaultOwner)
	if !w.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", w.Balance)
	}
	if len(w.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(w.Transactions))
	}
	if w.Transactions[0].Type != profile.TypeDebit {
		t.Fatalf("newest entry should be the debit: %+v", w.Transactions[0])
	}
	credit := w.Transactions[1]
	if credit.Type != profile.TypeCredit || credit.Description != "Auto-Recharge for Shipment" {
		t.Fatalf("unexpected credit entry: %+v", credit)
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc, _, profiles := newTestService()
	ctx := context.Background()

	day := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	if _, err := profiles.Update(ctx, profile.DefaultOwner, func(p *profile.Profile) error {
		for i := 0; i < 12; i++ {
			status := StatusPending
			if i%2 == 0 {
				status = StatusDelivered
			}
			p.Shipments = append(p.Shipments, profile.Shipment{
				ID:     NewTrackingID(),
				Date:   day.AddDate(0, 0, -i),
				Status: status,
				Amount: decimal.NewFromInt(200),
			})
		}
		return nil
	}); err != nil {
		t.Fatalf("seed shipments: %v", err)
	}

	all, err := svc.List(ctx, ListInput{Owner: profile.DefaultOwner})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all.TotalItems != 12 || len(all.Items) != 10 || all.TotalPages != 2 {
		t.Fatalf("unexpected page: total=%d len=%d pages=%d", all.TotalItems, len(all.Items), all.TotalPages)
	}

	second, err := svc.List(ctx, ListInput{Owner: profile.DefaultOwner, Page: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(second.Items) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(second.Items))
	}

	delivered, err := svc.List(ctx, ListInput{Owner: profile.DefaultOwner, Status: StatusDelivered})
	if err != nil {
		t.Fatalf("list delivered: %v", err)
	}
	if delivered.TotalItems != 6 {
		t.Fatalf("expected 6 delivered, got %d", delivered.TotalItems)
	}

	byDay, err := svc.List(ctx, ListInput{Owner: profile.DefaultOwner, Date: "2026-08-15"})
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if byDay.TotalItems != 1 {
		t.Fatalf("expected 1 shipment on 2026-08-15, got %d", byDay.TotalItems)
	}
}

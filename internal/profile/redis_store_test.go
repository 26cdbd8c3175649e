package profile

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	p := Defaults()
	p.Wallet.Balance = decimal.NewFromFloat(1234.56)
	p.Wallet.Transactions = []Transaction{{
		ID:          "#PAY-1",
		Description: "Wallet Recharge",
		Method:      "Card/UPI",
		Amount:      decimal.NewFromFloat(1234.56),
		Type:        TypeCredit,
		Status:      StatusSuccess,
	}}

	if err := store.Save(ctx, DefaultOwner, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, DefaultOwner)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Wallet.Balance.Equal(p.Wallet.Balance) {
		t.Fatalf("balance mismatch: %s != %s", loaded.Wallet.Balance, p.Wallet.Balance)
	}
	if len(loaded.Wallet.Transactions) != 1 || loaded.Wallet.Transactions[0].ID != "#PAY-1" {
		t.Fatalf("transactions not round-tripped: %+v", loaded.Wallet.Transactions)
	}
}

func TestRedisStoreMissingOwner(t *testing.T) {
	store := setupRedisStore(t)
	if _, err := store.Load(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package customers

import (
	"context"
	"errors"
	"testing"

	"github.com/logismart/logismart/internal/profile"
)

func TestAddAndList(t *testing.T) {
	svc := NewService(profile.NewService(profile.NewMemoryStore()))
	ctx := context.Background()

	first, err := svc.Add(ctx, AddInput{Owner: profile.DefaultOwner, Name: "Anita Desai", Email: "anita@example.com", Location: "Pune"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID != 1 || first.Status != StatusActive {
		t.Fatalf("unexpected customer: %+v", first)
	}
	if first.Orders != 0 || !first.Spent.IsZero() {
		t.Fatalf("expected zeroed history: %+v", first)
	}

	second, err := svc.Add(ctx, AddInput{Owner: profile.DefaultOwner, Name: "Vikram Rao", Email: "vikram@example.com", Status: StatusInactive})
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}

	items, err := svc.List(ctx, profile.DefaultOwner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Vikram Rao" {
		t.Fatalf("expected newest first, got %+v", items)
	}
}

func TestAddValidation(t *testing.T) {
	svc := NewService(profile.NewService(profile.NewMemoryStore()))
	ctx := context.Background()

	if _, err := svc.Add(ctx, AddInput{Owner: profile.DefaultOwner, Email: "x@example.com"}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.Add(ctx, AddInput{Owner: profile.DefaultOwner, Name: "No Email"}); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}

	items, _ := svc.List(ctx, profile.DefaultOwner)
	if len(items) != 0 {
		t.Fatalf("rejected add mutated state: %+v", items)
	}
}

package shop

import (
	"errors"
	"testing"
	"time"

	"github.com/parlolabs/parlo/internal/profile"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPurchaseOutfit(t *testing.T) {
	p := profile.New(t0)
	p.Gems = 200

	it, err := Purchase(p, "outfit-explorer")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if p.Gems != 50 {
		t.Errorf("gems = %d, want 50", p.Gems)
	}
	if !p.HasOutfit(it.ID) {
		t.Error("outfit should be unlocked")
	}

	if _, err := Purchase(p, "outfit-explorer"); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("repurchase: got %v, want ErrAlreadyOwned", err)
	}
	if p.Gems != 50 {
		t.Error("failed purchase must not charge")
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	p := profile.New(t0)
	p.Gems = 10

	if _, err := Purchase(p, "outfit-explorer"); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("got %v, want ErrInsufficientFunds", err)
	}
	if p.Gems != 10 || p.HasOutfit("outfit-explorer") {
		t.Error("failed purchase must leave the profile unchanged")
	}
}

func TestPurchaseWithGCD(t *testing.T) {
	p := profile.New(t0)
	p.GCDBalance = 7.5

	if _, err := Purchase(p, "outfit-flamenco"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if p.GCDBalance != 2.5 {
		t.Errorf("gcd balance = %v, want 2.5", p.GCDBalance)
	}
}

func TestHeartRefill(t *testing.T) {
	p := profile.New(t0)
	p.Gems = 150
	p.Hearts = 1

	if _, err := Purchase(p, "refill-hearts"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if p.Hearts != profile.MaxHearts {
		t.Errorf("hearts = %d, want full", p.Hearts)
	}
	if p.Gems != 50 {
		t.Errorf("gems = %d, want 50", p.Gems)
	}

	if _, err := Purchase(p, "refill-hearts"); !errors.Is(err, ErrHeartsFull) {
		t.Errorf("refill at full: got %v, want ErrHeartsFull", err)
	}
}

func TestUnknownItem(t *testing.T) {
	p := profile.New(t0)
	if _, err := Purchase(p, "outfit-nonexistent"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("got %v, want ErrUnknownItem", err)
	}
}

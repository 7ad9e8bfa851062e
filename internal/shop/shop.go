// Package shop defines the purchasable catalog and applies purchases to the
// profile wallet.
package shop

import (
	"errors"

	"github.com/parlolabs/parlo/internal/hearts"
	"github.com/parlolabs/parlo/internal/profile"
)

// Currency identifies which balance a price is charged against.
type Currency string

const (
	CurrencyGems Currency = "gems"
	CurrencyGCD  Currency = "gcd"
)

// Kind distinguishes what a purchase grants.
type Kind string

const (
	KindOutfit      Kind = "outfit"
	KindHeartRefill Kind = "heart-refill"
)

// Item is one catalog entry.
type Item struct {
	ID       string
	Name     string
	Desc     string
	Price    float64
	Currency Currency
	Kind     Kind
}

var (
	// ErrUnknownItem is returned for an ID not in the catalog.
	ErrUnknownItem = errors.New("shop: unknown item")

	// ErrAlreadyOwned is returned when buying an outfit twice.
	ErrAlreadyOwned = errors.New("shop: already owned")

	// ErrInsufficientFunds is returned when the balance cannot cover the price.
	ErrInsufficientFunds = errors.New("shop: insufficient funds")

	// ErrHeartsFull is returned when refilling an already-full heart pool.
	ErrHeartsFull = errors.New("shop: hearts already full")
)

// Catalog returns the purchasable items in display order.
func Catalog() []Item {
	return []Item{
		{ID: "refill-hearts", Name: "Heart Refill", Desc: "Restore all five hearts.", Price: 100, Currency: CurrencyGems, Kind: KindHeartRefill},
		{ID: "outfit-explorer", Name: "Explorer Outfit", Desc: "Hat, map, and boundless optimism.", Price: 150, Currency: CurrencyGems, Kind: KindOutfit},
		{ID: "outfit-chef", Name: "Chef Outfit", Desc: "For ordering like you own the kitchen.", Price: 200, Currency: CurrencyGems, Kind: KindOutfit},
		{ID: "outfit-flamenco", Name: "Flamenco Outfit", Desc: "Earned the hard way.", Price: 5, Currency: CurrencyGCD, Kind: KindOutfit},
	}
}

// Find returns the catalog item with the given ID.
func Find(id string) (Item, bool) {
	for _, it := range Catalog() {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Purchase charges the item's price and applies its effect. The profile is
// unchanged when an error is returned.
func Purchase(p *profile.Profile, id string) (Item, error) {
	it, ok := Find(id)
	if !ok {
		return Item{}, ErrUnknownItem
	}

	switch it.Kind {
	case KindOutfit:
		if p.HasOutfit(it.ID) {
			return it, ErrAlreadyOwned
		}
	case KindHeartRefill:
		if p.Hearts >= profile.MaxHearts {
			return it, ErrHeartsFull
		}
	}

	var paid bool
	switch it.Currency {
	case CurrencyGems:
		paid = p.SpendGems(int(it.Price))
	case CurrencyGCD:
		paid = p.SpendGCD(it.Price)
	}
	if !paid {
		return it, ErrInsufficientFunds
	}

	switch it.Kind {
	case KindOutfit:
		p.UnlockOutfit(it.ID)
	case KindHeartRefill:
		hearts.Refill(p)
	}
	return it, nil
}

package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestShipmentIsFeasible(t *testing.T) {
	var nilShipment *Shipment
	if nilShipment.IsFeasible() {
		t.Fatalf("nil shipment reported feasible")
	}

	s := &Shipment{Sender: &Location{ID: 1}}
	if s.IsFeasible() {
		t.Fatalf("shipment without receiver reported feasible")
	}

	s.Receiver = &Location{ID: 2}
	if !s.IsFeasible() {
		t.Fatalf("shipment with both endpoints reported infeasible")
	}
}

func TestShipmentSetItems(t *testing.T) {
	items := []Item{
		{Name: "a", Quantity: 2, Price: decimal.NewFromInt(10)},
		{Name: "b", Quantity: 1, Price: decimal.NewFromInt(5)},
	}

	var got []Item
	aggregate := func(in []Item) PackageProfile {
		got = in
		return PackageProfile{Width: 1, Height: 2, Length: 3, Weight: 4}
	}

	s := &Shipment{}
	if err := s.SetItems(items, decimal.NewFromInt(25), aggregate); err != nil {
		t.Fatalf("SetItems() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("aggregate received %d items, want 2", len(got))
	}
	if want := (PackageProfile{Width: 1, Height: 2, Length: 3, Weight: 4}); s.Profile != want {
		t.Fatalf("profile = %+v, want %+v", s.Profile, want)
	}
	if !s.Price.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("price = %s, want 25", s.Price)
	}
}

func TestShipmentSetItemsRejectsBadQuantity(t *testing.T) {
	called := false
	aggregate := func([]Item) PackageProfile {
		called = true
		return PackageProfile{}
	}

	s := &Shipment{}
	err := s.SetItems([]Item{{Name: "a", Quantity: 1}, {Name: "b", Quantity: 0}}, decimal.Zero, aggregate)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("SetItems() error = %v, want ErrInvalidQuantity", err)
	}
	if called {
		t.Fatalf("aggregate called for invalid items")
	}
	if s.Items != nil {
		t.Fatalf("items stored despite error")
	}
}

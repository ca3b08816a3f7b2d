package services

import (
	"parcel-costing-service/internal/domain"
	"testing"
)

func cube(side, weight float64, qty int) domain.Item {
	return domain.Item{
		Name:       "cube",
		Quantity:   qty,
		Weight:     weight,
		Dimensions: domain.ItemDimensions{Length: side, Width: side, Height: side},
	}
}

func TestAggregateTwoCubes(t *testing.T) {
	items := []domain.Item{cube(10, 500, 1), cube(10, 500, 1)}

	p := Aggregate(items, domain.Dimensions{})

	want := domain.PackageProfile{Width: 1, Height: 2, Length: 1, Weight: 1}
	if p != want {
		t.Fatalf("profile = %+v, want %+v", p, want)
	}
	// 1 x 1 x 2 cm is 2e-6 m3, below the third decimal.
	if v := p.Volume(); v != 0 {
		t.Fatalf("volume = %v, want 0", v)
	}
}

func TestAggregateSingleItemKeepsAscendingSides(t *testing.T) {
	item := domain.Item{
		Name:       "book",
		Quantity:   1,
		Weight:     300,
		Dimensions: domain.ItemDimensions{Length: 300, Width: 200, Height: 40},
	}

	p := Aggregate([]domain.Item{item}, domain.Dimensions{})

	// Length takes the smallest side, height the largest.
	if p.Length != 4 || p.Width != 20 || p.Height != 30 {
		t.Fatalf("profile = %+v, want length=4 width=20 height=30", p)
	}
	if p.Weight != 0.3 {
		t.Fatalf("weight = %v, want 0.3", p.Weight)
	}
	if v := p.Volume(); v != 0.002 {
		t.Fatalf("volume = %v, want 0.002", v)
	}
}

func TestScaleItemFirstMinimumWins(t *testing.T) {
	dims := domain.ItemDimensions{Length: 30, Width: 10, Height: 20}

	tests := []struct {
		qty  int
		want box
	}{
		{qty: 1, want: box{X: 10, Y: 20, Z: 30}},
		// (4,1,1) and (2,2,1) both give 90; the earlier one is kept.
		{qty: 4, want: box{X: 40, Y: 20, Z: 30}},
		{qty: 2, want: box{X: 20, Y: 20, Z: 30}},
		{qty: 6, want: box{X: 30, Y: 40, Z: 30}},
		{qty: 9, want: box{X: 50, Y: 40, Z: 30}},
	}

	for _, tt := range tests {
		if got := scaleItem(dims, tt.qty); got != tt.want {
			t.Errorf("scaleItem(qty=%d) = %+v, want %+v", tt.qty, got, tt.want)
		}
	}
}

func TestMergeBoxesStacksSmallestFirst(t *testing.T) {
	boxes := []box{
		{X: 100, Y: 100, Z: 100},
		{X: 10, Y: 20, Z: 30},
		{X: 30, Y: 20, Z: 10},
	}

	got := mergeBoxes(boxes)

	// Round 1: (30,20,10) x2 merge to (30,20,20).
	// Round 2: (30,20,20) with (100,100,100) gives (100,100,120).
	want := box{X: 100, Y: 100, Z: 120}
	if got != want {
		t.Fatalf("mergeBoxes = %+v, want %+v", got, want)
	}
}

func TestAggregateWeightFloor(t *testing.T) {
	defaults := domain.Dimensions{Weight: 1000}

	tests := []struct {
		name  string
		items []domain.Item
		want  float64
	}{
		{"no items", nil, 1},
		{"below floor", []domain.Item{cube(10, 200, 2)}, 1},
		{"above floor", []domain.Item{cube(10, 600, 3)}, 1.8},
		{"missing weight", []domain.Item{cube(10, 0, 1)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(tt.items, defaults).Weight; got != tt.want {
				t.Fatalf("weight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregateDefaultDimensions(t *testing.T) {
	defaults := domain.Dimensions{Width: 200, Height: 100, Length: 300, Weight: 0}

	small := Aggregate([]domain.Item{cube(10, 100, 1)}, defaults)
	if small.Width != 20 || small.Height != 10 || small.Length != 30 {
		t.Fatalf("small parcel = %+v, want default sides 20x10x30", small)
	}
	if small.Weight != 0.1 {
		t.Fatalf("small parcel weight = %v, want 0.1 (weight checked separately)", small.Weight)
	}

	big := Aggregate([]domain.Item{cube(400, 100, 1)}, defaults)
	if big.Width != 40 || big.Height != 40 || big.Length != 40 {
		t.Fatalf("big parcel = %+v, want computed sides 40x40x40", big)
	}

	missing := Aggregate([]domain.Item{{Name: "unknown", Quantity: 1, Weight: 100}}, defaults)
	if missing.Width != 20 || missing.Height != 10 || missing.Length != 30 {
		t.Fatalf("missing dimensions = %+v, want defaults", missing)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	items := []domain.Item{
		{Name: "a", Quantity: 3, Weight: 120, Dimensions: domain.ItemDimensions{Length: 15, Width: 40, Height: 25}},
		{Name: "b", Quantity: 1, Weight: 900, Dimensions: domain.ItemDimensions{Length: 120, Width: 80, Height: 60}},
		{Name: "c", Quantity: 7, Weight: 35, Dimensions: domain.ItemDimensions{Length: 10, Width: 10, Height: 55}},
	}

	first := Aggregate(items, domain.Dimensions{})
	for i := 0; i < 10; i++ {
		if got := Aggregate(items, domain.Dimensions{}); got != first {
			t.Fatalf("run %d = %+v, want %+v", i, got, first)
		}
	}

	wantWeight := (3*120 + 900 + 7*35) / 1000.0
	if first.Weight != wantWeight {
		t.Fatalf("weight = %v, want %v", first.Weight, wantWeight)
	}
}

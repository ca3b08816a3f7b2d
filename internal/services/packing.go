package services

import (
	"math"
	"parcel-costing-service/internal/domain"
	"slices"
)

// box is a cuboid in millimeters. After orientation X >= Y >= Z.
type box struct {
	X, Y, Z float64
}

func (b box) sum() float64 { return b.X + b.Y + b.Z }

// oriented returns the box with its sides sorted descending.
func (b box) oriented() box {
	s := []float64{b.X, b.Y, b.Z}
	slices.Sort(s)
	return box{X: s[2], Y: s[1], Z: s[0]}
}

// scaleItem returns the box occupied by qty units of an item.
//
// Units are laid out as an x*y*z grid over the item's sides sorted
// ascending. The grid is picked by a bounded divisor search minimizing
// the total linear extent; the first minimum in loop order wins.
func scaleItem(dims domain.ItemDimensions, qty int) box {
	d := []float64{dims.Width, dims.Height, dims.Length}
	slices.Sort(d)

	if qty <= 1 {
		return box{X: d[0], Y: d[1], Z: d[2]}
	}

	var (
		bestX, bestY, bestZ int
		best                float64
		found               bool
	)

	n := float64(qty)
	for y := 1; y <= int(math.Floor(math.Sqrt(n))); y++ {
		i := math.Ceil(n / float64(y))
		for z := 1; z <= int(math.Floor(math.Sqrt(i))); z++ {
			x := int(math.Ceil(i / float64(z)))
			l := float64(x)*d[0] + float64(y)*d[1] + float64(z)*d[2]
			if !found || l < best {
				best, found = l, true
				bestX, bestY, bestZ = x, y, z
			}
		}
	}

	return box{
		X: float64(bestX) * d[0],
		Y: float64(bestY) * d[1],
		Z: float64(bestZ) * d[2],
	}
}

// mergeBoxes stacks boxes into one envelope.
//
// Each round orients every box, stable-sorts them by side sum and
// replaces the two smallest with (max X, max Y, Z1+Z2) at the front.
// A lone box is returned untouched, so a single item keeps its
// ascending side order. This is a reproducible heuristic, not an optimal packer.
func mergeBoxes(boxes []box) box {
	if len(boxes) == 0 {
		return box{}
	}

	work := slices.Clone(boxes)
	for len(work) > 1 {
		for i := range work {
			work[i] = work[i].oriented()
		}
		slices.SortStableFunc(work, func(a, b box) int {
			switch {
			case a.sum() < b.sum():
				return -1
			case a.sum() > b.sum():
				return 1
			}
			return 0
		})

		a, b := work[0], work[1]
		merged := box{
			X: math.Max(a.X, b.X),
			Y: math.Max(a.Y, b.Y),
			Z: a.Z + b.Z,
		}
		work = append([]box{merged}, work[2:]...)
	}

	return work[0]
}

// Aggregate reduces items to a single PackageProfile.
//
// Weight is floored at defaults.Weight; when the stacked volume is
// below the default volume, the default sides replace the computed
// ones. Weight and volume are checked independently. Aggregate never
// fails: with no usable data the defaults are returned.
//
// Quantities below one count as a single unit here; callers going
// through Shipment.SetItems have them rejected earlier.
func Aggregate(items []domain.Item, defaults domain.Dimensions) domain.PackageProfile {
	boxes := make([]box, 0, len(items))
	weight := 0.0
	for _, it := range items {
		qty := max(it.Quantity, 1)
		boxes = append(boxes, scaleItem(it.Dimensions, qty))
		weight += it.Weight * float64(qty)
	}

	env := mergeBoxes(boxes)
	length := roundPlaces(env.X, 2)
	width := roundPlaces(env.Y, 2)
	height := roundPlaces(env.Z, 2)

	if weight < defaults.Weight {
		weight = defaults.Weight
	}

	if width*height*length < defaults.Volume() {
		width = defaults.Width
		height = defaults.Height
		length = defaults.Length
	}

	return domain.PackageProfile{
		Width:  width / 10,
		Height: height / 10,
		Length: length / 10,
		Weight: weight / 1000,
	}
}

// Aggregator binds Aggregate to a configured default envelope.
func Aggregator(defaults domain.Dimensions) func([]domain.Item) domain.PackageProfile {
	return func(items []domain.Item) domain.PackageProfile {
		return Aggregate(items, defaults)
	}
}

func roundPlaces(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

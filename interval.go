package plotgeom

import "math"

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating that this edge
// is not set. Consumers must treat an unset edge as "no constraint".
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns an Interval with both edges unset, i.e. [NaN,NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Unset reports whether any edge of i is unset.
func (i Interval) Unset() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j agree on both edges, treating unset
// edges as equal to each other.
func (i Interval) Equal(j Interval) bool {
	min := i.Min == j.Min || (math.IsNaN(i.Min) && math.IsNaN(j.Min))
	max := i.Max == j.Max || (math.IsNaN(i.Max) && math.IsNaN(j.Max))
	return min && max
}

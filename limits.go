package plotgeom

// ValueLimits returns the smallest interval covering all values in vs.
// Missing values are NaN and are skipped. If vs contains no usable
// value the returned interval is unset.
func ValueLimits(vs []float64) Interval {
	lim := UnsetInterval()
	lim.Update(vs...)
	return lim
}

// BaseLimits returns the limits of the base axis of a bar series, i.e.
// the axis the bars are lined up on. They are the value limits with
// the lower edge pulled down by a twentieth of the spread to reserve a
// small margin below the lowest bar. The margin is only applied while
// the lower edge stays positive; a bound at or below zero is returned
// unchanged.
func BaseLimits(vs []float64) Interval {
	lim := ValueLimits(vs)
	if lim.Unset() {
		return lim
	}
	delta := (lim.Max - lim.Min) / 20
	if lim.Min-delta > 0 {
		lim.Min -= delta
	}
	return lim
}

package scorer

// minMax returns the smallest and largest of values.
func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// normalize scales v onto [0,1] within [lo,hi]. A degenerate range maps
// every value to 0.5 so relative ranking stays meaningful. With invert set,
// lower raw values score higher.
func normalize(v, lo, hi float64, invert bool) float64 {
	if hi == lo {
		return 0.5
	}
	s := clamp01((v - lo) / (hi - lo))
	if invert {
		return 1 - s
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

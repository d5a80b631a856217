package view

// ComputeWindow finds the inclusive bounds of a window of page indices
// centered around center, kept inside [lo, hi].
//
// When the whole range fits the budget it is returned unchanged. A budget of
// zero (or less) yields the empty window (lo, lo-1). Callers must not invoke
// it with hi < lo.
func ComputeWindow(lo, hi, center, budget int) (left, right int) {
	budget = max(budget, 0)

	if hi-lo <= budget {
		return lo, hi
	}
	if budget == 0 {
		return lo, lo - 1
	}

	half := budget / 2
	center = min(max(center, lo), hi)

	// Cada passo move o centro uma posição em direção à região viável.
	for range hi - lo + 1 {
		left, right = center-half, center+half

		switch {
		case left >= lo && right <= hi:
			return left, right
		case left < lo:
			center++
		default:
			center--
		}
	}

	return lo, hi
}

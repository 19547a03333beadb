package schema

// GetPlainLabel returns a plain text label indicating the priority level
// based on a smell's prioritization score. PS lives in [-2, +2]; anything
// at or below zero correlates no better than chance.
func GetPlainLabel(ps float64) string {
	switch {
	case ps >= 1.0:
		return "Critical"
	case ps >= 0.5:
		return "High"
	case ps >= 0.1:
		return "Moderate"
	default:
		return "Low"
	}
}

// CountSignificant returns how many of the four pairings are significant.
func CountSignificant(s SignificanceSet) int {
	n := 0
	for _, flag := range []bool{s.CF, s.CE, s.FF, s.FE} {
		if flag {
			n++
		}
	}
	return n
}

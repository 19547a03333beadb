// Package stats has the rank-correlation primitives for smell scoring.
package stats

import (
	"math"
	"sort"
)

// FractionalRanks assigns 1-based ranks to values, resolving ties with the
// average (fractional) rank of the tied block. Integer ranking under ties
// would bias rho toward zero on sparse git-history data.
func FractionalRanks(values []float64) []float64 {
	n := len(values)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Ranks i+1..j+1 share the block average.
		avg := float64(i+j+2) / 2.0
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// Spearman computes Spearman's rank correlation coefficient between two
// equal-length vectors using the rank-difference formula
//
//	rho = 1 - 6*sum(d_i^2) / (n*(n^2-1))
//
// over fractional ranks. The caller is responsible for the degeneracy
// guards (zero variance, fewer than 3 pairs).
func Spearman(x, y []float64) float64 {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0
	}

	rx := FractionalRanks(x)
	ry := FractionalRanks(y)

	var sumD2 float64
	for i := range rx {
		d := rx[i] - ry[i]
		sumD2 += d * d
	}

	nf := float64(n)
	rho := 1 - 6*sumD2/(nf*(nf*nf-1))

	// The d^2 formula can drift slightly outside [-1, 1] under heavy ties.
	return math.Max(-1, math.Min(1, rho))
}

// PValue returns the two-sided p-value for the null hypothesis rho = 0,
// using the t-distribution approximation
//
//	t = rho * sqrt((n-2) / (1-rho^2)),  df = n-2
//
// The approximation is valid for n >= 3; smaller samples return 1. The
// value is informational only and must never drive ranking.
func PValue(rho float64, n int) float64 {
	if n < 3 {
		return 1
	}
	if math.Abs(rho) >= 1 {
		return 0
	}

	df := float64(n - 2)
	t2 := rho * rho * df / (1 - rho*rho)

	// Two-sided p for Student's t: P(|T| > t) = I_{df/(df+t^2)}(df/2, 1/2).
	p := regIncBeta(df/2, 0.5, df/(df+t2))
	return math.Max(0, math.Min(1, p))
}

// HasVariance reports whether the vector has at least two distinct values.
func HasVariance(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			return true
		}
	}
	return false
}

// regIncBeta computes the regularized incomplete beta function I_x(a, b)
// via the continued-fraction expansion (Lentz's method).
func regIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lbeta, _ := math.Lgamma(a + b)
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	front := math.Exp(lbeta - la - lb + a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		return front * betaCF(a, b, x) / a
	}
	return 1 - front*betaCF(b, a, 1-x)/b
}

// betaCF evaluates the continued fraction for the incomplete beta function.
func betaCF(a, b, x float64) float64 {
	const (
		maxIterations = 200
		epsilon       = 3e-14
		tiny          = 1e-30
	)

	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIterations; m++ {
		mf := float64(m)
		m2 := 2 * mf

		// Even step.
		aa := mf * (b - mf) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		// Odd step.
		aa = -(a + mf) * (qab + mf) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < epsilon {
			break
		}
	}
	return h
}

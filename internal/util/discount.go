// Package util contains small numeric helpers shared by decision logic in
// examples and application code.
package util

// DiscountedSum folds a stream of period values into its present value using
// discount factor delta. initialPeriod shifts the exponent, so a value list
// starting at period k is discounted as delta^k, delta^(k+1), ...
func DiscountedSum(values []float64, delta float64, initialPeriod int) float64 {
	var sum float64
	factor := pow(delta, initialPeriod)
	for _, v := range values {
		sum += v * factor
		factor *= delta
	}
	return sum
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pow(base float64, exp int) float64 {
	out := 1.0
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

package report

// safeDiv guards every ratio in the report: a zero denominator yields 0,
// never NaN or Inf.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

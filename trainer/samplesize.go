package trainer

import "math"

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
// Significance 0 or 100 and above means the whole dataset.
func sampleSize(N int, significance byte) int {
	if significance == 0 || significance >= 100 || N <= 0 {
		return N
	}

	// Convert significance level to Z-score
	z := zScoreFromAlpha(100 - significance)

	// Assume worst-case proportion p = 0.5 for max variability
	p := 0.5
	e := float64(100-significance) * 0.01

	numerator := math.Pow(z, 2) * p * (1 - p)
	denominator := math.Pow(e, 2)

	// Initial sample size without population correction
	ss := numerator / denominator

	// Apply finite population correction
	correctedSS := math.Ceil(ss * float64(N) / (float64(N) - 1 + ss))

	if int(correctedSS) > N {
		return N
	}
	if correctedSS < 1 {
		return 1
	}

	return int(correctedSS)
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576
	case alpha <= 5:
		return 1.96
	case alpha <= 10:
		return 1.645
	default:
		return 1.96
	}
}

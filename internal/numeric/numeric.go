// Package numeric implements the series transforms applied before charting.
package numeric

import (
	"fmt"
	"math"
	"sort"
)

// LinearRegression fits value against its 0-based index by ordinary least
// squares and returns the fitted value at every index. With fewer than two
// points the slope is undefined and every fitted value is the mean.
func LinearRegression(values []float64) []float64 {
	n := len(values)
	fitted := make([]float64, n)
	if n == 0 {
		return fitted
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	fn := float64(n)
	mean := sumY / fn

	denominator := fn*sumXX - sumX*sumX
	if n < 2 || denominator == 0 {
		for i := range fitted {
			fitted[i] = mean
		}
		return fitted
	}

	slope := (fn*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / fn

	for i := range fitted {
		fitted[i] = intercept + slope*float64(i)
	}

	return fitted
}

// CenteredMovingAverage averages values[max(0, i-w/2) : min(n, i+ceil(w/2))]
// for every index i. The window shrinks at both ends, nothing is padded.
func CenteredMovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	n := len(values)
	half := window / 2
	rest := window - half

	smoothed := make([]float64, n)
	for i := range values {
		from := i - half
		if from < 0 {
			from = 0
		}
		to := i + rest
		if to > n {
			to = n
		}

		var sum float64
		for _, v := range values[from:to] {
			sum += v
		}
		smoothed[i] = sum / float64(to-from)
	}

	return smoothed
}

// YearPair is one point of the real-vs-predicted scatter.
type YearPair struct {
	Year      int
	Real      float64
	Predicted float64
}

// HSLA is a CSS hsla() colour.
type HSLA struct {
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      float64
}

// String renders the colour as a CSS value.
func (c HSLA) String() string {
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %g)", c.Hue, c.Saturation, c.Lightness, c.Alpha)
}

// Years returns the distinct years of pairs in ascending order.
func Years(pairs []YearPair) []int {
	seen := make(map[int]struct{}, len(pairs))
	years := make([]int, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Year]; ok {
			continue
		}
		seen[p.Year] = struct{}{}
		years = append(years, p.Year)
	}

	sort.Ints(years)
	return years
}

// YearPalette spreads the distinct years evenly over the hue circle. The
// colour of a year depends only on its position among the sorted years.
func YearPalette(pairs []YearPair) map[int]HSLA {
	years := Years(pairs)

	palette := make(map[int]HSLA, len(years))
	for i, y := range years {
		palette[y] = HSLA{
			Hue:        float64(i) * 360 / float64(len(years)),
			Saturation: 75,
			Lightness:  45,
			Alpha:      0.85,
		}
	}

	return palette
}

// MinMax returns the extent of all given series; ok is false when every
// series is empty.
func MinMax(series ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) {
				continue
			}
			ok = true
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if !ok {
		return 0, 0, false
	}

	return lo, hi, true
}

// RMSE is the root mean squared difference between real and predicted.
func RMSE(pairs []YearPair) float64 {
	if len(pairs) == 0 {
		return 0
	}

	var sum float64
	for _, p := range pairs {
		d := p.Real - p.Predicted
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(pairs)))
}

// R2 is the coefficient of determination of predicted against real. A
// constant real series yields 0.
func R2(pairs []YearPair) float64 {
	if len(pairs) == 0 {
		return 0
	}

	var mean float64
	for _, p := range pairs {
		mean += p.Real
	}
	mean /= float64(len(pairs))

	var ssRes, ssTot float64
	for _, p := range pairs {
		ssRes += (p.Real - p.Predicted) * (p.Real - p.Predicted)
		ssTot += (p.Real - mean) * (p.Real - mean)
	}

	if ssTot == 0 {
		return 0
	}

	return 1 - ssRes/ssTot
}

package internal

import (
	"math"
	"strconv"
	"time"
)

func TruncateDuration(d time.Duration) time.Duration {
	magnitude := time.Duration(1)
	for {
		if magnitude > d {
			return d.Truncate(magnitude / 1000)
		}
		magnitude = magnitude * 10
	}
}

// Round rounds f half away from zero to the given number of decimals.
func Round(f float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}

// FormatFloat prints f with as few digits as needed, e.g. 3.1197 or 0.978.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

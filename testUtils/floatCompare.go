package testUtils

import (
	"math"
)

//FloatEqUpTo returns true if abs(a-b)<=maxDiff
func FloatEqUpTo(a, b, maxDiff float64) bool {
	return math.Abs(a-b) <= maxDiff
}

//FloatSliceEqUpTo returns true if FloatEqUpTo(a[i],b[i],maxDiff) holds for all elements
func FloatSliceEqUpTo(a, b []float64, maxDiff float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !FloatEqUpTo(a[i], b[i], maxDiff) {
			return false
		}
	}
	return true
}

//MatrixEqUpTo returns true if a and b have the same shape and FloatSliceEqUpTo holds for each row
func MatrixEqUpTo(a, b [][]float64, maxDiff float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !FloatSliceEqUpTo(a[i], b[i], maxDiff) {
			return false
		}
	}
	return true
}

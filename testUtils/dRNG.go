package testUtils

import (
	"math/rand"
	"strconv"
	"strings"
)

//DRNGMatrix returns a rows x cols matrix with pseudo random values in [0,scaleFactor[.
//Calling with the same seed will yield the same matrix. Intended to generate test inputs
func DRNGMatrix(rows, cols int, seed int64, scaleFactor float64) [][]float64 {
	dRNG := rand.New(rand.NewSource(seed))
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = dRNG.Float64() * scaleFactor
		}
	}
	return m
}

//MatrixToText renders m in the generator's text format with precision fractional digits
func MatrixToText(m [][]float64, precision int) string {
	sb := strings.Builder{}
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', precision, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package matrixGen

import "strconv"

//AppendToken appends v in fixed-point notation with exactly precision fractional digits
func AppendToken(dst []byte, v float64, precision int) []byte {
	return strconv.AppendFloat(dst, v, 'f', precision, 64)
}

//AppendRow appends values as tokens separated by a single space followed by '\n'.
//An empty values slice yields an empty line
func AppendRow(dst []byte, values []float64, precision int) []byte {
	for i, v := range values {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = AppendToken(dst, v, precision)
	}
	return append(dst, '\n')
}

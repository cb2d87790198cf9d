package matrixFile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var ErrTokenOutOfRange = errors.New("token out of range")
var ErrPrecisionMismatch = errors.New("unexpected number of fractional digits")

//TokenSpec describes the expected format of every token in a matrix file
type TokenSpec struct {
	Low       float64
	High      float64
	Precision int
}

//checkTokenFormat verifies that token is an optionally signed decimal with exactly precision fractional digits.
//precision 0 means no decimal point
func checkTokenFormat(token []byte, precision int) error {
	digits := token
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		digits = digits[1:]
	}
	intPart, fracPart := digits, []byte(nil)
	hasDot := false
	if dot := bytes.IndexByte(digits, '.'); dot >= 0 {
		intPart, fracPart, hasDot = digits[:dot], digits[dot+1:], true
	}
	if len(intPart) == 0 || !allDigits(intPart) || !allDigits(fracPart) {
		return ErrMalformedToken
	}
	if precision == 0 && hasDot {
		return ErrPrecisionMismatch
	}
	if precision > 0 && (!hasDot || len(fracPart) != precision) {
		return ErrPrecisionMismatch
	}
	return nil
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

//CheckTokens streams r and verifies that it is a rectangular matrix whose tokens all follow spec,
//i.e. have exactly spec.Precision fractional digits and lie in [spec.Low,spec.High[.
//Returns the number of rows and columns found
func CheckTokens(r io.Reader, spec TokenSpec) (int, int, error) {
	return scanRows(r, func(rowIDX int, fields [][]byte) error {
		for j, field := range fields {
			if err := checkTokenFormat(field, spec.Precision); err != nil {
				return fmt.Errorf("row %v col %v %q : %w", rowIDX+1, j+1, field, err)
			}
			v, err := parseToken(field)
			if err != nil {
				return fmt.Errorf("row %v col %v %q : %w", rowIDX+1, j+1, field, err)
			}
			if v < spec.Low || v >= spec.High {
				return fmt.Errorf("row %v col %v %v not in [%v,%v[ : %w", rowIDX+1, j+1, v, spec.Low, spec.High, ErrTokenOutOfRange)
			}
		}
		return nil
	})
}

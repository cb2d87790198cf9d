package matrixFile

import (
	"bytes"
	"fmt"
	"io"
)

const (
	//matrices with at most this many rows and columns are printed completely
	maxPrintDim = 10
	//edge length of the top-left sample printed for larger matrices
	sampleDim = 3
)

//Print writes m to w. Small matrices are printed completely with tab separated values,
//larger ones are summarized by their top-left corner
func Print(w io.Writer, m *Matrix) error {
	buf := &bytes.Buffer{}
	if m.Rows <= maxPrintDim && m.Cols <= maxPrintDim {
		for _, row := range m.Data {
			for _, v := range row {
				fmt.Fprintf(buf, "%f\t", v)
			}
			buf.WriteByte('\n')
		}
	} else {
		fmt.Fprintf(buf, "Matrix too large to display (%vx%v)\n", m.Rows, m.Cols)
		fmt.Fprintf(buf, "Sample - top-left %vx%v:\n", sampleDim, sampleDim)
		for i := 0; i < sampleDim && i < m.Rows; i++ {
			for j := 0; j < sampleDim && j < m.Cols; j++ {
				fmt.Fprintf(buf, "%8.2f ", m.Data[i][j])
			}
			buf.WriteByte('\n')
		}
	}
	_, err := buf.WriteTo(w)
	return err
}

//Values returns all entries of m in row major order
func (m *Matrix) Values() []float64 {
	values := make([]float64, 0, m.Rows*m.Cols)
	for _, row := range m.Data {
		values = append(values, row...)
	}
	return values
}

package histPlot

import (
	"bytes"
	"testing"

	"randMatrix/testUtils"
)

func TestPlotAndStore(t *testing.T) {
	values := testUtils.DRNGMatrix(1, 1000, 3, 100)[0]
	buf := &bytes.Buffer{}
	if err := PlotAndStore(values, 20, 0, 100, buf); err != nil {
		t.Fatalf("unexpected error : %v", err)
	}
	pngMagic := []byte("\x89PNG\r\n\x1a\n")
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("output is not a png file")
	}
}

func TestPlot_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		bins      int
		low, high float64
	}{
		{name: "no values", values: nil, bins: 10, low: 0, high: 1},
		{name: "no bins", values: []float64{0.5}, bins: 0, low: 0, high: 1},
		{name: "empty interval", values: []float64{0.5}, bins: 10, low: 1, high: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Plot(tt.values, tt.bins, tt.low, tt.high); err == nil {
				t.Errorf("expected error got none")
			}
		})
	}
}

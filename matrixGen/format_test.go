package matrixGen

import "testing"

func TestAppendRow(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		precision int
		want      string
	}{
		{name: "example row", values: []float64{12.345678, 99.000001, 0.000002}, precision: 6, want: "12.345678 99.000001 0.000002\n"},
		{name: "padding", values: []float64{56.7, 3.14, 88.88}, precision: 6, want: "56.700000 3.140000 88.880000\n"},
		{name: "rounding", values: []float64{73.4029184}, precision: 6, want: "73.402918\n"},
		{name: "empty", values: nil, precision: 6, want: "\n"},
		{name: "no fraction", values: []float64{1.5, 2.4}, precision: 0, want: "2 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(AppendRow(nil, tt.values, tt.precision)); got != tt.want {
				t.Errorf("AppendRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

//Package matrixStats computes descriptive statistics over matrix values
package matrixStats

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
)

var ErrNoValues = errors.New("cannot summarize empty input")

//Summary holds descriptive statistics of a set of values
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	//StdDev is the population standard deviation
	StdDev float64
}

//Summarize computes the Summary of values
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}
	data := stats.Float64Data(values)
	s := Summary{Count: len(values)}
	var err error
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute min : %w", err)
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute max : %w", err)
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean : %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute median : %w", err)
	}
	if s.StdDev, err = data.StandardDeviationPopulation(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute standard deviation : %w", err)
	}
	return s, nil
}

//UniformExpectation returns mean and standard deviation of the continuous uniform distribution over [low,high[
func UniformExpectation(low, high float64) (float64, float64) {
	return (low + high) / 2, (high - low) / math.Sqrt(12)
}

func (s Summary) String() string {
	return fmt.Sprintf("values=%v min=%.6f max=%.6f mean=%.6f median=%.6f stddev=%.6f",
		humanize.Comma(int64(s.Count)), s.Min, s.Max, s.Mean, s.Median, s.StdDev)
}

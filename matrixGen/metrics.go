package matrixGen

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//Metrics bundles the counters updated while a Generator writes matrices
type Metrics struct {
	//Rows counts written lines
	Rows prometheus.Counter
	//Values counts written tokens
	Values prometheus.Counter
	//Bytes counts written bytes, including separators and newlines
	Bytes prometheus.Counter
	//Redraws counts samples that were discarded because their token would round up to the upper bound
	Redraws prometheus.Counter
}

//NewMetrics creates the generator counters and registers them with reg. If reg is nil the counters
//are created but not registered
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Rows: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "randmatrix",
			Name:      "rows_written_total",
			Help:      "Number of matrix rows written.",
		}),
		Values: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "randmatrix",
			Name:      "values_written_total",
			Help:      "Number of matrix values written.",
		}),
		Bytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "randmatrix",
			Name:      "bytes_written_total",
			Help:      "Number of bytes written to matrix files.",
		}),
		Redraws: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "randmatrix",
			Name:      "sample_redraws_total",
			Help:      "Number of samples redrawn because they would be formatted as the upper bound.",
		}),
	}
}

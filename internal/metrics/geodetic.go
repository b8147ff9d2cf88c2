package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Geodetic Prometheus metrics.
var (
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geodetic",
			Name:      "operations_total",
			Help:      "Total number of geodetic computations",
		},
		[]string{"operation", "status"},
	)

	DomainErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geodetic",
			Name:      "domain_errors_total",
			Help:      "Total geodetic domain errors",
		},
		[]string{"operation", "kind"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "geodetic",
			Name:      "operation_duration_seconds",
			Help:      "Geodetic computation duration in seconds",
			Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 1e-4, 1e-3},
		},
		[]string{"operation"},
	)
)

// RegisterGeodeticMetrics registers the geodetic collectors with reg. Must be called
// from main (no init). When reg already holds an equivalent collector, the package
// variable is switched to the registered one so recorded values stay exported.
func RegisterGeodeticMetrics(reg prometheus.Registerer) error {
	if err := registerOrReuse(reg, &OperationsTotal); err != nil {
		return err
	}
	if err := registerOrReuse(reg, &DomainErrorsTotal); err != nil {
		return err
	}
	return registerOrReuse(reg, &OperationDuration)
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("geodetic: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("register geodetic metrics: %w", err)
	}
	return nil
}

// WriteText writes every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

package navigation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/geodetic/internal/domain"
	"github.com/kailas-cloud/geodetic/internal/domain/geo"
	logpkg "github.com/kailas-cloud/geodetic/internal/logger"
	"github.com/kailas-cloud/geodetic/internal/metrics"
)

// Operation labels used in logs and metrics.
const (
	OpProject       = "project"
	OpDistance      = "distance"
	OpPerpendicular = "perpendicular"
	OpNormalize     = "normalize"
	OpHeading       = "heading"
)

// Service runs geodetic computations with logging and Prometheus instrumentation.
// The geometry itself lives in domain/geo; this layer owns validation policy and
// observability only.
type Service struct {
	strictLatitude bool
	logger         *zap.Logger
}

// New creates a navigation service. With strictLatitude set, points outside
// [-90, 90] are rejected with domain.ErrInvalidLatitude instead of projected.
func New(strictLatitude bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{strictLatitude: strictLatitude, logger: logger}
}

// Project converts a geodetic point to ECEF.
func (s *Service) Project(ctx context.Context, p geo.GeodeticPoint) (out geo.CartesianPoint, err error) {
	defer s.observe(ctx, OpProject, time.Now(), &err)

	if err = s.check(p); err != nil {
		return geo.CartesianPoint{}, err
	}
	return geo.LatLonAltToECEF(p.Lat, p.Lon, p.Alt), nil
}

// Distance returns the chord distance between two geodetic points.
func (s *Service) Distance(ctx context.Context, a, b geo.GeodeticPoint) (d float64, err error) {
	defer s.observe(ctx, OpDistance, time.Now(), &err)

	if err = s.check(a); err != nil {
		return 0, fmt.Errorf("from: %w", err)
	}
	if err = s.check(b); err != nil {
		return 0, fmt.Errorf("to: %w", err)
	}
	return geo.GPSDistance(a, b), nil
}

// Perpendicular solves for a vector orthogonal to primary. Zero x2/y2 default to the
// negated components of primary.
func (s *Service) Perpendicular(
	ctx context.Context, primary geo.Vector3, x2, y2 float64,
) (v geo.Vector3, err error) {
	defer s.observe(ctx, OpPerpendicular, time.Now(), &err)

	v, err = geo.PerpendicularVector(primary, x2, y2)
	return v, err
}

// Normalize divides v by the caller-supplied magnitude.
func (s *Service) Normalize(ctx context.Context, v geo.Vector3, magnitude float64) (u geo.Vector3, err error) {
	defer s.observe(ctx, OpNormalize, time.Now(), &err)

	u, err = geo.NormalizeVector(v, magnitude)
	return u, err
}

// Heading computes the unit heading from p toward the polar axis.
func (s *Service) Heading(ctx context.Context, p geo.GeodeticPoint) (h Heading, err error) {
	defer s.observe(ctx, OpHeading, time.Now(), &err)

	if err = s.check(p); err != nil {
		return Heading{}, err
	}
	return HeadingToPolarAxis(geo.LatLonAltToECEF(p.Lat, p.Lon, p.Alt))
}

func (s *Service) check(p geo.GeodeticPoint) error {
	if !s.strictLatitude {
		return nil
	}
	return p.Validate() //nolint:wrapcheck // domain error carries the context
}

func (s *Service) observe(ctx context.Context, op string, start time.Time, errp *error) {
	duration := time.Since(start)
	metrics.OperationDuration.WithLabelValues(op).Observe(duration.Seconds())

	log := logpkg.FromContext(ctx, s.logger)

	if err := *errp; err != nil {
		metrics.OperationsTotal.WithLabelValues(op, "error").Inc()
		kind := domain.KindOf(err)
		if kind != "" {
			metrics.DomainErrorsTotal.WithLabelValues(op, string(kind)).Inc()
		}
		log.Warn("Geodetic operation rejected",
			zap.String("operation", op),
			zap.String("kind", string(kind)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}

	metrics.OperationsTotal.WithLabelValues(op, "ok").Inc()
	log.Debug("Geodetic operation completed",
		zap.String("operation", op),
		zap.Duration("duration", duration),
	)
}

package report

import (
	"fmt"
	"io"

	"github.com/kailas-cloud/geodetic/internal/domain/geo"
	"github.com/kailas-cloud/geodetic/internal/usecase/navigation"
)

// Writer prints demo results, one block per entry.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a Writer. The first write error is sticky and returned by Err.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first write error.
func (r *Writer) Err() error { return r.err }

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Point prints a projected point with its distance from the Earth's center.
func (r *Writer) Point(name string, p geo.GeodeticPoint, c geo.CartesianPoint) {
	r.printf("%s (lat=%g lon=%g alt=%g)\n", name, p.Lat, p.Lon, p.Alt)
	r.printf("  X:%.4f Y:%.4f Z:%.4f\n", c.X, c.Y, c.Z)
	r.printf("  Dist:%.4f\n", c.DistanceTo(geo.CartesianPoint{}))

	if s, err := PointWKT(c); err == nil {
		r.printf("  WKT: %s\n", s)
	}
}

// Normalized prints a unit vector next to its deviation from the golang/geo result.
func (r *Writer) Normalized(v, unit geo.Vector3) {
	r.printf("  Unit:(%.9f, %.9f, %.9f) r3 deviation:%.3g\n",
		unit.X, unit.Y, unit.Z, Deviation(unit, ReferenceNormalize(v)))
}

// Distance prints the chord and spherical surface distance of a pair.
func (r *Writer) Distance(from, to string, chord, arc float64) {
	r.printf("%s -> %s\n", from, to)
	r.printf("  Chord:%.4f m  Arc(haversine):%.1f m\n", chord, arc)
}

// Heading prints a heading toward the polar axis and its reference normalization.
func (r *Writer) Heading(name string, h navigation.Heading) {
	ref := ReferenceNormalize(h.AxisIntercept.Vector().Sub(h.Position.Vector()))

	r.printf("%s heading\n", name)
	r.printf("  Z-Intersect: (0, 0, %.4f)\n", h.AxisIntercept.Z)
	r.printf("  Magnitude:%.4f\n", h.Magnitude)
	r.printf("  NormalizedVector:(%.9f, %.9f, %.9f)\n", h.Direction.X, h.Direction.Y, h.Direction.Z)
	r.printf("  r3.Normalize deviation:%.3g\n", Deviation(h.Direction, ref))

	if s, err := SegmentWKT(h.Position, h.AxisIntercept); err == nil {
		r.printf("  WKT: %s\n", s)
	}
}

// Failure prints an operation that was rejected.
func (r *Writer) Failure(name, op string, err error) {
	r.printf("%s %s: %v\n", name, op, err)
}

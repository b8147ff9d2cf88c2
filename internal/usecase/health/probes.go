package health

import (
	"context"
	"fmt"
	"math"

	"github.com/kailas-cloud/geodetic/internal/domain/geo"
)

const tolerance = 0.1 // meters

// ProbeFunc adapts a function to Prober.
type ProbeFunc struct {
	ProbeName string
	Fn        func(ctx context.Context) error
}

// Name returns the probe name.
func (f ProbeFunc) Name() string { return f.ProbeName }

// Probe runs the function.
func (f ProbeFunc) Probe(ctx context.Context) error { return f.Fn(ctx) }

// DefaultProbes returns known-answer checks for projection, distance and vector geometry.
func DefaultProbes() []Prober {
	return []Prober{
		ProbeFunc{ProbeName: "projection", Fn: probeProjection},
		ProbeFunc{ProbeName: "distance", Fn: probeDistance},
		ProbeFunc{ProbeName: "vector", Fn: probeVector},
	}
}

func probeProjection(_ context.Context) error {
	eq := geo.LatLonToECEF(0, 0)
	if math.Abs(eq.X-geo.EquatorialRadius) > tolerance || math.Abs(eq.Y) > tolerance || math.Abs(eq.Z) > tolerance {
		return fmt.Errorf("equator/prime meridian: got %+v", eq)
	}
	pole := geo.LatLonToECEF(90, 0)
	if math.Abs(pole.Z-geo.PolarRadius) > tolerance {
		return fmt.Errorf("north pole: z = %f, want %f", pole.Z, geo.PolarRadius)
	}
	return nil
}

func probeDistance(_ context.Context) error {
	d := geo.GPSDistance(geo.GeodeticPoint{Lat: 90, Lon: 90}, geo.GeodeticPoint{Lat: -90, Lon: 90})
	if math.Abs(d-2*geo.PolarRadius) > tolerance {
		return fmt.Errorf("pole to pole: got %f, want %f", d, 2*geo.PolarRadius)
	}
	return nil
}

func probeVector(_ context.Context) error {
	v, err := geo.PerpendicularVector(geo.Vector3{X: 1, Z: 5}, 10, 3)
	if err != nil {
		return fmt.Errorf("perpendicular: %w", err)
	}
	if math.Abs(v.Z+2) > 1e-9 {
		return fmt.Errorf("perpendicular: z = %f, want -2", v.Z)
	}
	u, err := v.Unit()
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	if math.Abs(u.Norm()-1) > 1e-12 {
		return fmt.Errorf("normalize: norm = %f", u.Norm())
	}
	return nil
}

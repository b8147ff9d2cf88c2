package navigation

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/geodetic/internal/domain"
	"github.com/kailas-cloud/geodetic/internal/domain/geo"
)

func TestHeadingToPolarAxis_Northern(t *testing.T) {
	pos := geo.LatLonToECEF(45, 45)

	h, err := HeadingToPolarAxis(pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almost(h.Direction.Norm(), 1, 1e-12) {
		t.Errorf("direction norm = %f, want 1", h.Direction.Norm())
	}
	if h.Direction.Z <= 0 {
		t.Errorf("northern hemisphere heading should point north, got %+v", h.Direction)
	}

	radial := pos.Vector()
	if cos := radial.Dot(h.Direction) / radial.Norm(); !almost(cos, 0, 1e-12) {
		t.Errorf("heading not perpendicular to position, cos = %g", cos)
	}

	if h.AxisIntercept.X != 0 || h.AxisIntercept.Y != 0 {
		t.Errorf("intercept should lie on the Z axis, got %+v", h.AxisIntercept)
	}
	wantZ := radial.Dot(radial) / pos.Z
	if !almost(h.AxisIntercept.Z, wantZ, 1e-3) {
		t.Errorf("intercept z = %f, want %f", h.AxisIntercept.Z, wantZ)
	}
	if !almost(h.Magnitude, geo.CartesianDistance(pos, h.AxisIntercept), 1e-3) {
		t.Errorf("magnitude %f does not match distance to intercept", h.Magnitude)
	}
}

func TestHeadingToPolarAxis_Southern(t *testing.T) {
	h, err := HeadingToPolarAxis(geo.LatLonToECEF(-33.8688, 151.2093))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Direction.Z >= 0 {
		t.Errorf("southern hemisphere heading should point south, got %+v", h.Direction)
	}
	if h.AxisIntercept.Z >= 0 {
		t.Errorf("intercept should be below the equatorial plane, got %+v", h.AxisIntercept)
	}
}

func TestHeadingToPolarAxis_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		pos  geo.CartesianPoint
	}{
		{"equator", geo.LatLonToECEF(0, 77)},
		{"on axis", geo.CartesianPoint{Z: geo.PolarRadius}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HeadingToPolarAxis(tt.pos)
			if !errors.Is(err, domain.ErrDegenerateDivision) {
				t.Fatalf("expected ErrDegenerateDivision, got %v", err)
			}
		})
	}
}

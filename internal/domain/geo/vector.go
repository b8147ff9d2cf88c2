package geo

import (
	"math"

	"github.com/kailas-cloud/geodetic/internal/domain"
)

// Vector3 is a 3D displacement or direction in the ECEF frame.
// Components are meters, or dimensionless once normalized.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of two vectors.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies a vector by a scalar.
func (v Vector3) Scale(k float64) Vector3 { return Vector3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length.
func (v Vector3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns v scaled to length 1. A zero vector fails with ErrDegenerateDivision.
func (v Vector3) Unit() (Vector3, error) { return NormalizeVector(v, v.Norm()) }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3) IsFinite() bool { return finite(v.X) && finite(v.Y) && finite(v.Z) }

// PerpendicularVector solves for the z component of a second vector (x2, y2, z2) whose dot
// product with primary is zero: z2 = (-x1*x2 - y1*y2) / z1.
//
// A zero x2 defaults to -x1 and a zero y2 defaults to -y1, which turns the result toward
// the opposite horizontal direction. The returned vector is (x2, y2, z2) with the defaults
// applied; non-zero x2 and y2 are returned unchanged.
//
// primary.Z == 0 (a point on the equatorial plane) has no solution and fails with
// ErrDegenerateDivision, as does any non-finite result.
func PerpendicularVector(primary Vector3, x2, y2 float64) (Vector3, error) {
	if primary.Z == 0 || !finite(primary.Z) {
		return Vector3{}, domain.NewDegenerateDivision("perpendicular_vector", primary.Z)
	}
	if x2 == 0 {
		x2 = -primary.X
	}
	if y2 == 0 {
		y2 = -primary.Y
	}

	out := Vector3{X: x2, Y: y2, Z: (-primary.X*x2 - primary.Y*y2) / primary.Z}
	if !out.IsFinite() {
		return Vector3{}, domain.NewDegenerateDivision("perpendicular_vector", primary.Z)
	}
	return out, nil
}

// OppositePerpendicular is PerpendicularVector with both horizontal components defaulted,
// i.e. (-x1, -y1, (x1²+y1²)/z1).
func OppositePerpendicular(primary Vector3) (Vector3, error) {
	return PerpendicularVector(primary, 0, 0)
}

// NormalizeVector divides every component of v by magnitude. The caller supplies the
// magnitude; zero, NaN and ±Inf fail with ErrDegenerateDivision.
func NormalizeVector(v Vector3, magnitude float64) (Vector3, error) {
	if magnitude == 0 || !finite(magnitude) {
		return Vector3{}, domain.NewDegenerateDivision("normalize_vector", magnitude)
	}
	return Vector3{X: v.X / magnitude, Y: v.Y / magnitude, Z: v.Z / magnitude}, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

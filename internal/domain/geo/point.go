package geo

import (
	"math"

	"github.com/kailas-cloud/geodetic/internal/domain"
)

// GeodeticPoint is a position on the reference ellipsoid.
// Lat and Lon are degrees, Alt is meters above the ellipsoid.
type GeodeticPoint struct {
	Lat float64
	Lon float64
	Alt float64
}

// Validate checks that latitude is within [-90, 90]. Longitude is not range-restricted.
func (p GeodeticPoint) Validate() error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return domain.NewInvalidLatitude("validate", p.Lat)
	}
	return nil
}

// ToECEF projects the point after validating its latitude.
func (p GeodeticPoint) ToECEF() (CartesianPoint, error) {
	if err := p.Validate(); err != nil {
		return CartesianPoint{}, err
	}
	return LatLonAltToECEF(p.Lat, p.Lon, p.Alt), nil
}

// CartesianPoint is an ECEF position in meters: origin at Earth's center of mass,
// Z along the polar axis, X through the prime meridian at the equator.
type CartesianPoint struct {
	X float64
	Y float64
	Z float64
}

// Vector returns the position vector from the origin.
func (c CartesianPoint) Vector() Vector3 { return Vector3{X: c.X, Y: c.Y, Z: c.Z} }

// DistanceTo returns the Euclidean distance to o.
func (c CartesianPoint) DistanceTo(o CartesianPoint) float64 { return CartesianDistance(c, o) }

// Translate returns c displaced by v.
func (c CartesianPoint) Translate(v Vector3) CartesianPoint {
	return CartesianPoint{X: c.X + v.X, Y: c.Y + v.Y, Z: c.Z + v.Z}
}

// Package geodetic converts geographic coordinates to Earth-Centered-Earth-Fixed (ECEF)
// Cartesian coordinates on a fixed reference ellipsoid (a = 6378137.0 m, b = 6356752.3 m),
// measures chord distances, and solves the perpendicular and normalized vectors used for
// basic 3D navigation geometry.
//
// Every function is pure and safe for concurrent use.
//
//	p := geodetic.LatLonAltToECEF(35.6895, 139.6917, 10)
//	d := geodetic.GPSDistance(
//		geodetic.GeodeticPoint{Lat: 90, Lon: 90},
//		geodetic.GeodeticPoint{Lat: -90, Lon: 90},
//	) // ≈ 12713504.6 m, straight through the Earth
package geodetic

import (
	"github.com/kailas-cloud/geodetic/internal/domain"
	"github.com/kailas-cloud/geodetic/internal/domain/geo"
)

// Reference ellipsoid.
const (
	EquatorialRadius    = geo.EquatorialRadius
	PolarRadius         = geo.PolarRadius
	EccentricitySquared = geo.EccentricitySquared
	EarthRadiusMeters   = geo.EarthRadiusMeters
)

type (
	// GeodeticPoint is latitude/longitude in degrees and altitude in meters.
	GeodeticPoint = geo.GeodeticPoint
	// CartesianPoint is an ECEF position in meters.
	CartesianPoint = geo.CartesianPoint
	// Vector3 is a 3D displacement or direction.
	Vector3 = geo.Vector3
	// DomainError describes a rejected input.
	DomainError = domain.DomainError
	// ErrorKind classifies a DomainError.
	ErrorKind = domain.ErrorKind
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrInvalidLatitude    = domain.ErrInvalidLatitude
	ErrDegenerateDivision = domain.ErrDegenerateDivision
)

// LatLonAltToECEF converts latitude/longitude (degrees) and height above the ellipsoid
// (meters) to ECEF. Input is not validated.
func LatLonAltToECEF(latDeg, lonDeg, heightMeters float64) CartesianPoint {
	return geo.LatLonAltToECEF(latDeg, lonDeg, heightMeters)
}

// LatLonToECEF converts a surface point (height 0) to ECEF.
func LatLonToECEF(latDeg, lonDeg float64) CartesianPoint {
	return geo.LatLonToECEF(latDeg, lonDeg)
}

// ECEFToGeodetic inverts LatLonAltToECEF.
func ECEFToGeodetic(c CartesianPoint) GeodeticPoint { return geo.ECEFToGeodetic(c) }

// CartesianDistance returns the Euclidean distance between two ECEF points.
func CartesianDistance(a, b CartesianPoint) float64 { return geo.CartesianDistance(a, b) }

// GPSDistance returns the chord distance between two geodetic points. This is not the
// surface arc length.
func GPSDistance(a, b GeodeticPoint) float64 { return geo.GPSDistance(a, b) }

// Haversine returns the great-circle surface distance on the mean sphere.
func Haversine(a, b GeodeticPoint) float64 { return geo.Haversine(a, b) }

// PerpendicularVector returns (x2, y2, z2) with z2 chosen so that its dot product with
// primary is zero. Zero x2/y2 default to -primary.X/-primary.Y.
func PerpendicularVector(primary Vector3, x2, y2 float64) (Vector3, error) {
	return geo.PerpendicularVector(primary, x2, y2) //nolint:wrapcheck // facade
}

// OppositePerpendicular is PerpendicularVector(primary, 0, 0).
func OppositePerpendicular(primary Vector3) (Vector3, error) {
	return geo.OppositePerpendicular(primary) //nolint:wrapcheck // facade
}

// NormalizeVector divides v by magnitude, rejecting zero and non-finite magnitudes.
func NormalizeVector(v Vector3, magnitude float64) (Vector3, error) {
	return geo.NormalizeVector(v, magnitude) //nolint:wrapcheck // facade
}

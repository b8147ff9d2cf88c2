package geo

import "math"

// Reference ellipsoid. e² = 1 - b²/a² is evaluated at compile time.
const (
	// EquatorialRadius is the semi-major axis a in meters.
	EquatorialRadius = 6_378_137.0
	// PolarRadius is the semi-minor axis b in meters.
	PolarRadius = 6_356_752.3
	// EccentricitySquared is the first eccentricity squared.
	EccentricitySquared = 1 - (PolarRadius*PolarRadius)/(EquatorialRadius*EquatorialRadius)
)

// EarthRadiusMeters is the mean radius of Earth used for Haversine distance.
const EarthRadiusMeters = 6_371_000.0

const degToRad = math.Pi / 180

// PrimeVerticalRadius returns N(φ), the radius of curvature in the prime vertical
// at geodetic latitude latRad (radians).
func PrimeVerticalRadius(latRad float64) float64 {
	s := math.Sin(latRad)
	return EquatorialRadius / math.Sqrt(1-EccentricitySquared*s*s)
}

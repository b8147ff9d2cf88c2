package geo

import "math"

// LatLonAltToECEF converts geodetic latitude/longitude (degrees) and height above the
// ellipsoid (meters) to ECEF coordinates.
//
// No validation is performed: an out-of-range latitude yields a defined but meaningless
// point, and NaN/Inf inputs propagate to the result. Use GeodeticPoint.ToECEF for the
// checked variant.
func LatLonAltToECEF(latDeg, lonDeg, heightMeters float64) CartesianPoint {
	lat := latDeg * degToRad
	lon := lonDeg * degToRad
	n := PrimeVerticalRadius(lat)

	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	return CartesianPoint{
		X: (n + heightMeters) * cosLat * cosLon,
		Y: (n + heightMeters) * cosLat * sinLon,
		Z: ((1-EccentricitySquared)*n + heightMeters) * sinLat,
	}
}

// LatLonToECEF converts a point on the ellipsoid surface (height 0).
func LatLonToECEF(latDeg, lonDeg float64) CartesianPoint {
	return LatLonAltToECEF(latDeg, lonDeg, 0)
}

// ECEFToGeodetic converts ECEF coordinates back to geodetic latitude/longitude (degrees)
// and height (meters) by fixed-point iteration on geodetic latitude,
// φ = atan2(z + e²·N(φ)·sin φ, p), starting from atan2(z, p·(1-e²)).
func ECEFToGeodetic(c CartesianPoint) GeodeticPoint {
	lon := math.Atan2(c.Y, c.X)
	p := math.Hypot(c.X, c.Y)

	lat := math.Atan2(c.Z, p*(1-EccentricitySquared))
	for i := 0; i < 6; i++ {
		n := PrimeVerticalRadius(lat)
		lat = math.Atan2(c.Z+EccentricitySquared*n*math.Sin(lat), p)
	}

	sinLat, cosLat := math.Sincos(lat)
	n := PrimeVerticalRadius(lat)

	var alt float64
	if math.Abs(cosLat) > 1e-10 {
		alt = p/cosLat - n
	} else {
		alt = math.Abs(c.Z)/math.Abs(sinLat) - n*(1-EccentricitySquared)
	}

	return GeodeticPoint{
		Lat: lat / degToRad,
		Lon: lon / degToRad,
		Alt: alt,
	}
}

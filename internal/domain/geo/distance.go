package geo

import "math"

// CartesianDistance returns the Euclidean distance between two ECEF points.
func CartesianDistance(a, b CartesianPoint) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// GPSDistance returns the straight-line (chord) distance in meters between two geodetic
// points, measured through the Earth's interior. It is not the arc length along the
// surface; see Haversine for that.
func GPSDistance(a, b GeodeticPoint) float64 {
	pa := LatLonAltToECEF(a.Lat, a.Lon, a.Alt)
	pb := LatLonAltToECEF(b.Lat, b.Lon, b.Alt)
	return CartesianDistance(pa, pb)
}

// Haversine returns the great-circle distance in meters between two points on the
// mean-radius sphere. Altitude is ignored.
func Haversine(a, b GeodeticPoint) float64 {
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	dLat := (b.Lat - a.Lat) * degToRad
	dLon := (b.Lon - a.Lon) * degToRad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

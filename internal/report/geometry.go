// Package report renders geodetic results as text and WKT geometry.
package report

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/kailas-cloud/geodetic/internal/domain/geo"
)

// PointWKT encodes an ECEF point as a WKT "POINT Z".
func PointWKT(c geo.CartesianPoint) (string, error) {
	p := geom.NewPointFlat(geom.XYZ, []float64{c.X, c.Y, c.Z})
	s, err := wkt.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode point: %w", err)
	}
	return s, nil
}

// SegmentWKT encodes the segment between two ECEF points as a WKT "LINESTRING Z".
func SegmentWKT(from, to geo.CartesianPoint) (string, error) {
	ls := geom.NewLineStringFlat(geom.XYZ, []float64{from.X, from.Y, from.Z, to.X, to.Y, to.Z})
	s, err := wkt.Marshal(ls)
	if err != nil {
		return "", fmt.Errorf("encode segment: %w", err)
	}
	return s, nil
}

// ToR3 converts a vector to the golang/geo representation.
func ToR3(v geo.Vector3) r3.Vector { return r3.Vector{X: v.X, Y: v.Y, Z: v.Z} }

// FromR3 converts a golang/geo vector back.
func FromR3(v r3.Vector) geo.Vector3 { return geo.Vector3{X: v.X, Y: v.Y, Z: v.Z} }

// ReferenceNormalize normalizes v with golang/geo for cross-checking NormalizeVector.
// r3 returns the zero vector for zero input instead of failing.
func ReferenceNormalize(v geo.Vector3) geo.Vector3 { return FromR3(ToR3(v).Normalize()) }

// Deviation returns the Euclidean distance between two vectors.
func Deviation(a, b geo.Vector3) float64 { return a.Sub(b).Norm() }

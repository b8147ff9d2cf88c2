package navigation

import (
	"fmt"

	"github.com/kailas-cloud/geodetic/internal/domain/geo"
)

// Heading is the direction from a position toward the polar axis, in the plane of the
// position's meridian and perpendicular to its position vector.
type Heading struct {
	Position      geo.CartesianPoint
	Direction     geo.Vector3 // unit length
	AxisIntercept geo.CartesianPoint
	Magnitude     float64 // distance from Position to AxisIntercept, meters
}

// HeadingToPolarAxis derives the heading for an ECEF position.
//
// The opposite perpendicular (-x, -y, (x²+y²)/z) starts at pos and ends on the Z axis at
// (0, 0, |pos|²/z); its length is the magnitude used for normalization. In the northern
// hemisphere the heading points north, in the southern one south. Positions on the
// equatorial plane have no finite intercept and fail with domain.ErrDegenerateDivision.
func HeadingToPolarAxis(pos geo.CartesianPoint) (Heading, error) {
	perp, err := geo.OppositePerpendicular(pos.Vector())
	if err != nil {
		return Heading{}, fmt.Errorf("perpendicular: %w", err)
	}

	magnitude := perp.Norm()
	dir, err := geo.NormalizeVector(perp, magnitude)
	if err != nil {
		return Heading{}, fmt.Errorf("normalize: %w", err)
	}

	return Heading{
		Position:      pos,
		Direction:     dir,
		AxisIntercept: pos.Translate(perp),
		Magnitude:     magnitude,
	}, nil
}

package geometry

import (
	"errors"
	"fmt"
	"math"

	geom "github.com/peterstace/simplefeatures/geom"
)

// ErrTooFewWheels is returned when a footprint cannot enclose any area.
var ErrTooFewWheels = errors.New("footprint needs at least three wheels")

// Footprint describes the ground contact polygon spanned by the wheels,
// projected onto the X/Z plane.
type Footprint struct {
	Area       float64 `json:"area"`
	Perimeter  float64 `json:"perimeter"`
	Wheelbase  float64 `json:"wheelbase"`  // extent along Z
	TrackWidth float64 `json:"trackWidth"` // extent along X
}

// ComputeFootprint derives the footprint of the given wheel positions.
func ComputeFootprint(wheels []Vec3) (Footprint, error) {
	if len(wheels) < 3 {
		return Footprint{}, fmt.Errorf("%d wheels: %w", len(wheels), ErrTooFewWheels)
	}

	pts := make([]geom.Point, len(wheels))
	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for i, w := range wheels {
		pts[i] = geom.NewPoint(geom.Coordinates{XY: geom.XY{X: w.X, Y: w.Z}, Type: geom.DimXY})
		minX, maxX = math.Min(minX, w.X), math.Max(maxX, w.X)
		minZ, maxZ = math.Min(minZ, w.Z), math.Max(maxZ, w.Z)
	}

	hull := geom.NewMultiPoint(pts).AsGeometry().ConvexHull()

	return Footprint{
		Area:       hull.Area(),
		Perimeter:  hull.Boundary().Length(),
		Wheelbase:  maxZ - minZ,
		TrackWidth: maxX - minX,
	}, nil
}

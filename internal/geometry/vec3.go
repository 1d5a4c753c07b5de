// Package geometry holds the 3-D vector type used for wheel positions and the
// derived chassis footprint metrics.
package geometry

import (
	"encoding/json"
	"fmt"
)

// Vec3 is a position in the kart's local chassis frame: X to the right,
// Y up, Z forward.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// MarshalJSON encodes the vector as [x,y,z].
func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes [x,y,z].
func (v *Vec3) UnmarshalJSON(data []byte) error {
	var xyz []float64
	if err := json.Unmarshal(data, &xyz); err != nil {
		return fmt.Errorf("decode vec3: %w", err)
	}
	if len(xyz) != 3 {
		return fmt.Errorf("decode vec3: expected 3 components, got %d", len(xyz))
	}
	*v = Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}

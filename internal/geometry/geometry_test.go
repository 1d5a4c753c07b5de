package geometry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3_JSON(t *testing.T) {
	data, err := json.Marshal(Vec3{0.3, -0.05, 0.55})
	require.NoError(t, err)
	assert.JSONEq(t, `[0.3,-0.05,0.55]`, string(data))

	var v Vec3
	require.NoError(t, json.Unmarshal([]byte(`[-0.3,0,-0.55]`), &v))
	assert.Equal(t, Vec3{-0.3, 0, -0.55}, v)

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &v))
}

func TestComputeFootprint_Rectangle(t *testing.T) {
	wheels := []Vec3{
		{X: 0.3, Y: -0.05, Z: 0.55},
		{X: -0.3, Y: -0.05, Z: 0.55},
		{X: 0.3, Y: -0.05, Z: -0.55},
		{X: -0.3, Y: -0.05, Z: -0.55},
	}

	fp, err := ComputeFootprint(wheels)
	require.NoError(t, err)

	assert.InDelta(t, 0.66, fp.Area, 1e-9)
	assert.InDelta(t, 3.4, fp.Perimeter, 1e-9)
	assert.InDelta(t, 1.1, fp.Wheelbase, 1e-9)
	assert.InDelta(t, 0.6, fp.TrackWidth, 1e-9)
}

func TestComputeFootprint_Trike(t *testing.T) {
	wheels := []Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: -0.5, Y: 0, Z: 0},
		{X: 0.5, Y: 0, Z: 0},
	}

	fp, err := ComputeFootprint(wheels)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, fp.Area, 1e-9)
	assert.InDelta(t, 1.0, fp.Wheelbase, 1e-9)
	assert.InDelta(t, 1.0, fp.TrackWidth, 1e-9)
}

func TestComputeFootprint_TooFewWheels(t *testing.T) {
	_, err := ComputeFootprint([]Vec3{{}, {X: 1}})
	assert.ErrorIs(t, err, ErrTooFewWheels)
}

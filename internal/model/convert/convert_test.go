package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/model"
	"github.com/trackforge/kartchar/internal/skidding"
)

func testSnapshot(t *testing.T) characteristics.Snapshot {
	t.Helper()
	turn, err := interp.New(interp.Point{X: 0, Y: 2}, interp.Point{X: 1, Y: 8})
	require.NoError(t, err)
	steer, err := interp.New(interp.Point{X: 0, Y: 0}, interp.Point{X: 1, Y: 0.2})
	require.NoError(t, err)

	return characteristics.Snapshot{
		Values:            map[string]float64{"mass": 225, "engine.power": 450},
		TurnRadius:        turn,
		TimeFullSteer:     steer,
		GearSwitchRatio:   []float64{0.25, 0.7, 1},
		GearPowerIncrease: []float64{2.2, 2, 1.6},
		WheelPositions: []geometry.Vec3{
			{X: 0.3, Z: 0.55}, {X: -0.3, Z: 0.55}, {X: 0.3, Z: -0.55}, {X: -0.3, Z: -0.55},
		},
		Skidding: skidding.Params{
			Increase:      1.05,
			TimeTillBonus: []float64{1, 3},
			BonusSpeed:    []float64{4.5, 6.5},
			BonusTime:     []float64{1.5, 2.5},
			BonusForce:    []float64{250, 350},
			HasSkidmarks:  true,
		},
		StartupBoost: characteristics.StartupBoost{Time: []float64{0.3, 0.5}, Boost: []float64{8, 4}},
	}
}

func TestSnapshotToModel(t *testing.T) {
	m, err := SnapshotToModel("tux", testSnapshot(t))
	require.NoError(t, err)

	assert.Equal(t, "tux", m.Name)
	assert.Equal(t, 3, m.GearCount)
	assert.Equal(t, 4, m.WheelCount)
	assert.Equal(t, 225.0, m.Mass)
	assert.InDelta(t, 0.66, m.FootprintArea, 1e-9)
	assert.JSONEq(t, `[[0,2],[1,8]]`, string(m.TurnRadius))
	assert.JSONEq(t, `[0.25,0.7,1]`, string(m.GearSwitchRatio))
	assert.JSONEq(t, `[[0.3,0,0.55],[-0.3,0,0.55],[0.3,0,-0.55],[-0.3,0,-0.55]]`, string(m.WheelPositions))
	assert.JSONEq(t, `{"time":[0.3,0.5],"boost":[8,4]}`, string(m.StartupBoost))
}

func TestSnapshotToModel_FewWheels(t *testing.T) {
	s := testSnapshot(t)
	s.WheelPositions = s.WheelPositions[:2]

	m, err := SnapshotToModel("bike", s)
	require.NoError(t, err)
	assert.Equal(t, 2, m.WheelCount)
	assert.Zero(t, m.FootprintArea)
}

func TestRoundTrip(t *testing.T) {
	want := testSnapshot(t)
	m, err := SnapshotToModel("tux", want)
	require.NoError(t, err)

	got, err := ModelToSnapshot(m)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestModelToSnapshot_BadJSON(t *testing.T) {
	_, err := ModelToSnapshot(model.Snapshot{Name: "broken", Values: datatypes.JSON(`{"mass":`)})
	assert.ErrorContains(t, err, "snapshot broken: decode values")
}

func TestModelToSnapshot_EmptyColumns(t *testing.T) {
	s, err := ModelToSnapshot(model.Snapshot{Name: "empty"})
	require.NoError(t, err)
	assert.Nil(t, s.Values)
	assert.Nil(t, s.TurnRadius)
}

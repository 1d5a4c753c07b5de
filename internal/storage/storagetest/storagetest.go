// Package storagetest holds the behavior every storage.Backend must share.
package storagetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/skidding"
	"github.com/trackforge/kartchar/internal/storage"
)

// Snapshot returns a small but complete snapshot with the given mass.
func Snapshot(t *testing.T, mass float64) characteristics.Snapshot {
	t.Helper()
	turn, err := interp.New(interp.Point{X: 0, Y: 2}, interp.Point{X: 1, Y: 8})
	require.NoError(t, err)
	steer, err := interp.New(interp.Point{X: 0, Y: 0}, interp.Point{X: 1, Y: 0.2})
	require.NoError(t, err)

	return characteristics.Snapshot{
		Values:            map[string]float64{"mass": mass, "engine.power": 450},
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
		},
		StartupBoost: characteristics.StartupBoost{Time: []float64{0.3, 0.5}, Boost: []float64{8, 4}},
	}
}

// Run exercises a backend created fresh for each subtest. The backend is
// initialized and closed by Run.
func Run(t *testing.T, newBackend func(t *testing.T) storage.Backend) {
	open := func(t *testing.T) storage.Backend {
		b := newBackend(t)
		require.NoError(t, b.Init())
		t.Cleanup(func() { assert.NoError(t, b.Close()) })
		return b
	}

	t.Run("save and load", func(t *testing.T) {
		b := open(t)
		want := Snapshot(t, 225)
		require.NoError(t, b.Save("tux", want))

		got, err := b.Load("tux")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("save replaces", func(t *testing.T) {
		b := open(t)
		require.NoError(t, b.Save("tux", Snapshot(t, 225)))
		require.NoError(t, b.Save("tux", Snapshot(t, 300)))

		got, err := b.Load("tux")
		require.NoError(t, err)
		assert.Equal(t, 300.0, got.Values["mass"])

		names, err := b.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"tux"}, names)
	})

	t.Run("list sorted", func(t *testing.T) {
		b := open(t)
		for _, name := range []string{"wilber", "adiumy", "tux"} {
			require.NoError(t, b.Save(name, Snapshot(t, 200)))
		}
		names, err := b.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"adiumy", "tux", "wilber"}, names)
	})

	t.Run("not found", func(t *testing.T) {
		b := open(t)
		_, err := b.Load("gnu")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, b.Delete("gnu"), storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		b := open(t)
		require.NoError(t, b.Save("tux", Snapshot(t, 225)))
		require.NoError(t, b.Delete("tux"))

		_, err := b.Load("tux")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		// a deleted name can be saved again
		require.NoError(t, b.Save("tux", Snapshot(t, 230)))
		got, err := b.Load("tux")
		require.NoError(t, err)
		assert.Equal(t, 230.0, got.Values["mass"])
	})

	t.Run("restores a record", func(t *testing.T) {
		b := open(t)
		require.NoError(t, b.Save("tux", Snapshot(t, 225)))
		s, err := b.Load("tux")
		require.NoError(t, err)

		_, err = characteristics.Restore(s)
		assert.ErrorIs(t, err, characteristics.ErrUnsetKey, "the sample only carries two scalars")
	})
}

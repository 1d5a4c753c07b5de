package characteristics

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/skidding"
)

func mustTable(t *testing.T, points ...interp.Point) *interp.Table {
	t.Helper()
	tbl, err := interp.New(points...)
	require.NoError(t, err)
	return tbl
}

func testSkidding(t *testing.T) *skidding.Properties {
	t.Helper()
	p, err := skidding.New(skidding.Params{
		Increase:      1.05,
		Max:           2.5,
		TimeTillBonus: []float64{1, 3},
		BonusSpeed:    []float64{4.5, 6.5},
		BonusTime:     []float64{1.5, 2.5},
		BonusForce:    []float64{250, 350},
	})
	require.NoError(t, err)
	return p
}

// completeBuilder returns a builder that finalizes successfully. Every key is
// set to its index plus one half.
func completeBuilder(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder()
	for _, k := range schema.All() {
		require.NoError(t, b.Set(k, float64(k)+0.5))
	}
	require.NoError(t, b.SetTurnRadius(mustTable(t, interp.Point{X: 0, Y: 2}, interp.Point{X: 0.5, Y: 4}, interp.Point{X: 1, Y: 10})))
	require.NoError(t, b.SetTimeFullSteer(mustTable(t, interp.Point{X: 0, Y: 0}, interp.Point{X: 1, Y: 0.25})))

	require.NoError(t, b.SizeGears(3))
	for i, v := range []float64{1, 1.5, 2} {
		require.NoError(t, b.SetGearSwitchRatio(i, v))
	}
	for i, v := range []float64{0.1, 0.2, 0.3} {
		require.NoError(t, b.SetGearPowerIncrease(i, v))
	}

	require.NoError(t, b.SizeWheels(4))
	for i, p := range testWheels() {
		require.NoError(t, b.SetWheelPosition(i, p))
	}

	require.NoError(t, b.SetStartupBoost(StartupBoost{Time: []float64{0.3, 0.5}, Boost: []float64{8, 4}}))
	require.NoError(t, b.SetSkidding(testSkidding(t)))
	return b
}

func turnRadius(t *testing.T, c *Characteristics, steer float64) float64 {
	t.Helper()
	r, err := c.TurnRadius(steer)
	require.NoError(t, err)
	return r
}

func testWheels() []geometry.Vec3 {
	return []geometry.Vec3{
		{X: 0.3, Y: 0, Z: 0.55},
		{X: -0.3, Y: 0, Z: 0.55},
		{X: 0.3, Y: 0, Z: -0.55},
		{X: -0.3, Y: 0, Z: -0.55},
	}
}

func finalized(t *testing.T) *Characteristics {
	t.Helper()
	c, err := completeBuilder(t).Finalize()
	require.NoError(t, err)
	return c
}

func TestCharacteristics_EveryKeyRoundTrips(t *testing.T) {
	c := finalized(t)
	for _, k := range schema.All() {
		assert.Equal(t, float64(k)+0.5, c.Get(k), k.String())
	}
}

func TestCharacteristics_NamedAccessors(t *testing.T) {
	b := completeBuilder(t)
	require.NoError(t, b.SetMass(225))
	require.NoError(t, b.SetSuspensionTravelCm(19))
	require.NoError(t, b.SetNitroMax(20))

	c, err := b.Finalize()
	require.NoError(t, err)

	assert.Equal(t, 225.0, c.Mass())
	assert.Equal(t, 19.0, c.SuspensionTravelCm())
	assert.Equal(t, 20.0, c.NitroMax())
	assert.Equal(t, c.Get(schema.EngineMaxSpeed), c.EngineMaxSpeed())
}

func TestCharacteristics_SteerTables(t *testing.T) {
	c := finalized(t)

	tests := []struct {
		name  string
		steer float64
		want  float64
	}{
		{"below range clamps", -1, 2},
		{"first point", 0, 2},
		{"midway first segment", 0.25, 3},
		{"interior point", 0.5, 4},
		{"midway second segment", 0.75, 7},
		{"above range clamps", 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, turnRadius(t, c, tt.steer), 1e-9)
		})
	}
	full, err := c.TimeFullSteer(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, full, 1e-9)
}

func TestCharacteristics_NaNSteer(t *testing.T) {
	c := finalized(t)

	require.NotPanics(t, func() {
		_, err := c.TurnRadius(math.NaN())
		assert.ErrorIs(t, err, interp.ErrNonFinite)
		_, err = c.TimeFullSteer(math.NaN())
		assert.ErrorIs(t, err, interp.ErrNonFinite)
	})
}

func TestCharacteristics_SteerForTurnRadius(t *testing.T) {
	c := finalized(t)

	steer, err := c.SteerForTurnRadius(3)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, steer, 1e-9)

	steer, err = c.SteerForTurnRadius(7)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, steer, 1e-9)

	steer, err = c.SteerForTurnRadius(50)
	require.NoError(t, err)
	assert.Equal(t, 1.0, steer)
}

func TestCharacteristics_StartupBoost(t *testing.T) {
	c := finalized(t)

	tests := []struct {
		name     string
		reaction float64
		want     float64
	}{
		{"early start", -0.1, 0},
		{"instant", 0, 8},
		{"first threshold", 0.3, 8},
		{"second level", 0.4, 4},
		{"second threshold", 0.5, 4},
		{"too late", 0.6, 0},
		{"NaN", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.StartupBoost(tt.reaction))
		})
	}
}

func TestStartupBoost_Validate(t *testing.T) {
	assert.NoError(t, StartupBoost{}.Validate())
	assert.ErrorIs(t, StartupBoost{Time: []float64{1}}.Validate(), ErrStartupMismatch)
	assert.ErrorIs(t, StartupBoost{Time: []float64{0.5, 0.3}, Boost: []float64{1, 2}}.Validate(), ErrStartupOrder)
	assert.ErrorIs(t, StartupBoost{Time: []float64{math.Inf(1)}, Boost: []float64{1}}.Validate(), ErrNonFinite)

	b := NewBuilder()
	assert.ErrorIs(t, b.SetStartupBoost(StartupBoost{Time: []float64{1, 2}, Boost: []float64{3}}), ErrStartupMismatch)
}

func TestBuilder_RejectsNonFinite(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SizeGears(1))
	require.NoError(t, b.SizeWheels(1))

	assert.ErrorIs(t, b.Set(schema.Mass, math.Inf(1)), ErrNonFinite)
	assert.ErrorIs(t, b.Set(schema.Mass, math.NaN()), ErrNonFinite)
	_, set := b.Value(schema.Mass)
	assert.False(t, set)

	assert.ErrorIs(t, b.SetGearSwitchRatio(0, math.Inf(-1)), ErrNonFinite)
	assert.ErrorIs(t, b.SetGearPowerIncrease(0, math.NaN()), ErrNonFinite)
	assert.ErrorIs(t, b.SetWheelPosition(0, geometry.Vec3{X: math.Inf(1)}), ErrNonFinite)
}

func TestCharacteristics_Gears(t *testing.T) {
	c := finalized(t)
	assert.Equal(t, 3, c.GearCount())

	ratio, err := c.GearSwitchRatio(1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, ratio)

	power, err := c.GearPowerIncrease(1)
	require.NoError(t, err)
	assert.Equal(t, 0.2, power)

	_, err = c.GearSwitchRatio(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.GearPowerIncrease(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCharacteristics_Wheels(t *testing.T) {
	c := finalized(t)
	require.Equal(t, 4, c.WheelCount())
	for i, want := range testWheels() {
		got, err := c.WheelPosition(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := c.WheelPosition(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBuilder_IndexOutOfRange(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SizeGears(2))

	assert.ErrorIs(t, b.SetGearSwitchRatio(2, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.SetGearPowerIncrease(-1, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.SetWheelPosition(0, geometry.Vec3{}), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.SizeWheels(-1), ErrIndexOutOfRange)
}

func TestBuilder_ResizeKeepsEntries(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SizeGears(2))
	require.NoError(t, b.SetGearSwitchRatio(0, 0.4))
	require.NoError(t, b.SetGearSwitchRatio(1, 0.8))
	require.NoError(t, b.SizeGears(3))

	assert.Equal(t, []float64{0.4, 0.8, 0}, b.gearSwitchRatio)
	assert.Equal(t, []float64{0, 0, 0}, b.gearPowerIncrease)
}

func TestBuilder_Value(t *testing.T) {
	b := NewBuilder()

	_, ok := b.Value(schema.Mass)
	assert.False(t, ok)

	require.NoError(t, b.Set(schema.Mass, 0))
	v, ok := b.Value(schema.Mass)
	assert.True(t, ok, "zero is a valid written value")
	assert.Equal(t, 0.0, v)

	_, ok = b.Value(schema.Count)
	assert.False(t, ok)
	assert.ErrorIs(t, b.Set(schema.Count, 1), ErrInvalidKey)
}

func TestBuilder_TablesAreCopied(t *testing.T) {
	b := completeBuilder(t)
	tbl := mustTable(t, interp.Point{X: 0, Y: 1})
	require.NoError(t, b.SetTurnRadius(tbl))
	require.NoError(t, tbl.Push(1, 100))

	c, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 1.0, turnRadius(t, c, 1))
}

func TestBuilder_FinalizeValidation(t *testing.T) {
	t.Run("unset key", func(t *testing.T) {
		b := NewBuilder()
		for _, k := range schema.All() {
			if k != schema.Mass {
				require.NoError(t, b.Set(k, 1))
			}
		}
		_, err := b.Finalize()
		require.ErrorIs(t, err, ErrUnsetKey)
		assert.Contains(t, err.Error(), "mass")
	})

	t.Run("empty turn radius", func(t *testing.T) {
		b := completeBuilder(t)
		require.NoError(t, b.SetTurnRadius(nil))
		_, err := b.Finalize()
		assert.ErrorIs(t, err, ErrEmptyTable)
	})

	t.Run("missing skidding", func(t *testing.T) {
		b := completeBuilder(t)
		require.NoError(t, b.SetSkidding(nil))
		_, err := b.Finalize()
		assert.ErrorIs(t, err, ErrMissingSkidding)
	})

	t.Run("released skidding", func(t *testing.T) {
		b := completeBuilder(t)
		skid := testSkidding(t)
		require.NoError(t, skid.Close())
		require.NoError(t, b.SetSkidding(skid))
		_, err := b.Finalize()
		assert.ErrorIs(t, err, skidding.ErrReleased)
	})

	t.Run("failure leaves builder usable", func(t *testing.T) {
		b := completeBuilder(t)
		require.NoError(t, b.SetTimeFullSteer(nil))
		_, err := b.Finalize()
		require.Error(t, err)

		require.NoError(t, b.SetTimeFullSteer(mustTable(t, interp.Point{X: 0, Y: 1})))
		_, err = b.Finalize()
		assert.NoError(t, err)
	})
}

func TestBuilder_SpentAfterFinalize(t *testing.T) {
	b := completeBuilder(t)
	_, err := b.Finalize()
	require.NoError(t, err)

	assert.ErrorIs(t, b.Set(schema.Mass, 1), ErrFinalized)
	assert.ErrorIs(t, b.SizeGears(1), ErrFinalized)
	assert.ErrorIs(t, b.SetWheelPosition(0, geometry.Vec3{}), ErrFinalized)
	_, err = b.Finalize()
	assert.ErrorIs(t, err, ErrFinalized)
	assert.NoError(t, b.Close())
}

func TestOwnership_ReleasedOnce(t *testing.T) {
	b := completeBuilder(t)
	c, err := b.Finalize()
	require.NoError(t, err)
	skid := c.Skidding()
	require.False(t, skid.Released())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Close())
		}()
	}
	wg.Wait()

	assert.True(t, skid.Released())
	assert.ErrorIs(t, skid.Close(), skidding.ErrReleased, "record must have released exactly once")
}

func TestOwnership_BuilderReleasesReplacedAndAbandoned(t *testing.T) {
	b := NewBuilder()
	first := testSkidding(t)
	second := testSkidding(t)

	require.NoError(t, b.SetSkidding(first))
	require.NoError(t, b.SetSkidding(second))
	assert.True(t, first.Released())
	assert.False(t, second.Released())

	require.NoError(t, b.Close())
	assert.True(t, second.Released())
	assert.NoError(t, b.Close())
}

func TestCharacteristics_ConcurrentReads(t *testing.T) {
	c := finalized(t)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := range 200 {
				steer := float64((i+j)%11) / 10
				r, err := c.TurnRadius(steer)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, r, 2.0)
				_, err = c.GearSwitchRatio(j % 3)
				assert.NoError(t, err)
				_, err = c.WheelPosition(j % 4)
				assert.NoError(t, err)
				assert.Equal(t, float64(schema.Mass)+0.5, c.Mass())
			}
		}(i)
	}
	wg.Wait()
}

func TestSnapshot_RestoreAndJSON(t *testing.T) {
	c := finalized(t)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.Values, int(schema.Count))
	assert.Equal(t, float64(schema.Mass)+0.5, snap.Values["mass"])

	restored, err := Restore(snap)
	require.NoError(t, err)
	for _, k := range schema.All() {
		assert.Equal(t, c.Get(k), restored.Get(k), k.String())
	}
	assert.Equal(t, turnRadius(t, c, 0.75), turnRadius(t, restored, 0.75))
	assert.Equal(t, c.Snapshot().StartupBoost, restored.Snapshot().StartupBoost)
	assert.Equal(t, 8.0, restored.StartupBoost(0.2))
	ratio, err := restored.GearSwitchRatio(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, ratio)
	assert.Equal(t, c.Skidding().Params(), restored.Skidding().Params())
	assert.NotSame(t, c.Skidding(), restored.Skidding())
}

func TestSnapshot_Builder_Errors(t *testing.T) {
	snap := finalized(t).Snapshot()

	bad := snap
	bad.Values = map[string]float64{"engine.warpFactor": 9}
	_, err := bad.Builder()
	assert.ErrorIs(t, err, ErrInvalidKey)

	bad = snap
	bad.GearPowerIncrease = []float64{0.1}
	_, err = bad.Builder()
	assert.ErrorIs(t, err, ErrGearMismatch)

	bad = snap
	delete(bad.Values, "mass")
	_, err = Restore(bad)
	assert.ErrorIs(t, err, ErrUnsetKey)
}

package compose

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/layer"
	"github.com/trackforge/kartchar/internal/skidding"
)

// testLogger implements Logger for testing
type testLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *testLogger) Debug(msg string, keysAndValues ...any) { l.add("DEBUG", msg, keysAndValues) }
func (l *testLogger) Info(msg string, keysAndValues ...any)  { l.add("INFO", msg, keysAndValues) }
func (l *testLogger) Error(msg string, keysAndValues ...any) { l.add("ERROR", msg, keysAndValues) }

func (l *testLogger) add(level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf("%s: %s %v", level, msg, kv))
}

func newTestComposer(t *testing.T) (*Composer, *testLogger) {
	t.Helper()
	logger := &testLogger{}
	c, err := New(logger)
	require.NoError(t, err)
	return c, logger
}

func mustTable(t *testing.T, points ...interp.Point) *interp.Table {
	t.Helper()
	tbl, err := interp.New(points...)
	require.NoError(t, err)
	return tbl
}

// baseLayer sets every characteristic to 10 and provides all structured data.
func baseLayer(t *testing.T) *layer.Layer {
	t.Helper()
	l := layer.New("base")
	for _, k := range schema.All() {
		l.Values[k] = layer.Set(10)
	}
	l.TurnRadius = mustTable(t, interp.Point{X: 0, Y: 2}, interp.Point{X: 1, Y: 8})
	l.TimeFullSteer = mustTable(t, interp.Point{X: 0, Y: 0}, interp.Point{X: 1, Y: 0.2})
	l.GearSwitchRatio = []float64{0.25, 0.7, 1}
	l.GearPowerIncrease = []float64{2.2, 2, 1.6}
	l.WheelPositions = []geometry.Vec3{
		{X: 0.3, Z: 0.55}, {X: -0.3, Z: 0.55}, {X: 0.3, Z: -0.55}, {X: -0.3, Z: -0.55},
	}
	l.Skidding["increase"] = layer.Set(1.05)
	l.Skidding["max"] = layer.Set(2)
	l.SkidBonus = &layer.SkidBonus{
		TimeTillBonus: []float64{1, 3},
		BonusSpeed:    []float64{4.5, 6.5},
		BonusTime:     []float64{1.5, 2.5},
		BonusForce:    []float64{250, 350},
	}
	return l
}

func TestCompose_AppliesLayersInOrder(t *testing.T) {
	c, logger := newTestComposer(t)

	heavy := layer.New("heavy")
	heavy.Values[schema.Mass] = layer.Op{Kind: layer.Mul, Operand: 1.5}
	heavy.Values[schema.EnginePower] = layer.Set(450)

	hard := layer.New("hard")
	hard.Values[schema.Mass] = layer.Op{Kind: layer.Add, Operand: 5}
	hard.Values[schema.EngineMaxSpeed] = layer.Op{Kind: layer.Div, Operand: 4}

	rec, err := c.Compose(context.Background(), "heavy-hard", baseLayer(t), heavy, hard)
	require.NoError(t, err)
	defer rec.Close()

	assert.Equal(t, 20.0, rec.Mass())
	assert.Equal(t, 450.0, rec.EnginePower())
	assert.Equal(t, 2.5, rec.EngineMaxSpeed())
	assert.Equal(t, 10.0, rec.NitroMax())
	assert.Equal(t, 3, rec.GearCount())
	assert.Equal(t, 4, rec.WheelCount())
	radius, err := rec.TurnRadius(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, radius, 1e-9)

	logger.mu.Lock()
	defer logger.mu.Unlock()
	assert.Len(t, logger.messages, 4, "one debug line per layer plus the summary")
}

func TestCompose_StructuredDataLastLayerWins(t *testing.T) {
	c, _ := newTestComposer(t)

	override := layer.New("override")
	override.TurnRadius = mustTable(t, interp.Point{X: 0, Y: 4})
	override.GearSwitchRatio = []float64{0.5, 1}
	override.GearPowerIncrease = []float64{1.8, 1.2}
	override.WheelPositions = []geometry.Vec3{{X: 0, Z: 0.6}, {X: 0.3, Z: -0.5}, {X: -0.3, Z: -0.5}}

	rec, err := c.Compose(context.Background(), "trike", baseLayer(t), override)
	require.NoError(t, err)
	defer rec.Close()

	radius, err := rec.TurnRadius(1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, radius)
	assert.Equal(t, 2, rec.GearCount())
	power, err := rec.GearPowerIncrease(1)
	require.NoError(t, err)
	assert.Equal(t, 1.2, power)
	assert.Equal(t, 3, rec.WheelCount())
	_, err = rec.WheelPosition(3)
	assert.ErrorIs(t, err, characteristics.ErrIndexOutOfRange)
}

func TestCompose_MergesSkidding(t *testing.T) {
	c, _ := newTestComposer(t)

	drift := layer.New("drift")
	drift.Skidding["increase"] = layer.Op{Kind: layer.Mul, Operand: 2}
	drift.Skidding["timeTillMax"] = layer.Set(0.4)
	drift.SkidBonus = &layer.SkidBonus{BonusSpeed: []float64{5, 7}}
	yes := true
	drift.HasSkidmarks = &yes

	rec, err := c.Compose(context.Background(), "drifter", baseLayer(t), drift)
	require.NoError(t, err)
	defer rec.Close()

	params := rec.Skidding().Params()
	assert.Equal(t, 2.1, params.Increase)
	assert.Equal(t, 2.0, params.Max)
	assert.Equal(t, 0.4, params.TimeTillMax)
	assert.Equal(t, []float64{5, 7}, params.BonusSpeed)
	assert.Equal(t, []float64{1, 3}, params.TimeTillBonus)
	assert.True(t, params.HasSkidmarks)
}

func TestCompose_StartupBoostLastLayerWins(t *testing.T) {
	c, _ := newTestComposer(t)

	base := baseLayer(t)
	base.StartupTime = []float64{0.3, 0.5}
	base.StartupBoost = []float64{8, 4}

	pro := layer.New("pro")
	pro.StartupBoost = []float64{10, 5}

	rec, err := c.Compose(context.Background(), "pro", base, pro)
	require.NoError(t, err)
	defer rec.Close()

	assert.Equal(t, 10.0, rec.StartupBoost(0.2))
	assert.Equal(t, 5.0, rec.StartupBoost(0.4))
	assert.Equal(t, 0.0, rec.StartupBoost(0.6))

	plain, err := c.Compose(context.Background(), "plain", baseLayer(t))
	require.NoError(t, err)
	defer plain.Close()
	assert.Equal(t, 0.0, plain.StartupBoost(0.1), "no startup boost configured")
}

func TestCompose_Errors(t *testing.T) {
	c, logger := newTestComposer(t)
	ctx := context.Background()

	t.Run("no layers", func(t *testing.T) {
		_, err := c.Compose(ctx, "empty")
		assert.ErrorIs(t, err, ErrNoLayers)
	})

	t.Run("arithmetic on unset value", func(t *testing.T) {
		l := layer.New("orphan")
		l.Values[schema.Mass] = layer.Op{Kind: layer.Add, Operand: 1}
		_, err := c.Compose(ctx, "orphan", l)
		require.ErrorIs(t, err, layer.ErrUnsetOperand)
		assert.ErrorContains(t, err, "layer orphan")
	})

	t.Run("skidding arithmetic on unset value", func(t *testing.T) {
		l := layer.New("skid")
		l.Skidding["visual"] = layer.Op{Kind: layer.Sub, Operand: 1}
		_, err := c.Compose(ctx, "skid", baseLayer(t), l)
		assert.ErrorIs(t, err, layer.ErrUnsetOperand)
	})

	t.Run("gear mismatch", func(t *testing.T) {
		l := layer.New("gears")
		l.GearSwitchRatio = []float64{0.5, 1}
		_, err := c.Compose(ctx, "gears", baseLayer(t), l)
		assert.ErrorIs(t, err, characteristics.ErrGearMismatch)
	})

	t.Run("startup boost mismatch", func(t *testing.T) {
		l := layer.New("launch")
		l.StartupTime = []float64{0.3, 0.5}
		l.StartupBoost = []float64{8}
		_, err := c.Compose(ctx, "launch", baseLayer(t), l)
		assert.ErrorIs(t, err, characteristics.ErrStartupMismatch)
	})

	t.Run("incomplete record", func(t *testing.T) {
		l := layer.New("partial")
		l.Values[schema.Mass] = layer.Set(200)
		_, err := c.Compose(ctx, "partial", l)
		require.ErrorIs(t, err, characteristics.ErrUnsetKey)
		assert.ErrorContains(t, err, "compose partial")
	})

	t.Run("no skidding", func(t *testing.T) {
		base := baseLayer(t)
		base.Skidding = map[string]layer.Op{}
		base.SkidBonus = nil
		_, err := c.Compose(ctx, "grip", base)
		assert.ErrorIs(t, err, characteristics.ErrMissingSkidding)
	})

	t.Run("mismatched skid bonus", func(t *testing.T) {
		l := layer.New("bonus")
		l.SkidBonus = &layer.SkidBonus{BonusForce: []float64{1}}
		_, err := c.Compose(ctx, "bonus", baseLayer(t), l)
		assert.ErrorIs(t, err, skidding.ErrBonusMismatch)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := c.Compose(canceled, "late", baseLayer(t))
		assert.ErrorIs(t, err, context.Canceled)
	})

	logger.mu.Lock()
	defer logger.mu.Unlock()
	assert.NotEmpty(t, logger.messages)
	assert.Contains(t, logger.messages[len(logger.messages)-1], "ERROR: compose failed")
}

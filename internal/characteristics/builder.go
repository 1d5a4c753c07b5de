package characteristics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/skidding"
)

var (
	// ErrIndexOutOfRange is returned for gear or wheel indices outside the sized arrays.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrFinalized is returned when a builder is used after Finalize succeeded.
	ErrFinalized = errors.New("characteristics builder already finalized")
	// ErrUnsetKey is returned by Finalize when scalar characteristics were never written.
	ErrUnsetKey = errors.New("characteristics not set")
	// ErrEmptyTable is returned by Finalize when a steer table has no control points.
	ErrEmptyTable = errors.New("steer table is empty")
	// ErrMissingSkidding is returned by Finalize when no skidding properties were installed.
	ErrMissingSkidding = errors.New("skidding properties not set")
	// ErrInvalidKey is returned for keys outside the schema.
	ErrInvalidKey = errors.New("invalid characteristic key")
	// ErrNonFinite is returned for NaN or infinite values.
	ErrNonFinite = errors.New("characteristic value is not finite")
)

// Builder is the write side of a characteristics record. A composer fills it
// and calls Finalize to obtain the read-only Characteristics. Methods are safe
// to call from multiple goroutines.
type Builder struct {
	mu sync.Mutex

	values [schema.Count]float64
	set    [schema.Count]bool

	turnRadius    *interp.Table
	timeFullSteer *interp.Table

	gearSwitchRatio   []float64
	gearPowerIncrease []float64
	wheelPositions    []geometry.Vec3

	startup StartupBoost

	skid *skidding.Properties

	finalized bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Set writes one scalar characteristic.
func (b *Builder) Set(k schema.Key, v float64) error {
	if !k.Valid() {
		return fmt.Errorf("key %d: %w", k, ErrInvalidKey)
	}
	if !finite(v) {
		return fmt.Errorf("%s = %g: %w", k, v, ErrNonFinite)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return ErrFinalized
	}
	b.values[k] = v
	b.set[k] = true
	return nil
}

// Value returns the current value of k and whether it has been written.
func (b *Builder) Value(k schema.Key) (float64, bool) {
	if !k.Valid() {
		return 0, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.values[k], b.set[k]
}

// SetTurnRadius installs the turn radius vs. steer table. The builder keeps
// its own copy.
func (b *Builder) SetTurnRadius(t *interp.Table) error {
	return b.setTable(&b.turnRadius, t)
}

// SetTimeFullSteer installs the time-to-full-steer vs. steer table.
func (b *Builder) SetTimeFullSteer(t *interp.Table) error {
	return b.setTable(&b.timeFullSteer, t)
}

func (b *Builder) setTable(dst **interp.Table, t *interp.Table) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return ErrFinalized
	}
	if t == nil {
		*dst = nil
		return nil
	}
	*dst = t.Clone()
	return nil
}

// SizeGears sets the number of gears. Both gear arrays are resized together;
// existing entries are kept and new ones start at zero.
func (b *Builder) SizeGears(n int) error {
	if n < 0 {
		return fmt.Errorf("gear count %d: %w", n, ErrIndexOutOfRange)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return ErrFinalized
	}
	b.gearSwitchRatio = resize(b.gearSwitchRatio, n)
	b.gearPowerIncrease = resize(b.gearPowerIncrease, n)
	return nil
}

// SizeWheels sets the number of wheels.
func (b *Builder) SizeWheels(n int) error {
	if n < 0 {
		return fmt.Errorf("wheel count %d: %w", n, ErrIndexOutOfRange)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return ErrFinalized
	}
	b.wheelPositions = resize(b.wheelPositions, n)
	return nil
}

func resize[T any](s []T, n int) []T {
	out := make([]T, n)
	copy(out, s)
	return out
}

// SetGearSwitchRatio writes the switch ratio of one gear.
func (b *Builder) SetGearSwitchRatio(gear int, v float64) error {
	if !finite(v) {
		return fmt.Errorf("gear %d switch ratio %g: %w", gear, v, ErrNonFinite)
	}
	return setIndexed(b, func() []float64 { return b.gearSwitchRatio }, "gear", gear, v)
}

// SetGearPowerIncrease writes the power multiplier of one gear.
func (b *Builder) SetGearPowerIncrease(gear int, v float64) error {
	if !finite(v) {
		return fmt.Errorf("gear %d power increase %g: %w", gear, v, ErrNonFinite)
	}
	return setIndexed(b, func() []float64 { return b.gearPowerIncrease }, "gear", gear, v)
}

// SetWheelPosition writes the chassis-frame position of one wheel.
func (b *Builder) SetWheelPosition(wheel int, p geometry.Vec3) error {
	if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
		return fmt.Errorf("wheel %d position %v: %w", wheel, p, ErrNonFinite)
	}
	return setIndexed(b, func() []geometry.Vec3 { return b.wheelPositions }, "wheel", wheel, p)
}

// setIndexed resolves the target slice under the lock, since SizeGears and
// SizeWheels replace it.
func setIndexed[T any](b *Builder, slice func() []T, what string, i int, v T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return ErrFinalized
	}
	dst := slice()
	if err := checkIndex(what, i, len(dst)); err != nil {
		return err
	}
	dst[i] = v
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetStartupBoost installs the startup boost table. The builder keeps its
// own copy.
func (b *Builder) SetStartupBoost(s StartupBoost) error {
	if err := s.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return ErrFinalized
	}
	b.startup = s.Clone()
	return nil
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s %d of %d: %w", what, i, n, ErrIndexOutOfRange)
	}
	return nil
}

// SetSkidding hands ownership of p to the builder and, after Finalize, to the
// record. Replacing a previously installed value releases it.
func (b *Builder) SetSkidding(p *skidding.Properties) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return ErrFinalized
	}
	if b.skid != nil && b.skid != p {
		if err := b.skid.Close(); err != nil {
			return fmt.Errorf("release replaced skidding properties: %w", err)
		}
	}
	b.skid = p
	return nil
}

// Finalize validates the builder and publishes its contents as an immutable
// record. On success the builder is spent and the record owns the skidding
// properties. On failure the builder is left untouched.
func (b *Builder) Finalize() (*Characteristics, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized {
		return nil, ErrFinalized
	}

	var unset []string
	for k := schema.Key(0); k < schema.Count; k++ {
		if !b.set[k] {
			unset = append(unset, k.String())
		}
	}
	if len(unset) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsetKey, strings.Join(unset, ", "))
	}
	if b.turnRadius.Len() == 0 {
		return nil, fmt.Errorf("turn radius: %w", ErrEmptyTable)
	}
	if b.timeFullSteer.Len() == 0 {
		return nil, fmt.Errorf("time full steer: %w", ErrEmptyTable)
	}
	if b.skid == nil {
		return nil, ErrMissingSkidding
	}
	if b.skid.Released() {
		return nil, fmt.Errorf("install skidding: %w", skidding.ErrReleased)
	}

	c := &Characteristics{
		values:            b.values,
		turnRadius:        b.turnRadius,
		timeFullSteer:     b.timeFullSteer,
		gearSwitchRatio:   b.gearSwitchRatio,
		gearPowerIncrease: b.gearPowerIncrease,
		wheelPositions:    b.wheelPositions,
		startup:           b.startup,
		skid:              b.skid,
	}

	b.finalized = true
	b.turnRadius, b.timeFullSteer = nil, nil
	b.gearSwitchRatio, b.gearPowerIncrease, b.wheelPositions = nil, nil, nil
	b.startup = StartupBoost{}
	b.skid = nil
	return c, nil
}

// Close abandons an unfinished builder, releasing skidding properties it
// still owns. It is a no-op after Finalize.
func (b *Builder) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finalized || b.skid == nil {
		return nil
	}
	skid := b.skid
	b.skid = nil
	return skid.Close()
}

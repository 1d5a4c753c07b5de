// Package characteristics stores the tunable parameters of one kart
// configuration and serves them to the simulation through typed accessors.
//
// A record goes through two phases. While it is being composed it is a
// Builder; Finalize validates it and returns a Characteristics value which is
// immutable and safe for concurrent readers without locking.
package characteristics

//go:generate go run ../../cmd/charsgen -out accessors_gen.go

import (
	"sync"

	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/skidding"
)

// Characteristics is a finalized, read-only characteristics record.
type Characteristics struct {
	values [schema.Count]float64

	turnRadius    *interp.Table
	timeFullSteer *interp.Table

	gearSwitchRatio   []float64
	gearPowerIncrease []float64
	wheelPositions    []geometry.Vec3

	startup StartupBoost

	skid *skidding.Properties

	closeOnce sync.Once
	closeErr  error
}

// Get returns the stored value of k. k must be a valid schema key.
func (c *Characteristics) Get(k schema.Key) float64 {
	return c.values[k]
}

// TurnRadius returns the turn radius for a steer input. A NaN steer reports
// interp.ErrNonFinite.
func (c *Characteristics) TurnRadius(steer float64) (float64, error) {
	return c.turnRadius.Evaluate(steer)
}

// TimeFullSteer returns the time needed to reach full steer from a steer input.
func (c *Characteristics) TimeFullSteer(steer float64) (float64, error) {
	return c.timeFullSteer.Evaluate(steer)
}

// SteerForTurnRadius returns the steer input that yields radius, clamped to
// the table's steer range. The turn radius table must be monotonic.
func (c *Characteristics) SteerForTurnRadius(radius float64) (float64, error) {
	return c.turnRadius.EvaluateInverse(radius)
}

// GearCount returns the number of gears.
func (c *Characteristics) GearCount() int { return len(c.gearSwitchRatio) }

// WheelCount returns the number of wheels.
func (c *Characteristics) WheelCount() int { return len(c.wheelPositions) }

// GearSwitchRatio returns the fraction of max speed at which the kart
// switches out of gear.
func (c *Characteristics) GearSwitchRatio(gear int) (float64, error) {
	if err := checkIndex("gear", gear, len(c.gearSwitchRatio)); err != nil {
		return 0, err
	}
	return c.gearSwitchRatio[gear], nil
}

// GearPowerIncrease returns the engine power multiplier of a gear.
func (c *Characteristics) GearPowerIncrease(gear int) (float64, error) {
	if err := checkIndex("gear", gear, len(c.gearPowerIncrease)); err != nil {
		return 0, err
	}
	return c.gearPowerIncrease[gear], nil
}

// WheelPosition returns the chassis-frame position of a wheel.
func (c *Characteristics) WheelPosition(wheel int) (geometry.Vec3, error) {
	if err := checkIndex("wheel", wheel, len(c.wheelPositions)); err != nil {
		return geometry.Vec3{}, err
	}
	return c.wheelPositions[wheel], nil
}

// StartupBoost returns the boost earned by accelerating reaction seconds
// after the start: the boost of the first threshold not exceeded, or 0 when
// the kart started too late or early.
func (c *Characteristics) StartupBoost(reaction float64) float64 {
	if reaction < 0 {
		return 0
	}
	for i, t := range c.startup.Time {
		if reaction <= t {
			return c.startup.Boost[i]
		}
	}
	return 0
}

// Skidding returns the skidding properties owned by this record.
func (c *Characteristics) Skidding() *skidding.Properties {
	return c.skid
}

// Close ends the record's lifetime and releases its skidding properties.
// Only the first call releases; later calls return the first result.
func (c *Characteristics) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.skid.Close()
	})
	return c.closeErr
}

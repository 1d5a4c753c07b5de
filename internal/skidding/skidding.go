// Package skidding holds the drift/skid tuning of a kart. A Properties value
// is owned by exactly one characteristics record and released with it.
package skidding

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync/atomic"
)

var (
	// ErrReleased is returned when Properties are closed more than once.
	ErrReleased = errors.New("skidding properties already released")
	// ErrBonusMismatch is returned when the bonus arrays differ in length.
	ErrBonusMismatch = errors.New("skid bonus arrays must have equal length")
	// ErrUnknownField is returned by Set and Get for names that are not scalar params.
	ErrUnknownField = errors.New("unknown skidding field")
	// ErrNonFinite is returned by Validate for NaN or infinite values.
	ErrNonFinite = errors.New("skidding value is not finite")
)

// Params is the plain skidding configuration. The four bonus slices hold one
// entry per bonus level, ordered by TimeTillBonus.
type Params struct {
	Increase             float64 `json:"increase" mapstructure:"increase"`
	Decrease             float64 `json:"decrease" mapstructure:"decrease"`
	Max                  float64 `json:"max" mapstructure:"max"`
	TimeTillMax          float64 `json:"timeTillMax" mapstructure:"timeTillMax"`
	Visual               float64 `json:"visual" mapstructure:"visual"`
	VisualTime           float64 `json:"visualTime" mapstructure:"visualTime"`
	RevertVisualTime     float64 `json:"revertVisualTime" mapstructure:"revertVisualTime"`
	MinSpeed             float64 `json:"minSpeed" mapstructure:"minSpeed"`
	PostSkidRotateFactor float64 `json:"postSkidRotateFactor" mapstructure:"postSkidRotateFactor"`
	ReduceTurnMin        float64 `json:"reduceTurnMin" mapstructure:"reduceTurnMin"`
	ReduceTurnMax        float64 `json:"reduceTurnMax" mapstructure:"reduceTurnMax"`
	PhysicalJumpTime     float64 `json:"physicalJumpTime" mapstructure:"physicalJumpTime"`
	GraphicalJumpTime    float64 `json:"graphicalJumpTime" mapstructure:"graphicalJumpTime"`

	TimeTillBonus []float64 `json:"timeTillBonus" mapstructure:"timeTillBonus"`
	BonusSpeed    []float64 `json:"bonusSpeed" mapstructure:"bonusSpeed"`
	BonusTime     []float64 `json:"bonusTime" mapstructure:"bonusTime"`
	BonusForce    []float64 `json:"bonusForce" mapstructure:"bonusForce"`

	HasSkidmarks bool `json:"hasSkidmarks" mapstructure:"hasSkidmarks"`
}

// scalar fields addressable by name, used by layered composition
var fieldNames = []string{
	"increase", "decrease", "max", "timeTillMax", "visual", "visualTime",
	"revertVisualTime", "minSpeed", "postSkidRotateFactor", "reduceTurnMin",
	"reduceTurnMax", "physicalJumpTime", "graphicalJumpTime",
}

// FieldNames returns the names accepted by Get and Set.
func FieldNames() []string {
	out := make([]string, len(fieldNames))
	copy(out, fieldNames)
	return out
}

func (p *Params) field(name string) (*float64, error) {
	switch name {
	case "increase":
		return &p.Increase, nil
	case "decrease":
		return &p.Decrease, nil
	case "max":
		return &p.Max, nil
	case "timeTillMax":
		return &p.TimeTillMax, nil
	case "visual":
		return &p.Visual, nil
	case "visualTime":
		return &p.VisualTime, nil
	case "revertVisualTime":
		return &p.RevertVisualTime, nil
	case "minSpeed":
		return &p.MinSpeed, nil
	case "postSkidRotateFactor":
		return &p.PostSkidRotateFactor, nil
	case "reduceTurnMin":
		return &p.ReduceTurnMin, nil
	case "reduceTurnMax":
		return &p.ReduceTurnMax, nil
	case "physicalJumpTime":
		return &p.PhysicalJumpTime, nil
	case "graphicalJumpTime":
		return &p.GraphicalJumpTime, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownField)
}

// Get returns the named scalar field.
func (p *Params) Get(name string) (float64, error) {
	f, err := p.field(name)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// Set assigns the named scalar field.
func (p *Params) Set(name string, v float64) error {
	f, err := p.field(name)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Validate checks that every value is finite and the bonus arrays line up.
func (p *Params) Validate() error {
	for _, name := range fieldNames {
		v, _ := p.Get(name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%g: %w", name, v, ErrNonFinite)
		}
	}
	for _, vals := range [][]float64{p.TimeTillBonus, p.BonusSpeed, p.BonusTime, p.BonusForce} {
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("bonus value %g: %w", v, ErrNonFinite)
			}
		}
	}
	n := len(p.TimeTillBonus)
	if len(p.BonusSpeed) != n || len(p.BonusTime) != n || len(p.BonusForce) != n {
		return fmt.Errorf("timeTillBonus=%d bonusSpeed=%d bonusTime=%d bonusForce=%d: %w",
			n, len(p.BonusSpeed), len(p.BonusTime), len(p.BonusForce), ErrBonusMismatch)
	}
	if !sort.Float64sAreSorted(p.TimeTillBonus) {
		return errors.New("timeTillBonus must be sorted ascending")
	}
	return nil
}

// Clone returns a deep copy.
func (p *Params) Clone() Params {
	c := *p
	c.TimeTillBonus = append([]float64(nil), p.TimeTillBonus...)
	c.BonusSpeed = append([]float64(nil), p.BonusSpeed...)
	c.BonusTime = append([]float64(nil), p.BonusTime...)
	c.BonusForce = append([]float64(nil), p.BonusForce...)
	return c
}

// Properties is the owned, read-only skidding record handed to a
// characteristics record.
type Properties struct {
	params   Params
	released atomic.Bool
}

// New validates params and wraps a private copy of them.
func New(params Params) (*Properties, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Properties{params: params.Clone()}, nil
}

// Params returns a copy of the configuration.
func (p *Properties) Params() Params {
	return p.params.Clone()
}

// BonusLevel returns the highest bonus level reached after skidding for
// skidTime seconds, or -1 if no level was reached.
func (p *Properties) BonusLevel(skidTime float64) int {
	level := -1
	for i, t := range p.params.TimeTillBonus {
		if skidTime < t {
			break
		}
		level = i
	}
	return level
}

// Close releases the properties. Releasing twice is an ownership bug and
// reports ErrReleased.
func (p *Properties) Close() error {
	if !p.released.CompareAndSwap(false, true) {
		return ErrReleased
	}
	return nil
}

// Released reports whether Close has been called.
func (p *Properties) Released() bool {
	return p.released.Load()
}

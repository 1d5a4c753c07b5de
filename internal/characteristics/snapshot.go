package characteristics

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/skidding"
)

// ErrGearMismatch is returned when the two gear arrays differ in length.
var ErrGearMismatch = errors.New("gear arrays must have equal length")

// Snapshot is a plain, deep-copied form of a record, used for persistence
// and reporting. Values is keyed by schema key string.
type Snapshot struct {
	Values            map[string]float64 `json:"values"`
	TurnRadius        *interp.Table      `json:"turnRadius"`
	TimeFullSteer     *interp.Table      `json:"timeFullSteer"`
	GearSwitchRatio   []float64          `json:"gearSwitchRatio"`
	GearPowerIncrease []float64          `json:"gearPowerIncrease"`
	WheelPositions    []geometry.Vec3    `json:"wheelPositions"`
	StartupBoost      StartupBoost       `json:"startupBoost"`
	Skidding          skidding.Params    `json:"skidding"`
}

// Snapshot copies the record.
func (c *Characteristics) Snapshot() Snapshot {
	values := make(map[string]float64, schema.Count)
	for k := schema.Key(0); k < schema.Count; k++ {
		values[k.String()] = c.values[k]
	}
	return Snapshot{
		Values:            values,
		TurnRadius:        c.turnRadius.Clone(),
		TimeFullSteer:     c.timeFullSteer.Clone(),
		GearSwitchRatio:   append([]float64(nil), c.gearSwitchRatio...),
		GearPowerIncrease: append([]float64(nil), c.gearPowerIncrease...),
		WheelPositions:    append([]geometry.Vec3(nil), c.wheelPositions...),
		StartupBoost:      c.startup.Clone(),
		Skidding:          c.skid.Params(),
	}
}

// MarshalJSON encodes the record through its snapshot.
func (c *Characteristics) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

// Builder turns the snapshot back into a builder ready to Finalize. The
// builder owns freshly created skidding properties.
func (s Snapshot) Builder() (*Builder, error) {
	b := NewBuilder()
	for name, v := range s.Values {
		k, ok := schema.Parse(name)
		if !ok {
			return nil, fmt.Errorf("snapshot value %q: %w", name, ErrInvalidKey)
		}
		if err := b.Set(k, v); err != nil {
			return nil, err
		}
	}
	if s.TurnRadius != nil {
		if err := b.SetTurnRadius(s.TurnRadius); err != nil {
			return nil, err
		}
	}
	if s.TimeFullSteer != nil {
		if err := b.SetTimeFullSteer(s.TimeFullSteer); err != nil {
			return nil, err
		}
	}

	if len(s.GearSwitchRatio) != len(s.GearPowerIncrease) {
		return nil, fmt.Errorf("switch ratios %d, power increases %d: %w",
			len(s.GearSwitchRatio), len(s.GearPowerIncrease), ErrGearMismatch)
	}
	if err := b.SizeGears(len(s.GearSwitchRatio)); err != nil {
		return nil, err
	}
	for i := range s.GearSwitchRatio {
		if err := b.SetGearSwitchRatio(i, s.GearSwitchRatio[i]); err != nil {
			return nil, err
		}
		if err := b.SetGearPowerIncrease(i, s.GearPowerIncrease[i]); err != nil {
			return nil, err
		}
	}

	if err := b.SizeWheels(len(s.WheelPositions)); err != nil {
		return nil, err
	}
	for i, p := range s.WheelPositions {
		if err := b.SetWheelPosition(i, p); err != nil {
			return nil, err
		}
	}

	if err := b.SetStartupBoost(s.StartupBoost); err != nil {
		return nil, fmt.Errorf("snapshot startup boost: %w", err)
	}

	skid, err := skidding.New(s.Skidding)
	if err != nil {
		return nil, fmt.Errorf("snapshot skidding: %w", err)
	}
	if err := b.SetSkidding(skid); err != nil {
		return nil, err
	}
	return b, nil
}

// Restore rebuilds a finalized record from a snapshot.
func Restore(s Snapshot) (*Characteristics, error) {
	b, err := s.Builder()
	if err != nil {
		return nil, err
	}
	c, err := b.Finalize()
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	return c, nil
}

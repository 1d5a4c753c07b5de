package compose

import (
	"fmt"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/layer"
	"github.com/trackforge/kartchar/internal/skidding"
)

// state holds what cannot be written to the builder until every layer is
// seen: the gear and startup arrays must agree in length only at the end, and
// skidding properties are created once from the merged params.
type state struct {
	gearSwitchRatio   []float64
	gearPowerIncrease []float64

	startupTime  []float64
	startupBoost []float64

	skid        skidding.Params
	skidSet     map[string]bool
	skidTouched bool
}

func newState() *state {
	return &state{skidSet: make(map[string]bool)}
}

func (s *state) apply(b *characteristics.Builder, l *layer.Layer) error {
	for k, op := range l.Values {
		cur, set := b.Value(k)
		v, err := op.Apply(cur, set)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if err := b.Set(k, v); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}

	if l.TurnRadius != nil {
		if err := b.SetTurnRadius(l.TurnRadius); err != nil {
			return err
		}
	}
	if l.TimeFullSteer != nil {
		if err := b.SetTimeFullSteer(l.TimeFullSteer); err != nil {
			return err
		}
	}

	if l.GearSwitchRatio != nil {
		s.gearSwitchRatio = l.GearSwitchRatio
	}
	if l.GearPowerIncrease != nil {
		s.gearPowerIncrease = l.GearPowerIncrease
	}

	if l.StartupTime != nil {
		s.startupTime = l.StartupTime
	}
	if l.StartupBoost != nil {
		s.startupBoost = l.StartupBoost
	}

	if l.WheelPositions != nil {
		if err := b.SizeWheels(len(l.WheelPositions)); err != nil {
			return err
		}
		for i, p := range l.WheelPositions {
			if err := b.SetWheelPosition(i, p); err != nil {
				return err
			}
		}
	}

	return s.mergeSkidding(l)
}

func (s *state) mergeSkidding(l *layer.Layer) error {
	if !l.TouchesSkidding() {
		return nil
	}
	s.skidTouched = true

	for name, op := range l.Skidding {
		cur, err := s.skid.Get(name)
		if err != nil {
			return err
		}
		v, err := op.Apply(cur, s.skidSet[name])
		if err != nil {
			return fmt.Errorf("skidding.%s: %w", name, err)
		}
		if err := s.skid.Set(name, v); err != nil {
			return err
		}
		s.skidSet[name] = true
	}
	if bonus := l.SkidBonus; bonus != nil {
		if bonus.TimeTillBonus != nil {
			s.skid.TimeTillBonus = bonus.TimeTillBonus
		}
		if bonus.BonusSpeed != nil {
			s.skid.BonusSpeed = bonus.BonusSpeed
		}
		if bonus.BonusTime != nil {
			s.skid.BonusTime = bonus.BonusTime
		}
		if bonus.BonusForce != nil {
			s.skid.BonusForce = bonus.BonusForce
		}
	}
	if l.HasSkidmarks != nil {
		s.skid.HasSkidmarks = *l.HasSkidmarks
	}
	return nil
}

// finish writes what was deferred until every layer had been applied.
func (s *state) finish(b *characteristics.Builder) error {
	if len(s.gearSwitchRatio) != len(s.gearPowerIncrease) {
		return fmt.Errorf("switch ratios %d, power increases %d: %w",
			len(s.gearSwitchRatio), len(s.gearPowerIncrease), characteristics.ErrGearMismatch)
	}
	if err := b.SizeGears(len(s.gearSwitchRatio)); err != nil {
		return err
	}
	for i := range s.gearSwitchRatio {
		if err := b.SetGearSwitchRatio(i, s.gearSwitchRatio[i]); err != nil {
			return err
		}
		if err := b.SetGearPowerIncrease(i, s.gearPowerIncrease[i]); err != nil {
			return err
		}
	}

	if s.startupTime != nil || s.startupBoost != nil {
		err := b.SetStartupBoost(characteristics.StartupBoost{Time: s.startupTime, Boost: s.startupBoost})
		if err != nil {
			return fmt.Errorf("startup boost: %w", err)
		}
	}

	if !s.skidTouched {
		return nil
	}
	skid, err := skidding.New(s.skid)
	if err != nil {
		return fmt.Errorf("skidding: %w", err)
	}
	return b.SetSkidding(skid)
}

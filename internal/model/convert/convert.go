// Package convert maps characteristics snapshots to and from their
// database rows.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/model"
)

func toJSON(v any, column string) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", column, err)
	}
	return datatypes.JSON(b), nil
}

func fromJSON(data datatypes.JSON, dst any, column string) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", column, err)
	}
	return nil
}

// SnapshotToModel converts a snapshot into a row named name.
func SnapshotToModel(name string, s characteristics.Snapshot) (model.Snapshot, error) {
	m := model.Snapshot{
		Name:       name,
		GearCount:  len(s.GearSwitchRatio),
		WheelCount: len(s.WheelPositions),
		Mass:       s.Values["mass"],
	}

	fp, err := geometry.ComputeFootprint(s.WheelPositions)
	switch {
	case err == nil:
		m.FootprintArea = fp.Area
	case !errors.Is(err, geometry.ErrTooFewWheels):
		return model.Snapshot{}, err
	}

	columns := []struct {
		dst  *datatypes.JSON
		v    any
		name string
	}{
		{&m.Values, s.Values, "values"},
		{&m.TurnRadius, s.TurnRadius, "turn radius"},
		{&m.TimeFullSteer, s.TimeFullSteer, "time full steer"},
		{&m.GearSwitchRatio, s.GearSwitchRatio, "gear switch ratio"},
		{&m.GearPowerIncrease, s.GearPowerIncrease, "gear power increase"},
		{&m.WheelPositions, s.WheelPositions, "wheel positions"},
		{&m.Skidding, s.Skidding, "skidding"},
		{&m.StartupBoost, s.StartupBoost, "startup boost"},
	}
	for _, c := range columns {
		if *c.dst, err = toJSON(c.v, c.name); err != nil {
			return model.Snapshot{}, err
		}
	}
	return m, nil
}

// ModelToSnapshot converts a row back into a snapshot.
func ModelToSnapshot(m model.Snapshot) (characteristics.Snapshot, error) {
	var s characteristics.Snapshot
	columns := []struct {
		data datatypes.JSON
		dst  any
		name string
	}{
		{m.Values, &s.Values, "values"},
		{m.TurnRadius, &s.TurnRadius, "turn radius"},
		{m.TimeFullSteer, &s.TimeFullSteer, "time full steer"},
		{m.GearSwitchRatio, &s.GearSwitchRatio, "gear switch ratio"},
		{m.GearPowerIncrease, &s.GearPowerIncrease, "gear power increase"},
		{m.WheelPositions, &s.WheelPositions, "wheel positions"},
		{m.Skidding, &s.Skidding, "skidding"},
		{m.StartupBoost, &s.StartupBoost, "startup boost"},
	}
	for _, c := range columns {
		if err := fromJSON(c.data, c.dst, c.name); err != nil {
			return characteristics.Snapshot{}, fmt.Errorf("snapshot %s: %w", m.Name, err)
		}
	}
	return s, nil
}

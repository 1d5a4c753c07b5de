// Package layer reads characteristic layers: partial sets of values that are
// stacked (defaults, kart type, difficulty, player handicap) to compose one
// record.
//
// A layer file is nested by group. Scalars are numbers (replace) or op
// strings such as "+2" or "*1.1". Tables are [[x,y],...], wheel positions
// [[x,y,z],...], startup boost levels as parallel startupTime/startupBoost
// arrays. Tables and arrays replace whatever earlier layers provided.
//
//	{
//	  "name": "heavy",
//	  "mass": "*1.4",
//	  "engine": {"power": 450, "maxSpeed": "-1.5"},
//	  "turnRadius": [[0, 3.0], [1, 12.0]],
//	  "skidding": {"increase": 1.05, "timeTillBonus": [1.0, 3.0]}
//	}
package layer

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
	"github.com/trackforge/kartchar/internal/skidding"
)

// ErrUnknownKey is returned for layer entries that name no characteristic.
var ErrUnknownKey = errors.New("unknown characteristic")

// Extensions lists the file types Load accepts.
var Extensions = []string{"json", "yaml", "yml", "toml"}

// Top-level entries that are not scalar characteristics. Viper lowercases keys.
const (
	keyName              = "name"
	keyTurnRadius        = "turnradius"
	keyTimeFullSteer     = "timefullsteer"
	keyGearSwitchRatio   = "gearswitchratio"
	keyGearPowerIncrease = "gearpowerincrease"
	keyWheelPositions    = "wheelpositions"
	keyStartupTime       = "startuptime"
	keyStartupBoost      = "startupboost"
	skiddingPrefix       = "skidding."
)

// SkidBonus replaces the skid bonus levels wholesale.
type SkidBonus struct {
	TimeTillBonus []float64
	BonusSpeed    []float64
	BonusTime     []float64
	BonusForce    []float64
}

// Layer is one source of characteristic values. Nil tables and slices mean
// the layer does not touch them.
type Layer struct {
	Name   string
	Values map[schema.Key]Op

	TurnRadius    *interp.Table
	TimeFullSteer *interp.Table

	GearSwitchRatio   []float64
	GearPowerIncrease []float64
	WheelPositions    []geometry.Vec3

	StartupTime  []float64
	StartupBoost []float64

	Skidding     map[string]Op
	SkidBonus    *SkidBonus
	HasSkidmarks *bool
}

// New returns an empty layer.
func New(name string) *Layer {
	return &Layer{
		Name:     name,
		Values:   make(map[schema.Key]Op),
		Skidding: make(map[string]Op),
	}
}

// TouchesSkidding reports whether the layer carries any skidding data.
func (l *Layer) TouchesSkidding() bool {
	return len(l.Skidding) > 0 || l.SkidBonus != nil || l.HasSkidmarks != nil
}

// skidding field names keyed by their lowercased form
var skiddingFields = func() map[string]string {
	m := make(map[string]string)
	for _, name := range skidding.FieldNames() {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// Load reads one layer file. The format follows the file extension.
func Load(path string) (*Layer, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read layer %s: %w", path, err)
	}

	name := v.GetString(keyName)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	l, err := fromViper(name, v)
	if err != nil {
		return nil, fmt.Errorf("layer %s: %w", path, err)
	}
	return l, nil
}

func fromViper(name string, v *viper.Viper) (*Layer, error) {
	l := New(name)
	var bonus SkidBonus
	bonusSet := false

	for _, key := range v.AllKeys() {
		raw := v.Get(key)
		var err error
		switch {
		case key == keyName:
		case key == keyTurnRadius:
			l.TurnRadius, err = tableValue(raw)
		case key == keyTimeFullSteer:
			l.TimeFullSteer, err = tableValue(raw)
		case key == keyGearSwitchRatio:
			l.GearSwitchRatio, err = floatsValue(raw)
		case key == keyGearPowerIncrease:
			l.GearPowerIncrease, err = floatsValue(raw)
		case key == keyWheelPositions:
			l.WheelPositions, err = vecsValue(raw)
		case key == keyStartupTime:
			l.StartupTime, err = floatsValue(raw)
		case key == keyStartupBoost:
			l.StartupBoost, err = floatsValue(raw)
		case strings.HasPrefix(key, skiddingPrefix):
			field := strings.TrimPrefix(key, skiddingPrefix)
			switch field {
			case "hasskidmarks":
				var b bool
				b, err = cast.ToBoolE(raw)
				l.HasSkidmarks = &b
			case "timetillbonus":
				bonus.TimeTillBonus, err = floatsValue(raw)
				bonusSet = true
			case "bonusspeed":
				bonus.BonusSpeed, err = floatsValue(raw)
				bonusSet = true
			case "bonustime":
				bonus.BonusTime, err = floatsValue(raw)
				bonusSet = true
			case "bonusforce":
				bonus.BonusForce, err = floatsValue(raw)
				bonusSet = true
			default:
				canonical, ok := skiddingFields[field]
				if !ok {
					return nil, fmt.Errorf("%s: %w", key, ErrUnknownKey)
				}
				l.Skidding[canonical], err = opValue(raw)
			}
		default:
			k, ok := schema.Parse(key)
			if !ok {
				return nil, fmt.Errorf("%s: %w", key, ErrUnknownKey)
			}
			l.Values[k], err = opValue(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	if bonusSet {
		l.SkidBonus = &bonus
	}
	return l, nil
}

// opValue turns a raw config value into an op. Strings are parsed as ops;
// numbers replace.
func opValue(raw any) (Op, error) {
	if s, ok := raw.(string); ok {
		return ParseOp(s)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return Op{}, fmt.Errorf("%w: %v", ErrBadOp, raw)
	}
	return Set(f), nil
}

func floatsValue(raw any) ([]float64, error) {
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("expected a list: %w", err)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		if out[i], err = cast.ToFloat64E(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return out, nil
}

// rows decodes a list of fixed-width numeric tuples.
func rows(raw any, width int) ([][]float64, error) {
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("expected a list: %w", err)
	}
	out := make([][]float64, len(items))
	for i, item := range items {
		row, err := floatsValue(item)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(row) != width {
			return nil, fmt.Errorf("row %d: want %d numbers, got %d", i, width, len(row))
		}
		out[i] = row
	}
	return out, nil
}

func tableValue(raw any) (*interp.Table, error) {
	pairs, err := rows(raw, 2)
	if err != nil {
		return nil, err
	}
	t, err := interp.New()
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := t.Push(p[0], p[1]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func vecsValue(raw any) ([]geometry.Vec3, error) {
	triples, err := rows(raw, 3)
	if err != nil {
		return nil, err
	}
	out := make([]geometry.Vec3, len(triples))
	for i, p := range triples {
		out[i] = geometry.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	return out, nil
}

// LoadDir reads every layer file in dir, keyed by layer name.
func LoadDir(dir string) (map[string]*Layer, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read layer dir: %w", err)
	}

	layers := make(map[string]*Layer)
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		l, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := layers[l.Name]; dup {
			return nil, fmt.Errorf("layer %q defined twice in %s", l.Name, dir)
		}
		layers[l.Name] = l
	}
	return layers, nil
}

func supported(file string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")
	return slices.Contains(Extensions, ext)
}

// Names returns the names of the layers in a map, sorted.
func Names(layers map[string]*Layer) []string {
	return slices.Sorted(maps.Keys(layers))
}

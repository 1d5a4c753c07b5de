package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/characteristics/schema"
	"github.com/trackforge/kartchar/internal/geometry"
	"github.com/trackforge/kartchar/internal/interp"
)

// sample points for the handling section
var (
	steerInputs = []float64{0, 0.25, 0.5, 0.75, 1}
	cornerRadii = []float64{3, 5, 8}
	skidTimes   = []float64{0.5, 1, 2, 3, 5}
)

// Report is the JSON document printed for a composed record.
type Report struct {
	Name            string                   `json:"name"`
	Layers          []string                 `json:"layers"`
	ComposedAt      time.Time                `json:"composedAt"`
	Version         string                   `json:"version"`
	Characteristics characteristics.Snapshot `json:"characteristics"`
	Footprint       *geometry.Footprint      `json:"footprint,omitempty"`
	Handling        *Handling                `json:"handling,omitempty"`
}

// Handling samples the record's steering and skid behavior.
type Handling struct {
	Steer      []SteerSample `json:"steer"`
	Corners    []Corner      `json:"corners,omitempty"` // empty when the turn radius table is not monotonic
	SkidLevels []SkidLevel   `json:"skidLevels"`
}

type SteerSample struct {
	Steer         float64 `json:"steer"`
	TurnRadius    float64 `json:"turnRadius"`
	TimeFullSteer float64 `json:"timeFullSteer"`
}

// Corner is the steer input needed to drive a turn of the given radius.
type Corner struct {
	Radius float64 `json:"radius"`
	Steer  float64 `json:"steer"`
}

// SkidLevel is the bonus level reached after skidding for Time seconds;
// -1 means none.
type SkidLevel struct {
	Time  float64 `json:"time"`
	Level int     `json:"level"`
}

func handling(c *characteristics.Characteristics) (*Handling, error) {
	h := &Handling{}
	for _, steer := range steerInputs {
		radius, err := c.TurnRadius(steer)
		if err != nil {
			return nil, fmt.Errorf("turn radius at %g: %w", steer, err)
		}
		full, err := c.TimeFullSteer(steer)
		if err != nil {
			return nil, fmt.Errorf("time full steer at %g: %w", steer, err)
		}
		h.Steer = append(h.Steer, SteerSample{Steer: steer, TurnRadius: radius, TimeFullSteer: full})
	}

	for _, radius := range cornerRadii {
		steer, err := c.SteerForTurnRadius(radius)
		if errors.Is(err, interp.ErrNotMonotonic) {
			h.Corners = nil
			break
		}
		if err != nil {
			return nil, fmt.Errorf("steer for radius %g: %w", radius, err)
		}
		h.Corners = append(h.Corners, Corner{Radius: radius, Steer: steer})
	}

	skid := c.Skidding()
	for _, t := range skidTimes {
		h.SkidLevels = append(h.SkidLevels, SkidLevel{Time: t, Level: skid.BonusLevel(t)})
	}
	return h, nil
}

func writeReport(path string, stdout io.Writer, report Report) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// writeKeys lists every characteristic key by group, one per line.
func writeKeys(w io.Writer) error {
	for _, group := range schema.Groups() {
		if _, err := fmt.Fprintf(w, "[%s]\n", group); err != nil {
			return err
		}
		for _, k := range schema.InGroup(group) {
			if _, err := fmt.Fprintf(w, "  %-32s %s\n", k, k.Doc()); err != nil {
				return err
			}
		}
	}
	return nil
}

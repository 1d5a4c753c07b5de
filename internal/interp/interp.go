// Package interp implements piecewise-linear lookup tables used for
// steer-dependent kart characteristics such as turn radius.
package interp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyTable is returned when a table without control points is evaluated.
	ErrEmptyTable = errors.New("interpolation table has no control points")
	// ErrNotIncreasing is returned when a control point does not extend the table to the right.
	ErrNotIncreasing = errors.New("control point x values must be strictly increasing")
	// ErrNotMonotonic is returned by EvaluateInverse for tables whose y values turn around.
	ErrNotMonotonic = errors.New("control point y values are not monotonic")
	// ErrNonFinite is returned for NaN or infinite control points and NaN inputs.
	ErrNonFinite = errors.New("value is not finite")
)

// Point is a single (input, output) control point.
type Point struct {
	X float64
	Y float64
}

// Table is an ordered set of control points defining a continuous function.
// Points are kept sorted by X; the only mutation is appending to the right.
type Table struct {
	points []Point
}

// New builds a table from points already sorted by strictly increasing X.
func New(points ...Point) (*Table, error) {
	t := &Table{points: make([]Point, 0, len(points))}
	for _, p := range points {
		if err := t.Push(p.X, p.Y); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Push appends a control point. x must be greater than every x already
// stored and both coordinates must be finite.
func (t *Table) Push(x, y float64) error {
	if !finite(x) || !finite(y) {
		return fmt.Errorf("push (%g, %g): %w", x, y, ErrNonFinite)
	}
	if n := len(t.points); n > 0 && !(x > t.points[n-1].X) {
		return fmt.Errorf("push (%g, %g) after x=%g: %w", x, y, t.points[n-1].X, ErrNotIncreasing)
	}
	t.points = append(t.points, Point{X: x, Y: y})
	return nil
}

// Len returns the number of control points.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.points)
}

// Points returns a copy of the control points.
func (t *Table) Points() []Point {
	if t == nil {
		return nil
	}
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return &Table{points: t.Points()}
}

// Evaluate returns the interpolated output for x. Inputs outside the table's
// range, infinities included, are clamped to the first or last output. NaN
// has no position in the table and is rejected with ErrNonFinite.
func (t *Table) Evaluate(x float64) (float64, error) {
	if t.Len() == 0 {
		return 0, ErrEmptyTable
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("evaluate at %g: %w", x, ErrNonFinite)
	}
	pts := t.points
	n := len(pts)
	if x <= pts[0].X {
		return pts[0].Y, nil
	}
	if x >= pts[n-1].X {
		return pts[n-1].Y, nil
	}

	// first point with X >= x; 1 <= i <= n-1 here
	i := sort.Search(n, func(i int) bool { return pts[i].X >= x })
	p0, p1 := pts[i-1], pts[i]
	return p0.Y + (p1.Y-p0.Y)*(x-p0.X)/(p1.X-p0.X), nil
}

// EvaluateInverse returns the input that produces y, for tables whose outputs
// are monotonic. Values beyond the output range are clamped to the first or
// last input. Flat segments resolve to their leftmost input.
func (t *Table) EvaluateInverse(y float64) (float64, error) {
	if t.Len() == 0 {
		return 0, ErrEmptyTable
	}
	if math.IsNaN(y) {
		return 0, fmt.Errorf("inverse at %g: %w", y, ErrNonFinite)
	}
	pts := t.points
	n := len(pts)
	if n == 1 {
		return pts[0].X, nil
	}

	increasing := pts[n-1].Y >= pts[0].Y
	for i := 1; i < n; i++ {
		if increasing && pts[i].Y < pts[i-1].Y || !increasing && pts[i].Y > pts[i-1].Y {
			return 0, ErrNotMonotonic
		}
	}

	below := func(v float64) bool {
		if increasing {
			return v < y
		}
		return v > y
	}
	if !below(pts[0].Y) {
		return pts[0].X, nil
	}
	if below(pts[n-1].Y) {
		return pts[n-1].X, nil
	}

	i := sort.Search(n, func(i int) bool { return !below(pts[i].Y) })
	p0, p1 := pts[i-1], pts[i]
	if p1.Y == p0.Y {
		return p0.X, nil
	}
	return p0.X + (p1.X-p0.X)*(y-p0.Y)/(p1.Y-p0.Y), nil
}

// MarshalJSON encodes the table as [[x,y],...].
func (t *Table) MarshalJSON() ([]byte, error) {
	pairs := make([][2]float64, t.Len())
	for i, p := range t.Points() {
		pairs[i] = [2]float64{p.X, p.Y}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes [[x,y],...], enforcing increasing x.
func (t *Table) UnmarshalJSON(data []byte) error {
	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("decode interpolation table: %w", err)
	}
	fresh := &Table{points: make([]Point, 0, len(pairs))}
	for _, p := range pairs {
		if err := fresh.Push(p[0], p[1]); err != nil {
			return err
		}
	}
	t.points = fresh.points
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

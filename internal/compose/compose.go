// Package compose stacks characteristic layers into finalized records.
package compose

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/layer"
)

// ErrNoLayers is returned when Compose is called without layers.
var ErrNoLayers = errors.New("no layers to compose")

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Composer merges ordered layers into characteristics records.
type Composer struct {
	logger Logger

	composed metric.Int64Counter
	failed   metric.Int64Counter
}

// New creates a Composer. Uses the global OTel meter for metrics (no-op if
// not configured).
func New(logger Logger) (*Composer, error) {
	c := &Composer{logger: logger}
	m := meter()

	var err error
	c.composed, err = m.Int64Counter(
		"compose.records.composed",
		metric.WithDescription("Total characteristics records composed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating composed counter: %w", err)
	}

	c.failed, err = m.Int64Counter(
		"compose.records.failed",
		metric.WithDescription("Total characteristics records that failed to compose"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}

	return c, nil
}

// Compose applies layers in order and finalizes the result. Later layers
// override or adjust earlier ones; name identifies the record in errors,
// logs and metrics.
func (c *Composer) Compose(ctx context.Context, name string, layers ...*layer.Layer) (*characteristics.Characteristics, error) {
	start := time.Now()
	rec, err := c.compose(ctx, name, layers)

	attrs := metric.WithAttributes(attribute.String("kart", name))
	if err != nil {
		c.failed.Add(ctx, 1, attrs)
		c.logger.Error("compose failed", "kart", name, "layers", len(layers), "error", err)
		return nil, fmt.Errorf("compose %s: %w", name, err)
	}
	c.composed.Add(ctx, 1, attrs)
	c.logger.Debug("composed characteristics", "kart", name, "layers", len(layers), "duration", time.Since(start))
	return rec, nil
}

func (c *Composer) compose(ctx context.Context, name string, layers []*layer.Layer) (*characteristics.Characteristics, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	b := characteristics.NewBuilder()
	st := newState()

	for _, l := range layers {
		if err := ctx.Err(); err != nil {
			_ = b.Close()
			return nil, err
		}
		if err := st.apply(b, l); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("layer %s: %w", l.Name, err)
		}
		c.logger.Debug("applied layer", "kart", name, "layer", l.Name, "values", len(l.Values))
	}

	if err := st.finish(b); err != nil {
		_ = b.Close()
		return nil, err
	}

	rec, err := b.Finalize()
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	return rec, nil
}

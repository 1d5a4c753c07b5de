package compose

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/trackforge/kartchar/internal/compose"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

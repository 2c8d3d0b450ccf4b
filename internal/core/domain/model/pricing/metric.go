package pricing

import (
	"fmt"

	"agrilease/internal/pkg/errs"
)

// Metric is the unit a rate is quoted in.
type Metric int

const (
	// MetricUnknown represents an invalid or undefined metric.
	MetricUnknown Metric = iota

	// MetricHours quotes a price per equipment hour.
	MetricHours

	// MetricAcres quotes a price per acre worked.
	MetricAcres
)

// String returns the human-readable name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricHours:
		return "Hours"
	case MetricAcres:
		return "Acres"
	default:
		return "Unknown"
	}
}

// MetricFromString parses a metric name.
func MetricFromString(v string) (Metric, error) {
	switch v {
	case "Hours":
		return MetricHours, nil
	case "Acres":
		return MetricAcres, nil
	default:
		return MetricUnknown, errs.NewValueIsInvalidErrorWithCause("metric",
			fmt.Errorf("%q is not a valid pricing metric", v))
	}
}

// Validate checks if the Metric value is valid.
func (m Metric) Validate() error {
	if m != MetricHours && m != MetricAcres {
		return errs.NewValueIsInvalidErrorWithCause("metric",
			fmt.Errorf("%d is not a valid pricing metric", m))
	}
	return nil
}

// Rate is a price per unit of a metric, in minor currency units.
type Rate struct {
	metric       Metric
	pricePerUnit int64
}

// NewRate creates a Rate with a positive price.
func NewRate(metric Metric, pricePerUnit int64) (Rate, error) {
	if err := metric.Validate(); err != nil {
		return Rate{}, err
	}
	if pricePerUnit <= 0 {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("pricePerUnit",
			fmt.Errorf("%d is not greater than 0", pricePerUnit))
	}
	return Rate{metric: metric, pricePerUnit: pricePerUnit}, nil
}

// Metric returns the unit the rate is quoted in.
func (r Rate) Metric() Metric {
	return r.metric
}

// PricePerUnit returns the price per unit in minor currency units.
func (r Rate) PricePerUnit() int64 {
	return r.pricePerUnit
}

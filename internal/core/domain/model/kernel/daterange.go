package kernel

import (
	"fmt"
	"time"

	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

// ErrDateRangeIsNotConstructed is returned when attempting to use an
// improperly initialized DateRange.
var ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"date range must be created via NewDateRange constructor")

// DateRange is an inclusive interval of dates. It is used for order and
// lease periods. The zero value is invalid.
type DateRange struct { //nolint:recvcheck //using for validation
	from  time.Time
	to    time.Time
	guard guard.ConstructorGuard
}

// NewDateRange creates a DateRange. Both bounds are required and from must
// not be after to.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("to")
	}
	if from.After(to) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("from %s is after to %s", from.Format(time.DateOnly), to.Format(time.DateOnly)))
	}

	return DateRange{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// From returns the inclusive lower bound.
func (r DateRange) From() time.Time {
	return r.from
}

// To returns the inclusive upper bound.
func (r DateRange) To() time.Time {
	return r.to
}

// Contains reports whether date falls within the range, bounds included.
func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.from) && !date.After(r.to)
}

// Overlaps reports whether two ranges share at least one instant,
// bounds included.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.from.After(other.to) && !other.from.After(r.to)
}

// String returns a readable representation of the range.
func (r DateRange) String() string {
	return fmt.Sprintf("[%s .. %s]", r.from.Format(time.DateOnly), r.to.Format(time.DateOnly))
}

// Validate checks that the range was created via NewDateRange.
func (r DateRange) Validate() error {
	return r.guard.Validate(ErrDateRangeIsNotConstructed)
}

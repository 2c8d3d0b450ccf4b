package errs_test

import (
	"errors"
	"testing"

	"agrilease/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("deviceId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: deviceId, ID is: 123 (cause: record not found)",
			err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deviceType")

		assert.Equal(t, "value is required: deviceType", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("invalid_with_cause", func(t *testing.T) {
		cause := errors.New("bad format")
		err := errs.NewValueIsInvalidErrorWithCause("pincode", cause)

		assert.Equal(t, "value is invalid: pincode (cause: bad format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("InterestRaised", "Active")

	assert.Equal(t, "InterestRaised", err.From)
	assert.Equal(t, "Active", err.To)
	assert.Equal(t, "invalid transition: InterestRaised -> Active", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("user-1", "reject order")

	assert.Equal(t, "forbidden: actor user-1 may not reject order", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestPreconditionFailedError(t *testing.T) {
	err := errs.NewPreconditionFailedError("device is already leased")

	assert.Equal(t, "precondition failed: device is already leased", err.Error())
	assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("device", "abc")

	assert.Equal(t, "conflict: device abc was modified concurrently", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestSanitizeStripsNewlines(t *testing.T) {
	err := errs.NewObjectNotFoundError("note", "line1\nline2")

	assert.Contains(t, err.Error(), "line1 line2")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorsCanBeClassified(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{errs.NewObjectNotFoundError("order", "1"), errs.ErrObjectNotFound},
		{errs.NewValueIsRequiredError("deviceId"), errs.ErrValueIsRequired},
		{errs.NewValueIsInvalidError("period"), errs.ErrValueIsInvalid},
		{errs.NewInvalidTransitionError("Closed", "Active"), errs.ErrInvalidTransition},
		{errs.NewForbiddenError("u", "cancel"), errs.ErrForbidden},
		{errs.NewPreconditionFailedError("device not leased"), errs.ErrPreconditionFailed},
		{errs.NewConflictError("device", "1"), errs.ErrConflict},
	}

	for _, tc := range cases {
		require.ErrorIs(t, tc.err, tc.sentinel)
	}
}

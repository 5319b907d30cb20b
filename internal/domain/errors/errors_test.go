package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetails_KeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email is required")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.ErrorIs(t, errors.WithStack(detailed.WithDetails("again")), ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrEmailTaken)
	assert.Equal(t, "email is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestInvalidCredentials_DistinctButIdentical(t *testing.T) {
	unknown := errors.Wrap(ErrUnknownEmail, "lookup")
	mismatch := errors.Wrap(ErrPasswordMismatch, "check")

	assert.NotErrorIs(t, unknown, ErrPasswordMismatch)
	assert.NotErrorIs(t, mismatch, ErrUnknownEmail)
	assert.True(t, IsInvalidCredentials(unknown))
	assert.True(t, IsInvalidCredentials(mismatch))
	assert.False(t, IsInvalidCredentials(ErrUnauthorized))

	assert.Equal(t, ErrUnknownEmail.HTTPCode(), ErrPasswordMismatch.HTTPCode())
	assert.Equal(t, ErrUnknownEmail.ErrorCode(), ErrPasswordMismatch.ErrorCode())
	assert.Equal(t, ErrUnknownEmail.Message(), ErrPasswordMismatch.Message())
}

func TestDatabaseExecuteError_HidesDriverDetail(t *testing.T) {
	cause := errors.New("mongo: connection refused")
	err := NewDatabaseExecuteError(cause, "failed to find account")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Server Error", err.Message())
	assert.NotContains(t, err.Message(), "mongo")

	var appErr AppError
	require.ErrorAs(t, errors.Wrap(err, "outer"), &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

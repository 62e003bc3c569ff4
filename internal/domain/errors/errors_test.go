package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardErrors_ExactMessages(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrUnauthorizedAccess.HTTPCode())
	assert.Equal(t, "UnAuthorized Access", ErrUnauthorizedAccess.Message())
	assert.Equal(t, http.StatusForbidden, ErrForbiddenAccess.HTTPCode())
	assert.Equal(t, "Forbidden Access", ErrForbiddenAccess.Message())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrServiceNotFound.WrapMessage("lookup service")

	var appErr AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.True(t, stderrors.Is(wrapped, ErrServiceNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to insert booking")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.NotContains(t, err.Message(), "connection reset")
	assert.Contains(t, err.Error(), "failed to insert booking")
	assert.True(t, stderrors.Is(err, cause))
}

package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeInternalError, "db", "Database unavailable", http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrAlreadyApplied)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, "You have already applied to this job", appErr.Message)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	details := map[string]string{"email": "Invalid email format"}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}

func TestMarshalJSONOmitsCause(t *testing.T) {
	cause := errors.New("secret internals")
	appErr := Wrap(cause, CodeInternalError, "db", "Database unavailable", http.StatusInternalServerError)

	data, err := appErr.MarshalJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret internals")
	assert.Contains(t, string(data), "Database unavailable")
}

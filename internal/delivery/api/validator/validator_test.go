package validator

import (
	"testing"

	domainerrors "licensing/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidator_ReportsJSONFieldName(t *testing.T) {
	v := New()

	err := v.Validate(&loginRequest{Email: "a@example.com", Password: "short"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "field=password; rule=min", appErr.Details())
}

func TestValidator_Valid(t *testing.T) {
	require.NoError(t, New().Validate(&loginRequest{Email: "a@example.com", Password: "Password1"}))
}

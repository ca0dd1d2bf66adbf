package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"licensing/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrAlreadyPaid.WithPeriod("2025-03")

	assert.True(t, stderrors.Is(detailed, ErrAlreadyPaid))
	assert.True(t, errors.Is(errors.Wrap(detailed, "initiate rent"), ErrAlreadyPaid))
	assert.False(t, errors.Is(detailed, ErrContractRequired))
	assert.Equal(t, "period=2025-03", detailed.Details())
	assert.Equal(t, http.StatusConflict, detailed.HTTPCode())
}

func TestBaseError_ErrorIncludesDetails(t *testing.T) {
	assert.Equal(t, "input validation failed", ErrValidationFailed.Error())
	assert.Equal(t, "input validation failed: field=name", ErrValidationFailed.WithField("name").Error())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrPaymentGateway))
	assert.True(t, IsRetryable(errors.Wrap(ErrPaymentGateway.WithDetails("status=503"), "create order")))
	assert.True(t, IsRetryable(ErrPaymentTimeout))
	assert.False(t, IsRetryable(ErrAlreadyPaid))
	assert.False(t, IsRetryable(stderrors.New("plain")))
}

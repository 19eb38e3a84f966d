package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidation("bad"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("stock", "x"), CodeNotFound, http.StatusNotFound},
		{"invalid sale", NewInvalidSaleRequest("empty cart"), CodeInvalidSaleRequest, http.StatusUnprocessableEntity},
		{"insufficient stock", NewInsufficientStock("s1", 5, 2), CodeInsufficientStock, http.StatusUnprocessableEntity},
		{"invalid credentials", NewInvalidCredentials(), CodeInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"duplicate username", NewDuplicateUsername("admin"), CodeDuplicateUsername, http.StatusConflict},
		{"storage", NewStorage(errors.New("boom")), CodeStorage, http.StatusInternalServerError},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInsufficientStockDetails(t *testing.T) {
	err := NewInsufficientStock("stock-1", 150, 90)

	assert.Equal(t, "stock-1", err.Details["stock_id"])
	assert.Equal(t, int64(150), err.Details["requested"])
	assert.Equal(t, int64(90), err.Details["available"])
	assert.True(t, IsInsufficientStock(err))
}

func TestErrorChainExtraction(t *testing.T) {
	appErr := NewInsufficientStock("stock-1", 5, 2)
	wrapped := fmt.Errorf("commit sale: %w", appErr)

	extracted, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeInsufficientStock, extracted.Code)
	assert.True(t, IsCode(wrapped, CodeInsufficientStock))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(wrapped))

	assert.False(t, IsAppError(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("row missing")
	err := NewValidation("bad field").WithDetail("field", "name").WithCause(cause)

	assert.Equal(t, "name", err.Details["field"])
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_TypesAndPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
		check      func(error) bool
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest, IsValidation},
		{"name collision", NewNameCollisionError("#a_b", "a-b", "a_b"), ErrorTypeNameCollision, http.StatusBadRequest, IsNameCollision},
		{"not found", NewNotFoundError("event e1"), ErrorTypeNotFound, http.StatusNotFound, IsNotFound},
		{"configuration", NewConfigurationError("no templates"), ErrorTypeConfiguration, http.StatusInternalServerError, IsConfiguration},
		{"database", NewDatabaseError("UpdateItem", errors.New("boom")), ErrorTypeDatabase, http.StatusInternalServerError, IsDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)

			wrapped := fmt.Errorf("handler: %w", tt.err)
			assert.True(t, tt.check(wrapped))
			assert.Same(t, tt.err, GetAppError(wrapped))
		})
	}
}

func TestNewNameCollisionError_Details(t *testing.T) {
	err := NewNameCollisionError("#race_config", "race-config", "race_config")

	assert.Contains(t, err.Message, `"race-config"`)
	assert.Contains(t, err.Message, `"race_config"`)
	assert.Equal(t, "#race_config", err.Details["token"])
}

func TestAppError_CauseAndCode(t *testing.T) {
	cause := errors.New("throttled")
	err := NewDatabaseError("Scan", cause).WithCode("ThrottlingException").WithDetail("table", "events")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ThrottlingException", err.Code)
	assert.Equal(t, "events", err.Details["table"])
	assert.Contains(t, err.Error(), "throttled")
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vital-be/apperrors"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		err       error
		status    int
		field     string
		retryable bool
	}{
		{"validation", apperrors.Validation("amount", "amount must be greater than zero"), http.StatusBadRequest, "amount", false},
		{"permission", apperrors.Permission("nope"), http.StatusForbidden, "", false},
		{"not found", apperrors.NotFound("missing"), http.StatusNotFound, "", false},
		{"invalid state", apperrors.InvalidState("already approved"), http.StatusConflict, "", false},
		{"backend", apperrors.Wrap(errors.New("i/o timeout"), apperrors.KindBackendUnavailable, "could not load"), http.StatusServiceUnavailable, "", true},
		{"action", apperrors.New(apperrors.KindActionFailed, "failed"), http.StatusInternalServerError, "", true},
		{"decode", apperrors.New(apperrors.KindDecode, "bad document"), http.StatusBadGateway, "", false},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			if tt.field != "" {
				assert.Equal(t, tt.field, body["field"])
			} else {
				assert.NotContains(t, body, "field")
			}
			if _, ok := apperrors.As(tt.err); ok {
				assert.Equal(t, tt.retryable, body["retryable"])
			}
		})
	}
}

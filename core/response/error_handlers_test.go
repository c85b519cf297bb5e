package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/admingate/core/response"
	"github.com/dmitrymomot/admingate/core/router"
)

type customStatusError struct {
	message string
	status  int
}

func (e customStatusError) Error() string   { return e.message }
func (e customStatusError) StatusCode() int { return e.status }

func TestError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := response.Error(boom)(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, boom)
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "validation failed",
			err:        response.ErrValidationFailed.WithMessage("Password is required"),
			wantStatus: http.StatusUnprocessableEntity,
			wantJSON:   `{"code":"validation_failed","message":"Password is required"}`,
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("login: %w", response.ErrUnauthorized.WithMessage("Invalid password")),
			wantStatus: http.StatusUnauthorized,
			wantJSON:   `{"code":"unauthorized","message":"Invalid password"}`,
		},
		{
			name:       "plain error carries cause",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantJSON:   `{"code":"internal_server_error","message":"Internal Server Error","details":{"cause":"db down"}}`,
		},
		{
			name:       "router not found",
			err:        router.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantJSON:   `{"code":"not_found","message":"Not Found","details":{"cause":"not found"}}`,
		},
		{
			name:       "status code interface",
			err:        customStatusError{message: "gone", status: http.StatusNotFound},
			wantStatus: http.StatusNotFound,
			wantJSON:   `{"code":"not_found","message":"Not Found","details":{"cause":"gone"}}`,
		},
		{
			name:       "unknown status code is 500",
			err:        customStatusError{message: "tea", status: http.StatusTeapot},
			wantStatus: http.StatusInternalServerError,
			wantJSON:   `{"code":"internal_server_error","message":"Internal Server Error","details":{"cause":"tea"}}`,
		},
		{
			name:       "details preserved",
			err:        response.ErrBadRequest.WithDetails(map[string]any{"field": "password"}),
			wantStatus: http.StatusBadRequest,
			wantJSON:   `{"code":"bad_request","message":"Bad Request","details":{"field":"password"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			ctx := router.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil))

			response.JSONErrorHandler(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantJSON, w.Body.String())
		})
	}
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("copies do not share details", func(t *testing.T) {
		t.Parallel()

		base := response.ErrBadRequest.WithDetails(map[string]any{"field": "a"})
		withCause := base.WithError(errors.New("cause"))

		assert.NotContains(t, base.Details, "cause")
		assert.Equal(t, "cause", withCause.Details["cause"])
		assert.Equal(t, "a", withCause.Details["field"])
	})

	t.Run("status and json shape", func(t *testing.T) {
		t.Parallel()

		e := response.NewHTTPError(http.StatusInternalServerError, "internal_server_error").WithMessage("custom")
		assert.Equal(t, http.StatusInternalServerError, e.StatusCode())
		assert.Equal(t, "custom", e.Error())

		data, err := json.Marshal(e)
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":"internal_server_error","message":"custom"}`, string(data))
	})
}

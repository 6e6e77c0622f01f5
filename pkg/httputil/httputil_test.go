package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/logger"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWriteJSON_SetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusAccepted, Response{Data: "queued"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "queued", decodeResponse(t, rec).Data)
}

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/men-tee", nil)

	WriteError(rec, req, apperrors.NotFound("product", "men-tee"), testLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "product men-tee not found", resp.Error.Message)
}

func TestWriteError_WrappedSentinels(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("lookup: %w", apperrors.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("parse: %w", apperrors.ErrInvalidInput), http.StatusBadRequest, "INVALID_INPUT"},
		{fmt.Errorf("restock: %w", apperrors.ErrConflict), http.StatusConflict, "CONFLICT"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		WriteError(rec, req, tt.err, testLogger())

		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.code, decodeResponse(t, rec).Error.Code)
	}
}

func TestWriteError_InternalHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, errors.New("redis: connection refused"), testLogger())

	assert.NotContains(t, rec.Body.String(), "redis")
}

func TestWriteError_IncludesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx := logger.WithCorrelationID(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "corr-1")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	WriteError(rec, req, apperrors.InvalidInput("bad"), testLogger())

	assert.Equal(t, "corr-1", decodeResponse(t, rec).Error.RequestID)
}

func TestWriteValidationError(t *testing.T) {
	type body struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := validator.Validate(body{Email: "nope"})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	WriteValidationError(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "must be a valid email address", resp.Error.Fields["email"])
}

func TestWriteValidationError_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationError(rec, errors.New("decode request body: EOF"))

	resp := decodeResponse(t, rec)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	assert.Equal(t, "decode request body: EOF", resp.Error.Message)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&bad=x&zero=0", nil)

	v, err := QueryInt(req, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = QueryInt(req, "missing", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = QueryInt(req, "bad", 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = QueryInt(req, "zero", 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

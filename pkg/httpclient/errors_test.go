package httpclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func cmsError(status int, name, message string) string {
	return fmt.Sprintf(`{"data":null,"error":{"status":%d,"name":%q,"message":%q}}`, status, name, message)
}

func TestParseResponseError_CMSEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
		want     int
	}{
		{"not found", http.StatusNotFound, apperrors.ErrNotFound, http.StatusNotFound},
		{"bad request", http.StatusBadRequest, apperrors.ErrInvalidInput, http.StatusBadRequest},
		{"forbidden", http.StatusForbidden, apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"unavailable", http.StatusServiceUnavailable, apperrors.ErrServiceUnavail, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeResponse(tt.status, cmsError(tt.status, "ApplicationError", "nope"))
			err := ParseResponseError(resp, "content")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.want, apperrors.HTTPStatus(err))
		})
	}
}

func TestParseResponseError_HTTPUtilEnvelope(t *testing.T) {
	resp := makeResponse(http.StatusConflict, `{"error":{"code":"CONFLICT","message":"stale"}}`)
	err := ParseResponseError(resp, "content")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, "content: stale", appErr.Message)
}

func TestParseResponseError_UnknownStatusKeepsCode(t *testing.T) {
	resp := makeResponse(http.StatusTeapot, cmsError(http.StatusTeapot, "TeapotError", "short and stout"))
	err := ParseResponseError(resp, "content")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TeapotError", appErr.Code)
	assert.Equal(t, http.StatusTeapot, appErr.Status)
}

func TestParseResponseError_ServerError(t *testing.T) {
	resp := makeResponse(http.StatusInternalServerError, cmsError(500, "InternalServerError", "boom"))
	err := ParseResponseError(resp, "content")
	require.Error(t, err)

	var appErr *apperrors.AppError
	assert.False(t, errors.As(err, &appErr))
	assert.Contains(t, err.Error(), "content server error (500/InternalServerError): boom")
}

func TestParseResponseError_UnstructuredBody(t *testing.T) {
	resp := makeResponse(http.StatusBadGateway, "<html>bad gateway</html>")
	err := ParseResponseError(resp, "content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content returned status 502")
	assert.Contains(t, err.Error(), "bad gateway")
}

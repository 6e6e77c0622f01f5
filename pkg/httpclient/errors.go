package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
)

// UpstreamErrorResponse covers both error envelopes seen on the content path:
// the CMS's {"data":null,"error":{"status","name","message"}} and the
// {"error":{"code","message"}} body written by pkg/httputil.
type UpstreamErrorResponse struct {
	Error *struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ParseResponseError reads a non-2xx response and translates it into an
// AppError. The body is consumed and closed.
func ParseResponseError(resp *http.Response, upstream string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", upstream, resp.StatusCode, err)
	}

	var parsed UpstreamErrorResponse
	if json.Unmarshal(bodyBytes, &parsed) == nil && parsed.Error != nil {
		code := parsed.Error.Code
		if code == "" {
			code = parsed.Error.Name
		}
		return mapUpstreamError(resp.StatusCode, code, parsed.Error.Message, upstream)
	}

	return fmt.Errorf("%s returned status %d: %s", upstream, resp.StatusCode, string(bodyBytes))
}

func mapUpstreamError(status int, code, message, upstream string) error {
	qualifiedMsg := fmt.Sprintf("%s: %s", upstream, message)

	switch {
	case status == http.StatusNotFound:
		return apperrors.NotFound(upstream, "resource")
	case status == http.StatusBadRequest:
		return apperrors.InvalidInput(qualifiedMsg)
	case status == http.StatusConflict:
		return apperrors.Conflict(qualifiedMsg)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return apperrors.Unauthorized(qualifiedMsg)
	case status == http.StatusServiceUnavailable:
		return apperrors.ServiceUnavailable(qualifiedMsg)
	case status >= 500:
		return fmt.Errorf("%s server error (%d/%s): %s", upstream, status, code, message)
	default:
		return &apperrors.AppError{
			Code:    code,
			Message: qualifiedMsg,
			Status:  status,
		}
	}
}

package http

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/httputil"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/validator"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/content/internal/event"
)

// ChangePublisher publishes content change notifications.
type ChangePublisher interface {
	PublishContentChanged(ctx context.Context, data event.ContentChangedData) error
}

// webhookRequest is the body the CMS posts on entry and media lifecycle
// events.
type webhookRequest struct {
	Event string `json:"event" validate:"required,max=64"`
	Model string `json:"model" validate:"max=128"`
	UID   string `json:"uid" validate:"max=256"`
	Entry struct {
		ID int `json:"id"`
	} `json:"entry"`
}

// WebhookHandler receives CMS webhooks and turns them into content events.
type WebhookHandler struct {
	publisher ChangePublisher
	token     string
	logger    *slog.Logger
}

// NewWebhookHandler creates a webhook handler. An empty token accepts every
// caller.
func NewWebhookHandler(publisher ChangePublisher, token string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{publisher: publisher, token: token, logger: logger}
}

// Receive handles POST /webhooks/content.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		httputil.WriteError(w, r, apperrors.Unauthorized("invalid webhook token"), h.logger)
		return
	}

	var req webhookRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	model := req.Model
	if model == "" && strings.HasPrefix(req.Event, "media.") {
		model = "file"
	}

	data := event.ContentChangedData{
		Action:  req.Event,
		Model:   model,
		UID:     req.UID,
		EntryID: req.Entry.ID,
	}
	if err := h.publisher.PublishContentChanged(r.Context(), data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to publish content change",
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
		httputil.WriteError(w, r, apperrors.ServiceUnavailable("content change could not be published"), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{
		Data: map[string]any{"model": model, "tags": event.TagsForModel(model)},
	})
}

func (h *WebhookHandler) authorized(r *http.Request) bool {
	if h.token == "" {
		return true
	}
	got := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}

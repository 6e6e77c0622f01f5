package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/httputil"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/validator"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/service"
)

// Pages composes page views.
type Pages interface {
	LandingPage(ctx context.Context) *service.LandingView
	CollectionPage(ctx context.Context, rawSlug string, page int) (*service.CollectionView, error)
	ProductPage(ctx context.Context, rawSlug string, in service.SelectionInput) (*service.ProductView, error)
	Select(ctx context.Context, rawSlug string, in service.SelectionInput) (*service.SelectionView, error)
	RequestRestock(ctx context.Context, rawSlug string, in service.RestockInput) error
}

// PageHandler serves storefront page views as JSON.
type PageHandler struct {
	pages  Pages
	logger *slog.Logger
}

// NewPageHandler creates a page handler.
func NewPageHandler(pages Pages, logger *slog.Logger) *PageHandler {
	return &PageHandler{pages: pages, logger: logger}
}

// Landing handles GET /.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.pages.LandingPage(r.Context())})
}

// Collection handles GET /collections/{slug}.
func (h *PageHandler) Collection(w http.ResponseWriter, r *http.Request) {
	page, err := httputil.QueryInt(r, "page", 1)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	view, err := h.pages.CollectionPage(r.Context(), chi.URLParam(r, "slug"), page)
	if err != nil {
		h.writeError(w, r, "collection", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Product handles GET /products/{slug}.
func (h *PageHandler) Product(w http.ResponseWriter, r *http.Request) {
	in, err := selectionFromQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	view, err := h.pages.ProductPage(r.Context(), chi.URLParam(r, "slug"), in)
	if err != nil {
		h.writeError(w, r, "product", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Select handles POST /products/{slug}/selection.
func (h *PageHandler) Select(w http.ResponseWriter, r *http.Request) {
	var in service.SelectionInput
	if err := validator.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	view, err := h.pages.Select(r.Context(), chi.URLParam(r, "slug"), in)
	if err != nil {
		h.writeError(w, r, "product", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// RequestRestock handles POST /products/{slug}/restock-notifications.
func (h *PageHandler) RequestRestock(w http.ResponseWriter, r *http.Request) {
	var in service.RestockInput
	if err := validator.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := h.pages.RequestRestock(r.Context(), chi.URLParam(r, "slug"), in); err != nil {
		h.writeError(w, r, "product", err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{
		Data: map[string]any{"status": "accepted"},
	})
}

// writeError answers a path slug that does not parse with 404: such a page
// simply does not exist.
func (h *PageHandler) writeError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	var slugErr *domain.InvalidSlugError
	if errors.As(err, &slugErr) {
		err = apperrors.NotFound(resource, slugErr.Input)
	}
	httputil.WriteError(w, r, err, h.logger)
}

func selectionFromQuery(r *http.Request) (service.SelectionInput, error) {
	var (
		in  service.SelectionInput
		err error
	)
	if in.ColorID, err = httputil.QueryInt(r, "color", 0); err != nil {
		return in, err
	}
	if in.SizeID, err = httputil.QueryInt(r, "size", 0); err != nil {
		return in, err
	}
	if in.Quantity, err = httputil.QueryInt(r, "quantity", 0); err != nil {
		return in, err
	}
	return in, nil
}

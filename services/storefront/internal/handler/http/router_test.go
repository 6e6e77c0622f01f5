package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/errors"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/health"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/config"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/domain"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/services/storefront/internal/service"
)

type mockPages struct {
	mock.Mock
}

func (m *mockPages) LandingPage(ctx context.Context) *service.LandingView {
	return m.Called(ctx).Get(0).(*service.LandingView)
}

func (m *mockPages) CollectionPage(ctx context.Context, rawSlug string, page int) (*service.CollectionView, error) {
	args := m.Called(ctx, rawSlug, page)
	v, _ := args.Get(0).(*service.CollectionView)
	return v, args.Error(1)
}

func (m *mockPages) ProductPage(ctx context.Context, rawSlug string, in service.SelectionInput) (*service.ProductView, error) {
	args := m.Called(ctx, rawSlug, in)
	v, _ := args.Get(0).(*service.ProductView)
	return v, args.Error(1)
}

func (m *mockPages) Select(ctx context.Context, rawSlug string, in service.SelectionInput) (*service.SelectionView, error) {
	args := m.Called(ctx, rawSlug, in)
	v, _ := args.Get(0).(*service.SelectionView)
	return v, args.Error(1)
}

func (m *mockPages) RequestRestock(ctx context.Context, rawSlug string, in service.RestockInput) error {
	return m.Called(ctx, rawSlug, in).Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "development",
		LandingRevalidate:  60 * time.Second,
		ProductRevalidate:  300 * time.Second,
		RateLimitRPS:       100,
		RateLimitBurst:     100,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		PprofAllowedCIDRs:  []string{"127.0.0.1/32"},
	}
}

func newTestRouter(t *testing.T, pages Pages) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewRouter(ctx, testConfig(), NewPageHandler(pages, testLogger()), health.NewHandler(), testLogger())
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestLanding(t *testing.T) {
	pages := new(mockPages)
	pages.On("LandingPage", mock.Anything).Return(&service.LandingView{Blocks: []service.BlockView{}})

	rec := serve(newTestRouter(t, pages), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=60, stale-while-revalidate=60", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"blocks":[]`)
}

func TestCollection(t *testing.T) {
	pages := new(mockPages)
	pages.On("CollectionPage", mock.Anything, "men-t-shirts", 2).
		Return(&service.CollectionView{Title: "Men's T Shirts", Products: []service.ProductCard{}}, nil)

	rec := serve(newTestRouter(t, pages), http.MethodGet, "/collections/men-t-shirts?page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=300, stale-while-revalidate=300", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"title":"Men's T Shirts"`)
	pages.AssertExpectations(t)
}

func TestCollection_InvalidSlugIsNotFound(t *testing.T) {
	pages := new(mockPages)
	pages.On("CollectionPage", mock.Anything, "kids-t-shirts", 1).
		Return(nil, &domain.InvalidSlugError{Input: "kids-t-shirts", Reason: "unknown gender"})

	rec := serve(newTestRouter(t, pages), http.MethodGet, "/collections/kids-t-shirts", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestCollection_BadPage(t *testing.T) {
	rec := serve(newTestRouter(t, new(mockPages)), http.MethodGet, "/collections/men-t-shirts?page=zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProduct(t *testing.T) {
	pages := new(mockPages)
	pages.On("ProductPage", mock.Anything, "men-classic-tee", service.SelectionInput{ColorID: 11, SizeID: 3, Quantity: 2}).
		Return(&service.ProductView{Title: "Classic Tee - Blue"}, nil)

	rec := serve(newTestRouter(t, pages), http.MethodGet, "/products/men-classic-tee?color=11&size=3&quantity=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Classic Tee - Blue")
	pages.AssertExpectations(t)
}

func TestProduct_NotFound(t *testing.T) {
	pages := new(mockPages)
	pages.On("ProductPage", mock.Anything, "men-missing", service.SelectionInput{}).
		Return(nil, apperrors.NotFound("product", "men-missing"))
	pages.On("ProductPage", mock.Anything, "tee", service.SelectionInput{}).
		Return(nil, &domain.InvalidSlugError{Input: "tee"})

	router := newTestRouter(t, pages)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/products/men-missing", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/products/tee", "").Code)
}

func TestSelect(t *testing.T) {
	pages := new(mockPages)
	pages.On("Select", mock.Anything, "men-classic-tee", service.SelectionInput{SizeID: 1, Quantity: 2, AddToCart: true}).
		Return(&service.SelectionView{ColorID: 10, SizeID: 1, Quantity: 2, CartLine: &domain.CartLine{VariantID: 100, Quantity: 2}}, nil)

	rec := serve(newTestRouter(t, pages), http.MethodPost, "/products/men-classic-tee/selection",
		`{"size_id":1,"quantity":2,"add_to_cart":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"cart_line"`)
}

func TestSelect_Invalid(t *testing.T) {
	pages := new(mockPages)
	router := newTestRouter(t, pages)

	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/products/men-classic-tee/selection", `{"quantity":-1}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/products/men-classic-tee/selection", `not json`).Code)
	pages.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestRestock(t *testing.T) {
	pages := new(mockPages)
	pages.On("RequestRestock", mock.Anything, "men-classic-tee", service.RestockInput{ColorID: 10, SizeID: 2, Email: "a@example.com"}).Return(nil)

	rec := serve(newTestRouter(t, pages), http.MethodPost, "/products/men-classic-tee/restock-notifications",
		`{"color_id":10,"size_id":2,"email":"a@example.com"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	pages.AssertExpectations(t)
}

func TestRequestRestock_Errors(t *testing.T) {
	pages := new(mockPages)
	pages.On("RequestRestock", mock.Anything, "men-classic-tee", mock.Anything).Return(apperrors.Conflict("size is in stock"))
	router := newTestRouter(t, pages)

	rec := serve(router, http.MethodPost, "/products/men-classic-tee/restock-notifications", `{"color_id":10,"size_id":2,"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))

	rec = serve(router, http.MethodPost, "/products/men-classic-tee/restock-notifications", `{"color_id":10,"size_id":1,"email":"a@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_RateLimitsPosts(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1

	pages := new(mockPages)
	pages.On("Select", mock.Anything, mock.Anything, mock.Anything).Return(&service.SelectionView{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	router := NewRouter(ctx, cfg, NewPageHandler(pages, testLogger()), health.NewHandler(), testLogger())

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/products/men-tee/selection", `{}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodPost, "/products/men-tee/selection", `{}`).Code)
}

func TestRouter_HealthLive(t *testing.T) {
	rec := serve(newTestRouter(t, new(mockPages)), http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

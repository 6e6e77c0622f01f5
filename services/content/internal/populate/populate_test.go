package populate

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/logger"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capture runs target through Middleware(endpoint) and returns the query the
// next handler observed.
func capture(t *testing.T, endpoint Endpoint, target string) url.Values {
	t.Helper()
	var seen url.Values
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Middleware(endpoint, discardLogger())(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	return seen
}

func populateKeys(v url.Values) []string {
	var keys []string
	for k := range v {
		if strings.HasPrefix(k, "populate") {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestGraph_GlobalPaymentCardLogoRestrictedToURL(t *testing.T) {
	g, ok := Graph(Global)
	require.True(t, ok)

	logo, ok := g.Lookup("footer.payment_cards.logo")
	require.True(t, ok)
	assert.Equal(t, []string{"url"}, logo.Fields)
	assert.Empty(t, logo.Populate)
}

func TestMiddleware_GlobalAlwaysRestrictsLogo(t *testing.T) {
	targets := []string{
		"/api/global",
		"/api/global?populate=*",
		"/api/global?populate[footer][populate][payment_cards][populate][logo]=true",
		"/api/global?populate[footer][populate][payment_cards][populate][logo][fields][0]=formats",
	}
	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			q := capture(t, Global, target)

			assert.Equal(t,
				[]string{"url"},
				q["populate[footer][populate][payment_cards][populate][logo][fields][0]"])
			assert.NotContains(t, q, "populate")
			assert.NotContains(t, q, "populate[footer][populate][payment_cards][populate][logo]")
		})
	}
}

func TestMiddleware_GlobalGraph(t *testing.T) {
	q := capture(t, Global, "/api/global")

	assert.Equal(t, "true", q.Get("populate[banner]"))
	assert.Equal(t, "true", q.Get("populate[navbar][populate][items][populate][sections][populate][items]"))
	assert.Equal(t, "true", q.Get("populate[footer][populate][sections][populate][links]"))
	assert.Equal(t, "true", q.Get("populate[footer][populate][newsletter]"))
	assert.Len(t, populateKeys(q), 5)
}

func TestMiddleware_LandingPageGraph(t *testing.T) {
	q := capture(t, LandingPage, "/api/landing-page?populate[blocks]=*")

	grid := "populate[blocks][on][landing-page.images-grid][populate]"
	item := "populate[blocks][on][landing-page.image-item][populate]"

	assert.Equal(t, "url", q.Get(grid+"[left][populate][images][fields][0]"))
	assert.Equal(t, "true", q.Get(grid+"[left][populate][buttons]"))
	assert.Equal(t, "url", q.Get(grid+"[right][populate][images][fields][0]"))
	assert.Equal(t, "true", q.Get(grid+"[right][populate][buttons]"))
	assert.Equal(t, "url", q.Get(item+"[images][fields][0]"))
	assert.Equal(t, "true", q.Get(item+"[buttons]"))
	assert.NotContains(t, q, "populate[blocks]")
	assert.Len(t, populateKeys(q), 6)
}

func TestMiddleware_ProductGraphKeepsFilters(t *testing.T) {
	target := "/api/products?filters[slug][$eq]=basic-tee&filters[category][gender][$eq]=men" +
		"&pagination[page]=2&populate=*"
	q := capture(t, Product, target)

	assert.Equal(t, "basic-tee", q.Get("filters[slug][$eq]"))
	assert.Equal(t, "men", q.Get("filters[category][gender][$eq]"))
	assert.Equal(t, "2", q.Get("pagination[page]"))

	assert.NotContains(t, q, "populate")
	assert.Equal(t, "true", q.Get("populate[product_variants][populate][color]"))
	assert.Equal(t, "url", q.Get("populate[product_variants][populate][images][fields][0]"))
	assert.Equal(t, "true", q.Get("populate[product_variants][populate][sizes][populate][size]"))
	assert.Equal(t, "true", q.Get("populate[reviews]"))
	assert.Equal(t, "true", q.Get("populate[category]"))
	assert.Len(t, populateKeys(q), 5)
}

func TestMiddleware_LogsEndpoint(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter("content", "info", &buf)

	h := Middleware(Product, l)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Contains(t, buf.String(), `"msg":"populate middleware"`)
	assert.Contains(t, buf.String(), `"endpoint":"product"`)
}

func TestMiddleware_UnknownEndpointPanics(t *testing.T) {
	assert.Panics(t, func() { Middleware("reviews", discardLogger()) })
}

func TestGraph_ReturnsIndependentCopies(t *testing.T) {
	a, _ := Graph(Product)
	delete(a, "reviews")

	b, _ := Graph(Product)
	assert.Contains(t, b, "reviews")
}

func TestEndpoints_AllHaveGraphs(t *testing.T) {
	for _, e := range Endpoints() {
		_, ok := Graph(e)
		assert.True(t, ok, "endpoint %s", e)
	}
}

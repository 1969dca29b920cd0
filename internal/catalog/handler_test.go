package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripfinder/internal/filterstate"
	"tripfinder/internal/listing"
	"tripfinder/pkg/backend"
	"tripfinder/pkg/cache"
	"tripfinder/pkg/logger"
)

type fixedID string

func (f fixedID) SessionID() string { return string(f) }

func rawDepartures(n int) []listing.RawFixedDeparture {
	out := make([]listing.RawFixedDeparture, 0, n)
	for i := range n {
		cat := "Adventure"
		if i%2 == 1 {
			cat = "Pilgrimage"
		}
		out = append(out, listing.RawFixedDeparture{
			ID:       string(rune('a' + i)),
			Title:    "Trip " + string(rune('A'+i)),
			TourType: cat,
			Duration: "6N/7D",
			Price:    num(float64(12000 + i*1000)),
		})
	}
	return out
}

type testEnv struct {
	router  *gin.Engine
	backend *mockBackend
	store   *cache.MemoryCache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := new(mockBackend)
	store := cache.NewMemoryCache()
	svc := NewService(b, cache.NewMemoryCache(), 0, 100, logger.Nop{})
	h := NewCatalogHandler(svc, filterstate.CacheOpener(store, 0), fixedID("tab-new"), logger.Nop{})

	r := gin.New()
	h.RegisterRoutes(r)
	return &testEnv{router: r, backend: b, store: store}
}

func (e *testEnv) get(t *testing.T, target, sid string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sid != "" {
		req.Header.Set(SessionHeader, sid)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type fdView struct {
	State       ViewState                     `json:"state"`
	Filters     filterstate.FilterState       `json:"filters"`
	Page        listing.Page[json.RawMessage] `json:"page"`
	ScrollToTop bool                          `json:"scroll_to_top"`
	Retryable   bool                          `json:"retryable"`
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) fdView {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var v fdView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestFixedDeparturesHandlerIssuesSession(t *testing.T) {
	env := newTestEnv(t)
	env.backend.On("ListFixedDepartures", mock.Anything).Return(rawDepartures(3), nil)

	w := env.get(t, "/v1/fixed-departures", "")

	assert.Equal(t, "tab-new", w.Header().Get(SessionHeader))
	v := decodeView(t, w)
	assert.Equal(t, ViewOK, v.State)
	assert.Len(t, v.Page.Items, 3)
}

func TestFixedDeparturesHandlerPersistsSelections(t *testing.T) {
	env := newTestEnv(t)
	env.backend.On("ListFixedDepartures", mock.Anything).Return(rawDepartures(20), nil)

	v := decodeView(t, env.get(t, "/v1/fixed-departures?category=adventure&price=15k_25k", "tab1"))
	assert.Equal(t, "adventure", v.Filters.Category)
	assert.Equal(t, 1, v.Filters.Page)

	// a bare request restores the view
	v = decodeView(t, env.get(t, "/v1/fixed-departures", "tab1"))
	assert.Equal(t, "adventure", v.Filters.Category)
	assert.Equal(t, "15k_25k", v.Filters.Price)

	stored, err := env.store.Get(context.Background(), "session:tab1:fd_price")
	require.NoError(t, err)
	assert.Equal(t, "15k_25k", stored)
}

func TestFixedDeparturesHandlerPaging(t *testing.T) {
	env := newTestEnv(t)
	env.backend.On("ListFixedDepartures", mock.Anything).Return(rawDepartures(20), nil)

	v := decodeView(t, env.get(t, "/v1/fixed-departures?page=2", "tab1"))
	assert.Equal(t, 2, v.Page.CurrentPage)
	assert.True(t, v.ScrollToTop)

	v = decodeView(t, env.get(t, "/v1/fixed-departures?page=2", "tab1"))
	assert.False(t, v.ScrollToTop, "same page again")

	v = decodeView(t, env.get(t, "/v1/fixed-departures?sort=price_high&page=2", "tab1"))
	assert.Equal(t, 1, v.Page.CurrentPage, "a selector change resets the page")
}

func TestFixedDeparturesHandlerReset(t *testing.T) {
	env := newTestEnv(t)
	env.backend.On("ListFixedDepartures", mock.Anything).Return(rawDepartures(4), nil)

	decodeView(t, env.get(t, "/v1/fixed-departures?category=Adventure", "tab1"))
	require.Positive(t, env.store.Len())

	v := decodeView(t, env.get(t, "/v1/fixed-departures?reset=true", "tab1"))
	assert.Equal(t, filterstate.Default(), v.Filters)
	assert.Equal(t, 0, env.store.Len())
}

func TestFixedDeparturesHandlerValidation(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/v1/fixed-departures?price=cheap",
		"/v1/fixed-departures?sort=popular",
		"/v1/fixed-departures?page=two",
	} {
		w := env.get(t, target, "tab1")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	}
	env.backend.AssertNotCalled(t, "ListFixedDepartures", mock.Anything)
}

func TestFixedDeparturesHandlerEmptyVersusError(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.On("ListFixedDepartures", mock.Anything).Return(rawDepartures(4), nil)

		v := decodeView(t, env.get(t, "/v1/fixed-departures?q=nowhere", "tab1"))
		assert.Equal(t, ViewEmpty, v.State)
		assert.False(t, v.Retryable)
	})

	t.Run("error", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.On("ListFixedDepartures", mock.Anything).Return([]listing.RawFixedDeparture(nil), &backend.RemoteFetchError{StatusCode: 500})

		v := decodeView(t, env.get(t, "/v1/fixed-departures", "tab1"))
		assert.Equal(t, ViewError, v.State)
		assert.True(t, v.Retryable)
		assert.Empty(t, v.Page.Items)
	})
}

func TestPackagesHandlerRating(t *testing.T) {
	env := newTestEnv(t)
	env.backend.On("ListDestinations", mock.Anything, mock.Anything).Return([]listing.RawDestination{
		{ID: "d1", Name: "Goa"},
	}, nil)
	env.backend.On("ListPackages", mock.Anything, mock.Anything).Return([]listing.RawPackage{
		{ID: "p1", Title: "Kerala", Rating: num(4.9)},
		{ID: "p2", Title: "Ooty", Rating: num(3.1)},
	}, nil)

	v := decodeView(t, env.get(t, "/v1/packages?rating=4.5", "tab1"))

	assert.Equal(t, 2, v.Page.Range.Total)
	stored, err := env.store.Get(context.Background(), "session:tab1:pkg_rating")
	require.NoError(t, err)
	assert.Equal(t, "4.5", stored)
}

func TestFixedDepartureHandler(t *testing.T) {
	env := newTestEnv(t)
	env.backend.On("FixedDepartureBySlug", mock.Anything, "char-dham").Return(listing.RawFixedDeparture{
		ID: "f1", Slug: "char-dham", Price: num(21000),
		Departures: []listing.RawDepartureBatch{{Date: "2026-05-01", Seats: num(20), Status: "soldout"}},
	}, nil)
	env.backend.On("FixedDepartureBySlug", mock.Anything, "gone").Return(listing.RawFixedDeparture{}, &backend.RemoteFetchError{StatusCode: http.StatusNotFound})
	env.backend.On("FixedDepartureBySlug", mock.Anything, "down").Return(listing.RawFixedDeparture{}, &backend.RemoteFetchError{StatusCode: http.StatusBadGateway})

	w := env.get(t, "/v1/fixed-departures/char-dham", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rec listing.DepartureRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, listing.StatusSoldOut, rec.Departures[0].Urgency)
	assert.False(t, rec.Departures[0].CanBook)

	assert.Equal(t, http.StatusNotFound, env.get(t, "/v1/fixed-departures/gone", "").Code)

	w = env.get(t, "/v1/fixed-departures/down", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "REMOTE_FETCH_FAILED")
}

func TestFiltersHandlers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.store.Set(ctx, "session:tab1:pkg_filter", "Honeymoon", 0))

	w := env.get(t, "/v1/filters/packages", "tab1")
	require.Equal(t, http.StatusOK, w.Code)
	var st filterstate.FilterState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, "Honeymoon", st.Category)

	req := httptest.NewRequest(http.MethodDelete, "/v1/filters/packages", nil)
	req.Header.Set(SessionHeader, "tab1")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.store.Len())

	assert.Equal(t, http.StatusNotFound, env.get(t, "/v1/filters/hotels", "tab1").Code)
}

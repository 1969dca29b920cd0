package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripfinder/internal/filterstate"
	"tripfinder/internal/listing"
	"tripfinder/pkg/apperror"
	"tripfinder/pkg/backend"
	"tripfinder/pkg/idgen"
	"tripfinder/pkg/logger"
)

// SessionHeader carries the per-tab id. It is issued on the first request
// that lacks one and echoed back on every response.
const SessionHeader = "X-Session-ID"

type CatalogHandler struct {
	service *Service
	states  filterstate.Opener
	ids     idgen.Generator
	logger  logger.Logger
}

func NewCatalogHandler(s *Service, states filterstate.Opener, ids idgen.Generator, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: s,
		states:  states,
		ids:     ids,
		logger:  log,
	}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/v1/packages", h.PackagesHandler)
	router.GET("/v1/fixed-departures", h.FixedDeparturesHandler)
	router.GET("/v1/fixed-departures/:slug", h.FixedDepartureHandler)
	router.GET("/v1/filters/:context", h.GetFiltersHandler)
	router.DELETE("/v1/filters/:context", h.ResetFiltersHandler)
}

// PackagesHandler godoc
// @Summary      Browse destinations and packages
// @Description  Filters, sorts and paginates the merged destination and package list. Selections persist per X-Session-ID.
// @Tags         listings
// @Produce      json
// @Param        X-Session-ID header string false "Tab session id"
// @Param        q        query string false "Free text, matches name or location"
// @Param        category query string false "Category or all"
// @Param        price    query string false "0-1000, 1000-2500, 2500-5000, 5000+ or all"
// @Param        duration query string false "1-3, 4-6, 7-9, 10-12, 13+ or all"
// @Param        rating   query string false "Minimum rating or all"
// @Param        sort     query string false "default, price_low, price_high, duration_short, duration-asc, rating-desc"
// @Param        page     query int    false "Page number"
// @Param        reset    query bool   false "Clear all persisted selections first"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /v1/packages [get]
func (h *CatalogHandler) PackagesHandler(c *gin.Context) {
	state, scrolled, ok := h.session(c, listing.Packages)
	if !ok {
		return
	}

	view := h.service.BrowsePackages(c.Request.Context(), state)
	view.ScrollToTop = scrolled
	c.JSON(http.StatusOK, view)
}

// FixedDeparturesHandler godoc
// @Summary      Browse fixed departures
// @Description  Filters, sorts and paginates fixed departures. Selections persist per X-Session-ID.
// @Tags         listings
// @Produce      json
// @Param        X-Session-ID header string false "Tab session id"
// @Param        q        query string false "Free text, matches title or destination"
// @Param        category query string false "Tour type or all"
// @Param        price    query string false "under_15k, 15k_25k, above_25k or all"
// @Param        duration query string false "short, medium, long or all"
// @Param        sort     query string false "default, price_low, price_high, duration_short"
// @Param        page     query int    false "Page number"
// @Param        reset    query bool   false "Clear all persisted selections first"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /v1/fixed-departures [get]
func (h *CatalogHandler) FixedDeparturesHandler(c *gin.Context) {
	state, scrolled, ok := h.session(c, listing.FixedDepartures)
	if !ok {
		return
	}

	view := h.service.BrowseFixedDepartures(c.Request.Context(), state)
	view.ScrollToTop = scrolled
	c.JSON(http.StatusOK, view)
}

// FixedDepartureHandler godoc
// @Summary      Fixed departure detail
// @Tags         listings
// @Produce      json
// @Param        slug path string true "Departure slug"
// @Success      200 {object} listing.DepartureRecord
// @Failure      404 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /v1/fixed-departures/{slug} [get]
func (h *CatalogHandler) FixedDepartureHandler(c *gin.Context) {
	rec, err := h.service.FixedDeparture(c.Request.Context(), c.Param("slug"))
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetFiltersHandler godoc
// @Summary      Persisted selections of a listing page
// @Tags         filters
// @Produce      json
// @Param        context path string true "packages or fixed-departures"
// @Param        X-Session-ID header string false "Tab session id"
// @Success      200 {object} filterstate.FilterState
// @Router       /v1/filters/{context} [get]
func (h *CatalogHandler) GetFiltersHandler(c *gin.Context) {
	profile, ok := h.profile(c)
	if !ok {
		return
	}

	sess := filterstate.NewSession(h.adapter(c, profile), nil, h.logger)
	c.JSON(http.StatusOK, sess.Hydrate(c.Request.Context()))
}

// ResetFiltersHandler godoc
// @Summary      Clear the persisted selections of a listing page
// @Tags         filters
// @Produce      json
// @Param        context path string true "packages or fixed-departures"
// @Param        X-Session-ID header string false "Tab session id"
// @Success      200 {object} filterstate.FilterState
// @Router       /v1/filters/{context} [delete]
func (h *CatalogHandler) ResetFiltersHandler(c *gin.Context) {
	profile, ok := h.profile(c)
	if !ok {
		return
	}

	sess := filterstate.NewSession(h.adapter(c, profile), nil, h.logger)
	if err := sess.Reset(c.Request.Context()); err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.State())
}

func (h *CatalogHandler) profile(c *gin.Context) (listing.Profile, bool) {
	profile, ok := listing.ProfileByName(c.Param("context"))
	if !ok {
		sendError(c, apperror.NotFound("unknown listing context: "+c.Param("context")))
	}
	return profile, ok
}

func (h *CatalogHandler) sessionID(c *gin.Context) string {
	sid := c.GetHeader(SessionHeader)
	if sid == "" {
		sid = h.ids.SessionID()
	}
	c.Header(SessionHeader, sid)
	return sid
}

func (h *CatalogHandler) adapter(c *gin.Context, profile listing.Profile) filterstate.PersistenceAdapter {
	return h.states(h.sessionID(c), profile)
}

// session hydrates the tab's state and applies the request's query params to
// it. A param only counts as a change when it differs from the stored value,
// and any selector change sends the user back to page 1 regardless of page.
func (h *CatalogHandler) session(c *gin.Context, profile listing.Profile) (filterstate.FilterState, bool, bool) {
	ctx := c.Request.Context()

	scrolled := false
	sess := filterstate.NewSession(h.adapter(c, profile), func(int) { scrolled = true }, h.logger)
	current := sess.Hydrate(ctx)

	if c.Query("reset") == "true" {
		if err := sess.Reset(ctx); err != nil {
			h.logger.Warn("failed to reset filter state", logger.Field{Key: "err", Value: err})
		}
		current = sess.State()
	}

	// only the params in this request are validated; stored values were
	// validated when they were set
	candidate := listing.DefaultCriteria()
	setters := []struct {
		param string
		dst   *string
		apply func(context.Context, string) error
	}{
		{"q", &candidate.Query, sess.SetQuery},
		{"category", &candidate.Category, sess.SetCategory},
		{"price", &candidate.Price, sess.SetPrice},
		{"duration", &candidate.Duration, sess.SetDuration},
		{"rating", &candidate.Rating, sess.SetRating},
		{"sort", &candidate.Sort, sess.SetSort},
	}
	for _, s := range setters {
		if v, ok := c.GetQuery(s.param); ok {
			*s.dst = v
		}
	}

	if err := profile.Validate(candidate); err != nil {
		sendError(c, apperror.Validation(err.Error(), err))
		return filterstate.FilterState{}, false, false
	}

	page := 0
	if raw, ok := c.GetQuery("page"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			sendError(c, apperror.Validation("page must be a number", err))
			return filterstate.FilterState{}, false, false
		}
		page = n
	}

	changed := false
	for _, s := range setters {
		v, ok := c.GetQuery(s.param)
		if !ok || v == currentValue(current.Criteria, s.param) {
			continue
		}
		changed = true
		if err := s.apply(ctx, v); err != nil {
			h.logger.Warn("failed to save filter state", logger.Field{Key: "err", Value: err})
		}
	}

	if !changed && page != 0 {
		if err := sess.GoToPage(ctx, page); err != nil {
			h.logger.Warn("failed to save filter state", logger.Field{Key: "err", Value: err})
		}
	}

	return sess.State(), scrolled, true
}

func currentValue(c listing.Criteria, param string) string {
	switch param {
	case "q":
		return c.Query
	case "category":
		return c.Category
	case "price":
		return c.Price
	case "duration":
		return c.Duration
	case "rating":
		return c.Rating
	case "sort":
		return c.Sort
	}
	return ""
}

func sendError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		var rfe *backend.RemoteFetchError
		if errors.As(err, &rfe) {
			err = &apperror.AppError{
				Status:    http.StatusBadGateway,
				Code:      apperror.ErrorCodeRemoteFetch,
				Message:   "Could not reach the catalog",
				Retryable: true,
				Err:       err,
			}
		}
	}
	apperror.Send(c, err)
}

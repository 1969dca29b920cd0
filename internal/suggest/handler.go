package suggest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripfinder/pkg/apperror"
	"tripfinder/pkg/logger"
)

type SuggestHandler struct {
	service  Lookup
	debounce time.Duration
	logger   logger.Logger
}

func NewSuggestHandler(s Lookup, debounce time.Duration, log logger.Logger) *SuggestHandler {
	return &SuggestHandler{
		service:  s,
		debounce: debounce,
		logger:   log,
	}
}

func (h *SuggestHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/v1/suggestions", h.SuggestHandler)
	router.GET("/v1/suggestions/live", h.LiveHandler)
}

// SuggestHandler godoc
// @Summary      Search suggestions
// @Description  Merged, ranked suggestions from packages, fixed departures, destinations and holiday types
// @Tags         suggestions
// @Produce      json
// @Param        q   query     string  true  "Search text"
// @Success      200 {object} Response
// @Failure      502 {object} map[string]interface{}
// @Router       /v1/suggestions [get]
func (h *SuggestHandler) SuggestHandler(c *gin.Context) {
	resp, err := h.service.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func sendError(c *gin.Context, err error) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		err = &apperror.AppError{
			Status:    http.StatusBadGateway,
			Code:      apperror.ErrorCodeSuggestionFetch,
			Message:   "Suggestions are unavailable right now",
			Retryable: true,
			Err:       err,
		}
	}
	apperror.Send(c, err)
}

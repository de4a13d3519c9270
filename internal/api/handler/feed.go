package handler

import (
	"net/http"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler relays the upstream analytics feed.
type FeedHandler struct {
	feed   *service.FeedService
	logger *zap.Logger
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feed *service.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{feed: feed, logger: logger}
}

// Analytics handles GET /api/analytics. On success the decoded record array
// is relayed as-is; any configuration or upstream failure becomes a 500 with
// an {error} body, with no retry.
func (h *FeedHandler) Analytics(c *gin.Context) {
	records, err := h.feed.Fetch(c.Request.Context())
	if err != nil {
		h.logger.Error("analytics feed unavailable", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, records)
}

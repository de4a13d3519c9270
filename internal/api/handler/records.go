package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordsHandler serves the normalized record view for the dashboard table.
type RecordsHandler struct {
	feed     *service.FeedService
	view     *service.ViewService
	location *time.Location
	logger   *zap.Logger
}

// NewRecordsHandler creates a new RecordsHandler. location is the fixed
// display timezone used when a request opts into zoned rendering.
func NewRecordsHandler(feed *service.FeedService, view *service.ViewService, location *time.Location, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{feed: feed, view: view, location: location, logger: logger}
}

// Records handles GET /api/records.
//
// Query parameters:
//
//	sort=asc|desc  — date ordering, ascending by default
//	users=a,b      — restrict to the given users, empty means all
//	tz=fixed       — render display dates in the configured fixed timezone
func (h *RecordsHandler) Records(c *gin.Context) {
	records, err := h.feed.Fetch(c.Request.Context())
	if err != nil {
		h.logger.Error("analytics feed unavailable", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	opts := service.ViewOptions{
		Descending: c.Query("sort") == "desc",
	}
	if users := c.Query("users"); users != "" {
		opts.Users = strings.Split(users, ",")
	}
	if c.Query("tz") == "fixed" {
		opts.Location = h.location
	}

	rows := h.view.BuildView(records, opts)
	c.JSON(http.StatusOK, gin.H{
		"count": len(rows),
		"rows":  rows,
	})
}

// Users handles GET /api/users: the distinct user list for the filter menu.
func (h *RecordsHandler) Users(c *gin.Context) {
	records, err := h.feed.Fetch(c.Request.Context())
	if err != nil {
		h.logger.Error("analytics feed unavailable", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": h.view.Users(records)})
}

// Applications handles GET /api/applications: the distinct resolved
// application names across the feed.
func (h *RecordsHandler) Applications(c *gin.Context) {
	records, err := h.feed.Fetch(c.Request.Context())
	if err != nil {
		h.logger.Error("analytics feed unavailable", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": h.view.Applications(records)})
}

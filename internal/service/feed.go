package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/config"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
	"go.uber.org/zap"
)

// Upstream fetch failures. Configuration failures surface as
// *config.ConfigError from the URL validation instead.
var (
	ErrUpstreamStatus = errors.New("upstream returned non-2xx status")
	ErrUpstreamDecode = errors.New("upstream response is not valid feed JSON")
)

// FeedService fetches the upstream analytics feed. One GET per call, no
// retry, no caching: records live only for the fetch-render cycle that
// requested them.
type FeedService struct {
	cfg    config.UpstreamConfig
	client *http.Client
	logger *zap.Logger
}

// NewFeedService creates a FeedService for the configured upstream.
func NewFeedService(cfg config.UpstreamConfig, logger *zap.Logger) *FeedService {
	return &FeedService{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

// Fetch retrieves and decodes the upstream feed. The returned slice always
// holds the records in upstream order; a single-object payload becomes a
// one-record slice.
func (s *FeedService) Fetch(ctx context.Context) ([]models.Record, error) {
	if err := config.ValidateUpstreamURL(s.cfg.URL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("upstream fetch failed", zap.String("url", s.cfg.URL), zap.Error(err))
		return nil, fmt.Errorf("fetch upstream feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("upstream returned error status",
			zap.String("url", s.cfg.URL),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var payload models.FeedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamDecode, err)
	}

	s.logger.Debug("upstream feed fetched",
		zap.Int("records", len(payload.Output)),
		zap.Duration("latency", time.Since(start)))

	return payload.Output, nil
}

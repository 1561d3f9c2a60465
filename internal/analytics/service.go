// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package analytics

import (
	"context"
	"fmt"

	"github.com/tomtom215/vidtrends/internal/config"
	"github.com/tomtom215/vidtrends/internal/database"
	"github.com/tomtom215/vidtrends/internal/logging"
	"github.com/tomtom215/vidtrends/internal/metrics"
	"github.com/tomtom215/vidtrends/internal/models"
	"github.com/tomtom215/vidtrends/internal/validation"
)

// Store is the subset of *database.DB the service reads through.
type Store interface {
	QueryTrends(ctx context.Context, q database.TrendQuery) ([]models.AggregateRow, error)
	TopByMetric(ctx context.Context, metric models.Metric, offset, limit int) ([]models.VideoSummary, error)
	TopGrowth(ctx context.Context, limit int) ([]models.GrowthRow, error)
	TopEngagement(ctx context.Context, limit int) ([]models.EngagementRow, error)
	SamplesForVideos(ctx context.Context, videoIDs []string) ([]models.MetricSample, error)
}

// Fallbacks for zero APIConfig values.
const (
	fallbackPageSize     = 10
	fallbackMaxPageSize  = 100
	fallbackLimit        = 10
	fallbackMaxLimit     = 100
	fallbackMaxCompare   = 10
	fallbackMaxTrendRows = database.MaxTrendRows
)

// Service validates requests, runs exactly one store query per call and maps
// failures to a Kind. It is safe for concurrent use.
type Service struct {
	store Store
	cfg   config.APIConfig
}

// NewService creates a Service over store. Zero values in cfg fall back to the
// documented defaults.
func NewService(store Store, cfg config.APIConfig) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = fallbackPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = fallbackMaxPageSize
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = fallbackLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = fallbackMaxLimit
	}
	if cfg.MaxCompareVideos <= 0 {
		cfg.MaxCompareVideos = fallbackMaxCompare
	}
	if cfg.MaxTrendRows <= 0 || cfg.MaxTrendRows > database.MaxTrendRows {
		cfg.MaxTrendRows = fallbackMaxTrendRows
	}
	return &Service{store: store, cfg: cfg}
}

// GetTrends returns average counters per time bucket.
//
// An unknown video id is a valid empty result. An unfiltered query that finds
// no rows at all means the store is empty and is reported as KindNotFound.
func (s *Service) GetTrends(ctx context.Context, req TrendsRequest) (*models.TrendsResponse, error) {
	const op = "GetTrends"

	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, s.fail(ctx, invalidRequest(op, verr))
	}
	granularity, _ := models.ParseGranularity(req.Granularity)

	start, ok := parseDateBound(req.StartDate, false)
	if !ok {
		return nil, s.fail(ctx, InvalidArgument(op, "start_date must be RFC 3339 or YYYY-MM-DD",
			map[string]interface{}{"field": "start_date", "value": req.StartDate}))
	}
	end, ok := parseDateBound(req.EndDate, true)
	if !ok {
		return nil, s.fail(ctx, InvalidArgument(op, "end_date must be RFC 3339 or YYYY-MM-DD",
			map[string]interface{}{"field": "end_date", "value": req.EndDate}))
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, s.fail(ctx, InvalidArgument(op, "start_date must not be after end_date", nil))
	}

	rows, err := s.store.QueryTrends(ctx, database.TrendQuery{
		Granularity: granularity,
		VideoID:     req.VideoID,
		StartDate:   start,
		EndDate:     end,
		Limit:       s.cfg.MaxTrendRows,
	})
	if err != nil {
		return nil, s.fail(ctx, fromStoreError(op, err))
	}

	unfiltered := req.VideoID == "" && start == nil && end == nil
	if unfiltered && len(rows) == 0 {
		return nil, s.fail(ctx, NotFound(op, "no data found"))
	}

	return &models.TrendsResponse{
		Granularity: granularity,
		VideoID:     req.VideoID,
		Trends:      nonNil(rows),
	}, nil
}

// GetTopVideos returns one page of videos ranked by a counter of their latest sample.
func (s *Service) GetTopVideos(ctx context.Context, req TopVideosRequest) (*models.TopVideosResponse, error) {
	const op = "GetTopVideos"

	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, s.fail(ctx, invalidRequest(op, verr))
	}

	metric := models.MetricViews
	if req.Metric != "" {
		metric, _ = models.ParseMetric(req.Metric)
	}
	page := valueOr(req.Page, 1)
	pageSize := min(valueOr(req.PageSize, s.cfg.DefaultPageSize), s.cfg.MaxPageSize)
	offset := (page - 1) * pageSize

	// One extra row tells whether another page exists.
	rows, err := s.store.TopByMetric(ctx, metric, offset, pageSize+1)
	if err != nil {
		return nil, s.fail(ctx, fromStoreError(op, err))
	}

	hasMore := len(rows) > pageSize
	if hasMore {
		rows = rows[:pageSize]
	}

	return &models.TopVideosResponse{
		Metric: metric,
		Videos: nonNil(rows),
		Pagination: models.PaginationInfo{
			Page:     page,
			PageSize: pageSize,
			HasMore:  hasMore,
		},
	}, nil
}

// GetTopGrowth ranks videos by view growth over their history.
func (s *Service) GetTopGrowth(ctx context.Context, req LimitRequest) ([]models.GrowthRow, error) {
	const op = "GetTopGrowth"

	limit, err := s.limit(ctx, op, req)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.TopGrowth(ctx, limit)
	if err != nil {
		return nil, s.fail(ctx, fromStoreError(op, err))
	}
	return nonNil(rows), nil
}

// GetMostEngaging ranks videos by peak likes plus peak comments.
func (s *Service) GetMostEngaging(ctx context.Context, req LimitRequest) ([]models.EngagementRow, error) {
	const op = "GetMostEngaging"

	limit, err := s.limit(ctx, op, req)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.TopEngagement(ctx, limit)
	if err != nil {
		return nil, s.fail(ctx, fromStoreError(op, err))
	}
	return nonNil(rows), nil
}

// CompareVideos returns every sample of the listed videos in time order.
// Ids with no samples contribute nothing.
func (s *Service) CompareVideos(ctx context.Context, req CompareRequest) (*models.CompareResponse, error) {
	const op = "CompareVideos"

	ids := splitVideoIDs(req.VideoIDs)
	if len(ids) == 0 {
		return nil, s.fail(ctx, InvalidArgument(op, "ids must list at least one video id",
			map[string]interface{}{"field": "ids"}))
	}
	if len(ids) > s.cfg.MaxCompareVideos {
		return nil, s.fail(ctx, InvalidArgument(op,
			fmt.Sprintf("ids must list at most %d video ids", s.cfg.MaxCompareVideos),
			map[string]interface{}{"field": "ids", "count": len(ids)}))
	}
	for _, id := range ids {
		if verr := validation.ValidateVar("ids", id, "videoid"); verr != nil {
			return nil, s.fail(ctx, invalidRequest(op, verr))
		}
	}

	samples, err := s.store.SamplesForVideos(ctx, ids)
	if err != nil {
		return nil, s.fail(ctx, fromStoreError(op, err))
	}

	return &models.CompareResponse{
		VideoIDs: ids,
		Samples:  nonNil(samples),
	}, nil
}

// limit validates a LimitRequest and applies the default and the clamp.
func (s *Service) limit(ctx context.Context, op string, req LimitRequest) (int, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return 0, s.fail(ctx, invalidRequest(op, verr))
	}
	return min(valueOr(req.Limit, s.cfg.DefaultLimit), s.cfg.MaxLimit), nil
}

// fail logs e at the level its kind warrants and counts it.
func (s *Service) fail(ctx context.Context, e *Error) *Error {
	metrics.RecordAnalyticsError(e.Op, e.Kind.String())

	logger := logging.Ctx(ctx)
	switch e.Kind {
	case KindInvalidArgument, KindNotFound:
		logger.Debug().Str("op", e.Op).Str("kind", e.Kind.String()).Msg(e.Message)
	default:
		logger.Error().Err(e.Err).Str("op", e.Op).Str("kind", e.Kind.String()).Msg(e.Message)
	}
	return e
}

// invalidRequest converts a validation failure into a KindInvalidArgument error.
func invalidRequest(op string, verr *validation.RequestValidationError) *Error {
	return InvalidArgument(op, verr.Error(), verr.Details())
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

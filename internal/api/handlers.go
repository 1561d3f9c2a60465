// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/vidtrends/internal/analytics"
)

// Pinger reports whether the metric store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and the analytics endpoints
//   - handlers_health.go: health and probe endpoints
//   - handlers_helpers.go: response envelope and parameter parsing
type Handler struct {
	svc       *analytics.Service
	store     Pinger
	version   string
	startTime time.Time
}

// NewHandler creates a handler over the analytics service. store backs the
// health endpoints and may be nil, in which case the store reports as down.
func NewHandler(svc *analytics.Service, store Pinger, version string) *Handler {
	return &Handler{
		svc:       svc,
		store:     store,
		version:   version,
		startTime: time.Now(),
	}
}

// Trends handles trend aggregation requests
//
// @Summary Get metric trends over time
// @Description Averages views, likes, dislikes and comments per daily, ISO-weekly or monthly bucket, optionally for one video and a date window
// @Tags Trends
// @Produce json
// @Param granularity query string true "Bucket size (daily, weekly, monthly); aggregation is accepted as an alias"
// @Param video_id query string false "Restrict to one video"
// @Param start_date query string false "Inclusive window start (RFC 3339 or YYYY-MM-DD)"
// @Param end_date query string false "Inclusive window end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} models.APIResponse{data=models.TrendsResponse} "Trend buckets"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "No data found"
// @Failure 503 {object} models.APIResponse "Metric store unavailable"
// @Router /api/v1/trends [get]
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	resp, err := h.svc.GetTrends(r.Context(), analytics.TrendsRequest{
		Granularity: firstQueryValue(r, "granularity", "aggregation"),
		VideoID:     q.Get("video_id"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, resp, start)
}

// TopVideos handles top-by-metric ranking requests
//
// @Summary Get top videos by metric
// @Description Ranks videos by one counter of their most recent sample, paginated
// @Tags Videos
// @Produce json
// @Param metric query string false "views, likes, dislikes or comments" default(views)
// @Param page query int false "Page number, 1-based" default(1)
// @Param page_size query int false "Rows per page, clamped to the configured maximum" default(10)
// @Success 200 {object} models.APIResponse{data=models.TopVideosResponse} "One page of ranked videos"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Metric store unavailable"
// @Router /api/v1/videos/top [get]
func (h *Handler) TopVideos(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, err := optionalIntParam(r, "page")
	if err != nil {
		respondBadParam(w, "page", err)
		return
	}
	pageSize, err := optionalIntParam(r, "page_size")
	if err != nil {
		respondBadParam(w, "page_size", err)
		return
	}

	resp, err := h.svc.GetTopVideos(r.Context(), analytics.TopVideosRequest{
		Metric:   r.URL.Query().Get("metric"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, resp, start)
}

// TopGrowth handles view-growth ranking requests
//
// @Summary Get fastest growing videos
// @Description Ranks videos by the difference between their highest and lowest recorded view count
// @Tags Videos
// @Produce json
// @Param limit query int false "Number of videos, clamped to the configured maximum" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.GrowthRow} "Growth ranking"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Metric store unavailable"
// @Router /api/v1/videos/growth [get]
func (h *Handler) TopGrowth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := optionalIntParam(r, "limit")
	if err != nil {
		respondBadParam(w, "limit", err)
		return
	}

	rows, err := h.svc.GetTopGrowth(r.Context(), analytics.LimitRequest{Limit: limit})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, rows, start)
}

// MostEngaging handles engagement ranking requests
//
// @Summary Get most engaging videos
// @Description Ranks videos by peak likes plus peak comments
// @Tags Videos
// @Produce json
// @Param limit query int false "Number of videos, clamped to the configured maximum" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.EngagementRow} "Engagement ranking"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Metric store unavailable"
// @Router /api/v1/videos/engagement [get]
func (h *Handler) MostEngaging(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := optionalIntParam(r, "limit")
	if err != nil {
		respondBadParam(w, "limit", err)
		return
	}

	rows, err := h.svc.GetMostEngaging(r.Context(), analytics.LimitRequest{Limit: limit})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, rows, start)
}

// CompareVideos handles side-by-side comparison requests
//
// @Summary Compare videos
// @Description Returns every sample of the listed videos ordered by time, then video id
// @Tags Videos
// @Produce json
// @Param ids query string true "Comma-separated video ids"
// @Success 200 {object} models.APIResponse{data=models.CompareResponse} "Samples of the listed videos"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Metric store unavailable"
// @Router /api/v1/videos/compare [get]
func (h *Handler) CompareVideos(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp, err := h.svc.CompareVideos(r.Context(), analytics.CompareRequest{
		VideoIDs: r.URL.Query().Get("ids"),
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, resp, start)
}

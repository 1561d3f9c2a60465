// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/vidtrends/internal/config"
	"github.com/tomtom215/vidtrends/internal/database"
	"github.com/tomtom215/vidtrends/internal/models"
)

// fakeStore records the last call and returns canned results.
type fakeStore struct {
	mu sync.Mutex

	trends     []models.AggregateRow
	videos     []models.VideoSummary
	growth     []models.GrowthRow
	engagement []models.EngagementRow
	samples    []models.MetricSample
	err        error

	calls      int
	lastTrend  database.TrendQuery
	lastMetric models.Metric
	lastOffset int
	lastLimit  int
	lastIDs    []string
}

func (f *fakeStore) record() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeStore) QueryTrends(_ context.Context, q database.TrendQuery) ([]models.AggregateRow, error) {
	f.record()
	f.lastTrend = q
	return f.trends, f.err
}

func (f *fakeStore) TopByMetric(_ context.Context, metric models.Metric, offset, limit int) ([]models.VideoSummary, error) {
	f.record()
	f.lastMetric, f.lastOffset, f.lastLimit = metric, offset, limit
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.videos) {
		return []models.VideoSummary{}, nil
	}
	end := min(offset+limit, len(f.videos))
	return f.videos[offset:end], nil
}

func (f *fakeStore) TopGrowth(_ context.Context, limit int) ([]models.GrowthRow, error) {
	f.record()
	f.lastLimit = limit
	return f.growth, f.err
}

func (f *fakeStore) TopEngagement(_ context.Context, limit int) ([]models.EngagementRow, error) {
	f.record()
	f.lastLimit = limit
	return f.engagement, f.err
}

func (f *fakeStore) SamplesForVideos(_ context.Context, ids []string) ([]models.MetricSample, error) {
	f.record()
	f.lastIDs = ids
	return f.samples, f.err
}

func intPtr(v int) *int { return &v }

func newTestService(store Store) *Service {
	return NewService(store, config.APIConfig{
		DefaultPageSize:  10,
		MaxPageSize:      100,
		DefaultLimit:     10,
		MaxLimit:         100,
		MaxCompareVideos: 10,
		MaxTrendRows:     100,
	})
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := KindOf(err); got != want {
		t.Errorf("KindOf(%v) = %s, want %s", err, got, want)
	}
}

func TestNewService_Defaults(t *testing.T) {
	s := NewService(&fakeStore{}, config.APIConfig{MaxTrendRows: 5000})

	if s.cfg.DefaultPageSize != 10 || s.cfg.MaxPageSize != 100 {
		t.Errorf("page defaults = %d/%d, want 10/100", s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	}
	if s.cfg.DefaultLimit != 10 || s.cfg.MaxLimit != 100 {
		t.Errorf("limit defaults = %d/%d, want 10/100", s.cfg.DefaultLimit, s.cfg.MaxLimit)
	}
	if s.cfg.MaxCompareVideos != 10 {
		t.Errorf("MaxCompareVideos = %d, want 10", s.cfg.MaxCompareVideos)
	}
	if s.cfg.MaxTrendRows != database.MaxTrendRows {
		t.Errorf("MaxTrendRows = %d, want %d", s.cfg.MaxTrendRows, database.MaxTrendRows)
	}
}

func TestGetTrends(t *testing.T) {
	store := &fakeStore{trends: []models.AggregateRow{{Period: "2024-W03", SampleCount: 2}}}
	s := newTestService(store)

	resp, err := s.GetTrends(context.Background(), TrendsRequest{Granularity: " Weekly ", VideoID: "abc123"})
	if err != nil {
		t.Fatalf("GetTrends() error: %v", err)
	}
	if resp.Granularity != "weekly" || resp.VideoID != "abc123" || len(resp.Trends) != 1 {
		t.Errorf("response = %+v", resp)
	}
	if store.lastTrend.Granularity != models.GranularityWeekly {
		t.Errorf("store granularity = %q, want weekly", store.lastTrend.Granularity)
	}
	if store.lastTrend.Limit != 100 {
		t.Errorf("store limit = %d, want 100", store.lastTrend.Limit)
	}
}

func TestGetTrends_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		req  TrendsRequest
	}{
		{"missing granularity", TrendsRequest{}},
		{"hourly", TrendsRequest{Granularity: "hourly"}},
		{"bad video id", TrendsRequest{Granularity: "daily", VideoID: "a b"}},
		{"bad start date", TrendsRequest{Granularity: "daily", StartDate: "yesterday"}},
		{"bad end date", TrendsRequest{Granularity: "daily", EndDate: "2024-13-01"}},
		{"inverted window", TrendsRequest{Granularity: "daily", StartDate: "2024-02-01", EndDate: "2024-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			_, err := newTestService(store).GetTrends(context.Background(), tt.req)
			assertKind(t, err, KindInvalidArgument)
			if store.calls != 0 {
				t.Errorf("store called %d times for invalid input", store.calls)
			}
		})
	}
}

func TestGetTrends_DateWindow(t *testing.T) {
	store := &fakeStore{trends: []models.AggregateRow{}}
	s := newTestService(store)

	_, err := s.GetTrends(context.Background(), TrendsRequest{
		Granularity: "daily",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
	})
	if err != nil {
		t.Fatalf("GetTrends() error: %v", err)
	}

	q := store.lastTrend
	if q.StartDate == nil || !q.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v, want 2024-01-01T00:00:00Z", q.StartDate)
	}
	wantEnd := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Microsecond)
	if q.EndDate == nil || !q.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", q.EndDate, wantEnd)
	}
}

func TestGetTrends_NotFoundOnlyWhenUnfiltered(t *testing.T) {
	store := &fakeStore{trends: []models.AggregateRow{}}
	s := newTestService(store)
	ctx := context.Background()

	_, err := s.GetTrends(ctx, TrendsRequest{Granularity: "daily"})
	assertKind(t, err, KindNotFound)

	resp, err := s.GetTrends(ctx, TrendsRequest{Granularity: "daily", VideoID: "unknown"})
	if err != nil {
		t.Fatalf("filtered GetTrends() error: %v", err)
	}
	if resp.Trends == nil || len(resp.Trends) != 0 {
		t.Errorf("filtered trends = %#v, want empty slice", resp.Trends)
	}

	if _, err := s.GetTrends(ctx, TrendsRequest{Granularity: "daily", StartDate: "2030-01-01"}); err != nil {
		t.Errorf("windowed GetTrends() error = %v, want empty result", err)
	}
}

func TestGetTopVideos_Pagination(t *testing.T) {
	videos := make([]models.VideoSummary, 25)
	for i := range videos {
		videos[i] = models.VideoSummary{Rank: i + 1, VideoID: fmt.Sprintf("vid%02d", i)}
	}
	store := &fakeStore{videos: videos}
	s := newTestService(store)
	ctx := context.Background()

	tests := []struct {
		page     int
		wantLen  int
		wantMore bool
		wantFrom string
	}{
		{1, 10, true, "vid00"},
		{2, 10, true, "vid10"},
		{3, 5, false, "vid20"},
		{4, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			resp, err := s.GetTopVideos(ctx, TopVideosRequest{Page: intPtr(tt.page), PageSize: intPtr(10)})
			if err != nil {
				t.Fatalf("GetTopVideos() error: %v", err)
			}
			if len(resp.Videos) != tt.wantLen {
				t.Errorf("len(videos) = %d, want %d", len(resp.Videos), tt.wantLen)
			}
			if resp.Pagination.HasMore != tt.wantMore {
				t.Errorf("has_more = %v, want %v", resp.Pagination.HasMore, tt.wantMore)
			}
			if tt.wantLen > 0 && resp.Videos[0].VideoID != tt.wantFrom {
				t.Errorf("first video = %s, want %s", resp.Videos[0].VideoID, tt.wantFrom)
			}
			if store.lastOffset != (tt.page-1)*10 || store.lastLimit != 11 {
				t.Errorf("store offset/limit = %d/%d, want %d/11", store.lastOffset, store.lastLimit, (tt.page-1)*10)
			}
		})
	}
}

func TestGetTopVideos_DefaultsAndClamp(t *testing.T) {
	store := &fakeStore{}
	s := newTestService(store)
	ctx := context.Background()

	resp, err := s.GetTopVideos(ctx, TopVideosRequest{})
	if err != nil {
		t.Fatalf("GetTopVideos() error: %v", err)
	}
	if resp.Metric != "views" || resp.Pagination.Page != 1 || resp.Pagination.PageSize != 10 {
		t.Errorf("defaults = metric %s page %d size %d, want views 1 10", resp.Metric, resp.Pagination.Page, resp.Pagination.PageSize)
	}
	if store.lastMetric != models.MetricViews {
		t.Errorf("store metric = %s, want views", store.lastMetric)
	}

	resp, err = s.GetTopVideos(ctx, TopVideosRequest{Metric: "likes", PageSize: intPtr(5000)})
	if err != nil {
		t.Fatalf("GetTopVideos() error: %v", err)
	}
	if resp.Pagination.PageSize != 100 || store.lastLimit != 101 {
		t.Errorf("clamped page size = %d (store limit %d), want 100 (101)", resp.Pagination.PageSize, store.lastLimit)
	}
	if store.lastMetric != models.MetricLikes {
		t.Errorf("store metric = %s, want likes", store.lastMetric)
	}
}

func TestGetTopVideos_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		req  TopVideosRequest
	}{
		{"zero page", TopVideosRequest{Page: intPtr(0)}},
		{"negative page", TopVideosRequest{Page: intPtr(-3)}},
		{"zero page size", TopVideosRequest{PageSize: intPtr(0)}},
		{"unknown metric", TopVideosRequest{Metric: "shares"}},
		{"page too large", TopVideosRequest{Page: intPtr(2_000_000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			_, err := newTestService(store).GetTopVideos(context.Background(), tt.req)
			assertKind(t, err, KindInvalidArgument)
			if store.calls != 0 {
				t.Errorf("store called %d times for invalid input", store.calls)
			}
		})
	}
}

func TestLimitOperations(t *testing.T) {
	store := &fakeStore{
		growth:     []models.GrowthRow{{Rank: 1, VideoID: "a", Growth: 50}},
		engagement: []models.EngagementRow{{Rank: 1, VideoID: "a", Engagement: 29}},
	}
	s := newTestService(store)
	ctx := context.Background()

	tests := []struct {
		name      string
		req       LimitRequest
		wantLimit int
	}{
		{"default", LimitRequest{}, 10},
		{"explicit", LimitRequest{Limit: intPtr(3)}, 3},
		{"clamped", LimitRequest{Limit: intPtr(1000)}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			growth, err := s.GetTopGrowth(ctx, tt.req)
			if err != nil {
				t.Fatalf("GetTopGrowth() error: %v", err)
			}
			if store.lastLimit != tt.wantLimit || len(growth) != 1 {
				t.Errorf("growth limit = %d, want %d", store.lastLimit, tt.wantLimit)
			}

			engagement, err := s.GetMostEngaging(ctx, tt.req)
			if err != nil {
				t.Fatalf("GetMostEngaging() error: %v", err)
			}
			if store.lastLimit != tt.wantLimit || len(engagement) != 1 {
				t.Errorf("engagement limit = %d, want %d", store.lastLimit, tt.wantLimit)
			}
		})
	}

	_, err := s.GetTopGrowth(ctx, LimitRequest{Limit: intPtr(0)})
	assertKind(t, err, KindInvalidArgument)
	_, err = s.GetMostEngaging(ctx, LimitRequest{Limit: intPtr(-1)})
	assertKind(t, err, KindInvalidArgument)
}

func TestCompareVideos(t *testing.T) {
	store := &fakeStore{samples: []models.MetricSample{{VideoID: "abc123"}}}
	s := newTestService(store)

	resp, err := s.CompareVideos(context.Background(), CompareRequest{VideoIDs: " abc123, ,def456,abc123,, ghi789 "})
	if err != nil {
		t.Fatalf("CompareVideos() error: %v", err)
	}
	want := []string{"abc123", "def456", "ghi789"}
	if strings.Join(store.lastIDs, ",") != strings.Join(want, ",") {
		t.Errorf("store ids = %v, want %v", store.lastIDs, want)
	}
	if strings.Join(resp.VideoIDs, ",") != strings.Join(want, ",") || len(resp.Samples) != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestCompareVideos_InvalidArguments(t *testing.T) {
	eleven := make([]string, 11)
	for i := range eleven {
		eleven[i] = fmt.Sprintf("v%d", i)
	}

	tests := []struct {
		name string
		ids  string
	}{
		{"empty", ""},
		{"only separators", " , ,, "},
		{"too many", strings.Join(eleven, ",")},
		{"injection attempt", "abc123,x' OR '1'='1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			_, err := newTestService(store).CompareVideos(context.Background(), CompareRequest{VideoIDs: tt.ids})
			assertKind(t, err, KindInvalidArgument)
			if store.calls != 0 {
				t.Errorf("store called %d times for invalid input", store.calls)
			}
		})
	}
}

func TestCompareVideos_DuplicatesCountOnce(t *testing.T) {
	store := &fakeStore{}
	s := newTestService(store)

	// Ten distinct ids repeated twice stays within the limit.
	ids := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		ids = append(ids, fmt.Sprintf("v%d", i%10))
	}
	if _, err := s.CompareVideos(context.Background(), CompareRequest{VideoIDs: strings.Join(ids, ",")}); err != nil {
		t.Fatalf("CompareVideos() error: %v", err)
	}
	if len(store.lastIDs) != 10 {
		t.Errorf("len(ids) = %d, want 10", len(store.lastIDs))
	}
}

func TestStoreErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"store unavailable", fmt.Errorf("trends: %w", database.ErrStoreUnavailable), KindUpstreamUnavailable},
		{"deadline", context.DeadlineExceeded, KindUpstreamUnavailable},
		{"canceled", context.Canceled, KindUpstreamUnavailable},
		{"query fault", errors.New(`failed to query trends: Parser Error: syntax error at or near "SELEC"`), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(&fakeStore{err: tt.err})

			_, err := s.GetTrends(context.Background(), TrendsRequest{Granularity: "daily"})
			assertKind(t, err, tt.want)
			if !errors.Is(err, tt.err) {
				t.Errorf("error chain lost the store error: %v", err)
			}

			var svcErr *Error
			if !errors.As(err, &svcErr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if strings.Contains(svcErr.Message, "SELEC") {
				t.Errorf("client message leaks store text: %q", svcErr.Message)
			}
			if svcErr.Op != "GetTrends" {
				t.Errorf("Op = %q, want GetTrends", svcErr.Op)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf(plain) = %s, want internal", got)
	}
	wrapped := fmt.Errorf("handler: %w", NotFound("GetTrends", "no data found"))
	if got := KindOf(wrapped); got != KindNotFound {
		t.Errorf("KindOf(wrapped) = %s, want not_found", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInternal, "internal"},
		{KindInvalidArgument, "invalid_argument"},
		{KindNotFound, "not_found"},
		{KindUpstreamUnavailable, "upstream_unavailable"},
		{Kind(99), "internal"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	e := Internal("GetTopGrowth", errors.New("boom"))
	if got := e.Error(); got != "GetTopGrowth: internal error while processing the request: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(e, e.Err) {
		t.Error("Unwrap() does not expose the cause")
	}

	plain := InvalidArgument("", "page must be at least 1", nil)
	if plain.Error() != "page must be at least 1" {
		t.Errorf("Error() = %q", plain.Error())
	}
}

func TestParseDateBound(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		end    bool
		want   *time.Time
		wantOK bool
	}{
		{"empty", "", false, nil, true},
		{"date start", "2024-03-10", false, ptrTime(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)), true},
		{"date end", "2024-03-10", true, ptrTime(time.Date(2024, 3, 10, 23, 59, 59, 999999000, time.UTC)), true},
		{"rfc3339 offset", "2024-03-10T12:00:00+02:00", true, ptrTime(time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)), true},
		{"garbage", "last week", false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDateBound(tt.value, tt.end)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got = %v, want %v", got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Errorf("got = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

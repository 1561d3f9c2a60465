// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type pageRequest struct {
	Metric   string `query:"metric" validate:"required,metric"`
	Page     int    `query:"page" validate:"min=1"`
	PageSize int    `query:"page_size" validate:"min=1"`
}

type trendRequest struct {
	Granularity string `query:"granularity" validate:"required,granularity"`
	VideoID     string `query:"video_id" validate:"omitempty,videoid"`
	Limit       int    `query:"limit" validate:"gte=0"`
}

type compareRequest struct {
	IDs []string `query:"ids" validate:"min=1,max=3,dive,videoid"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"top videos", &pageRequest{Metric: "views", Page: 1, PageSize: 20}},
		{"dislikes metric", &pageRequest{Metric: "dislikes", Page: 3, PageSize: 1}},
		{"daily trend", &trendRequest{Granularity: "daily"}},
		{"weekly trend for one video", &trendRequest{Granularity: "weekly", VideoID: "dQw4w9WgXcQ", Limit: 10}},
		{"monthly trend", &trendRequest{Granularity: "monthly", VideoID: "video_001"}},
		{"compare", &compareRequest{IDs: []string{"a", "b-c", "D_9"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if verr := ValidateStruct(tt.input); verr != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", verr)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing metric",
			input:     &pageRequest{Page: 1, PageSize: 1},
			wantField: "metric",
			wantTag:   "required",
			wantMsg:   "metric is required",
		},
		{
			name:      "unknown metric",
			input:     &pageRequest{Metric: "shares", Page: 1, PageSize: 1},
			wantField: "metric",
			wantTag:   "metric",
			wantMsg:   "metric must be one of: views, likes, dislikes, comments",
		},
		{
			name:      "zero page",
			input:     &pageRequest{Metric: "views", Page: 0, PageSize: 1},
			wantField: "page",
			wantTag:   "min",
			wantMsg:   "page must be at least 1",
		},
		{
			name:      "negative page size",
			input:     &pageRequest{Metric: "views", Page: 1, PageSize: -5},
			wantField: "page_size",
			wantTag:   "min",
			wantMsg:   "page_size must be at least 1",
		},
		{
			name:      "hourly granularity",
			input:     &trendRequest{Granularity: "hourly"},
			wantField: "granularity",
			wantTag:   "granularity",
			wantMsg:   "granularity must be one of: daily, weekly, monthly",
		},
		{
			name:      "video id with spaces",
			input:     &trendRequest{Granularity: "daily", VideoID: "bad id"},
			wantField: "video_id",
			wantTag:   "videoid",
		},
		{
			name:      "negative limit",
			input:     &trendRequest{Granularity: "daily", Limit: -1},
			wantField: "limit",
			wantTag:   "gte",
			wantMsg:   "limit must be greater than or equal to 0",
		},
		{
			name:      "too many ids",
			input:     &compareRequest{IDs: []string{"a", "b", "c", "d"}},
			wantField: "ids",
			wantTag:   "max",
			wantMsg:   "ids must contain at most 3 items",
		},
		{
			name:      "no ids",
			input:     &compareRequest{IDs: []string{}},
			wantField: "ids",
			wantTag:   "min",
			wantMsg:   "ids must contain at least 1 items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}

			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

// ===================================================================================================
// ValidateVar Tests
// ===================================================================================================

func TestValidateVar(t *testing.T) {
	if verr := ValidateVar("ids", "dQw4w9WgXcQ", "videoid"); verr != nil {
		t.Errorf("ValidateVar() unexpected error: %v", verr)
	}

	verr := ValidateVar("ids", "a,b", "videoid")
	if verr == nil {
		t.Fatal("ValidateVar() expected error for comma in id")
	}
	if got := verr.Errors()[0].Field(); got != "ids" {
		t.Errorf("Field() = %q, want ids", got)
	}
	if !strings.HasPrefix(verr.Error(), "ids must be 1-64 characters") {
		t.Errorf("Error() = %q, want ids prefix", verr.Error())
	}

	long := strings.Repeat("x", 65)
	if ValidateVar("video_id", long, "videoid") == nil {
		t.Error("ValidateVar() expected error for 65 character id")
	}
}

// ===================================================================================================
// Details Tests
// ===================================================================================================

func TestDetails_SingleError(t *testing.T) {
	verr := ValidateStruct(&pageRequest{Metric: "views", Page: 0, PageSize: 1})
	if verr == nil {
		t.Fatal("expected error")
	}

	details := verr.Details()
	if details["field"] != "page" {
		t.Errorf("details[field] = %v, want page", details["field"])
	}
	if details["tag"] != "min" {
		t.Errorf("details[tag] = %v, want min", details["tag"])
	}
}

func TestDetails_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&pageRequest{Metric: "", Page: 0, PageSize: 0})
	if verr == nil {
		t.Fatal("expected error")
	}
	if len(verr.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(verr.Errors()))
	}

	fields, ok := verr.Details()["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("details[fields] has type %T", verr.Details()["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("len(fields) = %d, want 3", len(fields))
	}

	msg := verr.Error()
	for _, part := range []string{"metric is required", "page must be at least 1", "page_size must be at least 1"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q, want %q", verr.Error(), "validation failed")
	}
}

// ABOUTME: Tests for the voice-of-share handler
// ABOUTME: Verifies aggregation delegation and breakdown mapping

package handlers

import (
	"context"
	"testing"

	"reputraq-api/api/dto/requests"
	"reputraq-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
)

func TestVoiceShareHandler_RegisterRoutes(t *testing.T) {
	handler := NewVoiceShareHandler(&mockVoiceShareService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/voice-of-share"] == nil || openapi.Paths["/voice-of-share"].Post == nil {
		t.Fatal("POST /voice-of-share endpoint not registered")
	}
}

func TestVoiceShareHandler_Aggregate_MapsResult(t *testing.T) {
	var gotCount int

	service := &mockVoiceShareService{
		totalFunc: func(ctx context.Context, items []domain.ContentItem) domain.VoiceOfShareResult {
			gotCount = len(items)
			return domain.VoiceOfShareResult{
				TotalVoiceOfShare:   12_000,
				AverageVoiceOfShare: 6000,
				ArticleCount:        2,
				Breakdown: []domain.TierBreakdown{
					{Tier: "1M-5M", ArticleCount: 1, TotalReach: 8000},
					{Tier: "Under 10K", ArticleCount: 1, TotalReach: 4000},
				},
			}
		},
	}

	handler := NewVoiceShareHandler(service)
	input := &VoiceOfShareInput{
		Body: requests.VoiceOfShareRequest{
			Items: []requests.ContentItemRequest{
				{ID: "a", SourceName: "Example News"},
				{ID: "b", SourceName: "Other News"},
			},
		},
	}

	output, err := handler.Aggregate(context.Background(), input)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if gotCount != 2 {
		t.Errorf("service received %d items, want 2", gotCount)
	}
	if output.Body.TotalVoiceOfShare != 12_000 || output.Body.ArticleCount != 2 {
		t.Errorf("rollup not mapped: %+v", output.Body)
	}
	if len(output.Body.Breakdown) != 2 || output.Body.Breakdown[0].Tier != "1M-5M" {
		t.Errorf("breakdown not mapped: %+v", output.Body.Breakdown)
	}
}

func TestVoiceShareHandler_Aggregate_EmptyInput(t *testing.T) {
	handler := NewVoiceShareHandler(&mockVoiceShareService{})
	input := &VoiceOfShareInput{Body: requests.VoiceOfShareRequest{}}

	output, err := handler.Aggregate(context.Background(), input)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if output.Body.TotalVoiceOfShare != 0 || output.Body.ArticleCount != 0 {
		t.Errorf("empty input should yield zeroed rollup: %+v", output.Body)
	}
}

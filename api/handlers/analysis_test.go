// ABOUTME: Tests for the sentiment analysis handler
// ABOUTME: Verifies route registration, matching delegation and response mapping

package handlers

import (
	"context"
	"testing"

	"reputraq-api/api/dto/requests"
	"reputraq-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
)

func TestNewAnalysisHandler(t *testing.T) {
	handler := NewAnalysisHandler(&mockMatcher{}, &mockSentimentService{})

	if handler == nil {
		t.Fatal("NewAnalysisHandler returned nil")
	}
	if handler.matcher == nil || handler.sentiment == nil {
		t.Error("handler dependencies not set")
	}
}

func TestAnalysisHandler_RegisterRoutes(t *testing.T) {
	handler := NewAnalysisHandler(&mockMatcher{}, &mockSentimentService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/analyze"] == nil {
		t.Fatal("POST /analyze endpoint not registered")
	}
	if openapi.Paths["/analyze"].Post == nil {
		t.Error("POST method not registered for /analyze")
	}
}

func TestAnalysisHandler_Analyze_FiltersBeforeAnalyzing(t *testing.T) {
	var filteredKeyword string
	var analyzedCount int

	matcher := &mockMatcher{
		filterFunc: func(items []domain.ContentItem, keyword string) []domain.ContentItem {
			filteredKeyword = keyword
			return items[:1]
		},
	}
	sentiment := &mockSentimentService{
		analyzeFunc: func(ctx context.Context, keyword string, items []domain.ContentItem) domain.SentimentAnalysis {
			analyzedCount = len(items)
			return domain.SentimentAnalysis{TotalArticles: len(items), AverageScore: 12.345}
		},
	}

	handler := NewAnalysisHandler(matcher, sentiment)
	input := &AnalyzeInput{
		Body: requests.AnalyzeRequest{
			Keyword: "acme",
			Items: []requests.ContentItemRequest{
				{ID: "a", Keyword: "acme"},
				{ID: "b", Keyword: "other"},
			},
		},
	}

	output, err := handler.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if filteredKeyword != "acme" {
		t.Errorf("matcher received keyword %q, want acme", filteredKeyword)
	}
	if analyzedCount != 1 {
		t.Errorf("sentiment received %d items, want the 1 matched item", analyzedCount)
	}
	if output.Body.Keyword != "acme" {
		t.Errorf("response keyword = %q, want acme", output.Body.Keyword)
	}
	if output.Body.Analysis.AverageScore != 12.3 {
		t.Errorf("average not rounded to one decimal: %v", output.Body.Analysis.AverageScore)
	}
}

func TestAnalysisHandler_RegisterRoutes_BulkEndpoint(t *testing.T) {
	handler := NewAnalysisHandler(&mockMatcher{}, &mockSentimentService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/analyze/bulk"] == nil || openapi.Paths["/analyze/bulk"].Post == nil {
		t.Fatal("POST /analyze/bulk endpoint not registered")
	}
}

func TestAnalysisHandler_AnalyzeBulk_OneAnalysisPerKeyword(t *testing.T) {
	matcher := &mockMatcher{
		filterAllFunc: func(items []domain.ContentItem, keywords []string) map[string][]domain.ContentItem {
			return map[string][]domain.ContentItem{
				"acme":  items,
				"rival": {},
			}
		},
	}
	sentiment := &mockSentimentService{
		analyzeFunc: func(ctx context.Context, keyword string, items []domain.ContentItem) domain.SentimentAnalysis {
			return domain.SentimentAnalysis{TotalArticles: len(items)}
		},
	}

	handler := NewAnalysisHandler(matcher, sentiment)
	input := &AnalyzeBulkInput{
		Body: requests.AnalyzeBulkRequest{
			Keywords: []string{"acme", "rival"},
			Items:    []requests.ContentItemRequest{{ID: "a"}, {ID: "b"}},
		},
	}

	output, err := handler.AnalyzeBulk(context.Background(), input)
	if err != nil {
		t.Fatalf("AnalyzeBulk returned error: %v", err)
	}

	if len(output.Body.Results) != 2 {
		t.Fatalf("results = %d keywords, want 2", len(output.Body.Results))
	}
	if output.Body.Results["acme"].TotalArticles != 2 {
		t.Errorf("acme TotalArticles = %d, want 2", output.Body.Results["acme"].TotalArticles)
	}
	if output.Body.Results["rival"].TotalArticles != 0 {
		t.Errorf("rival TotalArticles = %d, want 0", output.Body.Results["rival"].TotalArticles)
	}
}

func TestAnalysisHandler_Analyze_NilItemsBecomesEmptyPool(t *testing.T) {
	var gotItems []domain.ContentItem

	sentiment := &mockSentimentService{
		analyzeFunc: func(ctx context.Context, keyword string, items []domain.ContentItem) domain.SentimentAnalysis {
			gotItems = items
			return domain.SentimentAnalysis{}
		},
	}

	handler := NewAnalysisHandler(&mockMatcher{}, sentiment)
	input := &AnalyzeInput{Body: requests.AnalyzeRequest{Keyword: "acme"}}

	_, err := handler.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if gotItems == nil {
		t.Error("sentiment service should receive a non-nil item slice")
	}
}

// ABOUTME: Sentiment analysis handlers for the Huma API
// ABOUTME: Matches content pools against keywords and aggregates sentiment

package handlers

import (
	"context"
	"net/http"

	"reputraq-api/api/dto/mappers"
	"reputraq-api/api/dto/requests"
	"reputraq-api/api/dto/responses"
	"reputraq-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// KeywordMatcher interface defines the matching methods needed by handlers
type KeywordMatcher interface {
	Filter(items []domain.ContentItem, keyword string) []domain.ContentItem
	FilterAll(items []domain.ContentItem, keywords []string) map[string][]domain.ContentItem
}

// SentimentService interface defines the methods needed from the sentiment service
type SentimentService interface {
	AnalyzeKeyword(ctx context.Context, keyword string, items []domain.ContentItem) domain.SentimentAnalysis
}

// AnalysisHandler handles sentiment analysis HTTP requests
type AnalysisHandler struct {
	matcher   KeywordMatcher
	sentiment SentimentService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(matcher KeywordMatcher, sentiment SentimentService) *AnalysisHandler {
	return &AnalysisHandler{
		matcher:   matcher,
		sentiment: sentiment,
	}
}

// RegisterRoutes registers analysis routes
func (h *AnalysisHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeKeyword",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Analyze sentiment for a keyword",
		Description: "Filters the content pool to items matching the keyword and aggregates their sentiment",
		Tags:        []string{"Analysis"},
	}, h.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "analyzeKeywordsBulk",
		Method:      http.MethodPost,
		Path:        "/analyze/bulk",
		Summary:     "Analyze sentiment for many keywords at once",
		Description: "Matches one content pool against every keyword in a single pass and aggregates sentiment per keyword",
		Tags:        []string{"Analysis"},
	}, h.AnalyzeBulk)
}

// AnalyzeInput defines the input for the Analyze operation
type AnalyzeInput struct {
	Body requests.AnalyzeRequest `json:"body"`
}

// AnalyzeOutput defines the output for the Analyze operation
type AnalyzeOutput struct {
	Body responses.AnalyzeResponse
}

// Analyze handles the POST /analyze endpoint
func (h *AnalysisHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	input.Body.ApplyDefaults()

	items := mappers.ToContentItems(input.Body.Items)
	matched := h.matcher.Filter(items, input.Body.Keyword)
	analysis := h.sentiment.AnalyzeKeyword(ctx, input.Body.Keyword, matched)

	output := &AnalyzeOutput{}
	output.Body = responses.AnalyzeResponse{
		Keyword:  input.Body.Keyword,
		Analysis: mappers.ToSentimentAnalysisResponse(&analysis),
	}
	return output, nil
}

// AnalyzeBulkInput defines the input for the AnalyzeBulk operation
type AnalyzeBulkInput struct {
	Body requests.AnalyzeBulkRequest `json:"body"`
}

// AnalyzeBulkOutput defines the output for the AnalyzeBulk operation
type AnalyzeBulkOutput struct {
	Body responses.AnalyzeBulkResponse
}

// AnalyzeBulk handles the POST /analyze/bulk endpoint
func (h *AnalysisHandler) AnalyzeBulk(ctx context.Context, input *AnalyzeBulkInput) (*AnalyzeBulkOutput, error) {
	input.Body.ApplyDefaults()

	items := mappers.ToContentItems(input.Body.Items)
	matched := h.matcher.FilterAll(items, input.Body.Keywords)

	results := make(map[string]responses.SentimentAnalysisResponse, len(input.Body.Keywords))
	for _, keyword := range input.Body.Keywords {
		analysis := h.sentiment.AnalyzeKeyword(ctx, keyword, matched[keyword])
		results[keyword] = mappers.ToSentimentAnalysisResponse(&analysis)
	}

	output := &AnalyzeBulkOutput{}
	output.Body = responses.AnalyzeBulkResponse{Results: results}
	return output, nil
}

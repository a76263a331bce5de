// ABOUTME: Brand comparison handler for the Huma API
// ABOUTME: Produces a head-to-head sentiment verdict for two keywords

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

// ComparisonService interface defines the methods needed from the comparison service
type ComparisonService interface {
	Compare(ctx context.Context, brandItems, competitorItems []domain.ContentItem, brandKeyword, competitorKeyword string) domain.ComparisonResult
}

// ComparisonHandler handles brand comparison HTTP requests
type ComparisonHandler struct {
	matcher    KeywordMatcher
	comparison ComparisonService
}

// NewComparisonHandler creates a new comparison handler
func NewComparisonHandler(matcher KeywordMatcher, comparison ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{
		matcher:    matcher,
		comparison: comparison,
	}
}

// RegisterRoutes registers comparison routes
func (h *ComparisonHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "compareKeywords",
		Method:      http.MethodPost,
		Path:        "/compare",
		Summary:     "Compare brand sentiment against a competitor",
		Description: "Analyzes both content pools and reports the sentiment differential with a confidence verdict",
		Tags:        []string{"Analysis"},
	}, h.Compare)
}

// CompareInput defines the input for the Compare operation
type CompareInput struct {
	Body requests.CompareRequest `json:"body"`
}

// CompareOutput defines the output for the Compare operation
type CompareOutput struct {
	Body responses.ComparisonResponse
}

// Compare handles the POST /compare endpoint
func (h *ComparisonHandler) Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error) {
	input.Body.ApplyDefaults()

	brandItems := h.matcher.Filter(mappers.ToContentItems(input.Body.BrandItems), input.Body.BrandKeyword)
	competitorItems := h.matcher.Filter(mappers.ToContentItems(input.Body.CompetitorItems), input.Body.CompetitorKeyword)

	result := h.comparison.Compare(ctx, brandItems, competitorItems, input.Body.BrandKeyword, input.Body.CompetitorKeyword)

	output := &CompareOutput{}
	output.Body = mappers.ToComparisonResponse(&result)
	return output, nil
}

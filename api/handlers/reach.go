// ABOUTME: Reach estimation handler for the Huma API
// ABOUTME: Estimates a publication's monthly audience and the per-article reach

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

// ReachEstimator interface defines the methods needed from the reach estimator
type ReachEstimator interface {
	EstimateMonthlyReach(sourceName, rawURL, keyword string, engagement *domain.Engagement) int
	CalculateReach(monthlyReach int, bounceRate, dropRate *float64) domain.ReachEstimate
}

// ReachHandler handles reach estimation HTTP requests
type ReachHandler struct {
	estimator ReachEstimator
}

// NewReachHandler creates a new reach handler
func NewReachHandler(estimator ReachEstimator) *ReachHandler {
	return &ReachHandler{
		estimator: estimator,
	}
}

// RegisterRoutes registers reach routes
func (h *ReachHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "estimateReach",
		Method:      http.MethodPost,
		Path:        "/reach",
		Summary:     "Estimate article reach",
		Description: "Derives a publication's monthly audience and applies the tiered attrition model to produce a per-article reach estimate",
		Tags:        []string{"Reach"},
	}, h.Estimate)
}

// ReachInput defines the input for the Estimate operation
type ReachInput struct {
	Body requests.ReachRequest `json:"body"`
}

// ReachOutput defines the output for the Estimate operation
type ReachOutput struct {
	Body responses.ReachResponse
}

// Estimate handles the POST /reach endpoint
func (h *ReachHandler) Estimate(ctx context.Context, input *ReachInput) (*ReachOutput, error) {
	monthlyReach := input.Body.MonthlyReach
	if monthlyReach <= 0 {
		engagement := mappers.ToEngagement(input.Body.Engagement)
		monthlyReach = h.estimator.EstimateMonthlyReach(
			input.Body.SourceName, input.Body.URL, input.Body.Keyword, engagement)
	}

	estimate := h.estimator.CalculateReach(monthlyReach, input.Body.BounceRate, input.Body.DropRate)

	output := &ReachOutput{}
	output.Body = mappers.ToReachResponse(&estimate)
	return output, nil
}

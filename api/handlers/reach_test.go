// ABOUTME: Tests for the reach estimation handler
// ABOUTME: Verifies the estimate-vs-explicit monthly reach split

package handlers

import (
	"context"
	"testing"

	"reputraq-api/api/dto/requests"
	"reputraq-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
)

func TestReachHandler_RegisterRoutes(t *testing.T) {
	handler := NewReachHandler(&mockReachEstimator{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/reach"] == nil || openapi.Paths["/reach"].Post == nil {
		t.Fatal("POST /reach endpoint not registered")
	}
}

func TestReachHandler_Estimate_DerivesMonthlyReachWhenAbsent(t *testing.T) {
	var estimatedSource string
	var gotEngagement *domain.Engagement

	estimator := &mockReachEstimator{
		estimateFunc: func(sourceName, rawURL, keyword string, engagement *domain.Engagement) int {
			estimatedSource = sourceName
			gotEngagement = engagement
			return 5_000_000
		},
		calculateFunc: func(monthlyReach int, bounceRate, dropRate *float64) domain.ReachEstimate {
			return domain.ReachEstimate{MonthlyReach: monthlyReach, ReachRange: "5M-15M"}
		},
	}

	handler := NewReachHandler(estimator)
	input := &ReachInput{
		Body: requests.ReachRequest{
			SourceName: "TechCrunch",
			URL:        "https://techcrunch.com/article",
			Keyword:    "acme",
			Engagement: &requests.EngagementRequest{Views: 1200},
		},
	}

	output, err := handler.Estimate(context.Background(), input)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	if estimatedSource != "TechCrunch" {
		t.Errorf("estimator received source %q, want TechCrunch", estimatedSource)
	}
	if gotEngagement == nil || gotEngagement.Views != 1200 {
		t.Errorf("engagement not passed through: %+v", gotEngagement)
	}
	if output.Body.MonthlyReach != 5_000_000 {
		t.Errorf("MonthlyReach = %d, want the estimated 5000000", output.Body.MonthlyReach)
	}
	if output.Body.ReachRange != "5M-15M" {
		t.Errorf("ReachRange = %q, want 5M-15M", output.Body.ReachRange)
	}
}

func TestReachHandler_Estimate_ExplicitMonthlyReachSkipsEstimation(t *testing.T) {
	estimateCalled := false
	var gotBounce, gotDrop *float64

	estimator := &mockReachEstimator{
		estimateFunc: func(sourceName, rawURL, keyword string, engagement *domain.Engagement) int {
			estimateCalled = true
			return 0
		},
		calculateFunc: func(monthlyReach int, bounceRate, dropRate *float64) domain.ReachEstimate {
			gotBounce, gotDrop = bounceRate, dropRate
			return domain.ReachEstimate{MonthlyReach: monthlyReach}
		},
	}

	bounce := 0.55
	drop := 0.365
	handler := NewReachHandler(estimator)
	input := &ReachInput{
		Body: requests.ReachRequest{
			MonthlyReach: 25_000_000,
			BounceRate:   &bounce,
			DropRate:     &drop,
		},
	}

	output, err := handler.Estimate(context.Background(), input)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	if estimateCalled {
		t.Error("EstimateMonthlyReach should not run when monthlyReach is explicit")
	}
	if output.Body.MonthlyReach != 25_000_000 {
		t.Errorf("MonthlyReach = %d, want 25000000", output.Body.MonthlyReach)
	}
	if gotBounce == nil || *gotBounce != 0.55 || gotDrop == nil || *gotDrop != 0.365 {
		t.Error("explicit rates not passed through to CalculateReach")
	}
}

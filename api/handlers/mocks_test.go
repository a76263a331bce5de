// ABOUTME: Shared mock implementations for handler tests
// ABOUTME: Function-field mocks of the handler-facing service interfaces

package handlers

import (
	"context"

	"reputraq-api/core/domain"
)

// mockMatcher is a mock implementation of the keyword matcher
type mockMatcher struct {
	filterFunc    func(items []domain.ContentItem, keyword string) []domain.ContentItem
	filterAllFunc func(items []domain.ContentItem, keywords []string) map[string][]domain.ContentItem
}

func (m *mockMatcher) Filter(items []domain.ContentItem, keyword string) []domain.ContentItem {
	if m.filterFunc != nil {
		return m.filterFunc(items, keyword)
	}
	return items
}

func (m *mockMatcher) FilterAll(items []domain.ContentItem, keywords []string) map[string][]domain.ContentItem {
	if m.filterAllFunc != nil {
		return m.filterAllFunc(items, keywords)
	}
	results := make(map[string][]domain.ContentItem, len(keywords))
	for _, kw := range keywords {
		results[kw] = items
	}
	return results
}

// mockSentimentService is a mock implementation of the sentiment service
type mockSentimentService struct {
	analyzeFunc func(ctx context.Context, keyword string, items []domain.ContentItem) domain.SentimentAnalysis
}

func (m *mockSentimentService) AnalyzeKeyword(ctx context.Context, keyword string, items []domain.ContentItem) domain.SentimentAnalysis {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, keyword, items)
	}
	return domain.SentimentAnalysis{}
}

// mockComparisonService is a mock implementation of the comparison service
type mockComparisonService struct {
	compareFunc func(ctx context.Context, brandItems, competitorItems []domain.ContentItem, brandKeyword, competitorKeyword string) domain.ComparisonResult
}

func (m *mockComparisonService) Compare(ctx context.Context, brandItems, competitorItems []domain.ContentItem, brandKeyword, competitorKeyword string) domain.ComparisonResult {
	if m.compareFunc != nil {
		return m.compareFunc(ctx, brandItems, competitorItems, brandKeyword, competitorKeyword)
	}
	return domain.ComparisonResult{}
}

// mockReachEstimator is a mock implementation of the reach estimator
type mockReachEstimator struct {
	estimateFunc  func(sourceName, rawURL, keyword string, engagement *domain.Engagement) int
	calculateFunc func(monthlyReach int, bounceRate, dropRate *float64) domain.ReachEstimate
}

func (m *mockReachEstimator) EstimateMonthlyReach(sourceName, rawURL, keyword string, engagement *domain.Engagement) int {
	if m.estimateFunc != nil {
		return m.estimateFunc(sourceName, rawURL, keyword, engagement)
	}
	return 0
}

func (m *mockReachEstimator) CalculateReach(monthlyReach int, bounceRate, dropRate *float64) domain.ReachEstimate {
	if m.calculateFunc != nil {
		return m.calculateFunc(monthlyReach, bounceRate, dropRate)
	}
	return domain.ReachEstimate{}
}

// mockVoiceShareService is a mock implementation of the voice-of-share service
type mockVoiceShareService struct {
	totalFunc func(ctx context.Context, items []domain.ContentItem) domain.VoiceOfShareResult
}

func (m *mockVoiceShareService) TotalVoiceOfShare(ctx context.Context, items []domain.ContentItem) domain.VoiceOfShareResult {
	if m.totalFunc != nil {
		return m.totalFunc(ctx, items)
	}
	return domain.VoiceOfShareResult{}
}

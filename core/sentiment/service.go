// ABOUTME: Sentiment service wraps the pure aggregation with caching and logging
// ABOUTME: Cache failures degrade to recomputation, never to an error

package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"reputraq-api/core/domain"
	"reputraq-api/core/interfaces"
	"reputraq-api/pkg/utils/detrand"
)

// analysisCacheTTL bounds how long a computed aggregate may be served
// before recomputation.
const analysisCacheTTL = 15 * time.Minute

// SentimentService handles sentiment aggregation operations
type SentimentService struct {
	deps interfaces.Dependencies
}

// NewSentimentService creates a new sentiment service instance
func NewSentimentService(deps interfaces.Dependencies) *SentimentService {
	return &SentimentService{
		deps: deps,
	}
}

// AnalyzeKeyword computes the sentiment aggregate for the items matched
// to a keyword. Results are cached per (keyword, pool fingerprint);
// items are immutable once fetched, so the item IDs identify the pool.
func (s *SentimentService) AnalyzeKeyword(ctx context.Context, keyword string, items []domain.ContentItem) domain.SentimentAnalysis {
	cacheKey := s.cacheKey(keyword, items)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.SentimentAnalysis
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	analysis := Analyze(items)

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Computed sentiment analysis", map[string]interface{}{
			"keyword":       keyword,
			"items":         analysis.TotalArticles,
			"average_score": analysis.AverageScore,
		})
	}

	if s.deps.Cache != nil && analysis.TotalArticles > 0 {
		if data, err := json.Marshal(analysis); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, analysisCacheTTL)
		}
	}

	return analysis
}

// cacheKey derives a stable key from the keyword and the item IDs
func (s *SentimentService) cacheKey(keyword string, items []domain.ContentItem) string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	fingerprint := detrand.Hash32(strings.Join(ids, ","))
	return fmt.Sprintf("sentiment:%s:%08x", strings.ToLower(strings.TrimSpace(keyword)), fingerprint)
}

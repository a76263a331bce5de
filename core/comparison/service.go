// ABOUTME: Comparative analyzer derives a brand-vs-competitor verdict from two sentiment aggregates
// ABOUTME: Thresholds are fixed explainable heuristics, not statistical significance tests

package comparison

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"reputraq-api/core/domain"
	"reputraq-api/core/interfaces"
	"reputraq-api/core/sentiment"
)

// Verdict thresholds on the absolute sentiment differential. Below the
// tie threshold the averages are too close to call; above the high
// threshold the gap is decisive.
const (
	tieThreshold  = 0.5
	highThreshold = 2.0
)

// ComparisonService handles head-to-head keyword comparisons
type ComparisonService struct {
	deps interfaces.Dependencies
}

// NewComparisonService creates a new comparison service instance
func NewComparisonService(deps interfaces.Dependencies) *ComparisonService {
	return &ComparisonService{
		deps: deps,
	}
}

// Compare analyzes both content pools independently and derives the
// winner/confidence verdict. A side with zero matched items still
// compares cleanly against the other; it is not an error.
func (s *ComparisonService) Compare(ctx context.Context, brandItems, competitorItems []domain.ContentItem, brandKeyword, competitorKeyword string) domain.ComparisonResult {
	brand := sentiment.Analyze(brandItems)
	competitor := sentiment.Analyze(competitorItems)

	difference := brand.AverageScore - competitor.AverageScore
	winner, confidence := verdict(difference, brandKeyword, competitorKeyword)

	result := domain.ComparisonResult{
		ReportID:          uuid.New().String(),
		GeneratedAt:       time.Now().UTC(),
		BrandKeyword:      brandKeyword,
		CompetitorKeyword: competitorKeyword,
		Brand:             brand,
		Competitor:        competitor,

		SentimentDifference: difference,
		OverallWinner:       winner,
		Confidence:          confidence,

		BrandPositiveRatio:      ratio(brand.Positive, brand.TotalArticles),
		BrandNegativeRatio:      ratio(brand.Negative, brand.TotalArticles),
		CompetitorPositiveRatio: ratio(competitor.Positive, competitor.TotalArticles),
		CompetitorNegativeRatio: ratio(competitor.Negative, competitor.TotalArticles),

		TotalArticlesAnalyzed: brand.TotalArticles + competitor.TotalArticles,
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Generated comparison report", map[string]interface{}{
			"report_id":  result.ReportID,
			"brand":      brandKeyword,
			"competitor": competitorKeyword,
			"winner":     winner,
			"confidence": confidence,
			"difference": difference,
		})
	}

	return result
}

// verdict maps the sentiment differential onto a winner and confidence
func verdict(difference float64, brandKeyword, competitorKeyword string) (winner, confidence string) {
	abs := math.Abs(difference)

	if abs < tieThreshold {
		return domain.WinnerTie, domain.ConfidenceLow
	}

	winner = brandKeyword
	if difference < 0 {
		winner = competitorKeyword
	}

	if abs < highThreshold {
		return winner, domain.ConfidenceMedium
	}
	return winner, domain.ConfidenceHigh
}

// ratio converts a count into a percentage of total, guarding the
// zero-article case.
func ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

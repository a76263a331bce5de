// ABOUTME: ComparisonResult pairs two keyword analyses with a winner/confidence verdict
// ABOUTME: Verdict thresholds are fixed design constants, not statistical tests

package domain

import "time"

// Confidence levels for a comparison verdict.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// WinnerTie is the winner value when the sentiment differential is too
// small to call.
const WinnerTie = "Tie"

// ComparisonResult holds the head-to-head verdict for a brand keyword
// against a competitor keyword over the same content pool.
type ComparisonResult struct {
	// ReportID uniquely identifies this generated comparison
	ReportID string

	// GeneratedAt is when the comparison was computed
	GeneratedAt time.Time

	BrandKeyword      string
	CompetitorKeyword string

	Brand      SentimentAnalysis
	Competitor SentimentAnalysis

	// SentimentDifference is brand average minus competitor average
	SentimentDifference float64

	// OverallWinner is one of the two keywords, or "Tie"
	OverallWinner string

	// Confidence is "Low", "Medium" or "High"
	Confidence string

	BrandPositiveRatio      float64
	BrandNegativeRatio      float64
	CompetitorPositiveRatio float64
	CompetitorNegativeRatio float64

	TotalArticlesAnalyzed int
}

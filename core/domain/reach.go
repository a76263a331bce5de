// ABOUTME: Reach and voice-of-share domain models derived from publication-level estimates
// ABOUTME: All figures are recomputed on demand from content items, never persisted by the core

package domain

// ReachEstimate is the per-article audience estimate derived from a
// publication's monthly reach through the tiered percentage model.
type ReachEstimate struct {
	// MonthlyReach is the estimated monthly audience of the publication
	MonthlyReach int

	// PercentageMultiplier is the tier-selected fraction of monthly
	// reach attributed to a single article
	PercentageMultiplier float64

	// BaseEstimatedReach is MonthlyReach scaled by the tier multiplier,
	// before attrition
	BaseEstimatedReach float64

	// BounceRate is the fraction of visitors who leave from the homepage
	BounceRate float64

	// DropRate is the fraction of remaining visitors who never reach
	// the article
	DropRate float64

	// FinalEstimatedReach is the rounded audience figure after both
	// attritions
	FinalEstimatedReach int

	// ReachRange is the human label for the selected tier
	ReachRange string
}

// TierBreakdown summarizes the voice-of-share contribution of all
// articles whose publications fall into one reach tier.
type TierBreakdown struct {
	Tier         string
	ArticleCount int
	TotalReach   int
}

// VoiceOfShareResult is the portfolio-level voice-of-share rollup over
// a content set.
type VoiceOfShareResult struct {
	TotalVoiceOfShare   int
	AverageVoiceOfShare float64
	ArticleCount        int

	// Breakdown groups contributions by reach tier, sorted by
	// TotalReach descending
	Breakdown []TierBreakdown
}

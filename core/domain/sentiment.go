// ABOUTME: Derived sentiment aggregates for a keyword over a content set
// ABOUTME: Distribution buckets and summary statistics are recomputed on demand, never stored

package domain

// SentimentDistribution buckets sentiment scores into seven mutually
// exclusive, exhaustive levels. The sum of all bucket counts always
// equals the number of items classified.
type SentimentDistribution struct {
	VeryPositive     int
	Positive         int
	SlightlyPositive int
	Neutral          int
	SlightlyNegative int
	Negative         int
	VeryNegative     int
}

// Total returns the sum of all bucket counts.
func (d SentimentDistribution) Total() int {
	return d.VeryPositive + d.Positive + d.SlightlyPositive + d.Neutral +
		d.SlightlyNegative + d.Negative + d.VeryNegative
}

// SentimentAnalysis is the aggregate picture for one keyword over a
// content set. Positive/Negative/Neutral are the coarse tri-state
// counts; Distribution carries the full seven buckets.
type SentimentAnalysis struct {
	Positive      int
	Negative      int
	Neutral       int
	AverageScore  float64
	TotalArticles int
	Distribution  SentimentDistribution

	// TopPositiveArticles holds the five highest-scoring items
	TopPositiveArticles []ContentItem

	// TopNegativeArticles holds the five lowest-scoring items
	TopNegativeArticles []ContentItem

	// RecentArticles holds the ten most recently published items
	RecentArticles []ContentItem
}

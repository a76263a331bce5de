// ABOUTME: Sentiment classification and aggregation over a content set
// ABOUTME: Buckets scores into a seven-level distribution and rolls up per-keyword summary statistics

package sentiment

import (
	"sort"

	"reputraq-api/core/domain"
)

const (
	topArticleCount    = 5
	recentArticleCount = 10
)

// Analyze computes the sentiment aggregate for a content set. Empty
// input yields a zeroed result with empty lists, never an error.
// Input items are not mutated; absent scores count as 0.
func Analyze(items []domain.ContentItem) domain.SentimentAnalysis {
	analysis := domain.SentimentAnalysis{
		TotalArticles:       len(items),
		TopPositiveArticles: []domain.ContentItem{},
		TopNegativeArticles: []domain.ContentItem{},
		RecentArticles:      []domain.ContentItem{},
	}

	if len(items) == 0 {
		return analysis
	}

	var sum float64
	for i := range items {
		score := items[i].Score()
		sum += float64(score)
		classify(score, &analysis)
	}
	analysis.AverageScore = sum / float64(len(items))

	byScore := make([]domain.ContentItem, len(items))
	copy(byScore, items)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score() > byScore[j].Score()
	})
	analysis.TopPositiveArticles = firstN(byScore, topArticleCount)
	analysis.TopNegativeArticles = lastNReversed(byScore, topArticleCount)

	byDate := make([]domain.ContentItem, len(items))
	copy(byDate, items)
	sort.SliceStable(byDate, func(i, j int) bool {
		return byDate[i].PublishedAt.After(byDate[j].PublishedAt)
	})
	analysis.RecentArticles = firstN(byDate, recentArticleCount)

	return analysis
}

// classify assigns one item's score to its distribution bucket and
// tri-state count. The arms run in this exact order; 0 and -10 land in
// the neutral bucket, and the slightly-negative bucket is shadowed by
// the neutral arm. That asymmetry is inherited behavior consumers
// already depend on, so it stays.
func classify(score int, analysis *domain.SentimentAnalysis) {
	d := &analysis.Distribution
	switch {
	case score > 50:
		d.VeryPositive++
		analysis.Positive++
	case score > 10:
		d.Positive++
		analysis.Positive++
	case score > 0:
		d.SlightlyPositive++
		analysis.Neutral++
	case score >= -10:
		d.Neutral++
		analysis.Neutral++
	case score > -50:
		d.Negative++
		analysis.Negative++
	default:
		d.VeryNegative++
		analysis.Negative++
	}
}

// firstN copies up to n leading items
func firstN(items []domain.ContentItem, n int) []domain.ContentItem {
	if len(items) < n {
		n = len(items)
	}
	out := make([]domain.ContentItem, n)
	copy(out, items[:n])
	return out
}

// lastNReversed copies up to n trailing items in reverse order, turning
// a descending-by-score sort into an ascending bottom-n list.
func lastNReversed(items []domain.ContentItem, n int) []domain.ContentItem {
	if len(items) < n {
		n = len(items)
	}
	out := make([]domain.ContentItem, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}

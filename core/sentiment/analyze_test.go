package sentiment

import (
	"fmt"
	"math"
	"testing"
	"time"

	"reputraq-api/core/domain"
)

func itemWithScore(id string, score int) domain.ContentItem {
	return domain.ContentItem{ID: id, Title: "item " + id, SentimentScore: score}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	analysis := Analyze(nil)

	if analysis.TotalArticles != 0 {
		t.Errorf("TotalArticles = %d, want 0", analysis.TotalArticles)
	}
	if analysis.Positive != 0 || analysis.Negative != 0 || analysis.Neutral != 0 {
		t.Error("tri-state counts should all be 0 for empty input")
	}
	if analysis.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0", analysis.AverageScore)
	}
	if analysis.Distribution.Total() != 0 {
		t.Error("distribution buckets should all be 0 for empty input")
	}
	if analysis.TopPositiveArticles == nil || len(analysis.TopPositiveArticles) != 0 {
		t.Error("TopPositiveArticles should be an empty slice")
	}
	if analysis.TopNegativeArticles == nil || len(analysis.TopNegativeArticles) != 0 {
		t.Error("TopNegativeArticles should be an empty slice")
	}
	if analysis.RecentArticles == nil || len(analysis.RecentArticles) != 0 {
		t.Error("RecentArticles should be an empty slice")
	}
}

func TestAnalyze_ClassificationBoundaries(t *testing.T) {
	testCases := []struct {
		score  int
		bucket string
	}{
		{75, "veryPositive"},
		{51, "veryPositive"},
		{50, "positive"},
		{11, "positive"},
		{10, "slightlyPositive"},
		{1, "slightlyPositive"},
		{0, "neutral"},
		{-10, "neutral"},
		{-11, "negative"},
		{-49, "negative"},
		{-50, "veryNegative"},
		{-80, "veryNegative"},
	}

	for _, tc := range testCases {
		analysis := Analyze([]domain.ContentItem{itemWithScore("1", tc.score)})
		d := analysis.Distribution

		got := ""
		switch {
		case d.VeryPositive == 1:
			got = "veryPositive"
		case d.Positive == 1:
			got = "positive"
		case d.SlightlyPositive == 1:
			got = "slightlyPositive"
		case d.Neutral == 1:
			got = "neutral"
		case d.SlightlyNegative == 1:
			got = "slightlyNegative"
		case d.Negative == 1:
			got = "negative"
		case d.VeryNegative == 1:
			got = "veryNegative"
		}

		if got != tc.bucket {
			t.Errorf("score %d classified as %s, want %s", tc.score, got, tc.bucket)
		}
	}
}

func TestAnalyze_TriStateMapping(t *testing.T) {
	items := []domain.ContentItem{
		itemWithScore("1", 60),  // veryPositive -> positive
		itemWithScore("2", 30),  // positive -> positive
		itemWithScore("3", 5),   // slightlyPositive -> neutral
		itemWithScore("4", 0),   // neutral -> neutral
		itemWithScore("5", -20), // negative -> negative
		itemWithScore("6", -70), // veryNegative -> negative
	}

	analysis := Analyze(items)

	if analysis.Positive != 2 {
		t.Errorf("Positive = %d, want 2", analysis.Positive)
	}
	if analysis.Neutral != 2 {
		t.Errorf("Neutral = %d, want 2", analysis.Neutral)
	}
	if analysis.Negative != 2 {
		t.Errorf("Negative = %d, want 2", analysis.Negative)
	}
}

func TestAnalyze_DistributionInvariant(t *testing.T) {
	scores := []int{90, 55, 50, 42, 11, 10, 7, 1, 0, -3, -10, -11, -33, -49, -50, -99}
	items := make([]domain.ContentItem, 0, len(scores))
	for i, score := range scores {
		items = append(items, itemWithScore(fmt.Sprintf("item-%d", i), score))
	}

	analysis := Analyze(items)

	if analysis.Distribution.Total() != len(items) {
		t.Errorf("distribution total = %d, want %d", analysis.Distribution.Total(), len(items))
	}
	triState := analysis.Positive + analysis.Negative + analysis.Neutral
	if triState != len(items) {
		t.Errorf("tri-state total = %d, want %d", triState, len(items))
	}
	if analysis.TotalArticles != len(items) {
		t.Errorf("TotalArticles = %d, want %d", analysis.TotalArticles, len(items))
	}
}

func TestAnalyze_AverageScoreFullPrecision(t *testing.T) {
	items := []domain.ContentItem{
		itemWithScore("1", 10),
		itemWithScore("2", 11),
		itemWithScore("3", 11),
	}

	analysis := Analyze(items)

	want := (10.0 + 11.0 + 11.0) / 3.0
	if math.Abs(analysis.AverageScore-want) > 1e-9 {
		t.Errorf("AverageScore = %v, want %v (full precision)", analysis.AverageScore, want)
	}
}

func TestAnalyze_TopPositiveArticles(t *testing.T) {
	items := []domain.ContentItem{
		itemWithScore("low", -40),
		itemWithScore("a", 90),
		itemWithScore("b", 70),
		itemWithScore("c", 50),
		itemWithScore("d", 30),
		itemWithScore("e", 20),
		itemWithScore("f", 10),
	}

	analysis := Analyze(items)

	if len(analysis.TopPositiveArticles) != 5 {
		t.Fatalf("TopPositiveArticles has %d items, want 5", len(analysis.TopPositiveArticles))
	}
	wantOrder := []string{"a", "b", "c", "d", "e"}
	for i, want := range wantOrder {
		if analysis.TopPositiveArticles[i].ID != want {
			t.Errorf("TopPositiveArticles[%d] = %s, want %s", i, analysis.TopPositiveArticles[i].ID, want)
		}
	}
}

func TestAnalyze_TopNegativeArticles(t *testing.T) {
	items := []domain.ContentItem{
		itemWithScore("a", 90),
		itemWithScore("b", -80),
		itemWithScore("c", -60),
		itemWithScore("d", -40),
		itemWithScore("e", -20),
		itemWithScore("f", 0),
		itemWithScore("g", 10),
	}

	analysis := Analyze(items)

	if len(analysis.TopNegativeArticles) != 5 {
		t.Fatalf("TopNegativeArticles has %d items, want 5", len(analysis.TopNegativeArticles))
	}
	// ascending by score
	wantOrder := []string{"b", "c", "d", "e", "f"}
	for i, want := range wantOrder {
		if analysis.TopNegativeArticles[i].ID != want {
			t.Errorf("TopNegativeArticles[%d] = %s, want %s", i, analysis.TopNegativeArticles[i].ID, want)
		}
	}
}

func TestAnalyze_RecentArticles(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := make([]domain.ContentItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, domain.ContentItem{
			ID:          fmt.Sprintf("item-%d", i),
			Title:       "t",
			PublishedAt: base.AddDate(0, 0, i),
		})
	}

	analysis := Analyze(items)

	if len(analysis.RecentArticles) != 10 {
		t.Fatalf("RecentArticles has %d items, want 10", len(analysis.RecentArticles))
	}
	if analysis.RecentArticles[0].ID != "item-11" {
		t.Errorf("most recent = %s, want item-11", analysis.RecentArticles[0].ID)
	}
	if analysis.RecentArticles[9].ID != "item-2" {
		t.Errorf("tenth recent = %s, want item-2", analysis.RecentArticles[9].ID)
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	items := []domain.ContentItem{
		itemWithScore("b", -80),
		itemWithScore("a", 90),
	}

	Analyze(items)

	if items[0].ID != "b" || items[1].ID != "a" {
		t.Error("Analyze must not reorder the input slice")
	}
}

func TestAnalyze_FewerItemsThanListSizes(t *testing.T) {
	items := []domain.ContentItem{
		itemWithScore("a", 5),
		itemWithScore("b", -5),
	}

	analysis := Analyze(items)

	if len(analysis.TopPositiveArticles) != 2 {
		t.Errorf("TopPositiveArticles has %d items, want 2", len(analysis.TopPositiveArticles))
	}
	if len(analysis.TopNegativeArticles) != 2 {
		t.Errorf("TopNegativeArticles has %d items, want 2", len(analysis.TopNegativeArticles))
	}
	if len(analysis.RecentArticles) != 2 {
		t.Errorf("RecentArticles has %d items, want 2", len(analysis.RecentArticles))
	}
}

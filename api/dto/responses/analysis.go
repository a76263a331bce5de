// ABOUTME: Response DTOs for reputation analysis endpoints
// ABOUTME: JSON field names are fixed for consumer compatibility

package responses

import "time"

// EngagementResponse carries the engagement counters of a content item
type EngagementResponse struct {
	Views    int `json:"views" doc:"View count"`
	Shares   int `json:"shares" doc:"Share count"`
	Comments int `json:"comments" doc:"Comment count"`
	Likes    int `json:"likes" doc:"Like count"`
}

// ContentItemResponse represents a content item in API responses
type ContentItemResponse struct {
	ID             string              `json:"id" doc:"Unique identifier for the item"`
	Title          string              `json:"title" doc:"Article title"`
	Description    string              `json:"description" doc:"Article description or summary"`
	URL            string              `json:"url" doc:"Link to the article"`
	PublishedAt    time.Time           `json:"publishedAt" doc:"Publication timestamp"`
	SourceName     string              `json:"sourceName" doc:"Name of the publishing outlet"`
	Keyword        string              `json:"keyword" doc:"Keyword the item was collected under"`
	SentimentScore int                 `json:"sentimentScore" doc:"Sentiment score in [-100, 100]"`
	SentimentLabel string              `json:"sentimentLabel" doc:"Tri-state sentiment label"`
	Engagement     *EngagementResponse `json:"engagement,omitempty" doc:"Engagement counters when known"`
	VoiceOfShare   int                 `json:"voiceOfShare,omitempty" doc:"Per-article voice-of-share figure when computed"`
}

// SentimentDistributionResponse is the seven-bucket score histogram
type SentimentDistributionResponse struct {
	VeryPositive     int `json:"veryPositive" doc:"Scores above 50"`
	Positive         int `json:"positive" doc:"Scores in (10, 50]"`
	SlightlyPositive int `json:"slightlyPositive" doc:"Scores in (0, 10]"`
	Neutral          int `json:"neutral" doc:"Scores in [-10, 0]"`
	SlightlyNegative int `json:"slightlyNegative" doc:"Reserved bucket, always zero"`
	Negative         int `json:"negative" doc:"Scores in (-50, -10)"`
	VeryNegative     int `json:"veryNegative" doc:"Scores of -50 and below"`
}

// SentimentAnalysisResponse is the aggregate sentiment picture for one keyword
type SentimentAnalysisResponse struct {
	Positive             int                           `json:"positive" doc:"Articles with a positive label"`
	Negative             int                           `json:"negative" doc:"Articles with a negative label"`
	Neutral              int                           `json:"neutral" doc:"Articles with a neutral label"`
	AverageScore         float64                       `json:"averageScore" doc:"Mean sentiment score, rounded to 1 decimal"`
	TotalArticles        int                           `json:"totalArticles" doc:"Number of articles analyzed"`
	Distribution         SentimentDistributionResponse `json:"sentimentDistribution" doc:"Seven-bucket score distribution"`
	TopPositiveArticles  []ContentItemResponse         `json:"topPositiveArticles" doc:"Up to 5 highest-scoring articles"`
	TopNegativeArticles  []ContentItemResponse         `json:"topNegativeArticles" doc:"Up to 5 lowest-scoring articles"`
	RecentArticles       []ContentItemResponse         `json:"recentArticles" doc:"Up to 10 most recently published articles"`
}

// AnalyzeResponse wraps the analysis together with the keyword it covers
type AnalyzeResponse struct {
	Keyword  string                    `json:"keyword" doc:"Keyword analyzed"`
	Analysis SentimentAnalysisResponse `json:"analysis" doc:"Aggregated sentiment analysis"`
}

// AnalyzeBulkResponse maps each requested keyword to its analysis
type AnalyzeBulkResponse struct {
	Results map[string]SentimentAnalysisResponse `json:"results" doc:"Per-keyword sentiment analyses"`
}

// ComparisonResponse is the head-to-head brand comparison report
type ComparisonResponse struct {
	ReportID          string    `json:"reportId" doc:"Unique identifier of this report"`
	GeneratedAt       time.Time `json:"generatedAt" doc:"When the comparison was computed"`
	BrandKeyword      string    `json:"brandKeyword" doc:"Brand keyword"`
	CompetitorKeyword string    `json:"competitorKeyword" doc:"Competitor keyword"`

	Brand      SentimentAnalysisResponse `json:"brand" doc:"Analysis of the brand pool"`
	Competitor SentimentAnalysisResponse `json:"competitor" doc:"Analysis of the competitor pool"`

	SentimentDifference float64 `json:"sentimentDifference" doc:"Brand average minus competitor average"`
	OverallWinner       string  `json:"overallWinner" doc:"Winning keyword, or Tie"`
	Confidence          string  `json:"confidence" doc:"Low, Medium or High"`

	BrandPositiveRatio      float64 `json:"brandPositiveRatio" doc:"Percent of brand articles labeled positive"`
	BrandNegativeRatio      float64 `json:"brandNegativeRatio" doc:"Percent of brand articles labeled negative"`
	CompetitorPositiveRatio float64 `json:"competitorPositiveRatio" doc:"Percent of competitor articles labeled positive"`
	CompetitorNegativeRatio float64 `json:"competitorNegativeRatio" doc:"Percent of competitor articles labeled negative"`

	TotalArticlesAnalyzed int `json:"totalArticlesAnalyzed" doc:"Articles across both pools"`
}

// ReachResponse is the per-article audience estimate
type ReachResponse struct {
	MonthlyReach         int     `json:"monthlyReach" doc:"Estimated monthly audience of the publication"`
	PercentageMultiplier float64 `json:"percentageMultiplier" doc:"Tier-selected fraction of monthly reach"`
	BaseEstimatedReach   float64 `json:"baseEstimatedReach" doc:"Monthly reach scaled by the tier multiplier"`
	BounceRate           float64 `json:"bounceRate" doc:"Applied homepage bounce rate"`
	DropRate             float64 `json:"dropRate" doc:"Applied article drop-off rate"`
	FinalEstimatedReach  int     `json:"finalEstimatedReach" doc:"Audience figure after both attritions"`
	ReachRange           string  `json:"reachRange" doc:"Human label of the selected reach tier"`
}

// TierBreakdownResponse summarizes one reach tier's contribution
type TierBreakdownResponse struct {
	Tier         string `json:"tier" doc:"Reach tier label"`
	ArticleCount int    `json:"articleCount" doc:"Articles in this tier"`
	TotalReach   int    `json:"totalReach" doc:"Summed voice-of-share of this tier"`
}

// VoiceOfShareResponse is the portfolio-level voice-of-share rollup
type VoiceOfShareResponse struct {
	TotalVoiceOfShare   int                     `json:"totalVoiceOfShare" doc:"Sum of per-article figures"`
	AverageVoiceOfShare float64                 `json:"averageVoiceOfShare" doc:"Mean per-article figure"`
	ArticleCount        int                     `json:"articleCount" doc:"Articles aggregated"`
	Breakdown           []TierBreakdownResponse `json:"breakdown" doc:"Per-tier contributions, largest first"`
}

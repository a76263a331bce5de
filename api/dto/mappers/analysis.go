// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Average scores are rounded to one decimal here, nowhere else

package mappers

import (
	"math"

	"reputraq-api/api/dto/requests"
	"reputraq-api/api/dto/responses"
	"reputraq-api/core/domain"
)

// ToContentItem converts a request DTO to a domain ContentItem
func ToContentItem(req *requests.ContentItemRequest) domain.ContentItem {
	if req == nil {
		return domain.ContentItem{}
	}

	item := domain.ContentItem{
		ID:             req.ID,
		Title:          req.Title,
		Description:    req.Description,
		URL:            req.URL,
		PublishedAt:    req.PublishedAt,
		SourceName:     req.SourceName,
		Keyword:        req.Keyword,
		SentimentScore: req.SentimentScore,
		SentimentLabel: req.SentimentLabel,
		VoiceOfShare:   req.VoiceOfShare,
	}

	if req.Engagement != nil {
		item.Engagement = &domain.Engagement{
			Views:    req.Engagement.Views,
			Shares:   req.Engagement.Shares,
			Comments: req.Engagement.Comments,
			Likes:    req.Engagement.Likes,
		}
	}

	return item
}

// ToContentItems converts a slice of request DTOs to domain ContentItems
func ToContentItems(reqs []requests.ContentItemRequest) []domain.ContentItem {
	items := make([]domain.ContentItem, 0, len(reqs))
	for i := range reqs {
		items = append(items, ToContentItem(&reqs[i]))
	}
	return items
}

// ToEngagement converts a request DTO to a domain Engagement
func ToEngagement(req *requests.EngagementRequest) *domain.Engagement {
	if req == nil {
		return nil
	}
	return &domain.Engagement{
		Views:    req.Views,
		Shares:   req.Shares,
		Comments: req.Comments,
		Likes:    req.Likes,
	}
}

// ToContentItemResponse converts a domain ContentItem to a response DTO
func ToContentItemResponse(item *domain.ContentItem) *responses.ContentItemResponse {
	if item == nil {
		return nil
	}

	resp := &responses.ContentItemResponse{
		ID:             item.ID,
		Title:          item.Title,
		Description:    item.Description,
		URL:            item.URL,
		PublishedAt:    item.PublishedAt,
		SourceName:     item.SourceName,
		Keyword:        item.Keyword,
		SentimentScore: item.SentimentScore,
		SentimentLabel: item.SentimentLabel,
		VoiceOfShare:   item.VoiceOfShare,
	}

	if item.Engagement != nil {
		resp.Engagement = &responses.EngagementResponse{
			Views:    item.Engagement.Views,
			Shares:   item.Engagement.Shares,
			Comments: item.Engagement.Comments,
			Likes:    item.Engagement.Likes,
		}
	}

	return resp
}

// ToContentItemResponses converts domain ContentItems to response DTOs
func ToContentItemResponses(items []domain.ContentItem) []responses.ContentItemResponse {
	resps := make([]responses.ContentItemResponse, 0, len(items))
	for i := range items {
		if resp := ToContentItemResponse(&items[i]); resp != nil {
			resps = append(resps, *resp)
		}
	}
	return resps
}

// ToSentimentAnalysisResponse converts a domain SentimentAnalysis to a
// response DTO, rounding the average score to one decimal place
func ToSentimentAnalysisResponse(analysis *domain.SentimentAnalysis) responses.SentimentAnalysisResponse {
	if analysis == nil {
		return responses.SentimentAnalysisResponse{
			TopPositiveArticles: []responses.ContentItemResponse{},
			TopNegativeArticles: []responses.ContentItemResponse{},
			RecentArticles:      []responses.ContentItemResponse{},
		}
	}

	return responses.SentimentAnalysisResponse{
		Positive:      analysis.Positive,
		Negative:      analysis.Negative,
		Neutral:       analysis.Neutral,
		AverageScore:  roundScore(analysis.AverageScore),
		TotalArticles: analysis.TotalArticles,
		Distribution: responses.SentimentDistributionResponse{
			VeryPositive:     analysis.Distribution.VeryPositive,
			Positive:         analysis.Distribution.Positive,
			SlightlyPositive: analysis.Distribution.SlightlyPositive,
			Neutral:          analysis.Distribution.Neutral,
			SlightlyNegative: analysis.Distribution.SlightlyNegative,
			Negative:         analysis.Distribution.Negative,
			VeryNegative:     analysis.Distribution.VeryNegative,
		},
		TopPositiveArticles: ToContentItemResponses(analysis.TopPositiveArticles),
		TopNegativeArticles: ToContentItemResponses(analysis.TopNegativeArticles),
		RecentArticles:      ToContentItemResponses(analysis.RecentArticles),
	}
}

// ToComparisonResponse converts a domain ComparisonResult to a response DTO
func ToComparisonResponse(result *domain.ComparisonResult) responses.ComparisonResponse {
	if result == nil {
		return responses.ComparisonResponse{}
	}

	return responses.ComparisonResponse{
		ReportID:          result.ReportID,
		GeneratedAt:       result.GeneratedAt,
		BrandKeyword:      result.BrandKeyword,
		CompetitorKeyword: result.CompetitorKeyword,

		Brand:      ToSentimentAnalysisResponse(&result.Brand),
		Competitor: ToSentimentAnalysisResponse(&result.Competitor),

		SentimentDifference: roundScore(result.SentimentDifference),
		OverallWinner:       result.OverallWinner,
		Confidence:          result.Confidence,

		BrandPositiveRatio:      roundScore(result.BrandPositiveRatio),
		BrandNegativeRatio:      roundScore(result.BrandNegativeRatio),
		CompetitorPositiveRatio: roundScore(result.CompetitorPositiveRatio),
		CompetitorNegativeRatio: roundScore(result.CompetitorNegativeRatio),

		TotalArticlesAnalyzed: result.TotalArticlesAnalyzed,
	}
}

// ToReachResponse converts a domain ReachEstimate to a response DTO
func ToReachResponse(estimate *domain.ReachEstimate) responses.ReachResponse {
	if estimate == nil {
		return responses.ReachResponse{}
	}

	return responses.ReachResponse{
		MonthlyReach:         estimate.MonthlyReach,
		PercentageMultiplier: estimate.PercentageMultiplier,
		BaseEstimatedReach:   estimate.BaseEstimatedReach,
		BounceRate:           estimate.BounceRate,
		DropRate:             estimate.DropRate,
		FinalEstimatedReach:  estimate.FinalEstimatedReach,
		ReachRange:           estimate.ReachRange,
	}
}

// ToVoiceOfShareResponse converts a domain VoiceOfShareResult to a response DTO
func ToVoiceOfShareResponse(result *domain.VoiceOfShareResult) responses.VoiceOfShareResponse {
	if result == nil {
		return responses.VoiceOfShareResponse{Breakdown: []responses.TierBreakdownResponse{}}
	}

	breakdown := make([]responses.TierBreakdownResponse, 0, len(result.Breakdown))
	for _, tier := range result.Breakdown {
		breakdown = append(breakdown, responses.TierBreakdownResponse{
			Tier:         tier.Tier,
			ArticleCount: tier.ArticleCount,
			TotalReach:   tier.TotalReach,
		})
	}

	return responses.VoiceOfShareResponse{
		TotalVoiceOfShare:   result.TotalVoiceOfShare,
		AverageVoiceOfShare: roundScore(result.AverageVoiceOfShare),
		ArticleCount:        result.ArticleCount,
		Breakdown:           breakdown,
	}
}

// roundScore rounds a score to one decimal place
func roundScore(score float64) float64 {
	return math.Round(score*10) / 10
}

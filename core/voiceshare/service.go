// ABOUTME: Voice-of-share aggregation with hash-seeded attrition so repeated runs are stable
// ABOUTME: Rolls per-article reach figures into portfolio totals and a per-tier breakdown

package voiceshare

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"reputraq-api/core/domain"
	"reputraq-api/core/interfaces"
	"reputraq-api/core/reach"
	"reputraq-api/pkg/utils/detrand"
)

// Attrition bounds for deterministic rate derivation, matching the
// estimator's random ranges.
const (
	bounceRateMin = 0.50
	bounceRateMax = 0.60
	dropRateMin   = 0.35
	dropRateMax   = 0.38

	// Fixed averages used when no identity signals exist to seed the
	// hash, and when reversing monthly reach from a stored figure.
	averageBounceRate = 0.55
	averageDropRate   = 0.365
)

// dropRateSalt keeps the drop-rate hash independent of the bounce-rate
// hash over the same identity key.
const dropRateSalt = "|drop"

// articleCacheTTL bounds the per-article memoization window.
const articleCacheTTL = 1 * time.Hour

// VoiceShareService computes per-article and portfolio voice of share
type VoiceShareService struct {
	deps      interfaces.Dependencies
	estimator *reach.Estimator
}

// NewVoiceShareService creates a new voice-of-share service instance
func NewVoiceShareService(deps interfaces.Dependencies, estimator *reach.Estimator) *VoiceShareService {
	return &VoiceShareService{
		deps:      deps,
		estimator: estimator,
	}
}

// ArticleVoiceOfShare computes one article's voice-of-share figure from
// its publication's monthly reach. When explicit rates are absent and
// any identity signal (source, keyword, URL) is present, the rates are
// derived from two independent hashes of the identity so the same
// article always contributes the same figure. With no identity at all
// the fixed averages apply.
func (s *VoiceShareService) ArticleVoiceOfShare(monthlyReach int, sourceName, keyword, rawURL string, bounceRate, dropRate *float64) int {
	identity := identityKey(sourceName, keyword, rawURL)
	hasIdentity := sourceName != "" || keyword != "" || rawURL != ""

	bounce := averageBounceRate
	if bounceRate != nil {
		bounce = *bounceRate
	} else if hasIdentity {
		bounce = detrand.InRange(identity, bounceRateMin, bounceRateMax)
	}

	drop := averageDropRate
	if dropRate != nil {
		drop = *dropRate
	} else if hasIdentity {
		drop = detrand.InRange(identity+dropRateSalt, dropRateMin, dropRateMax)
	}

	estimate := s.estimator.CalculateReach(monthlyReach, &bounce, &drop)
	return estimate.FinalEstimatedReach
}

// TotalVoiceOfShare rolls a content set into portfolio-level voice of
// share. Items already carrying a computed figure are not recomputed;
// everything else flows through the deterministic per-article path,
// memoized in the cache when one is configured.
func (s *VoiceShareService) TotalVoiceOfShare(ctx context.Context, items []domain.ContentItem) domain.VoiceOfShareResult {
	result := domain.VoiceOfShareResult{
		ArticleCount: len(items),
		Breakdown:    []domain.TierBreakdown{},
	}
	if len(items) == 0 {
		return result
	}

	type tierGroup struct {
		count int
		total int
	}
	groups := make(map[string]*tierGroup)

	for i := range items {
		item := &items[i]

		var figure, monthly int
		if item.VoiceOfShare > 0 {
			figure = item.VoiceOfShare
			monthly = approximateMonthlyReach(figure)
		} else {
			monthly = s.estimator.EstimateMonthlyReach(item.SourceName, item.URL, item.Keyword, item.Engagement)
			figure = s.articleFigure(ctx, item, monthly)
		}

		result.TotalVoiceOfShare += figure

		tier := reach.TierFor(monthly)
		group := groups[tier.Label]
		if group == nil {
			group = &tierGroup{}
			groups[tier.Label] = group
		}
		group.count++
		group.total += figure
	}

	result.AverageVoiceOfShare = float64(result.TotalVoiceOfShare) / float64(result.ArticleCount)

	for label, group := range groups {
		result.Breakdown = append(result.Breakdown, domain.TierBreakdown{
			Tier:         label,
			ArticleCount: group.count,
			TotalReach:   group.total,
		})
	}
	sort.Slice(result.Breakdown, func(i, j int) bool {
		if result.Breakdown[i].TotalReach != result.Breakdown[j].TotalReach {
			return result.Breakdown[i].TotalReach > result.Breakdown[j].TotalReach
		}
		return result.Breakdown[i].Tier < result.Breakdown[j].Tier
	})

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Computed voice of share", map[string]interface{}{
			"articles": result.ArticleCount,
			"total":    result.TotalVoiceOfShare,
			"tiers":    len(result.Breakdown),
		})
	}

	return result
}

// articleFigure computes one item's figure, consulting the memo cache
// first. The computation is deterministic, so the cache only saves
// work; a miss or failure never changes the result.
func (s *VoiceShareService) articleFigure(ctx context.Context, item *domain.ContentItem, monthlyReach int) int {
	// identity plus monthly reach fully determines the figure; items
	// sharing an identity can still differ in reach through engagement
	cacheKey := "vos:" + identityKey(item.SourceName, item.Keyword, item.URL) + "|" + strconv.Itoa(monthlyReach)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			if cached, err := strconv.Atoi(string(data)); err == nil {
				return cached
			}
		}
	}

	figure := s.ArticleVoiceOfShare(monthlyReach, item.SourceName, item.Keyword, item.URL, nil, nil)

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(strconv.Itoa(figure)), articleCacheTTL)
	}

	return figure
}

// approximateMonthlyReach reverses a stored final figure back to a
// monthly-reach magnitude for tier grouping. It assumes the fixed
// average attrition rates and the lowest-tier percentage, so it is a
// lossy best-effort inverse, good enough to pick a breakdown tier but
// not an exact reconstruction.
func approximateMonthlyReach(finalReach int) int {
	base := float64(finalReach) / ((1 - averageBounceRate) * (1 - averageDropRate))
	return int(math.Round(base / 0.10))
}

// identityKey builds the canonical hash key for an article's identity
func identityKey(sourceName, keyword, rawURL string) string {
	return sourceName + "|" + keyword + "|" + rawURL
}

// ABOUTME: Deterministic monthly-reach estimation and tiered per-article reach calculation
// ABOUTME: The same article must yield the same figure across recomputations without persisting it

package reach

import (
	"math"
	"math/rand"
	"net/url"
	"strings"

	"reputraq-api/core/domain"
	"reputraq-api/core/interfaces"
	"reputraq-api/pkg/utils/detrand"
)

const (
	defaultMonthlyReach = 100_000
	minMonthlyReach     = 10_000
	maxMonthlyReach     = 100_000_000

	popularKeywordMultiplier = 1.2
)

// Engagement multipliers, highest applicable tier only.
const (
	engagementHighThreshold = 10_000
	engagementMidThreshold  = 5_000
	engagementLowThreshold  = 1_000

	engagementHighMultiplier = 1.5
	engagementMidMultiplier  = 1.3
	engagementLowMultiplier  = 1.1
)

// Bounce and drop attrition ranges. Bounced visitors never leave the
// homepage; dropped visitors wander off before the article itself.
const (
	bounceRateMin = 0.50
	bounceRateMax = 0.60
	dropRateMin   = 0.35
	dropRateMax   = 0.38
)

// Estimator derives audience-reach figures from publication signals.
// The publication table and popular-keyword list are injectable so
// they can be extended without touching the estimation logic.
type Estimator struct {
	deps         interfaces.Dependencies
	publications []PublicationReach
	popular      []string
}

// Option configures an Estimator
type Option func(*Estimator)

// WithPublicationTable replaces the default publication reach table
func WithPublicationTable(table []PublicationReach) Option {
	return func(e *Estimator) {
		e.publications = table
	}
}

// WithPopularKeywords replaces the default popular keyword list
func WithPopularKeywords(keywords []string) Option {
	return func(e *Estimator) {
		e.popular = keywords
	}
}

// NewEstimator creates a new reach estimator instance
func NewEstimator(deps interfaces.Dependencies, opts ...Option) *Estimator {
	e := &Estimator{
		deps:         deps,
		publications: DefaultPublicationTable,
		popular:      DefaultPopularKeywords,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EstimateMonthlyReach estimates a publication's monthly audience from
// its name, the article URL, the collection keyword and engagement
// counts. The function is fully deterministic: identical inputs always
// produce identical output, so the same article keeps the same figure
// across page reloads without anything being persisted.
func (e *Estimator) EstimateMonthlyReach(sourceName, rawURL, keyword string, engagement *domain.Engagement) int {
	estimate := float64(defaultMonthlyReach)

	if monthly, ok := e.lookupPublication(sourceName); ok {
		estimate = float64(monthly)
	}

	if rawURL != "" {
		if floor, ok := e.domainFloor(rawURL); ok {
			estimate = math.Max(estimate, float64(floor))
		}
	}

	if e.isPopularKeyword(keyword) {
		estimate *= popularKeywordMultiplier
	}

	switch total := engagement.Total(); {
	case total > engagementHighThreshold:
		estimate *= engagementHighMultiplier
	case total > engagementMidThreshold:
		estimate *= engagementMidMultiplier
	case total > engagementLowThreshold:
		estimate *= engagementLowMultiplier
	}

	estimate *= detrand.InRange(sourceName+"|"+rawURL+"|"+keyword, 0.8, 1.2)

	if estimate < minMonthlyReach {
		estimate = minMonthlyReach
	}
	if estimate > maxMonthlyReach {
		estimate = maxMonthlyReach
	}

	return int(math.Round(estimate))
}

// CalculateReach converts a monthly audience into a per-article
// estimate through the tier table. When bounce or drop rates are not
// supplied they are drawn uniformly from their ranges; callers needing
// reproducible figures supply hash-seeded rates instead.
func (e *Estimator) CalculateReach(monthlyReach int, bounceRate, dropRate *float64) domain.ReachEstimate {
	tier := TierFor(monthlyReach)

	bounce := bounceRateMin + rand.Float64()*(bounceRateMax-bounceRateMin)
	if bounceRate != nil {
		bounce = *bounceRate
	}

	drop := dropRateMin + rand.Float64()*(dropRateMax-dropRateMin)
	if dropRate != nil {
		drop = *dropRate
	}

	base := float64(monthlyReach) * tier.Percentage

	// snap to 6 decimals first so exact half-way products are not
	// dragged below .5 by float noise
	final := math.Round(base*(1-bounce)*(1-drop)*1e6) / 1e6

	return domain.ReachEstimate{
		MonthlyReach:         monthlyReach,
		PercentageMultiplier: tier.Percentage,
		BaseEstimatedReach:   base,
		BounceRate:           bounce,
		DropRate:             drop,
		FinalEstimatedReach:  int(math.Round(final)),
		ReachRange:           tier.Label,
	}
}

// lookupPublication finds the first table entry whose fragment appears
// in the source name.
func (e *Estimator) lookupPublication(sourceName string) (int, bool) {
	name := strings.ToLower(sourceName)
	if name == "" {
		return 0, false
	}
	for _, pub := range e.publications {
		if strings.Contains(name, pub.Fragment) {
			return pub.MonthlyReach, true
		}
	}
	return 0, false
}

// domainFloor inspects the URL's host for TLDs and platforms with a
// known audience floor. An unparseable URL degrades to the remaining
// signals rather than failing the estimate.
func (e *Estimator) domainFloor(rawURL string) (int, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		if e.deps.Logger != nil {
			e.deps.Logger.Warn("Unparseable source URL, estimating from name only", map[string]interface{}{
				"url": rawURL,
			})
		}
		return 0, false
	}

	host := strings.ToLower(parsed.Hostname())
	for _, floor := range domainFloors {
		if floor.suffix != "" && strings.HasSuffix(host, floor.suffix) {
			return floor.monthlyReach, true
		}
		if floor.host != "" && (host == floor.host || strings.HasSuffix(host, "."+floor.host)) {
			return floor.monthlyReach, true
		}
	}
	return 0, false
}

// isPopularKeyword reports whether the keyword contains any of the
// popular terms. Substring containment keeps multi-word keywords like
// "ai startups" eligible; the occasional accidental hit only nudges
// the estimate by the popularity multiplier.
func (e *Estimator) isPopularKeyword(keyword string) bool {
	norm := strings.ToLower(strings.TrimSpace(keyword))
	if norm == "" {
		return false
	}
	for _, term := range e.popular {
		if strings.Contains(norm, term) {
			return true
		}
	}
	return false
}

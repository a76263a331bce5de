// ABOUTME: Tiered percentage model converting publication-level reach into article-level reach
// ABOUTME: Bigger publications spread attention across more content, so their per-article share shrinks

package reach

// Tier maps a monthly-reach range onto the fraction of that audience a
// single article plausibly captures.
type Tier struct {
	// MinMonthlyReach is the inclusive lower bound of the range
	MinMonthlyReach int

	// Percentage is the per-article multiplier for the range
	Percentage float64

	// Label is the human-readable range name surfaced in breakdowns
	Label string
}

// reachTiers is evaluated top down; the first range containing the
// monthly reach wins. The final entry is the fallback for anything
// below the lowest explicit bound.
var reachTiers = []Tier{
	{MinMonthlyReach: 25_000_000, Percentage: 0.01, Label: "25M+"},
	{MinMonthlyReach: 15_000_000, Percentage: 0.015, Label: "15M-25M"},
	{MinMonthlyReach: 5_000_000, Percentage: 0.02, Label: "5M-15M"},
	{MinMonthlyReach: 1_000_000, Percentage: 0.025, Label: "1M-5M"},
	{MinMonthlyReach: 500_000, Percentage: 0.03, Label: "500K-1M"},
	{MinMonthlyReach: 250_000, Percentage: 0.05, Label: "250K-500K"},
	{MinMonthlyReach: 10_000, Percentage: 0.10, Label: "10K-250K"},
	{MinMonthlyReach: 0, Percentage: 0.10, Label: "Under 10K"},
}

// TierFor returns the tier whose range contains monthlyReach.
func TierFor(monthlyReach int) Tier {
	for _, tier := range reachTiers {
		if monthlyReach >= tier.MinMonthlyReach {
			return tier
		}
	}
	return reachTiers[len(reachTiers)-1]
}

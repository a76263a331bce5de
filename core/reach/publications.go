// ABOUTME: Default lookup data for publication reach, domain floors and popular keywords
// ABOUTME: Fragment matching is fragile by nature, so the tables are injectable rather than baked into the estimator

package reach

// PublicationReach maps a name fragment onto an estimated monthly
// audience. Entries are checked in order against the lowercased source
// name and the first match wins, so more specific fragments belong
// before shorter ones.
type PublicationReach struct {
	Fragment     string
	MonthlyReach int
}

// DefaultPublicationTable holds audience estimates for major outlets.
var DefaultPublicationTable = []PublicationReach{
	{Fragment: "wall street journal", MonthlyReach: 15_000_000},
	{Fragment: "new york times", MonthlyReach: 30_000_000},
	{Fragment: "washington post", MonthlyReach: 25_000_000},
	{Fragment: "business insider", MonthlyReach: 8_500_000},
	{Fragment: "usa today", MonthlyReach: 14_000_000},
	{Fragment: "daily mail", MonthlyReach: 28_000_000},
	{Fragment: "fox news", MonthlyReach: 22_000_000},
	{Fragment: "huffpost", MonthlyReach: 6_000_000},
	{Fragment: "huffington", MonthlyReach: 6_000_000},
	{Fragment: "bbc", MonthlyReach: 50_000_000},
	{Fragment: "cnn", MonthlyReach: 45_000_000},
	{Fragment: "msn", MonthlyReach: 40_000_000},
	{Fragment: "yahoo", MonthlyReach: 35_000_000},
	{Fragment: "nytimes", MonthlyReach: 30_000_000},
	{Fragment: "guardian", MonthlyReach: 24_000_000},
	{Fragment: "reuters", MonthlyReach: 20_000_000},
	{Fragment: "bloomberg", MonthlyReach: 18_000_000},
	{Fragment: "forbes", MonthlyReach: 16_000_000},
	{Fragment: "wsj", MonthlyReach: 15_000_000},
	{Fragment: "nbc", MonthlyReach: 12_000_000},
	{Fragment: "abc", MonthlyReach: 11_000_000},
	{Fragment: "cbs", MonthlyReach: 10_000_000},
	{Fragment: "techcrunch", MonthlyReach: 9_000_000},
	{Fragment: "the verge", MonthlyReach: 8_000_000},
	{Fragment: "wired", MonthlyReach: 7_000_000},
	{Fragment: "engadget", MonthlyReach: 5_000_000},
}

// domainFloor raises the estimate for URL domains that imply an
// established audience. Floors only ever raise an estimate via max().
type domainFloor struct {
	suffix       string
	host         string
	monthlyReach int
}

var domainFloors = []domainFloor{
	{suffix: ".gov", monthlyReach: 2_000_000},
	{suffix: ".edu", monthlyReach: 1_000_000},
	{suffix: ".org", monthlyReach: 500_000},
	{host: "medium.com", monthlyReach: 1_500_000},
	{host: "substack.com", monthlyReach: 300_000},
	{host: "wordpress.com", monthlyReach: 200_000},
}

// DefaultPopularKeywords lists technology and finance adjacent terms
// that attract outsized coverage. A keyword containing any of them
// gets the popularity multiplier.
var DefaultPopularKeywords = []string{
	"technology",
	"bitcoin",
	"crypto",
	"finance",
	"startup",
	"iphone",
	"android",
	"apple",
	"google",
	"tesla",
	"stock",
	"tech",
	"ai",
}

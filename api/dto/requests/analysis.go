// ABOUTME: Request DTOs for reputation analysis endpoints
// ABOUTME: Provides validation tags and default values for incoming requests

package requests

import "time"

// EngagementRequest carries the engagement counters of a content item
type EngagementRequest struct {
	Views    int `json:"views,omitempty" minimum:"0" doc:"View count"`
	Shares   int `json:"shares,omitempty" minimum:"0" doc:"Share count"`
	Comments int `json:"comments,omitempty" minimum:"0" doc:"Comment count"`
	Likes    int `json:"likes,omitempty" minimum:"0" doc:"Like count"`
}

// ContentItemRequest represents a single monitored content item
type ContentItemRequest struct {
	ID             string             `json:"id,omitempty" doc:"Unique identifier for the item"`
	Title          string             `json:"title,omitempty" doc:"Article title"`
	Description    string             `json:"description,omitempty" doc:"Article description or summary, may contain HTML"`
	URL            string             `json:"url,omitempty" doc:"Link to the article"`
	PublishedAt    time.Time          `json:"publishedAt,omitempty" doc:"Publication timestamp"`
	SourceName     string             `json:"sourceName,omitempty" doc:"Name of the publishing outlet"`
	Keyword        string             `json:"keyword,omitempty" doc:"Keyword the item was collected under"`
	SentimentScore int                `json:"sentimentScore,omitempty" minimum:"-100" maximum:"100" doc:"Sentiment score in [-100, 100]"`
	SentimentLabel string             `json:"sentimentLabel,omitempty" enum:"positive,negative,neutral" doc:"Tri-state sentiment label"`
	Engagement     *EngagementRequest `json:"engagement,omitempty" doc:"Optional engagement counters"`
	VoiceOfShare   int                `json:"voiceOfShare,omitempty" minimum:"0" doc:"Previously computed voice-of-share figure, 0 when absent"`
}

// AnalyzeRequest is the body for the sentiment analysis endpoint
type AnalyzeRequest struct {
	// Keyword is the brand or topic keyword to analyze
	Keyword string `json:"keyword" required:"true" minLength:"1" doc:"Keyword to analyze"`

	// Items is the content pool to match and aggregate
	Items []ContentItemRequest `json:"items" maxItems:"10000" doc:"Content items to analyze"`
}

// ApplyDefaults sets default values for optional fields
func (r *AnalyzeRequest) ApplyDefaults() {
	if r.Items == nil {
		r.Items = []ContentItemRequest{}
	}
}

// AnalyzeBulkRequest is the body for the multi-keyword analysis endpoint
type AnalyzeBulkRequest struct {
	// Keywords are the brand or topic keywords to analyze in one pass
	Keywords []string `json:"keywords" minItems:"1" maxItems:"100" doc:"Keywords to analyze"`

	// Items is the shared content pool matched against every keyword
	Items []ContentItemRequest `json:"items" maxItems:"10000" doc:"Content items to analyze"`
}

// ApplyDefaults sets default values for optional fields
func (r *AnalyzeBulkRequest) ApplyDefaults() {
	if r.Items == nil {
		r.Items = []ContentItemRequest{}
	}
}

// CompareRequest is the body for the brand comparison endpoint
type CompareRequest struct {
	// BrandKeyword is the keyword being monitored
	BrandKeyword string `json:"brandKeyword" required:"true" minLength:"1" doc:"Brand keyword"`

	// CompetitorKeyword is the keyword compared against
	CompetitorKeyword string `json:"competitorKeyword" required:"true" minLength:"1" doc:"Competitor keyword"`

	// BrandItems is the content pool attributed to the brand
	BrandItems []ContentItemRequest `json:"brandItems" maxItems:"10000" doc:"Content items for the brand keyword"`

	// CompetitorItems is the content pool attributed to the competitor
	CompetitorItems []ContentItemRequest `json:"competitorItems" maxItems:"10000" doc:"Content items for the competitor keyword"`
}

// ApplyDefaults sets default values for optional fields
func (r *CompareRequest) ApplyDefaults() {
	if r.BrandItems == nil {
		r.BrandItems = []ContentItemRequest{}
	}
	if r.CompetitorItems == nil {
		r.CompetitorItems = []ContentItemRequest{}
	}
}

// ReachRequest is the body for the reach estimation endpoint.
// When MonthlyReach is zero the monthly figure is estimated from the
// source name, URL, keyword and engagement; otherwise it is used as-is.
type ReachRequest struct {
	SourceName string             `json:"sourceName,omitempty" doc:"Name of the publishing outlet"`
	URL        string             `json:"url,omitempty" doc:"Article URL"`
	Keyword    string             `json:"keyword,omitempty" doc:"Keyword the article was collected under"`
	Engagement *EngagementRequest `json:"engagement,omitempty" doc:"Optional engagement counters"`

	// MonthlyReach, when positive, bypasses estimation
	MonthlyReach int `json:"monthlyReach,omitempty" minimum:"0" doc:"Explicit publication monthly reach; 0 estimates it"`

	// BounceRate and DropRate pin the attrition rates; both are
	// randomized when absent
	BounceRate *float64 `json:"bounceRate,omitempty" minimum:"0" maximum:"1" doc:"Homepage bounce rate in [0, 1]"`
	DropRate   *float64 `json:"dropRate,omitempty" minimum:"0" maximum:"1" doc:"Article drop-off rate in [0, 1]"`
}

// VoiceOfShareRequest is the body for the portfolio voice-of-share endpoint
type VoiceOfShareRequest struct {
	// Items is the content set to roll up
	Items []ContentItemRequest `json:"items" maxItems:"10000" doc:"Content items to aggregate"`
}

// ApplyDefaults sets default values for optional fields
func (r *VoiceOfShareRequest) ApplyDefaults() {
	if r.Items == nil {
		r.Items = []ContentItemRequest{}
	}
}

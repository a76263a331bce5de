// ABOUTME: ContentItem domain model represents a single monitored article or social post
// ABOUTME: Provides validation and defaulting for sparse third-party data

package domain

import "time"

// ContentItem represents a single piece of monitored content: a news
// article or a social-media post collected for a user keyword.
type ContentItem struct {
	// ID is the source-system identifier for the item
	ID string

	// Title is the item's headline
	Title string

	// Description contains the item's summary or body text (may be empty)
	Description string

	// URL is the link to the full article or post
	URL string

	// PublishedAt is when the item was published
	PublishedAt time.Time

	// SourceName is the publication or platform display name
	SourceName string

	// Keyword is the keyword under which the item was originally
	// collected. It may differ from the keyword later matched against.
	Keyword string

	// SentimentScore is a signed polarity score, conventionally in
	// [-100, 100] with 0 meaning neutral. Absent scores are stored as 0.
	SentimentScore int

	// SentimentLabel is the human-readable label attached by the
	// upstream scorer. Informational only.
	SentimentLabel string

	// Engagement holds optional interaction counts
	Engagement *Engagement

	// VoiceOfShare is a previously computed per-article voice-of-share
	// figure. Zero means it has not been computed yet.
	VoiceOfShare int
}

// Engagement holds interaction counts for a content item. All counts
// are non-negative; missing sub-fields default to 0.
type Engagement struct {
	Views    int
	Shares   int
	Comments int
	Likes    int
}

// Total computes the weighted engagement figure used by the reach
// estimator. Shares weigh heaviest because they multiply exposure.
func (e *Engagement) Total() int {
	if e == nil {
		return 0
	}
	return e.Views + e.Shares*10 + e.Comments*5 + e.Likes*2
}

// Score returns the item's sentiment score, defaulting absent data to 0.
func (ci *ContentItem) Score() int {
	if ci == nil {
		return 0
	}
	return ci.SentimentScore
}

// Label returns the sentiment label, defaulting to "neutral" when the
// upstream scorer supplied none.
func (ci *ContentItem) Label() string {
	if ci == nil || ci.SentimentLabel == "" {
		return "neutral"
	}
	return ci.SentimentLabel
}

// IsValid checks if the content item has the fields every downstream
// computation relies on.
func (ci *ContentItem) IsValid() bool {
	if ci.ID == "" {
		return false
	}

	if ci.Title == "" {
		return false
	}

	return true
}

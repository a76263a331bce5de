// ABOUTME: Layered keyword matching for content items
// ABOUTME: Exact and keyword-field checks run before free-text scanning to balance recall and precision

package match

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"reputraq-api/core/domain"
	"reputraq-api/pkg/utils/htmltext"
)

// minFreeTextKeywordLen is the shortest normalized keyword that may
// trigger title/description scanning. Shorter keywords only match on
// the keyword field, which avoids flooding two-letter terms with
// accidental hits.
const minFreeTextKeywordLen = 3

// Matcher decides whether a content item is about a given keyword.
// It is a pure predicate: stateless, side-effect free and safe for
// concurrent use.
type Matcher struct{}

// NewMatcher creates a new keyword matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Matches reports whether item is about keyword. The checks run in
// priority order; any one passing means a match:
//
//  1. case-sensitive equality of the item's collection keyword
//  2. case-insensitive equality after trimming
//  3. case-insensitive substring containment in either direction,
//     only when the item's keyword is longer than two characters
//  4. word-boundary scan of title and description, only when the
//     normalized keyword has at least three characters
//
// An empty or whitespace-only keyword matches nothing.
func (m *Matcher) Matches(item *domain.ContentItem, keyword string) bool {
	if item == nil {
		return false
	}

	normKeyword := normalize(keyword)
	if normKeyword == "" {
		return false
	}

	if item.Keyword != "" && item.Keyword == keyword {
		return true
	}

	normItem := normalize(item.Keyword)
	if normItem != "" && normItem == normKeyword {
		return true
	}

	if len(normItem) > 2 {
		if strings.Contains(normItem, normKeyword) || strings.Contains(normKeyword, normItem) {
			return true
		}
	}

	if utf8.RuneCountInString(normKeyword) >= minFreeTextKeywordLen {
		re := wordBoundaryPattern(normKeyword)
		if re.MatchString(normalize(htmltext.ToText(item.Title))) {
			return true
		}
		if re.MatchString(normalize(htmltext.ToText(item.Description))) {
			return true
		}
	}

	return false
}

// Filter returns the items matching keyword, preserving input order.
// The result is never nil.
func (m *Matcher) Filter(items []domain.ContentItem, keyword string) []domain.ContentItem {
	matched := make([]domain.ContentItem, 0, len(items))
	for i := range items {
		if m.Matches(&items[i], keyword) {
			matched = append(matched, items[i])
		}
	}
	return matched
}

// FilterComprehensive filters both a pre-windowed subset and the full
// content pool, returning whichever result is larger. A caller with a
// date-windowed query gets more complete matching when the full pool
// turns up items the window missed.
func (m *Matcher) FilterComprehensive(windowed, fullPool []domain.ContentItem, keyword string) []domain.ContentItem {
	windowedMatches := m.Filter(windowed, keyword)
	fullMatches := m.Filter(fullPool, keyword)

	if len(fullMatches) > len(windowedMatches) {
		return fullMatches
	}
	return windowedMatches
}

// FilterAll matches one pool against many keywords at once through
// the Aho-Corasick prefilter. Results equal calling Filter per
// keyword; every keyword gets an entry.
func (m *Matcher) FilterAll(items []domain.ContentItem, keywords []string) map[string][]domain.ContentItem {
	return NewBulkMatcher(keywords).MatchAll(items)
}

// normalize trims and lowercases a string for comparison
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// wordBoundaryPattern compiles a case-insensitive word-boundary
// pattern for an already-normalized keyword. Regex metacharacters in
// the keyword are escaped so user input can never break compilation.
func wordBoundaryPattern(normKeyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(normKeyword) + `\b`)
}

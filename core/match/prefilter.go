// ABOUTME: Bulk keyword matching with an Aho-Corasick prefilter
// ABOUTME: One automaton pass per item replaces a regex scan per keyword when matching many keywords

package match

import (
	"strings"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"

	"reputraq-api/core/domain"
	"reputraq-api/pkg/utils/htmltext"
)

// BulkMatcher matches one content pool against many keywords at once.
// The keyword-field checks stay per keyword (they are cheap string
// comparisons), while the free-text layer runs through a single
// Aho-Corasick automaton built over the scannable keywords. A hit only
// nominates a keyword; the word-boundary pattern still confirms it, so
// results are identical to running Matcher.Filter per keyword.
type BulkMatcher struct {
	keywords []string

	// scannable holds the keywords eligible for free-text matching, in
	// automaton dictionary order
	scannable []string
	automaton *ahocorasick.Matcher
}

// NewBulkMatcher builds a bulk matcher for the given keywords.
func NewBulkMatcher(keywords []string) *BulkMatcher {
	bm := &BulkMatcher{
		keywords: keywords,
	}

	for _, kw := range keywords {
		norm := normalize(kw)
		if utf8.RuneCountInString(norm) >= minFreeTextKeywordLen {
			bm.scannable = append(bm.scannable, norm)
		}
	}

	if len(bm.scannable) > 0 {
		bm.automaton = ahocorasick.NewStringMatcher(bm.scannable)
	}

	return bm
}

// MatchAll filters items against every keyword and returns the matched
// items per keyword. Every keyword has an entry, even when nothing
// matched.
func (bm *BulkMatcher) MatchAll(items []domain.ContentItem) map[string][]domain.ContentItem {
	results := make(map[string][]domain.ContentItem, len(bm.keywords))
	for _, kw := range bm.keywords {
		results[kw] = []domain.ContentItem{}
	}

	for i := range items {
		item := &items[i]
		nominated := bm.nominate(item)

		for _, kw := range bm.keywords {
			if bm.matchesWithNominations(item, kw, nominated) {
				results[kw] = append(results[kw], items[i])
			}
		}
	}

	return results
}

// nominate runs the automaton over the item's normalized free text and
// returns the set of scannable keywords present as substrings.
func (bm *BulkMatcher) nominate(item *domain.ContentItem) map[string]bool {
	if bm.automaton == nil {
		return nil
	}

	text := normalize(htmltext.ToText(item.Title)) + " " + normalize(htmltext.ToText(item.Description))

	hits := bm.automaton.Match([]byte(text))
	if len(hits) == 0 {
		return nil
	}

	nominated := make(map[string]bool, len(hits))
	for _, idx := range hits {
		nominated[bm.scannable[idx]] = true
	}
	return nominated
}

// matchesWithNominations mirrors Matcher.Matches but consults the
// automaton nominations before paying for a word-boundary scan.
func (bm *BulkMatcher) matchesWithNominations(item *domain.ContentItem, keyword string, nominated map[string]bool) bool {
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

	if !nominated[normKeyword] {
		return false
	}

	re := wordBoundaryPattern(normKeyword)
	if re.MatchString(normalize(htmltext.ToText(item.Title))) {
		return true
	}
	return re.MatchString(normalize(htmltext.ToText(item.Description)))
}

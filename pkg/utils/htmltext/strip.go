// ABOUTME: HTML to plain-text conversion for keyword matching input
// ABOUTME: Social and news descriptions often arrive with markup that would break word-boundary scans

package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ToText strips markup from an HTML fragment and returns normalized
// plain text. Input that is not HTML passes through with whitespace
// collapsed. On parse failure the raw input is returned rather than
// losing the text entirely.
func ToText(fragment string) string {
	if fragment == "" {
		return ""
	}

	if !strings.ContainsRune(fragment, '<') {
		return collapse(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}

	doc.Find("script, style").Remove()

	return collapse(doc.Text())
}

// collapse trims the string and replaces runs of whitespace with a
// single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

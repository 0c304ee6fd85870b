package checks

import (
	"regexp"
	"strings"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
)

var (
	urlPattern    = regexp.MustCompile(`https?://\S+`)
	schemePattern = regexp.MustCompile(`^https?://`)
)

// ExtractURLs pulls http(s) URLs out of free text. Used when the payload
// carries no explicit link list.
func ExtractURLs(rawText string) []string {
	return urlPattern.FindAllString(rawText, -1)
}

// LinkRisk inspects each URL's host for shortener domains, suspicious
// TLDs, and character-substitution look-alikes of known brands.
// Penalties accumulate per URL; the score floors at 0.
func LinkRisk(urls []string) models.LinkRiskResult {
	var suspicious, short []string
	score := 100

	for _, url := range urls {
		host := schemePattern.ReplaceAllString(url, "")
		if i := strings.Index(host, "/"); i >= 0 {
			host = host[:i]
		}
		host = strings.ToLower(host)

		for _, s := range urlShorteners {
			if strings.HasPrefix(host, s) {
				short = append(short, url)
				score -= 10
				break
			}
		}

		for _, tld := range suspiciousLinkTLDs {
			if strings.HasSuffix(host, tld) {
				suspicious = append(suspicious, url)
				score -= 15
				break
			}
		}

		if containsAny(host, lookalikeChars) && containsAny(host, lookalikeBrands) {
			suspicious = append(suspicious, url)
			score -= 20
		}
	}

	return models.LinkRiskResult{
		Score:           clampScore(score),
		SuspiciousLinks: suspicious,
		ShortLinks:      short,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

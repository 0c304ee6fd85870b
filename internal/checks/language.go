package checks

import (
	"strings"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
)

// LanguageRisk scans the offer text for risk phrases and informal-channel
// mentions. Starts at 100; each risk-phrase hit costs 10 (capped at 70),
// each messenger hit costs 5 (capped at 20).
func LanguageRisk(rawText string) models.LanguageRiskResult {
	text := strings.ToLower(rawText)

	var riskHits []string
	for _, p := range riskyLanguagePatterns {
		if p.MatchString(text) {
			riskHits = append(riskHits, p.String())
		}
	}

	var messengerHits []string
	for _, p := range messengerPatterns {
		if p.MatchString(text) {
			messengerHits = append(messengerHits, p.String())
		}
	}

	score := 100
	score -= min(70, 10*len(riskHits))
	score -= min(20, 5*len(messengerHits))

	return models.LanguageRiskResult{
		Score:             clampScore(score),
		RiskPhrases:       riskHits,
		MessengerMentions: messengerHits,
	}
}

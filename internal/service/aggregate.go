package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
)

// Sub-score weights. They sum to 1.00 and are part of the scoring
// contract; do not retune.
const (
	weightCompany     = 0.20
	weightLanguage    = 0.15
	weightSalary      = 0.10
	weightLinks       = 0.05
	weightInterview   = 0.10
	weightStructure   = 0.10
	weightDocument    = 0.10
	weightRole        = 0.10
	weightExistence   = 0.05
	weightScamReports = 0.05
)

const maxReasons = 12

// ScamReportScore converts a community report count into a trust
// sub-score: each report costs 15 points, floored at 0.
func ScamReportScore(reportsCount int) int {
	score := 100 - 15*reportsCount
	if score < 0 {
		return 0
	}
	return score
}

// Aggregate combines all sub-check scores into the final trust object.
// It is a pure function of the analysis and the report count, so it can
// be tested without storage or network.
func Aggregate(a *models.OfferAnalysis, reportsCount int) models.FinalTrust {
	weighted := float64(a.CompanyAuthenticity.Score)*weightCompany +
		float64(a.LanguageRisk.Score)*weightLanguage +
		float64(a.SalaryPlausibility.Score)*weightSalary +
		float64(a.LinkRisk.Score)*weightLinks +
		float64(a.Interview.Score)*weightInterview +
		float64(a.OfferStructure.Score)*weightStructure +
		float64(a.DocumentIntegrity.Score)*weightDocument +
		float64(a.RoleConsistency.Score)*weightRole +
		float64(a.CompanyExistence.Score)*weightExistence +
		float64(ScamReportScore(reportsCount))*weightScamReports

	score := int(math.Round(weighted))
	verdict, color := classify(score)

	return models.FinalTrust{
		Score:        score,
		Verdict:      verdict,
		VerdictColor: color,
		Reasons:      collectReasons(a, reportsCount),
	}
}

func classify(score int) (verdict, color string) {
	switch {
	case score >= 80:
		return models.VerdictLikelyGenuine, "green"
	case score >= 60:
		return models.VerdictNeedsVerification, "yellow"
	default:
		return models.VerdictHighScamRisk, "red"
	}
}

// collectReasons concatenates every sub-check's flags in check order,
// then the derived summary notes, and caps the list for the UI. No
// deduplication or reordering beyond that.
func collectReasons(a *models.OfferAnalysis, reportsCount int) []string {
	var reasons []string
	reasons = append(reasons, a.CompanyAuthenticity.Flags...)
	reasons = append(reasons, a.SalaryPlausibility.Flags...)
	reasons = append(reasons, a.Interview.Flags...)
	reasons = append(reasons, a.CompanyExistence.Flags...)

	if len(a.LanguageRisk.RiskPhrases) > 0 {
		reasons = append(reasons, fmt.Sprintf("High-risk language patterns detected: %s",
			strings.Join(a.LanguageRisk.RiskPhrases, ", ")))
	}
	if len(a.LanguageRisk.MessengerMentions) > 0 {
		reasons = append(reasons, "Mentions of WhatsApp/Telegram/Signal in the offer text, which is unusual for formal offers.")
	}
	if len(a.LinkRisk.SuspiciousLinks) > 0 {
		reasons = append(reasons, fmt.Sprintf("Suspicious links found: %s",
			strings.Join(a.LinkRisk.SuspiciousLinks, ", ")))
	}
	if reportsCount > 0 {
		reasons = append(reasons, fmt.Sprintf("This letter hash has been reported as scam %d time(s) by other users.", reportsCount))
	}
	if len(a.OfferStructure.MissingSections) > 0 {
		reasons = append(reasons, fmt.Sprintf("Missing important sections: %s",
			strings.Join(a.OfferStructure.MissingSections, ", ")))
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

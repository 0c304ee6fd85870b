package checks

import (
	"strings"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
)

// InterviewPlausibility scores how believable the reported interview
// process is. A nil info is treated as "no interview occurred". All
// penalties are independent and additive; the score floors at 0.
func InterviewPlausibility(info *models.InterviewInfo) models.InterviewResult {
	score := 100
	var flags []string

	hadInterview := info != nil && info.HadInterview

	if !hadInterview {
		flags = append(flags, "Candidate reports no interview occurred before offer.")
		score -= 35
	} else {
		channel := strings.ToLower(info.Channel)
		if strings.Contains(channel, "whatsapp") || strings.Contains(channel, "telegram") {
			flags = append(flags, "Interview was conducted via WhatsApp/Telegram.")
			score -= 30
		} else if strings.Contains(channel, "phone") || strings.Contains(channel, "call") {
			flags = append(flags, "Interview was only an audio call; verify carefully.")
			score -= 10
		}
	}

	if info != nil && info.DurationMinutes != nil {
		switch d := *info.DurationMinutes; {
		case d < 5:
			flags = append(flags, "Interview duration was less than 5 minutes.")
			score -= 20
		case d < 15:
			flags = append(flags, "Interview duration was very short (< 15 minutes).")
			score -= 10
		}
	}

	if info != nil && info.AskedTechnical != nil && !*info.AskedTechnical {
		flags = append(flags, "No technical questions were asked for a technical-looking role.")
		score -= 20
	}

	return models.InterviewResult{Score: clampScore(score), Flags: flags}
}

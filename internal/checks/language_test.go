package checks_test

import (
	"testing"

	"github.com/shashankpendyala3549-commits/backend/internal/checks"
)

func TestLanguageRisk_CleanText(t *testing.T) {
	res := checks.LanguageRisk("We are pleased to offer you the position of Software Engineer.")
	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	if len(res.RiskPhrases) != 0 || len(res.MessengerMentions) != 0 {
		t.Errorf("expected no hits, got %v / %v", res.RiskPhrases, res.MessengerMentions)
	}
}

func TestLanguageRisk_SingleRiskPhrase(t *testing.T) {
	res := checks.LanguageRisk("Please pay the Processing Fee to confirm your seat.")
	if res.Score != 90 {
		t.Errorf("score = %d, want 90", res.Score)
	}
	if len(res.RiskPhrases) != 1 || res.RiskPhrases[0] != "processing fee" {
		t.Errorf("risk phrases = %v, want [processing fee]", res.RiskPhrases)
	}
}

func TestLanguageRisk_RiskPenaltyCapped(t *testing.T) {
	// Eight distinct risk phrases: 8*10 = 80, capped at 70.
	text := "processing fee registration fee training fee refundable fee " +
		"urgent payment security deposit certificate fee no interview required"
	res := checks.LanguageRisk(text)
	if res.Score != 30 {
		t.Errorf("score = %d, want 30 (100 - 70 cap)", res.Score)
	}
	if len(res.RiskPhrases) != 8 {
		t.Errorf("risk phrase count = %d, want 8", len(res.RiskPhrases))
	}
}

func TestLanguageRisk_MessengerPenaltyCapped(t *testing.T) {
	// Five messenger patterns: whatsapp, wa.me/, +number whatsapp,
	// telegram, t.me/. 5*5 = 25, capped at 20.
	text := "message +911234567890 on whatsapp or wa.me/offer or telegram t.me/offer"
	res := checks.LanguageRisk(text)
	if len(res.MessengerMentions) != 5 {
		t.Fatalf("messenger mention count = %d, want 5 (%v)", len(res.MessengerMentions), res.MessengerMentions)
	}
	if res.Score != 80 {
		t.Errorf("score = %d, want 80 (100 - 20 cap)", res.Score)
	}
}

func TestLanguageRisk_CaseInsensitive(t *testing.T) {
	res := checks.LanguageRisk("URGENT PAYMENT required, contact us on WHATSAPP")
	if len(res.RiskPhrases) != 1 {
		t.Errorf("risk phrases = %v, want one hit", res.RiskPhrases)
	}
	if len(res.MessengerMentions) != 1 {
		t.Errorf("messenger mentions = %v, want one hit", res.MessengerMentions)
	}
	if res.Score != 85 {
		t.Errorf("score = %d, want 85", res.Score)
	}
}

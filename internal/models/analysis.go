package models

// Verdict labels for the final trust score.
const (
	VerdictLikelyGenuine     = "Likely Genuine"
	VerdictNeedsVerification = "Needs Verification"
	VerdictHighScamRisk      = "High Scam Risk"
)

// Report status values derived from the scam report counter.
const (
	StatusReportedScam = "reported_scam"
	StatusNotReported  = "not_reported"
)

// CompanyAuthResult is the outcome of the company authenticity check.
type CompanyAuthResult struct {
	Score           int      `json:"score"`
	Domain          string   `json:"domain,omitempty"`
	UsedFreeEmail   bool     `json:"used_free_email"`
	DomainReachable bool     `json:"domain_reachable"`
	HTTPSOk         bool     `json:"https_ok"`
	Flags           []string `json:"flags"`
}

// LanguageRiskResult records which risk-phrase and messenger patterns
// matched the offer text.
type LanguageRiskResult struct {
	Score             int      `json:"score"`
	RiskPhrases       []string `json:"risk_phrases"`
	MessengerMentions []string `json:"whatsapp_telegram_mentions"`
}

// SalaryCheckResult is the outcome of the salary plausibility check.
// ParsedAmount is nil when no numeric amount could be extracted.
type SalaryCheckResult struct {
	Score        int      `json:"score"`
	ParsedAmount *float64 `json:"parsed_amount"`
	Flags        []string `json:"flags"`
}

// LinkRiskResult lists the URLs that tripped shortener, TLD, or
// look-alike heuristics.
type LinkRiskResult struct {
	Score           int      `json:"score"`
	SuspiciousLinks []string `json:"suspicious_links"`
	ShortLinks      []string `json:"short_links"`
}

// InterviewResult is the outcome of the interview plausibility check.
type InterviewResult struct {
	Score int      `json:"score"`
	Flags []string `json:"flags"`
}

// StructureResult records which expected offer-letter sections were found.
type StructureResult struct {
	Score           int             `json:"score"`
	SectionsFound   map[string]bool `json:"sections_found"`
	MissingSections []string        `json:"missing_sections"`
}

// LLMCheckResult carries a delegated score plus the summarizer's free-text
// explanation. Summary is empty when the summarizer is unavailable.
type LLMCheckResult struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

// ExistenceResult is the outcome of the company existence check.
type ExistenceResult struct {
	Score         int      `json:"score"`
	CheckedDomain string   `json:"checked_domain,omitempty"`
	Flags         []string `json:"flags"`
}

// ReportStats is the persisted scam report counter for one offer hash.
type ReportStats struct {
	OfferHash    string `json:"offer_hash"`
	ReportsCount int    `json:"reports_count"`
	Status       string `json:"status"`
}

// FinalTrust is the aggregated verdict over all sub-checks.
type FinalTrust struct {
	Score        int      `json:"score"`
	Verdict      string   `json:"verdict"`
	VerdictColor string   `json:"verdict_color"`
	Reasons      []string `json:"reasons"`
}

// OfferAnalysis is the full verification response: every sub-check's
// score and findings plus the final aggregate.
type OfferAnalysis struct {
	RequestID           string             `json:"request_id"`
	OfferHash           string             `json:"offer_hash"`
	CompanyAuthenticity CompanyAuthResult  `json:"company_authenticity"`
	DocumentIntegrity   LLMCheckResult     `json:"document_integrity"`
	LanguageRisk        LanguageRiskResult `json:"language_risk"`
	SalaryPlausibility  SalaryCheckResult  `json:"salary_plausibility"`
	CompanyExistence    ExistenceResult    `json:"company_existence"`
	LinkRisk            LinkRiskResult     `json:"link_risk"`
	Interview           InterviewResult    `json:"interview_plausibility"`
	OfferStructure      StructureResult    `json:"offer_structure"`
	RoleConsistency     LLMCheckResult     `json:"role_consistency"`
	ScamReports         ReportStats        `json:"scam_reports"`
	FinalTrust          FinalTrust         `json:"final_trust"`
}

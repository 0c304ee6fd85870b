package models

// OfferPayload is the request body for offer verification.
// RawText is the only mandatory field; the handler rejects payloads whose
// raw text is empty after trimming.
type OfferPayload struct {
	CompanyName    string         `json:"company_name"`
	HREmail        string         `json:"hr_email"`
	RawText        string         `json:"raw_text"`
	SalaryAmount   any            `json:"salary_amount"` // JSON number or string ("₹25,000")
	SalaryCurrency string         `json:"salary_currency"`
	SalaryPeriod   string         `json:"salary_period"`
	JobRole        string         `json:"job_role"`
	RegionHint     string         `json:"region_hint"`
	Links          []string       `json:"links"`
	Interview      *InterviewInfo `json:"interview"`
}

// InterviewInfo describes how (and whether) the candidate was interviewed
// before receiving the offer. DurationMinutes and AskedTechnical are
// pointers so that "not provided" is distinguishable from zero/false.
type InterviewInfo struct {
	HadInterview    bool   `json:"had_interview"`
	Channel         string `json:"channel"`
	DurationMinutes *int   `json:"duration_minutes"`
	AskedTechnical  *bool  `json:"asked_technical"`
}

// ReportRequest is the body for scam report submission and lookups.
// Either the precomputed offer hash or the raw text may be supplied.
type ReportRequest struct {
	OfferHash string `json:"offer_hash"`
	RawText   string `json:"raw_text"`
}

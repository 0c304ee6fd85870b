// Package checks implements the heuristic sub-checks of the offer
// verification pipeline. Every check returns a score clamped to [0,100]
// plus human-readable flags; none of them ever fails the request.
package checks

import "regexp"

// officialHREmails maps a lower-cased company name to its known official
// recruiting addresses. A company present here whose HR email matches none
// of the listed addresses is penalized.
var officialHREmails = map[string][]string{
	"google":    {"no-reply@google.com", "careers@google.com"},
	"amazon":    {"no-reply@amazon.com", "campus-hire@amazon.com"},
	"microsoft": {"microsoft@e-mail.microsoft.com", "msrecruit@microsoft.com"},
	"accenture": {"careers@accenture.com", "recruitment@accenture.com"},
	"deloitte":  {"recruiting@deloitte.com", "campusrecruiting@deloitte.com"},
	"infosys":   {"hr@infosys.com", "recruitment@infosys.com"},
	"tcs":       {"hr@tcs.com", "recruitment@tcs.com"},
	"jpmorgan":  {"recruiting@jpmorgan.com"},
	"meta":      {"no-reply@fb.com", "recruiting@fb.com"},
}

var freeEmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"outlook.com":    true,
	"hotmail.com":    true,
	"rediffmail.com": true,
	"proton.me":      true,
	"icloud.com":     true,
}

// riskyLanguagePatterns match payment demands, urgency, no-interview
// claims, and confidentiality pressure. Matched pattern sources are
// recorded as evidence, not match locations.
var riskyLanguagePatterns = compileAll(
	`processing fee`,
	`registration fee`,
	`registration amount`,
	`training fee`,
	`refundable fee`,
	`urgent payment`,
	`pay.*before joining`,
	`no interview required`,
	`without any interview`,
	`confirm within 24 hours`,
	`confirm in 24 hours`,
	`do not share this offer`,
	`don[’']t share this offer`,
	`whatsapp .* joining`,
	`whatsapp only for communication`,
	`certificate fee`,
	`security deposit`,
	`slot will be given to next candidate`,
)

// messengerPatterns match informal communication channels that are
// unusual in legitimate offers.
var messengerPatterns = compileAll(
	`whatsapp`,
	`wa\.me/`,
	`\+?\d{10,13}.*whatsapp`,
	`telegram`,
	`t\.me/`,
	`signal`,
)

var suspiciousLinkTLDs = []string{
	".xyz",
	".top",
	".info",
	".pw",
	".click",
	".club",
	".icu",
}

var urlShorteners = []string{
	"bit.ly",
	"tinyurl.com",
	"is.gd",
	"t.co",
	"cutt.ly",
	"rb.gy",
}

// lookalikeBrands are brand substrings checked for character-substitution
// impersonation (digits 0/1/3 or @ in the host).
var lookalikeBrands = []string{"google", "amazon", "microsoft", "accenture"}

var lookalikeChars = []string{"0", "1", "3", "@"}

type salaryRange struct {
	Low  float64
	High float64
}

// salaryBenchmarks keys are "<region>_<bucket>_<period>". Coarse demo
// ranges carried over unchanged; their calibration is part of the scoring
// contract, not something to tune.
var salaryBenchmarks = map[string]salaryRange{
	"india_fresher_software_engineer_month": {20000, 90000},
	"india_fresher_data_analyst_month":      {20000, 80000},
	"india_intern_month":                    {0, 35000},
	"us_fresher_software_engineer_year":     {60000, 200000},
	"us_intern_month":                       {2000, 10000},
}

type section struct {
	Name     string
	Keywords []string
	Required bool
}

// offerSections are the expected offer-letter sections, probed by keyword
// presence. Order is fixed so missing-section lists are deterministic.
var offerSections = []section{
	{"offer_id", []string{"offer id", "reference no", "ref no"}, true},
	{"address", []string{"registered office", "corporate office", "address"}, false},
	{"joining_date", []string{"date of joining", "doj", "joining date"}, true},
	{"manager", []string{"reporting manager", "reports to", "supervisor"}, false},
	{"role", []string{"designation", "position", "job title", "role"}, true},
	{"ctc", []string{"ctc", "compensation", "salary structure", "remuneration"}, true},
	{"tnc", []string{"terms and conditions", "terms & conditions", "termination", "bond period"}, true},
	{"contact", []string{"hr contact", "contact number", "reach out to", "email us at"}, true},
	{"company_ids", []string{"gst", "pan", "cin"}, false},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
	"github.com/shashankpendyala3549-commits/backend/internal/netprobe"
)

// ExtractEmailDomain returns the lower-cased domain part of an email
// address, or "" when there is no "@".
func ExtractEmailDomain(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	i := strings.Index(email, "@")
	if i < 0 {
		return ""
	}
	return email[i+1:]
}

// CompanyAuthenticity scores how much the HR email looks like it belongs
// to the claimed company: free-mail providers, mismatches against known
// official addresses, and domain reachability all cost points.
func CompanyAuthenticity(ctx context.Context, companyName, hrEmail string, prober netprobe.Prober) models.CompanyAuthResult {
	var flags []string
	score := 100

	domain := ExtractEmailDomain(hrEmail)
	if domain == "" {
		flags = append(flags, "No valid HR email domain found.")
		score -= 25
		return models.CompanyAuthResult{Score: clampScore(score), Flags: flags}
	}

	usedFreeEmail := false
	if freeEmailDomains[domain] {
		usedFreeEmail = true
		flags = append(flags, fmt.Sprintf("HR email uses free provider (%s).", domain))
		score -= 35
	}

	company := strings.ToLower(strings.TrimSpace(companyName))
	if official, ok := officialHREmails[company]; ok {
		email := strings.ToLower(strings.TrimSpace(hrEmail))
		match := false
		for _, o := range official {
			if email == strings.ToLower(o) {
				match = true
				break
			}
		}
		if !match {
			flags = append(flags, "HR email does not match known official addresses for this company.")
			score -= 25
		}
	}

	probe := prober.Probe(ctx, domain)
	if !probe.Reachable() {
		flags = append(flags, "Company email domain does not appear to be reachable.")
		score -= 20
	}
	if probe.HTTPOk && !probe.HTTPSOk {
		flags = append(flags, "Domain only responds over HTTP (no HTTPS).")
		score -= 10
	}

	return models.CompanyAuthResult{
		Score:           clampScore(score),
		Domain:          domain,
		UsedFreeEmail:   usedFreeEmail,
		DomainReachable: probe.Reachable(),
		HTTPSOk:         probe.HTTPSOk,
		Flags:           flags,
	}
}

// CompanyExistence is the pure existence signal: it ignores free-mail and
// official-address concerns and only asks whether the domain answers.
func CompanyExistence(ctx context.Context, hrEmail string, prober netprobe.Prober) models.ExistenceResult {
	var flags []string
	score := 100

	domain := ExtractEmailDomain(hrEmail)
	if domain == "" {
		flags = append(flags, "No domain available to check company existence.")
		score -= 20
		return models.ExistenceResult{Score: clampScore(score), Flags: flags}
	}

	if !prober.Probe(ctx, domain).Reachable() {
		flags = append(flags, "Company domain did not respond over HTTP/HTTPS.")
		score -= 30
	}

	return models.ExistenceResult{
		Score:         clampScore(score),
		CheckedDomain: domain,
		Flags:         flags,
	}
}

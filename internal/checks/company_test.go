package checks_test

import (
	"context"
	"testing"

	"github.com/shashankpendyala3549-commits/backend/internal/checks"
	"github.com/shashankpendyala3549-commits/backend/internal/netprobe"
)

// fakeProber returns a fixed probe result for every domain.
type fakeProber struct {
	result netprobe.Result
}

func (f fakeProber) Probe(_ context.Context, _ string) netprobe.Result {
	return f.result
}

var (
	reachableHTTPS = fakeProber{netprobe.Result{Resolved: true, HTTPOk: true, HTTPSOk: true}}
	httpOnly       = fakeProber{netprobe.Result{Resolved: true, HTTPOk: true}}
	unreachable    = fakeProber{netprobe.Result{}}
)

func TestExtractEmailDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hr@example.com", "example.com"},
		{"  HR@Example.COM  ", "example.com"},
		{"no-at-sign", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := checks.ExtractEmailDomain(tc.in); got != tc.want {
			t.Errorf("ExtractEmailDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCompanyAuthenticity_NoDomain(t *testing.T) {
	res := checks.CompanyAuthenticity(context.Background(), "Acme", "not-an-email", reachableHTTPS)
	if res.Score != 75 {
		t.Errorf("score = %d, want 75", res.Score)
	}
	if len(res.Flags) != 1 || res.Flags[0] != "No valid HR email domain found." {
		t.Errorf("flags = %v", res.Flags)
	}
	if res.DomainReachable {
		t.Error("reachability should not be probed without a domain")
	}
}

func TestCompanyAuthenticity_FreeProvider(t *testing.T) {
	res := checks.CompanyAuthenticity(context.Background(), "Acme", "acmehr@gmail.com", reachableHTTPS)
	if res.Score != 65 {
		t.Errorf("score = %d, want 65", res.Score)
	}
	if !res.UsedFreeEmail {
		t.Error("UsedFreeEmail = false, want true")
	}
}

func TestCompanyAuthenticity_OfficialAddressMatch(t *testing.T) {
	res := checks.CompanyAuthenticity(context.Background(), "Google", "careers@google.com", reachableHTTPS)
	if res.Score != 100 {
		t.Errorf("score = %d, want 100 (flags: %v)", res.Score, res.Flags)
	}
}

func TestCompanyAuthenticity_OfficialAddressMismatch(t *testing.T) {
	res := checks.CompanyAuthenticity(context.Background(), "Google", "hr@google-campus.in", reachableHTTPS)
	if res.Score != 75 {
		t.Errorf("score = %d, want 75 (flags: %v)", res.Score, res.Flags)
	}
}

func TestCompanyAuthenticity_Unreachable(t *testing.T) {
	res := checks.CompanyAuthenticity(context.Background(), "Acme", "hr@acme-hiring.com", unreachable)
	if res.Score != 80 {
		t.Errorf("score = %d, want 80", res.Score)
	}
	if res.DomainReachable {
		t.Error("DomainReachable = true, want false")
	}
}

func TestCompanyAuthenticity_NoTLS(t *testing.T) {
	res := checks.CompanyAuthenticity(context.Background(), "Acme", "hr@acme-hiring.com", httpOnly)
	if res.Score != 90 {
		t.Errorf("score = %d, want 90", res.Score)
	}
	if res.HTTPSOk {
		t.Error("HTTPSOk = true, want false")
	}
}

func TestCompanyAuthenticity_PenaltiesStack(t *testing.T) {
	// Free provider (-35) + unreachable (-20).
	res := checks.CompanyAuthenticity(context.Background(), "Acme", "acmehr@gmail.com", unreachable)
	if res.Score != 45 {
		t.Errorf("score = %d, want 45", res.Score)
	}
}

func TestCompanyExistence(t *testing.T) {
	cases := []struct {
		name   string
		email  string
		prober fakeProber
		want   int
	}{
		{"reachable", "hr@acme.com", reachableHTTPS, 100},
		{"http only still exists", "hr@acme.com", httpOnly, 100},
		{"unreachable", "hr@acme.com", unreachable, 70},
		{"no domain", "nonsense", reachableHTTPS, 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := checks.CompanyExistence(context.Background(), tc.email, tc.prober)
			if res.Score != tc.want {
				t.Errorf("score = %d, want %d (flags: %v)", res.Score, tc.want, res.Flags)
			}
		})
	}
}

func TestCompanyExistence_IgnoresFreeMailConcerns(t *testing.T) {
	// Unlike the authenticity check, existence only asks whether the
	// domain answers.
	res := checks.CompanyExistence(context.Background(), "someone@gmail.com", reachableHTTPS)
	if res.Score != 100 {
		t.Errorf("score = %d, want 100 (flags: %v)", res.Score, res.Flags)
	}
}

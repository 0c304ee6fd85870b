// Package service runs the offer verification pipeline: nine independent
// heuristic checks fanned out concurrently, then a weighted aggregation
// into one trust score with explainable reasons.
package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shashankpendyala3549-commits/backend/internal/checks"
	"github.com/shashankpendyala3549-commits/backend/internal/gemini"
	"github.com/shashankpendyala3549-commits/backend/internal/models"
	"github.com/shashankpendyala3549-commits/backend/internal/netprobe"
	"github.com/shashankpendyala3549-commits/backend/pkg/offerhash"
)

// defaultLLMScore is used whenever the summarizer is absent, fails, or
// does not emit a parseable score line.
const defaultLLMScore = 60

var scorePattern = regexp.MustCompile(`SCORE:\s*(\d+)`)

// Summarizer is the optional natural-language scoring collaborator. The
// pipeline never blocks on its absence.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Verifier owns the external collaborators of the pipeline. A nil
// summarizer means the delegated checks degrade to the neutral default.
type Verifier struct {
	prober     netprobe.Prober
	summarizer Summarizer
	logger     *zap.Logger
}

// NewVerifier constructs a Verifier. summarizer may be nil.
func NewVerifier(prober netprobe.Prober, summarizer Summarizer, logger *zap.Logger) *Verifier {
	return &Verifier{
		prober:     prober,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Verify runs all sub-checks over the payload and aggregates them. The
// scam report count is supplied by the caller; the pipeline treats it as
// a read-only input. Checks are mutually independent and run
// concurrently; each network-facing check degrades to its own neutral
// outcome on timeout rather than failing the pipeline.
func (v *Verifier) Verify(ctx context.Context, payload models.OfferPayload, reportsCount int) *models.OfferAnalysis {
	raw := payload.RawText
	region := payload.RegionHint
	if region == "" {
		region = "india"
	}
	period := payload.SalaryPeriod
	if period == "" {
		period = "month"
	}

	urls := payload.Links
	if len(urls) == 0 {
		urls = checks.ExtractURLs(raw)
	}

	analysis := &models.OfferAnalysis{
		OfferHash: offerhash.OfferHash(raw),
	}

	// Each goroutine writes only its own field of analysis; no field is
	// read until Wait returns.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		analysis.CompanyAuthenticity = checks.CompanyAuthenticity(gctx, payload.CompanyName, payload.HREmail, v.prober)
		return nil
	})
	g.Go(func() error {
		analysis.LanguageRisk = checks.LanguageRisk(raw)
		return nil
	})
	g.Go(func() error {
		analysis.SalaryPlausibility = checks.SalaryPlausibility(payload.SalaryAmount, period, payload.JobRole, region)
		return nil
	})
	g.Go(func() error {
		analysis.LinkRisk = checks.LinkRisk(urls)
		return nil
	})
	g.Go(func() error {
		analysis.Interview = checks.InterviewPlausibility(payload.Interview)
		return nil
	})
	g.Go(func() error {
		analysis.OfferStructure = checks.StructureValidation(raw)
		return nil
	})
	g.Go(func() error {
		analysis.CompanyExistence = checks.CompanyExistence(gctx, payload.HREmail, v.prober)
		return nil
	})
	g.Go(func() error {
		prompt := gemini.BuildDocumentPrompt(payload.CompanyName, payload.HREmail, raw)
		analysis.DocumentIntegrity = v.delegatedScore(gctx, prompt)
		return nil
	})
	g.Go(func() error {
		prompt := gemini.BuildRolePrompt(payload.JobRole, marshalInterview(payload.Interview), raw)
		analysis.RoleConsistency = v.delegatedScore(gctx, prompt)
		return nil
	})

	_ = g.Wait() // checks never return errors; they degrade internally

	analysis.ScamReports = models.ReportStats{
		OfferHash:    analysis.OfferHash,
		ReportsCount: reportsCount,
		Status:       models.StatusNotReported,
	}
	if reportsCount > 0 {
		analysis.ScamReports.Status = models.StatusReportedScam
	}

	analysis.FinalTrust = Aggregate(analysis, reportsCount)
	return analysis
}

// delegatedScore asks the summarizer for an analysis ending in a
// "SCORE: <n>" line. Any failure degrades to the neutral default with an
// empty summary.
func (v *Verifier) delegatedScore(ctx context.Context, prompt string) models.LLMCheckResult {
	if v.summarizer == nil {
		return models.LLMCheckResult{Score: defaultLLMScore}
	}

	out, err := v.summarizer.Summarize(ctx, prompt)
	if err != nil {
		v.logger.Warn("summarizer unavailable, using default score", zap.Error(err))
		return models.LLMCheckResult{Score: defaultLLMScore}
	}

	return models.LLMCheckResult{
		Score:   ExtractScore(out),
		Summary: strings.TrimSpace(out),
	}
}

// ExtractScore pulls the trailing "SCORE: <n>" integer out of summarizer
// output, clamped to [0,100]. Missing pattern means the default.
func ExtractScore(output string) int {
	m := scorePattern.FindStringSubmatch(output)
	if m == nil {
		return defaultLLMScore
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultLLMScore
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func marshalInterview(info *models.InterviewInfo) string {
	if info == nil {
		return "{}"
	}
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

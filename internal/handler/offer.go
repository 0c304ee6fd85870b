package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shashankpendyala3549-commits/backend/internal/cache"
	"github.com/shashankpendyala3549-commits/backend/internal/models"
	"github.com/shashankpendyala3549-commits/backend/internal/notifier"
	"github.com/shashankpendyala3549-commits/backend/internal/repository"
	"github.com/shashankpendyala3549-commits/backend/internal/service"
	"github.com/shashankpendyala3549-commits/backend/pkg/offerhash"
)

// Handler handles HTTP requests.
type Handler struct {
	verifier *service.Verifier
	reports  repository.ReportStore
	cache    *cache.AnalysisCache // nil disables caching
	telegram *notifier.Telegram   // nil disables alerts
	logger   *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	verifier *service.Verifier,
	reports repository.ReportStore,
	analysisCache *cache.AnalysisCache,
	telegram *notifier.Telegram,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		verifier: verifier,
		reports:  reports,
		cache:    analysisCache,
		telegram: telegram,
		logger:   logger,
	}
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/offers/verify", h.VerifyOffer)
		api.POST("/offers/report", h.ReportScam)
		api.GET("/offers/reports/:hash", h.GetReportStats)
	}

	r.GET("/health", h.HealthCheck)
}

// VerifyOffer runs the full trust-scoring pipeline over the payload.
func (h *Handler) VerifyOffer(c *gin.Context) {
	var payload models.OfferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(payload.RawText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "raw_text is required"})
		return
	}

	ctx := c.Request.Context()
	offerHash := offerhash.OfferHash(payload.RawText)

	reportsCount, err := h.reports.Get(ctx, offerHash)
	if err != nil {
		// Degrade: score without the community signal.
		h.logger.Warn("report store unavailable, scoring with zero reports",
			zap.String("offer_hash", offerHash), zap.Error(err))
		reportsCount = 0
	}

	// The cache key covers the whole payload: two requests with the same
	// letter but different salary or interview fields score differently.
	requestHash := hashPayload(payload)
	if h.cache != nil {
		if cached := h.cache.Get(ctx, requestHash, reportsCount); cached != nil {
			cached.RequestID = uuid.New().String()
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	analysis := h.verifier.Verify(ctx, payload, reportsCount)
	analysis.RequestID = uuid.New().String()

	if h.cache != nil {
		h.cache.Set(ctx, requestHash, reportsCount, analysis)
	}

	h.logger.Info("Offer verified",
		zap.String("request_id", analysis.RequestID),
		zap.String("offer_hash", analysis.OfferHash),
		zap.Int("score", analysis.FinalTrust.Score),
		zap.String("verdict", analysis.FinalTrust.Verdict))

	c.JSON(http.StatusOK, analysis)
}

// ReportScam increments the scam report counter for an offer, identified
// either by its precomputed hash or by raw text.
func (h *Handler) ReportScam(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offerHash := req.OfferHash
	if offerHash == "" {
		if strings.TrimSpace(req.RawText) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offer_hash or raw_text is required"})
			return
		}
		offerHash = offerhash.OfferHash(req.RawText)
	}

	count, err := h.reports.Increment(c.Request.Context(), offerHash)
	if err != nil {
		h.logger.Error("Failed to record scam report", zap.String("offer_hash", offerHash), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record report"})
		return
	}

	if h.telegram != nil {
		h.telegram.ReportRecorded(offerHash, count)
	}

	c.JSON(http.StatusOK, reportStats(offerHash, count))
}

// GetReportStats returns the current report count for a hash.
func (h *Handler) GetReportStats(c *gin.Context) {
	offerHash := c.Param("hash")

	count, err := h.reports.Get(c.Request.Context(), offerHash)
	if err != nil {
		h.logger.Error("Failed to get report stats", zap.String("offer_hash", offerHash), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get report stats"})
		return
	}

	c.JSON(http.StatusOK, reportStats(offerHash, count))
}

// HealthCheck is the liveness probe.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func reportStats(offerHash string, count int) models.ReportStats {
	status := models.StatusNotReported
	if count > 0 {
		status = models.StatusReportedScam
	}
	return models.ReportStats{
		OfferHash:    offerHash,
		ReportsCount: count,
		Status:       status,
	}
}

func hashPayload(payload models.OfferPayload) string {
	b, err := json.Marshal(payload)
	if err != nil {
		return offerhash.OfferHash(payload.RawText)
	}
	return offerhash.SHA256Hex(string(b))
}

package analyses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobscreen-backend/internal/shared/metrics"
	"jobscreen-backend/internal/shared/server/middleware"
	"jobscreen-backend/internal/shared/server/respond"
	"jobscreen-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

type analyzeRequest struct {
	JobInput string `json:"jobInput"`
	JobURL   string `json:"jobUrl"`
}

type analyzeResult struct {
	Classification string   `json:"classification"`
	Confidence     int      `json:"confidence"`
	Keywords       []string `json:"keywords"`
	Explanation    string   `json:"explanation"`
	AnalysisID     string   `json:"analysisId"`
}

// RegisterAnalyzeRoute attaches the classification endpoint. It sits outside
// the JWT middleware: the handler verifies the bearer token itself so every
// failure kind maps onto the same flat envelope.
func (h *Handler) RegisterAnalyzeRoute(r gin.IRoutes) {
	r.POST("/analyze-job", h.analyzeJob)
}

// RegisterRoutes attaches the authenticated history routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
}

func (h *Handler) analyzeJob(c *gin.Context) {
	startedMs := metrics.NowMillis()
	metrics.IncAnalysisStarted()

	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		h.fail(c, "No authorization header")
		return
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	userID, err := h.Svc.VerifyUser(c.Request.Context(), token)
	if err != nil {
		h.fail(c, err.Error())
		return
	}

	var req analyzeRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.fail(c, "invalid request body")
		return
	}

	telemetry.Info("analysis.start", map[string]any{
		"request_id":       middleware.RequestIDFromContext(c),
		"user_id":          userID,
		"job_input_length": len(req.JobInput),
		"has_job_url":      req.JobURL != "",
	})

	analysis, err := h.Svc.Analyze(c.Request.Context(), userID, AnalyzeInput{
		JobInput: req.JobInput,
		JobURL:   req.JobURL,
	})
	if err != nil {
		h.fail(c, err.Error())
		return
	}

	c.Set("analysisId", analysis.ID)
	c.Set("classification", analysis.Classification)
	metrics.IncAnalysisClassified(analysis.Classification)
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - startedMs)

	respond.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"data": analyzeResult{
			Classification: analysis.Classification,
			Confidence:     analysis.ConfidenceScore,
			Keywords:       analysis.DetectedKeywords,
			Explanation:    analysis.Explanation,
			AnalysisID:     analysis.ID,
		},
	})
}

// fail writes the flat failure envelope. Every caught failure maps onto
// status 400, matching what stored clients already expect.
func (h *Handler) fail(c *gin.Context, message string) {
	metrics.IncAnalysisFailed()
	telemetry.Error("analysis.failed", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"error":      message,
	})
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   message,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), userID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.OK(c, analysis)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	analyses, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	respond.OK(c, analyses)
}

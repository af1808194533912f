package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"marketbrief/internal/citation"
	"marketbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type BriefBuilder interface {
	Build(ctx context.Context) (model.Brief, error)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type BriefHandler struct {
	builder BriefBuilder
	db      Pinger
}

// NewBriefHandler takes a nil db when no article database is configured.
func NewBriefHandler(builder BriefBuilder, db Pinger) *BriefHandler {
	return &BriefHandler{builder: builder, db: db}
}

func (h *BriefHandler) GetBrief(c *gin.Context) {
	b, err := h.builder.Build(c.Request.Context())
	if err != nil {
		slog.Error("error building brief", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build brief"})
		return
	}

	res := BriefResponse{
		RunID:          b.RunID,
		Date:           b.Date.Format(time.RFC3339),
		Origin:         b.Origin,
		Text:           b.Text,
		References:     toReferenceResponses(b.References),
		ItemCount:      b.ItemCount,
		FallbackReason: b.FallbackReason,
		ModelUsed:      b.ModelUsed,
	}

	c.JSON(http.StatusOK, res)
}

func (h *BriefHandler) NormalizeCitations(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	items := make([]model.EvidenceItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.EvidenceItem{Title: item.Title, Link: item.Link}
	}

	res := citation.Normalize(req.Text, items)

	c.JSON(http.StatusOK, NormalizeResponse{
		Text:       res.Text,
		References: toReferenceResponses(res.References),
	})
}

func (h *BriefHandler) GetHealth(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "disabled",
		})
		return
	}

	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toReferenceResponses(refs []model.Reference) []ReferenceResponse {
	res := make([]ReferenceResponse, 0, len(refs))
	for _, r := range refs {
		res = append(res, ReferenceResponse{Index: r.Index, Title: r.Title, Link: r.Link})
	}
	return res
}

package journal

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mood-journal/core/internal/middleware"
	"github.com/mood-journal/core/internal/models"
	"github.com/mood-journal/core/internal/modules/annotate"
	"github.com/mood-journal/core/internal/modules/bookmark"
	"github.com/mood-journal/core/internal/pkg/markdown"
	"github.com/mood-journal/core/internal/pkg/pagination"
	"github.com/mood-journal/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc      *Service
	annotate *annotate.Service
	bookmark *bookmark.Service
	logger   *zap.Logger
}

func NewHandler(svc *Service, annotateSvc *annotate.Service, bookmarkSvc *bookmark.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, annotate: annotateSvc, bookmark: bookmarkSvc, logger: logger.Named("JournalHandler")}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	journal := rg.Group("/journal")
	authed := journal.Group("", authMW)

	authed.POST("", h.create)
	authed.GET("", h.list)
	authed.GET("/:id", h.get)
	authed.GET("/:id/html", h.renderHTML)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var dto CreateEntryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	entry, err := h.svc.Create(userID, dto.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	var analysis *models.AnalysisModel
	if strings.TrimSpace(entry.Content) != "" {
		analysis = h.annotateEntry(c, entry)
	}

	response.Created(c, toDetailResponse(entry, analysis, false))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	entries, pg, err := h.svc.List(userID, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	entryIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryIDs = append(entryIDs, entry.ID)
	}
	analyses, err := h.svc.AnalysesForEntries(entryIDs)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	bookmarked, err := h.bookmark.EntryIDSet(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	streak, err := h.svc.StreakForUser(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		item := gin.H{
			"id":       entry.ID,
			"created":  entry.CreatedAt,
			"modified": entry.UpdatedAt,
			"content":  entry.Content,
		}
		if analysis, ok := analyses[entry.ID]; ok {
			item["mood"] = analysis.Mood
			item["color"] = analysis.Color
		}
		_, item["bookmarked"] = bookmarked[entry.ID]
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       items,
		"pagination": pg,
		"streak":     streak,
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	entry, err := h.svc.GetByID(userID, c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if entry == nil {
		response.NotFoundMsg(c, "Entry not found")
		return
	}

	analysis, err := h.svc.AnalysisForEntry(entry.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	set, err := h.bookmark.EntryIDSet(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	_, isBookmarked := set[entry.ID]

	response.OK(c, toDetailResponse(entry, analysis, isBookmarked))
}

func (h *Handler) renderHTML(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	entry, err := h.svc.GetByID(userID, c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if entry == nil {
		response.NotFoundMsg(c, "Entry not found")
		return
	}

	response.OK(c, gin.H{
		"id":   entry.ID,
		"html": markdown.Render(entry.Content),
	})
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var dto UpdateEntryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(dto.Content) == "" {
		response.BadRequest(c, "content is required")
		return
	}

	entry, changed, err := h.svc.Update(userID, c.Param("id"), dto.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if entry == nil {
		response.NotFoundMsg(c, "Entry not found")
		return
	}

	var analysis *models.AnalysisModel
	if changed {
		analysis = h.annotateEntry(c, entry)
	} else {
		analysis, err = h.svc.AnalysisForEntry(entry.ID)
		if err != nil {
			response.InternalError(c, err)
			return
		}
	}

	set, err := h.bookmark.EntryIDSet(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	_, isBookmarked := set[entry.ID]

	response.OK(c, toDetailResponse(entry, analysis, isBookmarked))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	if err := h.svc.Delete(userID, c.Param("id")); err != nil {
		if errors.Is(err, errEntryNotFound) {
			response.NotFoundMsg(c, "Entry not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// annotateEntry runs the AI annotation and persists the result. Failures are
// logged and swallowed: the entry is already saved and the client gets a null
// analysis instead of an error.
func (h *Handler) annotateEntry(c *gin.Context, entry *models.JournalEntryModel) *models.AnalysisModel {
	result, err := h.annotate.Annotate(c.Request.Context(), entry.Content)
	if err != nil {
		h.logger.Warn("annotation failed",
			zap.String("entry_id", entry.ID),
			zap.Error(err),
		)
		return nil
	}

	analysis, err := h.svc.SaveAnnotation(entry, result)
	if err != nil {
		h.logger.Warn("annotation persist failed",
			zap.String("entry_id", entry.ID),
			zap.Error(err),
		)
		// The model output is still good; return it even though the
		// projection write failed.
		return &models.AnalysisModel{
			EntryID:        entry.ID,
			Mood:           result.Mood,
			Subject:        result.Subject,
			Summary:        result.Summary,
			Color:          result.Color,
			Negative:       result.Negative,
			SentimentScore: result.SentimentScore,
		}
	}
	return analysis
}

func toDetailResponse(entry *models.JournalEntryModel, analysis *models.AnalysisModel, isBookmarked bool) gin.H {
	out := gin.H{
		"id":         entry.ID,
		"created":    entry.CreatedAt,
		"modified":   entry.UpdatedAt,
		"content":    entry.Content,
		"bookmarked": isBookmarked,
		"analysis":   nil,
	}
	if analysis != nil {
		out["analysis"] = analysis
	}
	return out
}

package bookmark

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mood-journal/core/internal/middleware"
	"github.com/mood-journal/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/journal/:id/bookmark", authMW, h.add)
	rg.DELETE("/journal/:id/bookmark", authMW, h.remove)
	rg.GET("/bookmarks", authMW, h.list)
}

func (h *Handler) add(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	entryID := c.Param("id")

	bookmark, created, err := h.svc.Add(userID, entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.NotFoundMsg(c, "Entry not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	if created {
		response.Created(c, bookmark)
		return
	}
	response.OK(c, bookmark)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	entryID := c.Param("id")

	if err := h.svc.Remove(userID, entryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFoundMsg(c, "Bookmark not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	items, err := h.svc.ListForUser(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		entry := gin.H{
			"id":         item.Entry.ID,
			"created":    item.Entry.CreatedAt,
			"modified":   item.Entry.UpdatedAt,
			"content":    item.Entry.Content,
			"bookmarked": item.Bookmark.CreatedAt,
		}
		if item.Analysis != nil {
			entry["mood"] = item.Analysis.Mood
			entry["color"] = item.Analysis.Color
			entry["subject"] = item.Analysis.Subject
		}
		out = append(out, entry)
	}
	response.OK(c, out)
}

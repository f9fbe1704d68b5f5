package question

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mood-journal/core/internal/middleware"
	"github.com/mood-journal/core/internal/modules/annotate"
	"github.com/mood-journal/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/question", authMW, h.ask)
}

type askDTO struct {
	Question string `json:"question"`
}

func (h *Handler) ask(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var dto askDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(dto.Question) == "" {
		response.BadRequest(c, "Question is required.")
		return
	}

	answer, err := h.svc.Answer(c.Request.Context(), userID, dto.Question)
	if err != nil {
		if errors.Is(err, annotate.ErrNoProvider) {
			response.BadRequest(c, "No AI provider is configured")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"answer": answer})
}

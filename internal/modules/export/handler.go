package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mood-journal/core/internal/config"
	"github.com/mood-journal/core/internal/middleware"
	"github.com/mood-journal/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	s3cfg  config.S3Options
	logger *zap.Logger
}

func NewHandler(svc *Service, s3cfg config.S3Options, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, s3cfg: s3cfg, logger: logger.Named("ExportHandler")}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/export", authMW, h.export)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	archive, err := h.svc.BuildArchive(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	if c.Query("upload") != "true" {
		response.OK(c, archive)
		return
	}

	if !h.s3cfg.Enable {
		response.BadRequest(c, "archive upload is not enabled")
		return
	}
	uploader, err := NewUploader(h.s3cfg)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	payload, err := json.Marshal(archive)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	name := fmt.Sprintf("mood-export-%s-%d.json", userID, time.Now().Unix())
	key, err := uploader.Upload(c.Request.Context(), name, payload)
	if err != nil {
		h.logger.Error("archive upload failed", zap.String("user_id", userID), zap.Error(err))
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"uploaded": true,
		"key":      key,
		"total":    archive.Total,
	})
}

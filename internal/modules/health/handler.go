package health

import (
	"github.com/gin-gonic/gin"
	"github.com/mood-journal/core/internal/pkg/redis"
	"github.com/mood-journal/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{db: db, rdb: rdb}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.check)
}

func (h *Handler) check(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx); err != nil {
			response.InternalError(c, err)
			return
		}
	}

	response.OK(c, gin.H{"status": "ok"})
}

package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mood-journal/core/internal/middleware"
	"github.com/mood-journal/core/internal/modules/annotate"
	"github.com/mood-journal/core/internal/modules/bookmark"
	"github.com/mood-journal/core/internal/modules/export"
	"github.com/mood-journal/core/internal/modules/health"
	"github.com/mood-journal/core/internal/modules/journal"
	"github.com/mood-journal/core/internal/modules/question"
	"github.com/mood-journal/core/internal/modules/sentiment"
	pkgredis "github.com/mood-journal/core/internal/pkg/redis"
	"github.com/mood-journal/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Rate limiting and idempotence run on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	api := r.Group("/api/v2")
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	// Infrastructure
	health.NewHandler(db, rc).RegisterRoutes(api)

	// Shared services
	annotateSvc := annotate.NewService(a.cfg.AI, a.logger)
	sentimentSvc := sentiment.NewService(db, a.logger)
	journalSvc := journal.NewService(db, sentimentSvc, a.logger)
	bookmarkSvc := bookmark.NewService(db)

	// Journal entries + annotation flow
	journal.NewHandler(journalSvc, annotateSvc, bookmarkSvc, a.logger).RegisterRoutes(api, authMW)

	// Bookmarks
	bookmark.NewHandler(bookmarkSvc).RegisterRoutes(api, authMW)

	// Sentiment history / charting
	sentiment.NewHandler(sentimentSvc).RegisterRoutes(api, authMW)

	// Free-text questions over the journal corpus
	question.NewHandler(question.NewService(journalSvc, annotateSvc, a.logger)).RegisterRoutes(api, authMW)

	// Archive export
	export.NewHandler(export.NewService(db, a.logger), a.cfg.S3, a.logger).RegisterRoutes(api, authMW)
}

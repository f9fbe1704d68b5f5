package sentiment

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mood-journal/core/internal/middleware"
	"github.com/mood-journal/core/internal/pkg/response"
)

const defaultHistoryDays = 30

// Handler exposes the mood history endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/history", authMW, h.history)
}

type chartPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Mood  string `json:"mood"`
	Color string `json:"color"`
}

// history returns the windowed chart data plus all-time stats.
func (h *Handler) history(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	days := defaultHistoryDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	windowed, err := h.svc.ScoresForUser(userID, days)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	all, err := h.svc.ScoresForUser(userID, 0)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	chartData := make([]chartPoint, 0, len(windowed))
	for _, record := range windowed {
		chartData = append(chartData, chartPoint{
			Date:  record.CreatedAt.Format("Jan 2"),
			Score: record.Score,
			Mood:  record.Mood,
			Color: record.Color,
		})
	}

	response.OK(c, gin.H{
		"chartData": chartData,
		"average":   Average(windowed),
		"stats":     ComputeStats(all),
		"dateRange": ComputeDateRange(windowed),
	})
}

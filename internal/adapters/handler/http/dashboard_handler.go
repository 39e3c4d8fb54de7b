package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/movewell-api/internal/core/services"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
	exercises *services.ExerciseService
}

func NewDashboardHandler(dashboard *services.DashboardService, exercises *services.ExerciseService) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		exercises: exercises,
	}
}

type postureScoreRequest struct {
	Score *int `json:"score" binding:"required"`
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/home", h.Home)

	stats := router.Group("/stats")
	{
		stats.GET("", h.Stats)
		stats.PUT("/posture-score", h.SetPostureScore)
	}
}

// Home godoc
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  services.HomeView
// @Security     BearerAuth
// @Router       /home [get]
func (h *DashboardHandler) Home(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.dashboard.Home(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Stats godoc
// @Summary      Progress screen
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  services.StatsView
// @Security     BearerAuth
// @Router       /stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.dashboard.Stats(c.Request.Context(), userID))
}

func (h *DashboardHandler) SetPostureScore(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req postureScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.exercises.SetPostureScore(c.Request.Context(), userID, *req.Score)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

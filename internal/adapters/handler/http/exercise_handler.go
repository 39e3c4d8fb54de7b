package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/movewell-api/internal/core/services"
)

type ExerciseHandler struct {
	svc *services.ExerciseService
}

func NewExerciseHandler(svc *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		svc: svc,
	}
}

type startSessionRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
}

type completeExerciseRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

func (h *ExerciseHandler) RegisterRoutes(router *gin.RouterGroup) {
	exercises := router.Group("/exercises")
	{
		exercises.GET("", h.Catalog)
		exercises.GET("/history", h.History)
		exercises.POST("/complete", h.Complete)
		exercises.POST("/session", h.StartSession)
		exercises.POST("/session/next", h.NextStep)
		exercises.DELETE("/session", h.StopSession)
	}
}

func (h *ExerciseHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog())
}

func (h *ExerciseHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.svc.History(c.Request.Context(), userID))
}

// Complete godoc
// @Summary      Record a completed exercise
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        body  body      completeExerciseRequest  true  "Exercise"
// @Success      200   {object}  domain.Stats
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /exercises/complete [post]
func (h *ExerciseHandler) Complete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req completeExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.svc.Complete(c.Request.Context(), services.CompleteExerciseInput{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ExerciseHandler) StartSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.svc.StartSession(userID, req.ExerciseID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, state)
}

func (h *ExerciseHandler) NextStep(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.svc.NextStep(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ExerciseHandler) StopSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.StopSession(userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

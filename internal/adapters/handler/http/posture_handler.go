package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/movewell-api/internal/core/services"
)

type PostureHandler struct {
	svc *services.PostureService
}

func NewPostureHandler(svc *services.PostureService) *PostureHandler {
	return &PostureHandler{svc: svc}
}

func (h *PostureHandler) RegisterRoutes(router *gin.RouterGroup) {
	posture := router.Group("/posture/session")
	{
		posture.POST("", h.Start)
		posture.POST("/sample", h.Sample)
		posture.DELETE("", h.Stop)
	}
}

func (h *PostureHandler) Start(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, h.svc.Start(userID))
}

func (h *PostureHandler) Sample(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	session, err := h.svc.Sample(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *PostureHandler) Stop(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	session, err := h.svc.Stop(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

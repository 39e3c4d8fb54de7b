package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/movewell-api/internal/core/services"
)

type ChatHandler struct {
	svc     *services.ChatService
	timeout time.Duration
}

func NewChatHandler(svc *services.ChatService, timeout time.Duration) *ChatHandler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatHandler{
		svc:     svc,
		timeout: timeout,
	}
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Reply string `json:"reply"`
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.GET("/starters", h.Starters)
		chat.POST("/messages", h.Send)
		chat.DELETE("/messages", h.Reset)
	}
}

func (h *ChatHandler) Starters(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Starters())
}

// Send godoc
// @Summary      Ask the assistant
// @Description  Generator failures come back as a normal reply with a friendly message.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      200   {object}  sendMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /chat/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	reply, err := h.svc.Send(ctx, userID, req.Message)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sendMessageResponse{Reply: reply})
}

func (h *ChatHandler) Reset(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	h.svc.Reset(userID)
	c.Status(http.StatusNoContent)
}

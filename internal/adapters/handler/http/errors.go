package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/movewell-api/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrMissingName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrExerciseNameMissing),
		errors.Is(err, domain.ErrAppointmentIncomplete),
		errors.Is(err, domain.ErrInvalidAppointmentDate),
		errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})

	case errors.Is(err, domain.ErrExerciseNotFound),
		errors.Is(err, domain.ErrDoctorNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrNoActiveSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrChatBusy):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "reply pending",
			"message": "wait for the assistant to answer before sending again",
		})

	case errors.Is(err, domain.ErrEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return "", false
	}
	return userID, true
}

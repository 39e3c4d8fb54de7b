package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/movewell-api/internal/core/services"
)

type AppointmentHandler struct {
	svc *services.AppointmentService
}

func NewAppointmentHandler(svc *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		svc: svc,
	}
}

type bookAppointmentRequest struct {
	DoctorID int    `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes"`
}

// RegisterPublicRoutes exposes the doctor catalog without a session.
func (h *AppointmentHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/doctors", h.Doctors)
}

func (h *AppointmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	appointments := router.Group("/appointments")
	{
		appointments.GET("", h.List)
		appointments.POST("", h.Book)
		appointments.DELETE("/:id", h.Cancel)
	}
}

func (h *AppointmentHandler) Doctors(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Doctors())
}

func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.svc.List(c.Request.Context(), userID))
}

// Book godoc
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      bookAppointmentRequest  true  "Booking"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.svc.Book(c.Request.Context(), services.BookAppointmentInput{
		UserID:   userID,
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Cancel(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

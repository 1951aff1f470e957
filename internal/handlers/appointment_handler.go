package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/httpresp"
	"github.com/clinica/appointments-api/internal/middleware"
	ucAppointment "github.com/clinica/appointments-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	cancelUC *ucAppointment.CancelAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Center string `json:"center"`
	Date   string `json:"date"`
}

type DayRequest struct {
	Day string `json:"day"`
}

type CancelAppointmentRequest struct {
	ID     string `json:"id"`
	Center string `json:"center"`
	Date   string `json:"date"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c)
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			Username: middleware.Username(c),
			Center:   req.Center,
			Date:     req.Date,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Date created successfully",
		"id":  ap.ID,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) GetByDay(c *gin.Context) {
	var req DayRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Day == "" {
		httperr.BadRequest(c)
		return
	}

	items, err := h.listUC.ByDay(c.Request.Context(), req.Day)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) GetByUser(c *gin.Context) {
	items, err := h.listUC.ByUser(c.Request.Context(), middleware.Username(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.listUC.All(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c)
		return
	}

	if _, err := h.cancelUC.Execute(
		c.Request.Context(),
		ucAppointment.CancelAppointmentInput{
			Username: middleware.Username(c),
			ID:       req.ID,
			Center:   req.Center,
			Date:     req.Date,
		},
	); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Date deleted successfully")
}

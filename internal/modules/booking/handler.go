package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthportal/internal/middleware"
	"healthportal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/slots", h.ListSlots)
	rg.POST("/bookings/workflow", h.StartWorkflow)
	rg.GET("/bookings/workflow", h.GetWorkflow)
	rg.PATCH("/bookings/workflow", h.UpdateSelection)
	rg.POST("/bookings/workflow/submit", h.Submit)
	rg.GET("/bookings", h.ListMyBookings)
}

func (h *Handler) ListSlots(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"slots": h.service.Slots()})
}

func (h *Handler) StartWorkflow(c *gin.Context) {
	patient, ok := middleware.PatientFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req StartWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w := h.service.StartWorkflow(patient, req.TestID)
	response.Success(c, http.StatusCreated, gin.H{"workflow": viewOf(w, time.Now())})
}

func (h *Handler) GetWorkflow(c *gin.Context) {
	patient, ok := middleware.PatientFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	w, err := h.service.CurrentWorkflow(patient.ID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NO_WORKFLOW", "No active booking workflow")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workflow": viewOf(w, time.Now())})
}

func (h *Handler) UpdateSelection(c *gin.Context) {
	patient, ok := middleware.PatientFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.UpdateSelection(patient.ID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workflow": viewOf(w, time.Now())})
}

func (h *Handler) Submit(c *gin.Context) {
	patient, ok := middleware.PatientFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	w, err := h.service.Submit(c.Request.Context(), patient.ID)
	if err != nil {
		if errors.Is(err, ErrSubmitFailed) {
			// The workflow is back in collecting_details with the message
			// and selections preserved.
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SUBMIT_FAILED",
					"message": w.SubmitError,
				},
				"data": gin.H{"workflow": viewOf(w, time.Now())},
			})
			return
		}
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workflow": viewOf(w, time.Now())})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	patient, ok := middleware.PatientFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	bookings := h.service.ListMyBookings(c.Request.Context(), patient.ID)
	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoWorkflow):
		response.Error(c, http.StatusNotFound, "NO_WORKFLOW", "No active booking workflow")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Action not valid in current workflow state")
	case errors.Is(err, ErrAlreadySubmitting):
		response.Error(c, http.StatusConflict, "ALREADY_SUBMITTING", "Submission already in progress")
	case errors.Is(err, ErrNotReady):
		response.Error(c, http.StatusUnprocessableEntity, "NOT_READY", "Date, time and location must be selected before submitting")
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrDateTooSoon):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Appointments must be booked for tomorrow or later")
	case errors.Is(err, ErrUnknownSlot), errors.Is(err, ErrSlotUnavailable):
		response.Error(c, http.StatusBadRequest, "INVALID_SLOT", "The selected time slot is not available")
	case errors.Is(err, ErrUnknownLocation):
		response.Error(c, http.StatusBadRequest, "INVALID_LOCATION", "The selected location is not known")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

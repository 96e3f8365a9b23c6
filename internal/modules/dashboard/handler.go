package dashboard

import (
	"net/http"

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
	rg.GET("/dashboard/summary", h.GetSummary)
}

func (h *Handler) GetSummary(c *gin.Context) {
	patient, ok := middleware.PatientFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	sum := h.service.Summarize(c.Request.Context(), patient.ID)
	response.Success(c, http.StatusOK, gin.H{"summary": sum})
}

package reports

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthportal/internal/domain"
	"healthportal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports", h.ListReports)
	rg.GET("/reports/:id", h.GetReport)
	rg.GET("/reports/:id/download", h.DownloadReport)
}

// ListReports handles GET /api/v1/reports?q=&status=
func (h *Handler) ListReports(c *gin.Context) {
	query := c.Query("q")
	status := c.DefaultQuery("status", StatusAll)

	list, err := h.service.List(query, status)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown status filter",
			gin.H{"allowed": []string{
				StatusAll,
				string(domain.ReportCompleted),
				string(domain.ReportPending),
				string(domain.ReportInProgress),
			}})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reports": list,
		"total":   len(list),
	})
}

func (h *Handler) GetReport(c *gin.Context) {
	r, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Report not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"report":   r,
		"findings": classifiedFindings(r),
	})
}

// DownloadReport streams the text export with a suggested filename.
func (h *Handler) DownloadReport(c *gin.Context) {
	payload, filename, err := h.service.Export(c.Param("id"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrReportNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Report not found")
		case errors.Is(err, ErrReportNotReady):
			response.Error(c, http.StatusConflict, "NOT_READY", "Report results are not available yet")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export report")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(payload))
}

type classifiedFinding struct {
	domain.Finding
	Classification Classification `json:"classification"`
}

func classifiedFindings(r domain.TestReport) []classifiedFinding {
	if r.Results == nil {
		return nil
	}
	out := make([]classifiedFinding, 0, len(r.Results.Findings))
	for _, f := range r.Results.Findings {
		out = append(out, classifiedFinding{Finding: f, Classification: Classify(f.Status)})
	}
	return out
}

package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthportal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tests", h.ListTests)
	rg.GET("/tests/featured", h.FeaturedTests)
	rg.GET("/tests/:id", h.GetTest)
	rg.GET("/categories", h.ListCategories)
	rg.GET("/locations", h.ListLocations)
}

// ListTests handles GET /api/v1/tests?q=&category=&sort=
func (h *Handler) ListTests(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", CategoryAll)
	sortKey := c.DefaultQuery("sort", SortByName)

	tests := h.service.ListTests(query, category, sortKey)

	response.Success(c, http.StatusOK, gin.H{
		"tests": tests,
		"total": len(tests),
	})
}

func (h *Handler) FeaturedTests(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"tests": h.service.FeaturedTests(),
	})
}

func (h *Handler) GetTest(c *gin.Context) {
	t, err := h.service.TestByID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lab test not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"test": t})
}

func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"categories": h.service.Categories(),
	})
}

func (h *Handler) ListLocations(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"locations": h.service.Locations(),
	})
}

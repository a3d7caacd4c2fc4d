package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shag-platform/shag-api/internal/services"
)

type CatalogHandler struct {
	service *services.CatalogService
}

func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListMentors returns mentors matching the query parameters. Omitted
// parameters behave like the "Все" sentinel.
func (h *CatalogHandler) ListMentors(c *gin.Context) {
	mentors := h.service.ListMentors(
		c.Query("category"),
		c.Query("city"),
		c.Query("q"),
	)
	c.JSON(http.StatusOK, gin.H{"mentors": mentors})
}

func (h *CatalogHandler) GetMentorByID(c *gin.Context) {
	mentor, err := h.service.GetMentor(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Mentor not found", err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

func (h *CatalogHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Filters())
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shag-platform/shag-api/internal/models"
	"github.com/shag-platform/shag-api/internal/services"
)

type MatchHandler struct {
	service *services.MatchService
}

func NewMatchHandler(service *services.MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

// Recommend returns the single best-fit mentor for a free-text request. A
// null recommendation with status 200 means the engine had nothing usable
// to offer; that is not an error condition for the client.
func (h *MatchHandler) Recommend(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	recommendation, err := h.service.Recommend(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MatchResponse{Recommendation: recommendation})
}

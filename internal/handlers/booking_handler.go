package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shag-platform/shag-api/internal/models"
	"github.com/shag-platform/shag-api/internal/services"
)

type BookingHandler struct {
	service *services.BookingService
}

func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	status, err := h.service.Create(req.MentorID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

func (h *BookingHandler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *BookingHandler) SelectFormat(c *gin.Context) {
	var req models.SelectFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	status, err := h.service.SelectFormat(c.Param("id"), models.MeetingFormat(req.Format))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *BookingHandler) SubmitGoal(c *gin.Context) {
	var req models.SubmitGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	status, err := h.service.SubmitGoal(c.Param("id"), req.Goal, req.ExchangeOffer)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var req models.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	completion, err := h.service.SelectSlot(c.Request.Context(), c.Param("id"), req.Slot)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, completion)
}

func (h *BookingHandler) Back(c *gin.Context) {
	status, err := h.service.Back(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

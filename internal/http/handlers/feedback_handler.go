package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/dto"
	"github.com/skillswap/skillswap-backend/internal/http/handlers/common"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// FeedbackHandler обслуживает отзывы по обменам.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Create обрабатывает POST /feedback.
func (h *FeedbackHandler) Create(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "swap_id и рейтинг обязательны")
		return
	}

	swapID, err := uuid.Parse(req.SwapID)
	if err != nil {
		common.RespondBadRequest(c, "неверный swap_id")
		return
	}

	created, err := h.feedback.Create(c.Request.Context(), userID, service.CreateFeedbackInput{
		SwapID:  swapID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListBySwap обрабатывает GET /swaps/:id/feedback.
func (h *FeedbackHandler) ListBySwap(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	swapID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный swap_id")
		return
	}

	items, err := h.feedback.ListBySwap(c.Request.Context(), swapID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": items})
}

// ListSent обрабатывает GET /feedback/sent.
func (h *FeedbackHandler) ListSent(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	items, err := h.feedback.ListSent(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": items})
}

// ListReceived обрабатывает GET /users/:id/feedback.
func (h *FeedbackHandler) ListReceived(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	items, err := h.feedback.ListReceived(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": items})
}

// RatingStats обрабатывает GET /users/:id/rating.
func (h *FeedbackHandler) RatingStats(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	stats, err := h.feedback.GetRatingStats(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Update обрабатывает PATCH /feedback/:id.
func (h *FeedbackHandler) Update(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	feedbackID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор отзыва")
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "рейтинг обязателен")
		return
	}

	updated, err := h.feedback.Update(c.Request.Context(), feedbackID, userID, req.Rating, req.Comment)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/dto"
	"github.com/skillswap/skillswap-backend/internal/http/handlers/common"
	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// SwapHandler обслуживает жизненный цикл обменов навыками.
type SwapHandler struct {
	swaps *service.SwapService
}

func NewSwapHandler(swaps *service.SwapService) *SwapHandler {
	return &SwapHandler{swaps: swaps}
}

// Create обрабатывает POST /swaps.
func (h *SwapHandler) Create(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "to_user_id, skill_offered_us и skill_requested_us обязательны")
		return
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		common.RespondBadRequest(c, "неверный to_user_id")
		return
	}

	offeredUS, err := uuid.Parse(req.SkillOfferedUS)
	if err != nil {
		common.RespondBadRequest(c, "неверный skill_offered_us")
		return
	}

	requestedUS, err := uuid.Parse(req.SkillRequestedUS)
	if err != nil {
		common.RespondBadRequest(c, "неверный skill_requested_us")
		return
	}

	swap, err := h.swaps.Create(c.Request.Context(), userID, service.CreateSwapInput{
		ToUserID:         toUserID,
		SkillOfferedUS:   offeredUS,
		SkillRequestedUS: requestedUS,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, swap)
}

// List обрабатывает GET /swaps?status=.
func (h *SwapHandler) List(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	swaps, err := h.swaps.ListUserSwaps(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"swaps": swaps})
}

// Get обрабатывает GET /swaps/:id.
func (h *SwapHandler) Get(c *gin.Context) {
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

	swap, err := h.swaps.GetSwap(c.Request.Context(), swapID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, swap)
}

// UpdateStatus обрабатывает PATCH /swaps/:id/status.
func (h *SwapHandler) UpdateStatus(c *gin.Context) {
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

	var req dto.UpdateSwapStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "статус обязателен")
		return
	}

	swap, err := h.swaps.Transition(c.Request.Context(), swapID, userID, models.SwapStatus(req.Status))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, swap)
}

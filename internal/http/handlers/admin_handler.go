package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/dto"
	"github.com/skillswap/skillswap-backend/internal/http/handlers/common"
	"github.com/skillswap/skillswap-backend/internal/repository"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// AdminHandler обслуживает модерацию: пометки, блокировки, журнал действий.
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// moderationTarget извлекает администратора из контекста, цель из URL
// и необязательную причину из тела запроса.
func moderationTarget(c *gin.Context) (adminID, targetID uuid.UUID, reason *string, ok bool) {
	adminID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return uuid.Nil, uuid.Nil, nil, false
	}

	targetID, err = common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор")
		return uuid.Nil, uuid.Nil, nil, false
	}

	var req dto.ModerationRequest
	// Тело необязательно, ошибки парсинга игнорируются
	_ = c.ShouldBindJSON(&req)

	return adminID, targetID, req.Reason, true
}

// FlagUser обрабатывает POST /admin/users/:id/flag.
func (h *AdminHandler) FlagUser(c *gin.Context) {
	adminID, userID, reason, ok := moderationTarget(c)
	if !ok {
		return
	}

	if err := h.admin.FlagUser(c.Request.Context(), adminID, userID, reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "пользователь помечен"})
}

// BanUser обрабатывает POST /admin/users/:id/ban.
func (h *AdminHandler) BanUser(c *gin.Context) {
	adminID, userID, reason, ok := moderationTarget(c)
	if !ok {
		return
	}

	if err := h.admin.BanUser(c.Request.Context(), adminID, userID, reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "пользователь заблокирован"})
}

// DeleteUser обрабатывает DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, userID, reason, ok := moderationTarget(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), adminID, userID, reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "пользователь удалён"})
}

// FlagSkill обрабатывает POST /admin/skills/:id/flag.
func (h *AdminHandler) FlagSkill(c *gin.Context) {
	adminID, skillID, reason, ok := moderationTarget(c)
	if !ok {
		return
	}

	if err := h.admin.FlagSkill(c.Request.Context(), adminID, skillID, reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "навык помечен"})
}

// DeleteSkill обрабатывает DELETE /admin/skills/:id.
func (h *AdminHandler) DeleteSkill(c *gin.Context) {
	adminID, skillID, reason, ok := moderationTarget(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteSkill(c.Request.Context(), adminID, skillID, reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "навык удалён"})
}

// FlagSwap обрабатывает POST /admin/swaps/:id/flag.
func (h *AdminHandler) FlagSwap(c *gin.Context) {
	adminID, swapID, reason, ok := moderationTarget(c)
	if !ok {
		return
	}

	if err := h.admin.FlagSwap(c.Request.Context(), adminID, swapID, reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "обмен помечен"})
}

// CancelSwap обрабатывает POST /admin/swaps/:id/cancel.
func (h *AdminHandler) CancelSwap(c *gin.Context) {
	adminID, swapID, reason, ok := moderationTarget(c)
	if !ok {
		return
	}

	if err := h.admin.CancelSwap(c.Request.Context(), adminID, swapID, reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "обмен отменён"})
}

// ListLogs обрабатывает GET /admin/logs?entity_type=&action=&limit=&offset=.
func (h *AdminHandler) ListLogs(c *gin.Context) {
	limit, offset := common.GetPagination(c)

	logs, err := h.admin.ListLogs(c.Request.Context(), repository.AdminLogFilter{
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// Stats обрабатывает GET /admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.GetStats(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

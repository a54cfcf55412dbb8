package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/http/handlers/common"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// MatchHandler обслуживает подбор партнёров для обмена.
type MatchHandler struct {
	matches *service.MatchService
}

func NewMatchHandler(matches *service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// FindForUser обрабатывает GET /matches/:id — кандидаты для пользователя.
func (h *MatchHandler) FindForUser(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	result, err := h.matches.FindMatches(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// FindForMe обрабатывает GET /matches — кандидаты для текущего пользователя.
func (h *MatchHandler) FindForMe(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	result, err := h.matches.FindMatches(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Reciprocal обрабатывает GET /matches/reciprocal — взаимные пары,
// где каждый предлагает то, что другой хочет изучить.
func (h *MatchHandler) Reciprocal(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	matches, err := h.matches.FindReciprocalMatches(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

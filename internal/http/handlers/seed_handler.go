package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/dto"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// SeedHandler обрабатывает запросы для генерации демо-данных.
type SeedHandler struct {
	seed *service.SeedService
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(seed *service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed генерирует демо-данные.
// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	var req dto.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = dto.SeedRequest{}
	}

	if req.NumUsers < 1 {
		req.NumUsers = 20
	}
	if req.NumUsers > 500 {
		req.NumUsers = 500
	}
	if req.NumSwaps < 1 {
		req.NumSwaps = 40
	}
	if req.NumSwaps > 2000 {
		req.NumSwaps = 2000
	}

	if err := h.seed.SeedData(c.Request.Context(), req.NumUsers, req.NumSwaps); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "не удалось сгенерировать демо-данные",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "демо-данные успешно сгенерированы",
		"num_users": req.NumUsers,
		"num_swaps": req.NumSwaps,
	})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/dto"
	"github.com/skillswap/skillswap-backend/internal/http/handlers/common"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// ExportHandler отдаёт данные для внешнего рекомендательного движка
// и карточки пользователей для главной страницы.
type ExportHandler struct {
	exports *service.ExportService
}

func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// ExportAll обрабатывает GET /export — полная выгрузка.
func (h *ExportHandler) ExportAll(c *gin.Context) {
	data, meta, err := h.exports.ExportAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{
		Metadata: meta,
		Users:    data.Users,
		Swaps:    data.Swaps,
	})
}

// ExportUserProfile обрабатывает GET /export/users/:id.
func (h *ExportHandler) ExportUserProfile(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	profile, err := h.exports.ExportUserProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Homepage обрабатывает GET /homepage?page=&limit=&search=.
func (h *ExportHandler) Homepage(c *gin.Context) {
	page := common.ParseIntQuery(c, "page", 1)
	limit := common.ParseIntQuery(c, "limit", 6)
	search := strings.TrimSpace(c.Query("search"))

	result, err := h.exports.Homepage(c.Request.Context(), page, limit, search)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

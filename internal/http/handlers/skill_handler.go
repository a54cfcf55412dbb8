package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/dto"
	"github.com/skillswap/skillswap-backend/internal/http/handlers/common"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// SkillHandler обслуживает каталог навыков и навыки пользователей.
type SkillHandler struct {
	skills *service.SkillService
}

func NewSkillHandler(skills *service.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

// List обрабатывает GET /skills?category=.
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skills.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// ListCategories обрабатывает GET /skills/categories.
func (h *SkillHandler) ListCategories(c *gin.Context) {
	categories, err := h.skills.ListCategories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Create обрабатывает POST /skills.
func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "название и категория обязательны")
		return
	}

	skill, err := h.skills.Create(c.Request.Context(), service.CreateSkillInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// ListUsers обрабатывает GET /skills/:id/users?role=.
func (h *SkillHandler) ListUsers(c *gin.Context) {
	skillID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный skill_id")
		return
	}

	users, err := h.skills.ListUsersBySkill(c.Request.Context(), skillID, c.Query("role"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListUserSkills обрабатывает GET /users/:id/skills.
func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	userID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный user_id")
		return
	}

	skills, err := h.skills.ListUserSkills(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// ListMySkills обрабатывает GET /me/skills.
func (h *SkillHandler) ListMySkills(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	skills, err := h.skills.ListUserSkills(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// AddUserSkill обрабатывает POST /me/skills.
func (h *SkillHandler) AddUserSkill(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.AddUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "skill_id и роль обязательны")
		return
	}

	skillID, err := uuid.Parse(req.SkillID)
	if err != nil {
		common.RespondBadRequest(c, "неверный skill_id")
		return
	}

	userSkill, err := h.skills.AddUserSkill(c.Request.Context(), userID, service.AddUserSkillInput{
		SkillID:     skillID,
		Role:        req.Role,
		SkillLevel:  req.SkillLevel,
		Description: req.Description,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userSkill)
}

// UpdateUserSkill обрабатывает PATCH /me/skills/:id.
func (h *SkillHandler) UpdateUserSkill(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор навыка")
		return
	}

	var req dto.UpdateUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "уровень навыка обязателен")
		return
	}

	userSkill, err := h.skills.UpdateUserSkill(c.Request.Context(), id, userID, req.SkillLevel, req.Description)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, userSkill)
}

// DeleteUserSkill обрабатывает DELETE /me/skills/:id.
func (h *SkillHandler) DeleteUserSkill(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор навыка")
		return
	}

	if err := h.skills.DeleteUserSkill(c.Request.Context(), id, userID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "навык удалён"})
}

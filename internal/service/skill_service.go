package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
	"github.com/skillswap/skillswap-backend/internal/repository"
	"github.com/skillswap/skillswap-backend/internal/validation"
)

// SkillRepo описывает зависимости SkillService от слоя хранилища.
type SkillRepo interface {
	List(ctx context.Context, category string) ([]models.Skill, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, skill *models.Skill) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetails, error)
	GetUserSkill(ctx context.Context, id uuid.UUID) (*models.UserSkill, error)
	HasUserSkill(ctx context.Context, userID, skillID uuid.UUID, role models.SkillRole) (bool, error)
	CreateUserSkill(ctx context.Context, us *models.UserSkill) error
	UpdateUserSkill(ctx context.Context, id, userID uuid.UUID, level string, description *string) (*models.UserSkill, error)
	DeleteUserSkill(ctx context.Context, id, userID uuid.UUID) error
	ListUsersBySkill(ctx context.Context, skillID uuid.UUID, role models.SkillRole) ([]models.SkillUser, error)
}

// SkillService управляет каталогом навыков и навыками пользователей.
type SkillService struct {
	repo SkillRepo
}

// NewSkillService создаёт сервис навыков.
func NewSkillService(repo SkillRepo) *SkillService {
	return &SkillService{repo: repo}
}

// List возвращает каталог навыков, опционально по категории.
func (s *SkillService) List(ctx context.Context, category string) ([]models.Skill, error) {
	return s.repo.List(ctx, category)
}

// ListCategories возвращает список категорий каталога.
func (s *SkillService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

// CreateSkillInput содержит данные нового каталожного навыка.
type CreateSkillInput struct {
	Name     string
	Category string
}

// Create добавляет навык в каталог. Имя уникально без учёта регистра.
func (s *SkillService) Create(ctx context.Context, in CreateSkillInput) (*models.Skill, error) {
	if err := validation.ValidateSkillName(in.Name); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateSkillCategory(in.Category); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	exists, err := s.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.New(apperror.ErrCodeConflict, "навык с таким названием уже существует")
	}

	skill := &models.Skill{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// ListUserSkills возвращает навыки пользователя вместе с каталожными данными.
func (s *SkillService) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetails, error) {
	return s.repo.ListUserSkills(ctx, userID)
}

// AddUserSkillInput содержит данные привязки навыка к пользователю.
type AddUserSkillInput struct {
	SkillID     uuid.UUID
	Role        string
	SkillLevel  string
	Description *string
}

// AddUserSkill привязывает каталожный навык к пользователю с ролью
// offered или wanted. Пара (навык, роль) у пользователя уникальна.
func (s *SkillService) AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (*models.UserSkill, error) {
	if err := validation.ValidateSkillRole(in.Role); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	level := in.SkillLevel
	if level == "" {
		level = models.SkillLevelBeginner
	}
	if err := validation.ValidateSkillLevel(level); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if in.Description != nil {
		if err := validation.ValidateSkillDescription(*in.Description); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}

	exists, err := s.repo.Exists(ctx, in.SkillID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ErrSkillNotFound
	}

	has, err := s.repo.HasUserSkill(ctx, userID, in.SkillID, models.SkillRole(in.Role))
	if err != nil {
		return nil, err
	}
	if has {
		return nil, apperror.New(apperror.ErrCodeConflict, "навык с этой ролью уже добавлен")
	}

	us := &models.UserSkill{
		UserID:      userID,
		SkillID:     in.SkillID,
		Role:        models.SkillRole(in.Role),
		SkillLevel:  level,
		Description: in.Description,
	}
	if err := s.repo.CreateUserSkill(ctx, us); err != nil {
		return nil, err
	}
	return us, nil
}

// UpdateUserSkill меняет уровень и описание собственного навыка пользователя.
func (s *SkillService) UpdateUserSkill(ctx context.Context, id, userID uuid.UUID, level string, description *string) (*models.UserSkill, error) {
	if err := validation.ValidateSkillLevel(level); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if description != nil {
		if err := validation.ValidateSkillDescription(*description); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}

	us, err := s.repo.UpdateUserSkill(ctx, id, userID, level, description)
	if err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return nil, apperror.ErrUserSkillNotFound
		}
		return nil, err
	}
	return us, nil
}

// DeleteUserSkill удаляет собственный навык пользователя.
func (s *SkillService) DeleteUserSkill(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.DeleteUserSkill(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return apperror.ErrUserSkillNotFound
		}
		return err
	}
	return nil
}

// ListUsersBySkill возвращает публичных пользователей, у которых есть навык.
// Пустая роль означает обе роли.
func (s *SkillService) ListUsersBySkill(ctx context.Context, skillID uuid.UUID, role string) ([]models.SkillUser, error) {
	if role != "" {
		if err := validation.ValidateSkillRole(role); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}
	return s.repo.ListUsersBySkill(ctx, skillID, models.SkillRole(role))
}

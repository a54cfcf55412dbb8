package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/repository/common"
)

var (
	// ErrSkillNotFound возвращается, когда каталожный навык не найден.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrUserSkillNotFound возвращается, когда связь пользователь-навык не найдена.
	ErrUserSkillNotFound = errors.New("user skill not found")
)

// SkillRepository отвечает за таблицы skills и user_skills.
type SkillRepository struct {
	db *sqlx.DB
}

// NewSkillRepository создаёт экземпляр репозитория.
func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List возвращает навыки каталога, опционально отфильтрованные по категории.
func (r *SkillRepository) List(ctx context.Context, category string) ([]models.Skill, error) {
	var skills []models.Skill
	var err error
	if category != "" {
		err = r.db.SelectContext(ctx, &skills,
			`SELECT id, name, category FROM skills WHERE category = $1 ORDER BY name`, category)
	} else {
		err = r.db.SelectContext(ctx, &skills,
			`SELECT id, name, category FROM skills ORDER BY category, name`)
	}
	if err != nil {
		return nil, fmt.Errorf("skill repository: list %w", err)
	}
	return skills, nil
}

// ListCategories возвращает список различных категорий.
func (r *SkillRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.SelectContext(ctx, &categories,
		`SELECT DISTINCT category FROM skills ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("skill repository: list categories %w", err)
	}
	return categories, nil
}

// GetByID возвращает навык по идентификатору.
func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill,
		`SELECT id, name, category FROM skills WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("skill repository: get by id %w", err)
	}
	return &skill, nil
}

// ExistsByName проверяет наличие навыка без учёта регистра имени.
func (r *SkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return common.Exists(ctx, r.db, "skills", "LOWER(name) = LOWER($1)", name)
}

// Create добавляет навык в каталог.
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO skills (name, category) VALUES ($1, $2) RETURNING id`,
		skill.Name, skill.Category,
	).Scan(&skill.ID)
	if err != nil {
		return fmt.Errorf("skill repository: create %w", err)
	}
	return nil
}

// Delete удаляет навык каталога вместе со связями пользователей (каскад).
func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("skill repository: delete %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSkillNotFound
	}
	return nil
}

// Exists проверяет наличие навыка по id.
func (r *SkillRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return common.Exists(ctx, r.db, "skills", "id = $1", id)
}

// ListUserSkills возвращает навыки пользователя вместе с данными каталога.
func (r *SkillRepository) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetails, error) {
	var rows []models.UserSkillDetails
	err := r.db.SelectContext(ctx, &rows, `
		SELECT us.id, us.role, us.skill_level, us.description,
		       s.id AS skill_id, s.name AS skill_name, s.category
		FROM user_skills us
		JOIN skills s ON us.skill_id = s.id
		WHERE us.user_id = $1
		ORDER BY s.category, s.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("skill repository: list user skills %w", err)
	}
	return rows, nil
}

// GetUserSkill возвращает строку user_skills по id.
func (r *SkillRepository) GetUserSkill(ctx context.Context, id uuid.UUID) (*models.UserSkill, error) {
	return common.GetByID[models.UserSkill](ctx, r.db, "user_skills", id, ErrUserSkillNotFound)
}

// HasUserSkill проверяет, объявлен ли у пользователя навык с такой ролью.
func (r *SkillRepository) HasUserSkill(ctx context.Context, userID, skillID uuid.UUID, role models.SkillRole) (bool, error) {
	return common.Exists(ctx, r.db, "user_skills",
		"user_id = $1 AND skill_id = $2 AND role = $3", userID, skillID, role)
}

// CreateUserSkill объявляет навык у пользователя.
func (r *SkillRepository) CreateUserSkill(ctx context.Context, us *models.UserSkill) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO user_skills (user_id, skill_id, role, skill_level, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, us.UserID, us.SkillID, us.Role, us.SkillLevel, us.Description).Scan(&us.ID)
	if err != nil {
		return fmt.Errorf("skill repository: create user skill %w", err)
	}
	return nil
}

// UpdateUserSkill обновляет уровень и описание. Чужую строку обновить нельзя.
func (r *SkillRepository) UpdateUserSkill(ctx context.Context, id, userID uuid.UUID, level string, description *string) (*models.UserSkill, error) {
	var us models.UserSkill
	err := r.db.GetContext(ctx, &us, `
		UPDATE user_skills
		SET skill_level = $3, description = $4
		WHERE id = $1 AND user_id = $2
		RETURNING *
	`, id, userID, level, description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserSkillNotFound
		}
		return nil, fmt.Errorf("skill repository: update user skill %w", err)
	}
	return &us, nil
}

// DeleteUserSkill убирает навык у пользователя.
func (r *SkillRepository) DeleteUserSkill(ctx context.Context, id, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("skill repository: delete user skill %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}

// ListUsersBySkill возвращает публичных пользователей, объявивших навык.
// role — опциональный фильтр offered/wanted.
func (r *SkillRepository) ListUsersBySkill(ctx context.Context, skillID uuid.UUID, role models.SkillRole) ([]models.SkillUser, error) {
	query := `
		SELECT u.id, u.name, u.bio, u.location, u.photo_url,
		       us.role, us.skill_level, us.description
		FROM users u
		JOIN user_skills us ON u.id = us.user_id
		WHERE us.skill_id = $1 AND u.is_public = TRUE AND u.is_active = TRUE
	`
	args := []interface{}{skillID}

	if role != "" {
		query += ` AND us.role = $2`
		args = append(args, role)
	}
	query += ` ORDER BY u.name`

	var users []models.SkillUser
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("skill repository: list users by skill %w", err)
	}
	return users, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/skillswap/skillswap-backend/internal/models"
)

// MatchRepository выполняет выборки для подбора партнёров по обмену.
// Только чтение, без побочных эффектов.
type MatchRepository struct {
	db *sqlx.DB
}

// NewMatchRepository создаёт экземпляр репозитория.
func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// FindCandidates возвращает публичных пользователей (кроме excludeID), у которых
// offered пересекается с wantedNames ИЛИ wanted пересекается с offeredNames.
// Порядок строк стабилен: по id пользователя, затем по имени навыка.
func (r *MatchRepository) FindCandidates(ctx context.Context, excludeID uuid.UUID, wantedNames, offeredNames []string) ([]models.MatchRow, error) {
	var rows []models.MatchRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT DISTINCT
			u.id AS user_id, u.name, u.bio, u.availability,
			s.name AS skill_name, s.category,
			us.role, us.skill_level, us.description
		FROM users u
		JOIN user_skills us ON u.id = us.user_id
		JOIN skills s ON us.skill_id = s.id
		WHERE u.id != $1
		  AND u.is_public = TRUE
		  AND u.is_active = TRUE
		  AND (
			(us.role = 'offered' AND s.name = ANY($2)) OR
			(us.role = 'wanted' AND s.name = ANY($3))
		  )
		ORDER BY u.id, s.name
	`, excludeID, pq.Array(wantedNames), pq.Array(offeredNames))
	if err != nil {
		return nil, fmt.Errorf("match repository: find candidates %w", err)
	}
	return rows, nil
}

const findReciprocalQuery = `
		SELECT DISTINCT
			u.id AS user_id, u.name, u.bio,
			offered_skill_s.name AS offered_skill_name,
			offered_skill.skill_level AS offered_skill_level,
			offered_skill.description AS offered_description,
			wanted_skill_s.name AS wanted_skill_name,
			wanted_skill.skill_level AS wanted_skill_level,
			wanted_skill.description AS wanted_description
		FROM users u
		JOIN user_skills offered_skill ON u.id = offered_skill.user_id
		JOIN user_skills wanted_skill ON u.id = wanted_skill.user_id
		JOIN skills offered_skill_s ON offered_skill.skill_id = offered_skill_s.id
		JOIN skills wanted_skill_s ON wanted_skill.skill_id = wanted_skill_s.id
		JOIN user_skills my_wanted ON my_wanted.user_id = $1 AND my_wanted.role = 'wanted'
		JOIN user_skills my_offered ON my_offered.user_id = $1 AND my_offered.role = 'offered'
		WHERE u.id != $1
		  AND u.is_public = TRUE
		  AND u.is_active = TRUE
		  AND offered_skill.role = 'offered'
		  AND wanted_skill.role = 'wanted'
		  AND offered_skill.skill_id = my_wanted.skill_id
		  AND wanted_skill.skill_id = my_offered.skill_id
		ORDER BY u.id`

// FindReciprocal ищет замкнутые пары: кандидат предлагает навык, который
// пользователь хочет, и хочет навык, который пользователь предлагает.
// Соединение идёт по id навыка через собственные строки пользователя,
// поэтому объём ограничен числом его различных навыков, а не всеми парами.
func (r *MatchRepository) FindReciprocal(ctx context.Context, userID uuid.UUID) ([]models.ReciprocalMatch, error) {
	var rows []models.ReciprocalMatch
	err := r.db.SelectContext(ctx, &rows, findReciprocalQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("match repository: find reciprocal %w", err)
	}
	return rows, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-backend/internal/models"
)

// ExportRepository собирает денормализованные выборки для внешнего
// рекомендательного движка и карточки пользователей для главной страницы.
type ExportRepository struct {
	db *sqlx.DB
}

// NewExportRepository создаёт экземпляр репозитория.
func NewExportRepository(db *sqlx.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

// visibleUsersFilter ограничивает выборки видимыми профилями: скрытые и
// заблокированные пользователи не попадают ни в экспорт, ни на главную.
const visibleUsersFilter = `u.is_public = TRUE AND u.is_active = TRUE`

const exportUsersQuery = `
		SELECT u.id AS user_id,
		       s.name AS skills,
		       COALESCE(us.skill_level, 'Beginner') AS skill_level,
		       us.description,
		       COALESCE(f.avg_rating, 0) AS rating,
		       COALESCE(f.feedback_text, '') AS feedback,
		       'available' AS status,
		       COALESCE(wanted_skills.skill_names, '') AS skill_user_is_seeking_for
		FROM users u
		LEFT JOIN user_skills us ON u.id = us.user_id
		LEFT JOIN skills s ON us.skill_id = s.id
		LEFT JOIN (
			SELECT user_id, STRING_AGG(s.name, ', ') AS skill_names
			FROM user_skills us2
			JOIN skills s ON us2.skill_id = s.id
			WHERE us2.role = 'wanted'
			GROUP BY user_id
		) wanted_skills ON u.id = wanted_skills.user_id
		LEFT JOIN (
			SELECT us3.user_id,
			       AVG(f2.rating) AS avg_rating,
			       STRING_AGG(f2.comment, '; ') AS feedback_text
			FROM user_skills us3
			LEFT JOIN swaps sw ON (sw.skill_offered_us = us3.id OR sw.skill_requested_us = us3.id)
			LEFT JOIN feedback f2 ON sw.id = f2.swap_id
			WHERE us3.role = 'offered'
			GROUP BY us3.user_id
		) f ON u.id = f.user_id
		WHERE ` + visibleUsersFilter + ` AND us.role = 'offered'
		ORDER BY u.id, s.name`

// ExportUsers возвращает строку на каждый предлагаемый навык публичного
// пользователя: навык, агрегированный рейтинг, текст отзывов и список
// искомых навыков через запятую.
func (r *ExportRepository) ExportUsers(ctx context.Context) ([]models.ExportUserRow, error) {
	var rows []models.ExportUserRow
	if err := r.db.SelectContext(ctx, &rows, exportUsersQuery); err != nil {
		return nil, fmt.Errorf("export repository: users %w", err)
	}
	return rows, nil
}

// ExportSwaps возвращает активные и ожидающие обмены в терминах
// ученик/учитель.
func (r *ExportRepository) ExportSwaps(ctx context.Context) ([]models.ExportSwapRow, error) {
	var rows []models.ExportSwapRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT s.from_user_id AS user_id_of_learner,
		       s.to_user_id AS user_id_of_teacher,
		       s.created_at AS starting_date,
		       s.ended_at AS ending_date
		FROM swaps s
		WHERE s.status IN ('accepted', 'pending')
		ORDER BY s.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("export repository: swaps %w", err)
	}
	return rows, nil
}

const userSkillRowsQuery = `
		SELECT u.id AS user_id,
		       u.name,
		       u.bio,
		       u.availability,
		       s.name AS skill_name,
		       s.category AS skill_category,
		       us.role,
		       COALESCE(us.skill_level, 'Beginner') AS skill_level,
		       us.description
		FROM users u
		LEFT JOIN user_skills us ON u.id = us.user_id
		LEFT JOIN skills s ON us.skill_id = s.id
		WHERE u.id = $1 AND ` + visibleUsersFilter

// GetUserSkillRows возвращает строки пользователь+навык публичного профиля.
// Пустая выборка означает, что пользователь не найден или скрыт.
func (r *ExportRepository) GetUserSkillRows(ctx context.Context, userID uuid.UUID) ([]models.ExportProfileRow, error) {
	var rows []models.ExportProfileRow
	if err := r.db.SelectContext(ctx, &rows, userSkillRowsQuery, userID); err != nil {
		return nil, fmt.Errorf("export repository: user skill rows %w", err)
	}
	return rows, nil
}

// ListSwapHistory возвращает все обмены пользователя, новые первыми.
func (r *ExportRepository) ListSwapHistory(ctx context.Context, userID uuid.UUID) ([]models.Swap, error) {
	var rows []models.Swap
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM swaps
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("export repository: swap history %w", err)
	}
	return rows, nil
}

const homepageCardsFrom = `
	FROM users u
	LEFT JOIN (
		SELECT us.user_id, STRING_AGG(s.name, ', ') AS skill_list
		FROM user_skills us
		JOIN skills s ON us.skill_id = s.id
		WHERE us.role = 'offered'
		GROUP BY us.user_id
	) offered_skills ON u.id = offered_skills.user_id
	LEFT JOIN (
		SELECT us.user_id, STRING_AGG(s.name, ', ') AS skill_list
		FROM user_skills us
		JOIN skills s ON us.skill_id = s.id
		WHERE us.role = 'wanted'
		GROUP BY us.user_id
	) wanted_skills ON u.id = wanted_skills.user_id
`

const homepageSearchFilter = ` AND (
	u.name ILIKE $1 OR
	u.bio ILIKE $1 OR
	offered_skills.skill_list ILIKE $1 OR
	wanted_skills.skill_list ILIKE $1
)`

const homepageCardsQuery = `
		SELECT DISTINCT u.id,
		       u.name,
		       u.bio,
		       u.photo_url,
		       u.availability,
		       COALESCE(f.avg_rating, 0) AS rating,
		       COALESCE(f.total_feedback, 0) AS total_feedback,
		       COALESCE(offered_skills.skill_list, '') AS offers,
		       COALESCE(wanted_skills.skill_list, '') AS seeks
	` + homepageCardsFrom + `
		LEFT JOIN (
			SELECT us3.user_id,
			       AVG(f2.rating) AS avg_rating,
			       COUNT(f2.id) AS total_feedback
			FROM user_skills us3
			LEFT JOIN swaps sw ON (sw.skill_offered_us = us3.id OR sw.skill_requested_us = us3.id)
			LEFT JOIN feedback f2 ON sw.id = f2.swap_id
			WHERE us3.role = 'offered'
			GROUP BY us3.user_id
		) f ON u.id = f.user_id
		WHERE ` + visibleUsersFilter

const homepageCountQuery = `SELECT COUNT(DISTINCT u.id)` + homepageCardsFrom + ` WHERE ` + visibleUsersFilter

// HomepageCards возвращает страницу публичных карточек пользователей
// с агрегатами навыков и рейтинга, отсортированных по имени.
func (r *ExportRepository) HomepageCards(ctx context.Context, search string, limit, offset int) ([]models.HomepageCard, error) {
	query := homepageCardsQuery
	args := []interface{}{}
	idx := 1
	if search != "" {
		query += homepageSearchFilter
		args = append(args, "%"+search+"%")
		idx++
	}
	query += fmt.Sprintf(" ORDER BY u.name LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	var cards []models.HomepageCard
	if err := r.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, fmt.Errorf("export repository: homepage cards %w", err)
	}
	return cards, nil
}

// CountHomepageUsers считает публичных пользователей под тем же фильтром поиска.
func (r *ExportRepository) CountHomepageUsers(ctx context.Context, search string) (int, error) {
	query := homepageCountQuery
	args := []interface{}{}
	if search != "" {
		query += homepageSearchFilter
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("export repository: count homepage users %w", err)
	}
	return total, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-backend/internal/models"
)

// AdminRepository отвечает за журнал модерации и сводную статистику.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository создаёт экземпляр репозитория.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// InsertLog фиксирует действие администратора в журнале.
func (r *AdminRepository) InsertLog(ctx context.Context, log *models.AdminLog) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO admin_logs (entity_type, entity_id, action, reason, admin_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, logged_at
	`, log.EntityType, log.EntityID, log.Action, log.Reason, log.AdminID).
		Scan(&log.ID, &log.LoggedAt)
	if err != nil {
		return fmt.Errorf("admin repository: insert log %w", err)
	}
	return nil
}

// AdminLogFilter задаёт фильтры выборки журнала.
type AdminLogFilter struct {
	EntityType string
	Action     string
	Limit      int
	Offset     int
}

// ListLogs возвращает записи журнала с именами администраторов,
// новые первыми.
func (r *AdminRepository) ListLogs(ctx context.Context, filter AdminLogFilter) ([]models.AdminLogDetails, error) {
	query := `
		SELECT al.id, al.entity_type, al.entity_id, al.action, al.reason, al.logged_at,
		       u.name AS admin_name
		FROM admin_logs al
		JOIN users u ON al.admin_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}
	idx := 1

	if filter.EntityType != "" {
		query += fmt.Sprintf(" AND al.entity_type = $%d", idx)
		args = append(args, filter.EntityType)
		idx++
	}
	if filter.Action != "" {
		query += fmt.Sprintf(" AND al.action = $%d", idx)
		args = append(args, filter.Action)
		idx++
	}

	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	query += fmt.Sprintf(" ORDER BY al.logged_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, filter.Limit, filter.Offset)

	var rows []models.AdminLogDetails
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("admin repository: list logs %w", err)
	}
	return rows, nil
}

// GetSystemStats собирает сводную статистику платформы.
func (r *AdminRepository) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	var stats models.SystemStats

	err := r.db.GetContext(ctx, &stats.Users, `
		SELECT COUNT(*) AS total_users,
		       COUNT(CASE WHEN created_at > NOW() - INTERVAL '7 days' THEN 1 END) AS new_users_7d,
		       COUNT(CASE WHEN created_at > NOW() - INTERVAL '30 days' THEN 1 END) AS new_users_30d
		FROM users
		WHERE is_active = TRUE
	`)
	if err != nil {
		return nil, fmt.Errorf("admin repository: user stats %w", err)
	}

	err = r.db.GetContext(ctx, &stats.Swaps, `
		SELECT COUNT(*) AS total_swaps,
		       COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_swaps,
		       COUNT(CASE WHEN status = 'accepted' THEN 1 END) AS accepted_swaps,
		       COUNT(CASE WHEN status = 'rejected' THEN 1 END) AS rejected_swaps,
		       COUNT(CASE WHEN created_at > NOW() - INTERVAL '7 days' THEN 1 END) AS new_swaps_7d
		FROM swaps
	`)
	if err != nil {
		return nil, fmt.Errorf("admin repository: swap stats %w", err)
	}

	err = r.db.GetContext(ctx, &stats.Skills, `
		SELECT (SELECT COUNT(*) FROM skills) AS total_skills,
		       (SELECT COUNT(DISTINCT user_id) FROM user_skills) AS users_with_skills,
		       (SELECT COUNT(*) FROM user_skills) AS total_user_skills
	`)
	if err != nil {
		return nil, fmt.Errorf("admin repository: skill stats %w", err)
	}

	var fbStats struct {
		TotalFeedback int             `db:"total_feedback"`
		AverageRating sql.NullFloat64 `db:"average_rating"`
		NewFeedback7d int             `db:"new_feedback_7d"`
	}
	err = r.db.GetContext(ctx, &fbStats, `
		SELECT COUNT(*) AS total_feedback,
		       AVG(rating) AS average_rating,
		       COUNT(CASE WHEN created_at > NOW() - INTERVAL '7 days' THEN 1 END) AS new_feedback_7d
		FROM feedback
	`)
	if err != nil {
		return nil, fmt.Errorf("admin repository: feedback stats %w", err)
	}
	stats.Feedback = models.FeedbackStats{
		TotalFeedback: fbStats.TotalFeedback,
		AverageRating: fbStats.AverageRating.Float64,
		NewFeedback7d: fbStats.NewFeedback7d,
	}

	return &stats, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-backend/internal/models"
)

// ErrFeedbackNotFound возвращается, когда отзыв не найден.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository отвечает за таблицу feedback.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository создаёт экземпляр репозитория.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create сохраняет отзыв.
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO feedback (swap_id, from_user, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, fb.SwapID, fb.FromUser, fb.Rating, fb.Comment).Scan(&fb.ID, &fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("feedback repository: create %w", err)
	}
	return nil
}

// GetBySwapAndAuthor возвращает отзыв автора на обмен, nil если его нет.
func (r *FeedbackRepository) GetBySwapAndAuthor(ctx context.Context, swapID, authorID uuid.UUID) (*models.Feedback, error) {
	var fb models.Feedback
	err := r.db.GetContext(ctx, &fb,
		`SELECT * FROM feedback WHERE swap_id = $1 AND from_user = $2`, swapID, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("feedback repository: get by swap and author %w", err)
	}
	return &fb, nil
}

// GetByIDAndAuthor возвращает отзыв автора по id.
func (r *FeedbackRepository) GetByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (*models.Feedback, error) {
	var fb models.Feedback
	err := r.db.GetContext(ctx, &fb,
		`SELECT * FROM feedback WHERE id = $1 AND from_user = $2`, id, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("feedback repository: get by id and author %w", err)
	}
	return &fb, nil
}

// ListBySwap возвращает отзывы на обмен с именами авторов.
func (r *FeedbackRepository) ListBySwap(ctx context.Context, swapID uuid.UUID) ([]models.FeedbackDetails, error) {
	var rows []models.FeedbackDetails
	err := r.db.SelectContext(ctx, &rows, `
		SELECT f.id, f.rating, f.comment, f.created_at,
		       u.name AS from_user_name
		FROM feedback f
		JOIN users u ON f.from_user = u.id
		WHERE f.swap_id = $1
		ORDER BY f.created_at DESC
	`, swapID)
	if err != nil {
		return nil, fmt.Errorf("feedback repository: list by swap %w", err)
	}
	return rows, nil
}

// ListSentByUser возвращает отзывы, оставленные пользователем, с контекстом обмена.
func (r *FeedbackRepository) ListSentByUser(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error) {
	var rows []models.FeedbackHistoryItem
	err := r.db.SelectContext(ctx, &rows, `
		SELECT f.id, f.rating, f.comment, f.created_at,
		       s.id AS swap_id,
		       other_user.name AS other_user_name,
		       offered_skill_s.name AS offered_skill_name,
		       requested_skill_s.name AS requested_skill_name
		FROM feedback f
		JOIN swaps s ON f.swap_id = s.id
		JOIN users other_user ON (s.from_user_id = $1 AND s.to_user_id = other_user.id)
		                      OR (s.to_user_id = $1 AND s.from_user_id = other_user.id)
		JOIN user_skills offered_skill ON s.skill_offered_us = offered_skill.id
		JOIN user_skills requested_skill ON s.skill_requested_us = requested_skill.id
		JOIN skills offered_skill_s ON offered_skill.skill_id = offered_skill_s.id
		JOIN skills requested_skill_s ON requested_skill.skill_id = requested_skill_s.id
		WHERE f.from_user = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("feedback repository: list sent %w", err)
	}
	return rows, nil
}

// ListReceivedByUser возвращает отзывы, полученные пользователем от партнёров.
func (r *FeedbackRepository) ListReceivedByUser(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error) {
	var rows []models.FeedbackHistoryItem
	err := r.db.SelectContext(ctx, &rows, `
		SELECT f.id, f.rating, f.comment, f.created_at,
		       s.id AS swap_id,
		       from_user.name AS other_user_name,
		       offered_skill_s.name AS offered_skill_name,
		       requested_skill_s.name AS requested_skill_name
		FROM feedback f
		JOIN swaps s ON f.swap_id = s.id
		JOIN users from_user ON f.from_user = from_user.id
		JOIN user_skills offered_skill ON s.skill_offered_us = offered_skill.id
		JOIN user_skills requested_skill ON s.skill_requested_us = requested_skill.id
		JOIN skills offered_skill_s ON offered_skill.skill_id = offered_skill_s.id
		JOIN skills requested_skill_s ON requested_skill.skill_id = requested_skill_s.id
		WHERE (s.from_user_id = $1 OR s.to_user_id = $1) AND f.from_user != $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("feedback repository: list received %w", err)
	}
	return rows, nil
}

// GetRatingStats возвращает агрегированный рейтинг пользователя.
// Учитываются отзывы партнёров по обменам, где пользователь участвовал.
func (r *FeedbackRepository) GetRatingStats(ctx context.Context, userID uuid.UUID) (*models.RatingStats, error) {
	var stats struct {
		TotalFeedback int             `db:"total_feedback"`
		AverageRating sql.NullFloat64 `db:"average_rating"`
		FiveStar      int             `db:"five_star"`
		FourStar      int             `db:"four_star"`
		ThreeStar     int             `db:"three_star"`
		TwoStar       int             `db:"two_star"`
		OneStar       int             `db:"one_star"`
	}
	err := r.db.GetContext(ctx, &stats, `
		SELECT COUNT(f.id) AS total_feedback,
		       AVG(f.rating) AS average_rating,
		       COUNT(CASE WHEN f.rating = 5 THEN 1 END) AS five_star,
		       COUNT(CASE WHEN f.rating = 4 THEN 1 END) AS four_star,
		       COUNT(CASE WHEN f.rating = 3 THEN 1 END) AS three_star,
		       COUNT(CASE WHEN f.rating = 2 THEN 1 END) AS two_star,
		       COUNT(CASE WHEN f.rating = 1 THEN 1 END) AS one_star
		FROM feedback f
		JOIN swaps s ON f.swap_id = s.id
		WHERE (s.from_user_id = $1 OR s.to_user_id = $1) AND f.from_user != $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("feedback repository: rating stats %w", err)
	}

	return &models.RatingStats{
		TotalFeedback: stats.TotalFeedback,
		AverageRating: stats.AverageRating.Float64,
		FiveStar:      stats.FiveStar,
		FourStar:      stats.FourStar,
		ThreeStar:     stats.ThreeStar,
		TwoStar:       stats.TwoStar,
		OneStar:       stats.OneStar,
	}, nil
}

// Update обновляет собственный отзыв автора.
func (r *FeedbackRepository) Update(ctx context.Context, fb *models.Feedback) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE feedback SET rating = $3, comment = $4 WHERE id = $1 AND from_user = $2
	`, fb.ID, fb.FromUser, fb.Rating, fb.Comment)
	if err != nil {
		return fmt.Errorf("feedback repository: update %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

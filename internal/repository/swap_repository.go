package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/repository/common"
)

var (
	// ErrSwapNotFound возвращается, когда обмен не найден.
	ErrSwapNotFound = errors.New("swap not found")
	// ErrDuplicatePendingSwap возвращается при попытке создать дубликат
	// ожидающего обмена с теми же участниками и навыками.
	ErrDuplicatePendingSwap = errors.New("duplicate pending swap")
	// ErrSwapNotPending возвращается, когда обмен уже покинул состояние pending.
	ErrSwapNotPending = errors.New("swap is not pending")
)

// SwapRepository отвечает за таблицу swaps.
type SwapRepository struct {
	db *sqlx.DB
}

// NewSwapRepository создаёт экземпляр репозитория.
func NewSwapRepository(db *sqlx.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

// duplicatePendingQuery ловит дубликат ожидающего обмена с теми же навыками
// между той же парой пользователей в любом направлении.
const duplicatePendingQuery = `
		SELECT COUNT(*) FROM swaps
		WHERE ((from_user_id = $1 AND to_user_id = $2) OR (from_user_id = $2 AND to_user_id = $1))
		  AND skill_offered_us = $3 AND skill_requested_us = $4
		  AND status = 'pending'`

// Create вставляет новый обмен в состоянии pending.
// Проверка дубликата и вставка выполняются в одной транзакции, чтобы два
// одновременных запроса не создали одинаковые ожидающие обмены. Частичный
// уникальный индекс в схеме страхует прямое направление дубликата.
func (r *SwapRepository) Create(ctx context.Context, swap *models.Swap) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("swap repository: begin tx %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.GetContext(ctx, &count, duplicatePendingQuery,
		swap.FromUserID, swap.ToUserID, swap.SkillOfferedUS, swap.SkillRequestedUS)
	if err != nil {
		return fmt.Errorf("swap repository: check duplicate %w", err)
	}
	if count > 0 {
		return ErrDuplicatePendingSwap
	}

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO swaps (from_user_id, to_user_id, skill_offered_us, skill_requested_us, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING id, status, created_at, updated_at
	`, swap.FromUserID, swap.ToUserID, swap.SkillOfferedUS, swap.SkillRequestedUS).
		Scan(&swap.ID, &swap.Status, &swap.CreatedAt, &swap.UpdatedAt)
	if err != nil {
		// Индекс мог сработать между проверкой и вставкой у конкурента.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicatePendingSwap
		}
		return fmt.Errorf("swap repository: insert %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("swap repository: commit %w", err)
	}
	return nil
}

// GetByID возвращает обмен по идентификатору.
func (r *SwapRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Swap, error) {
	return common.GetByID[models.Swap](ctx, r.db, "swaps", id, ErrSwapNotFound)
}

const swapDetailsSelect = `
	SELECT s.id, s.status, s.created_at, s.updated_at,
	       s.from_user_id, s.to_user_id,
	       s.skill_offered_us, s.skill_requested_us,
	       from_user.name AS from_user_name,
	       to_user.name AS to_user_name,
	       offered_skill.description AS offered_description,
	       offered_skill.skill_level AS offered_skill_level,
	       requested_skill.description AS requested_description,
	       requested_skill.skill_level AS requested_skill_level,
	       offered_skill_s.name AS offered_skill_name,
	       requested_skill_s.name AS requested_skill_name
	FROM swaps s
	JOIN users from_user ON s.from_user_id = from_user.id
	JOIN users to_user ON s.to_user_id = to_user.id
	JOIN user_skills offered_skill ON s.skill_offered_us = offered_skill.id
	JOIN user_skills requested_skill ON s.skill_requested_us = requested_skill.id
	JOIN skills offered_skill_s ON offered_skill.skill_id = offered_skill_s.id
	JOIN skills requested_skill_s ON requested_skill.skill_id = requested_skill_s.id
`

// ListByUser возвращает отправленные и полученные обмены пользователя.
// status — опциональный фильтр.
func (r *SwapRepository) ListByUser(ctx context.Context, userID uuid.UUID, status models.SwapStatus) ([]models.SwapDetails, error) {
	query := swapDetailsSelect + ` WHERE s.from_user_id = $1 OR s.to_user_id = $1`
	args := []interface{}{userID}

	if status != "" {
		query += ` AND s.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY s.created_at DESC`

	var swaps []models.SwapDetails
	if err := r.db.SelectContext(ctx, &swaps, query, args...); err != nil {
		return nil, fmt.Errorf("swap repository: list by user %w", err)
	}
	return swaps, nil
}

// GetDetails возвращает денормализованный обмен, видимый только участникам.
func (r *SwapRepository) GetDetails(ctx context.Context, id, userID uuid.UUID) (*models.SwapDetails, error) {
	var details models.SwapDetails
	query := swapDetailsSelect + ` WHERE s.id = $1 AND (s.from_user_id = $2 OR s.to_user_id = $2)`
	if err := r.db.GetContext(ctx, &details, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		return nil, fmt.Errorf("swap repository: get details %w", err)
	}
	return &details, nil
}

// UpdateStatusIfPending атомарно переводит обмен из pending в новый статус.
// Условие WHERE status = 'pending' закрывает гонку двойного перехода:
// из двух одновременных запросов выигрывает ровно один.
func (r *SwapRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.SwapStatus) (*models.Swap, error) {
	var swap models.Swap
	err := r.db.GetContext(ctx, &swap, `
		UPDATE swaps
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING *
	`, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotPending
		}
		return nil, fmt.Errorf("swap repository: update status %w", err)
	}
	return &swap, nil
}

// Exists проверяет наличие обмена по id.
func (r *SwapRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return common.Exists(ctx, r.db, "swaps", "id = $1", id)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminLog — запись журнала модерации. Каждое действие администратора
// фиксируется вместе с причиной.
type AdminLog struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EntityType string    `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID `db:"entity_id" json:"entity_id"`
	Action     string    `db:"action" json:"action"`
	Reason     *string   `db:"reason" json:"reason,omitempty"`
	AdminID    uuid.UUID `db:"admin_id" json:"admin_id"`
	LoggedAt   time.Time `db:"logged_at" json:"logged_at"`
}

// AdminLogDetails — запись журнала с именем администратора.
type AdminLogDetails struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EntityType string    `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID `db:"entity_id" json:"entity_id"`
	Action     string    `db:"action" json:"action"`
	Reason     *string   `db:"reason" json:"reason,omitempty"`
	LoggedAt   time.Time `db:"logged_at" json:"logged_at"`
	AdminName  string    `db:"admin_name" json:"admin_name"`
}

// UserStats — показатели по пользователям для админской сводки.
type UserStats struct {
	TotalUsers  int `db:"total_users" json:"total_users"`
	NewUsers7d  int `db:"new_users_7d" json:"new_users_7d"`
	NewUsers30d int `db:"new_users_30d" json:"new_users_30d"`
}

// SwapStats — показатели по обменам.
type SwapStats struct {
	TotalSwaps    int `db:"total_swaps" json:"total_swaps"`
	PendingSwaps  int `db:"pending_swaps" json:"pending_swaps"`
	AcceptedSwaps int `db:"accepted_swaps" json:"accepted_swaps"`
	RejectedSwaps int `db:"rejected_swaps" json:"rejected_swaps"`
	NewSwaps7d    int `db:"new_swaps_7d" json:"new_swaps_7d"`
}

// SkillStats — показатели по навыкам.
type SkillStats struct {
	TotalSkills     int `db:"total_skills" json:"total_skills"`
	UsersWithSkills int `db:"users_with_skills" json:"users_with_skills"`
	TotalUserSkills int `db:"total_user_skills" json:"total_user_skills"`
}

// FeedbackStats — показатели по отзывам.
type FeedbackStats struct {
	TotalFeedback int     `db:"total_feedback" json:"total_feedback"`
	AverageRating float64 `db:"average_rating" json:"average_rating"`
	NewFeedback7d int     `db:"new_feedback_7d" json:"new_feedback_7d"`
}

// SystemStats — сводная статистика платформы.
type SystemStats struct {
	Users    UserStats     `json:"users"`
	Swaps    SwapStats     `json:"swaps"`
	Skills   SkillStats    `json:"skills"`
	Feedback FeedbackStats `json:"feedback"`
}

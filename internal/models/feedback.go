package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback — оценка и комментарий участника после состоявшегося обмена.
// Один участник может оставить не более одного отзыва на обмен.
type Feedback struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SwapID    uuid.UUID `db:"swap_id" json:"swap_id"`
	FromUser  uuid.UUID `db:"from_user" json:"from_user"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FeedbackDetails — отзыв с именем автора для выдачи по обмену.
type FeedbackDetails struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	FromUserName string    `db:"from_user_name" json:"from_user_name"`
}

// FeedbackHistoryItem — отзыв в истории пользователя с контекстом обмена.
type FeedbackHistoryItem struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Rating             int       `db:"rating" json:"rating"`
	Comment            *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	SwapID             uuid.UUID `db:"swap_id" json:"swap_id"`
	OtherUserName      string    `db:"other_user_name" json:"other_user_name"`
	OfferedSkillName   string    `db:"offered_skill_name" json:"offered_skill_name"`
	RequestedSkillName string    `db:"requested_skill_name" json:"requested_skill_name"`
}

// RatingStats — агрегированный рейтинг пользователя с разбивкой по звёздам.
type RatingStats struct {
	TotalFeedback int     `db:"total_feedback" json:"total_feedback"`
	AverageRating float64 `db:"average_rating" json:"average_rating"`
	FiveStar      int     `db:"five_star" json:"five_star"`
	FourStar      int     `db:"four_star" json:"four_star"`
	ThreeStar     int     `db:"three_star" json:"three_star"`
	TwoStar       int     `db:"two_star" json:"two_star"`
	OneStar       int     `db:"one_star" json:"one_star"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Swap — направленное предложение обмена: инициатор предлагает свой навык
// в обмен на навык получателя. Ссылается на конкретные строки user_skills.
type Swap struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	FromUserID       uuid.UUID  `db:"from_user_id" json:"from_user_id"`
	ToUserID         uuid.UUID  `db:"to_user_id" json:"to_user_id"`
	SkillOfferedUS   uuid.UUID  `db:"skill_offered_us" json:"skill_offered_us"`
	SkillRequestedUS uuid.UUID  `db:"skill_requested_us" json:"skill_requested_us"`
	Status           SwapStatus `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
	EndedAt          *time.Time `db:"ended_at" json:"ended_at,omitempty"`
}

// IsParticipant сообщает, участвует ли пользователь в обмене.
func (s *Swap) IsParticipant(userID uuid.UUID) bool {
	return s.FromUserID == userID || s.ToUserID == userID
}

// SwapDetails — обмен, денормализованный для выдачи: имена участников и навыков.
type SwapDetails struct {
	ID                   uuid.UUID  `db:"id" json:"id"`
	Status               SwapStatus `db:"status" json:"status"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updated_at"`
	FromUserID           uuid.UUID  `db:"from_user_id" json:"from_user_id"`
	ToUserID             uuid.UUID  `db:"to_user_id" json:"to_user_id"`
	SkillOfferedUS       uuid.UUID  `db:"skill_offered_us" json:"skill_offered_us"`
	SkillRequestedUS     uuid.UUID  `db:"skill_requested_us" json:"skill_requested_us"`
	FromUserName         string     `db:"from_user_name" json:"from_user_name"`
	ToUserName           string     `db:"to_user_name" json:"to_user_name"`
	OfferedSkillName     string     `db:"offered_skill_name" json:"offered_skill_name"`
	RequestedSkillName   string     `db:"requested_skill_name" json:"requested_skill_name"`
	OfferedSkillLevel    string     `db:"offered_skill_level" json:"offered_skill_level"`
	RequestedSkillLevel  string     `db:"requested_skill_level" json:"requested_skill_level"`
	OfferedDescription   *string    `db:"offered_description" json:"offered_description,omitempty"`
	RequestedDescription *string    `db:"requested_description" json:"requested_description,omitempty"`
}

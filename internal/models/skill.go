package models

import (
	"github.com/google/uuid"
)

// Skill — глобальный каталожный навык. Не принадлежит отдельному пользователю.
type Skill struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Category string    `db:"category" json:"category"`
}

// UserSkill — связь пользователя и навыка с ролью offered/wanted.
// Пара (user, skill, role) уникальна.
type UserSkill struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	SkillID     uuid.UUID `db:"skill_id" json:"skill_id"`
	Role        SkillRole `db:"role" json:"role"`
	SkillLevel  string    `db:"skill_level" json:"skill_level"`
	Description *string   `db:"description" json:"description,omitempty"`
}

// UserSkillDetails — строка user_skills, раскрытая вместе с навыком.
type UserSkillDetails struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Role        SkillRole `db:"role" json:"role"`
	SkillLevel  string    `db:"skill_level" json:"skill_level"`
	Description *string   `db:"description" json:"description,omitempty"`
	SkillID     uuid.UUID `db:"skill_id" json:"skill_id"`
	SkillName   string    `db:"skill_name" json:"skill_name"`
	Category    string    `db:"category" json:"category"`
}

// SkillUser — публичный пользователь, найденный по навыку.
type SkillUser struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Bio         *string   `db:"bio" json:"bio,omitempty"`
	Location    *string   `db:"location" json:"location,omitempty"`
	PhotoURL    *string   `db:"photo_url" json:"photo_url,omitempty"`
	Role        SkillRole `db:"role" json:"role"`
	SkillLevel  string    `db:"skill_level" json:"skill_level"`
	Description *string   `db:"description" json:"description,omitempty"`
}

package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MatchSkill — навык кандидата, попавший в пересечение с запросившим пользователем.
type MatchSkill struct {
	SkillName   string  `json:"skill_name"`
	Category    string  `json:"skill_category"`
	SkillLevel  string  `json:"skill_level"`
	Description *string `json:"description,omitempty"`
}

// MatchCandidate — публичный пользователь, чьи навыки дополняют навыки запросившего.
// CanTeach — кандидат предлагает то, что запросивший хочет изучить;
// WantsToLearn — кандидат хочет то, что запросивший предлагает.
// Кандидат попадает в выдачу, если хотя бы один из списков непуст.
type MatchCandidate struct {
	UserID       uuid.UUID    `json:"user_id"`
	Name         string       `json:"name"`
	Bio          *string      `json:"bio,omitempty"`
	Availability []string     `json:"availability"`
	CanTeach     []MatchSkill `json:"can_teach"`
	WantsToLearn []MatchSkill `json:"wants_to_learn"`
}

// MatchRow — сырая строка выборки кандидатов до группировки по пользователю.
type MatchRow struct {
	UserID       uuid.UUID      `db:"user_id"`
	Name         string         `db:"name"`
	Bio          *string        `db:"bio"`
	Availability pq.StringArray `db:"availability"`
	SkillName    string         `db:"skill_name"`
	Category     string         `db:"category"`
	Role         SkillRole      `db:"role"`
	SkillLevel   string         `db:"skill_level"`
	Description  *string        `db:"description"`
}

// ReciprocalMatch — кандидат, образующий замкнутый двусторонний обмен:
// его offered совпадает с wanted запросившего и наоборот, по id навыка.
type ReciprocalMatch struct {
	UserID             uuid.UUID `db:"user_id" json:"user_id"`
	Name               string    `db:"name" json:"name"`
	Bio                *string   `db:"bio" json:"bio,omitempty"`
	OfferedSkillName   string    `db:"offered_skill_name" json:"offered_skill_name"`
	OfferedSkillLevel  string    `db:"offered_skill_level" json:"offered_skill_level"`
	OfferedDescription *string   `db:"offered_description" json:"offered_description,omitempty"`
	WantedSkillName    string    `db:"wanted_skill_name" json:"wanted_skill_name"`
	WantedSkillLevel   string    `db:"wanted_skill_level" json:"wanted_skill_level"`
	WantedDescription  *string   `db:"wanted_description" json:"wanted_description,omitempty"`
}

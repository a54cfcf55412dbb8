package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Выгрузка для внешнего рекомендательного движка. Плоские денормализованные
// строки в формате, который движок принимает вместо users.csv/swaps.csv.

// ExportUserRow — строка пользователя с предлагаемым навыком и агрегатами.
type ExportUserRow struct {
	UserID             uuid.UUID `db:"user_id" json:"user_id"`
	Skills             *string   `db:"skills" json:"skills"`
	SkillLevel         string    `db:"skill_level" json:"skill_level"`
	Description        *string   `db:"description" json:"description"`
	Rating             float64   `db:"rating" json:"rating"`
	Feedback           string    `db:"feedback" json:"feedback"`
	Status             string    `db:"status" json:"status"`
	SkillUserIsSeeking string    `db:"skill_user_is_seeking_for" json:"skill_user_is_seeking_for"`
}

// ExportSwapRow — строка обмена в терминах ученик/учитель.
type ExportSwapRow struct {
	LearnerID uuid.UUID  `db:"user_id_of_learner" json:"user_id_of_learner"`
	TeacherID uuid.UUID  `db:"user_id_of_teacher" json:"user_id_of_teacher"`
	StartedAt time.Time  `db:"starting_date" json:"starting_date_of_learning_or_teaching"`
	EndedAt   *time.Time `db:"ending_date" json:"ending_date_of_learning_or_teaching"`
}

// ExportProfileRow — сырая строка пользователь+навык публичного профиля.
// Поля навыка nullable: пользователь без навыков даёт одну строку с NULL.
type ExportProfileRow struct {
	UserID       uuid.UUID      `db:"user_id"`
	Name         string         `db:"name"`
	Bio          *string        `db:"bio"`
	Availability pq.StringArray `db:"availability"`
	SkillName    *string        `db:"skill_name"`
	Category     *string        `db:"skill_category"`
	Role         *string        `db:"role"`
	SkillLevel   string         `db:"skill_level"`
	Description  *string        `db:"description"`
}

// ExportUserProfile — персональный набор данных пользователя для рекомендаций.
type ExportUserProfile struct {
	UserID        uuid.UUID    `json:"user_id"`
	Name          string       `json:"name"`
	Bio           *string      `json:"bio"`
	Availability  []string     `json:"availability"`
	SkillsOffered []MatchSkill `json:"skills_offered"`
	SkillsWanted  []MatchSkill `json:"skills_wanted"`
	SwapHistory   []Swap       `json:"swap_history"`
}

// HomepageCard — карточка пользователя для главной страницы.
type HomepageCard struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Initial       string         `db:"-" json:"initial"`
	Rating        float64        `db:"rating" json:"rating"`
	TotalFeedback int            `db:"total_feedback" json:"total_feedback"`
	Offers        string         `db:"offers" json:"offers"`
	Seeks         string         `db:"seeks" json:"seeks"`
	Bio           *string        `db:"bio" json:"bio,omitempty"`
	PhotoURL      *string        `db:"photo_url" json:"photo_url,omitempty"`
	Availability  pq.StringArray `db:"availability" json:"availability"`
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
)

// MatchRepo описывает выборки кандидатов для подбора партнёров.
type MatchRepo interface {
	FindCandidates(ctx context.Context, excludeID uuid.UUID, wantedNames, offeredNames []string) ([]models.MatchRow, error)
	FindReciprocal(ctx context.Context, userID uuid.UUID) ([]models.ReciprocalMatch, error)
}

// MatchSkillSource отдаёт навыки самого пользователя.
type MatchSkillSource interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetails, error)
}

// MatchService подбирает партнёров по взаимодополняющим навыкам.
type MatchService struct {
	matches MatchRepo
	skills  MatchSkillSource
}

// NewMatchService создаёт сервис подбора.
func NewMatchService(matches MatchRepo, skills MatchSkillSource) *MatchService {
	return &MatchService{matches: matches, skills: skills}
}

// MatchResult — итог подбора: навыки пользователя и сгруппированные кандидаты.
type MatchResult struct {
	UserID            uuid.UUID               `json:"user_id"`
	UserOfferedSkills []string                `json:"user_offered_skills"`
	UserWantedSkills  []string                `json:"user_wanted_skills"`
	Matches           []models.MatchCandidate `json:"potential_matches"`
}

// FindMatches возвращает кандидатов, чьи навыки дополняют навыки пользователя.
// CanTeach кандидата — его offered, пересекающиеся с wanted пользователя;
// WantsToLearn — его wanted, пересекающиеся с offered пользователя.
// Пользователь без навыков считается не найденным.
func (s *MatchService) FindMatches(ctx context.Context, userID uuid.UUID) (*MatchResult, error) {
	own, err := s.skills.ListUserSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(own) == 0 {
		return nil, apperror.New(apperror.ErrCodeNotFound, "пользователь не найден или не имеет навыков")
	}

	offered := []string{}
	wanted := []string{}
	offeredSet := map[string]struct{}{}
	wantedSet := map[string]struct{}{}
	for _, us := range own {
		switch us.Role {
		case models.SkillRoleOffered:
			offered = append(offered, us.SkillName)
			offeredSet[us.SkillName] = struct{}{}
		case models.SkillRoleWanted:
			wanted = append(wanted, us.SkillName)
			wantedSet[us.SkillName] = struct{}{}
		}
	}

	rows, err := s.matches.FindCandidates(ctx, userID, wanted, offered)
	if err != nil {
		return nil, err
	}

	// Группировка по кандидату с сохранением порядка выборки.
	index := map[uuid.UUID]int{}
	candidates := []models.MatchCandidate{}
	for _, row := range rows {
		i, ok := index[row.UserID]
		if !ok {
			candidates = append(candidates, models.MatchCandidate{
				UserID:       row.UserID,
				Name:         row.Name,
				Bio:          row.Bio,
				Availability: row.Availability,
				CanTeach:     []models.MatchSkill{},
				WantsToLearn: []models.MatchSkill{},
			})
			i = len(candidates) - 1
			index[row.UserID] = i
		}

		skill := models.MatchSkill{
			SkillName:   row.SkillName,
			Category:    row.Category,
			SkillLevel:  row.SkillLevel,
			Description: row.Description,
		}
		if skill.SkillLevel == "" {
			skill.SkillLevel = models.SkillLevelBeginner
		}

		if _, ok := wantedSet[row.SkillName]; ok && row.Role == models.SkillRoleOffered {
			candidates[i].CanTeach = append(candidates[i].CanTeach, skill)
		}
		if _, ok := offeredSet[row.SkillName]; ok && row.Role == models.SkillRoleWanted {
			candidates[i].WantsToLearn = append(candidates[i].WantsToLearn, skill)
		}
	}

	return &MatchResult{
		UserID:            userID,
		UserOfferedSkills: offered,
		UserWantedSkills:  wanted,
		Matches:           candidates,
	}, nil
}

// FindReciprocalMatches возвращает кандидатов, образующих замкнутый обмен:
// их offered совпадает с wanted пользователя и наоборот.
func (s *MatchService) FindReciprocalMatches(ctx context.Context, userID uuid.UUID) ([]models.ReciprocalMatch, error) {
	matches, err := s.matches.FindReciprocal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.ReciprocalMatch{}
	}
	return matches, nil
}

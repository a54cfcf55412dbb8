package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
)

// ExportRepo описывает выборки для рекомендательного движка и главной страницы.
type ExportRepo interface {
	ExportUsers(ctx context.Context) ([]models.ExportUserRow, error)
	ExportSwaps(ctx context.Context) ([]models.ExportSwapRow, error)
	GetUserSkillRows(ctx context.Context, userID uuid.UUID) ([]models.ExportProfileRow, error)
	ListSwapHistory(ctx context.Context, userID uuid.UUID) ([]models.Swap, error)
	HomepageCards(ctx context.Context, search string, limit, offset int) ([]models.HomepageCard, error)
	CountHomepageUsers(ctx context.Context, search string) (int, error)
}

// ExportService готовит данные для внешнего рекомендательного движка
// и карточки пользователей для главной страницы.
type ExportService struct {
	repo ExportRepo
}

// NewExportService создаёт сервис выгрузок.
func NewExportService(repo ExportRepo) *ExportService {
	return &ExportService{repo: repo}
}

// ExportData — полная выгрузка пользователей и обменов.
type ExportData struct {
	Users []models.ExportUserRow `json:"users"`
	Swaps []models.ExportSwapRow `json:"swaps"`
}

// ExportMetadata сопровождает выгрузку.
type ExportMetadata struct {
	TotalUsers  int       `json:"total_users"`
	TotalSwaps  int       `json:"total_swaps"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ExportAll возвращает плоские строки пользователей и обменов.
func (s *ExportService) ExportAll(ctx context.Context) (*ExportData, *ExportMetadata, error) {
	users, err := s.repo.ExportUsers(ctx)
	if err != nil {
		return nil, nil, err
	}
	swaps, err := s.repo.ExportSwaps(ctx)
	if err != nil {
		return nil, nil, err
	}
	if users == nil {
		users = []models.ExportUserRow{}
	}
	if swaps == nil {
		swaps = []models.ExportSwapRow{}
	}

	meta := &ExportMetadata{
		TotalUsers:  len(users),
		TotalSwaps:  len(swaps),
		GeneratedAt: time.Now().UTC(),
	}
	return &ExportData{Users: users, Swaps: swaps}, meta, nil
}

// ExportUserProfile собирает персональный набор данных публичного
// пользователя: навыки по ролям и историю обменов.
func (s *ExportService) ExportUserProfile(ctx context.Context, userID uuid.UUID) (*models.ExportUserProfile, error) {
	rows, err := s.repo.GetUserSkillRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.ErrUserNotFound
	}

	history, err := s.repo.ListSwapHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.Swap{}
	}

	profile := &models.ExportUserProfile{
		UserID:        rows[0].UserID,
		Name:          rows[0].Name,
		Bio:           rows[0].Bio,
		Availability:  rows[0].Availability,
		SkillsOffered: []models.MatchSkill{},
		SkillsWanted:  []models.MatchSkill{},
		SwapHistory:   history,
	}

	for _, row := range rows {
		if row.SkillName == nil || row.Role == nil {
			continue
		}
		skill := models.MatchSkill{
			SkillName:   *row.SkillName,
			SkillLevel:  row.SkillLevel,
			Description: row.Description,
		}
		if row.Category != nil {
			skill.Category = *row.Category
		}
		switch models.SkillRole(*row.Role) {
		case models.SkillRoleOffered:
			profile.SkillsOffered = append(profile.SkillsOffered, skill)
		case models.SkillRoleWanted:
			profile.SkillsWanted = append(profile.SkillsWanted, skill)
		}
	}

	return profile, nil
}

// HomepagePagination описывает страницу выдачи карточек.
type HomepagePagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalUsers   int `json:"total_users"`
	UsersPerPage int `json:"users_per_page"`
}

// HomepageResult — страница карточек с пагинацией.
type HomepageResult struct {
	Users      []models.HomepageCard `json:"users"`
	Pagination HomepagePagination    `json:"pagination"`
}

// Homepage возвращает страницу публичных карточек пользователей.
// Поиск идёт по имени, биографии и спискам навыков.
func (s *ExportService) Homepage(ctx context.Context, page, limit int, search string) (*HomepageResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 6
	}
	offset := (page - 1) * limit

	cards, err := s.repo.HomepageCards(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountHomepageUsers(ctx, search)
	if err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []models.HomepageCard{}
	}
	for i := range cards {
		if cards[i].Name != "" {
			cards[i].Initial = strings.ToUpper(string([]rune(cards[i].Name)[0]))
		}
	}

	totalPages := (total + limit - 1) / limit

	return &HomepageResult{
		Users: cards,
		Pagination: HomepagePagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalUsers:   total,
			UsersPerPage: limit,
		},
	}, nil
}

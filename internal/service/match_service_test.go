package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
)

type mockMatchRepo struct {
	mock.Mock
}

func (m *mockMatchRepo) FindCandidates(ctx context.Context, excludeID uuid.UUID, wantedNames, offeredNames []string) ([]models.MatchRow, error) {
	args := m.Called(ctx, excludeID, wantedNames, offeredNames)
	return args.Get(0).([]models.MatchRow), args.Error(1)
}

func (m *mockMatchRepo) FindReciprocal(ctx context.Context, userID uuid.UUID) ([]models.ReciprocalMatch, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReciprocalMatch), args.Error(1)
}

type mockMatchSkillSource struct {
	mock.Mock
}

func (m *mockMatchSkillSource) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetails, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.UserSkillDetails), args.Error(1)
}

func TestMatchService_FindMatches_GroupsByCandidate(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	userID := uuid.New()
	candidateID := uuid.New()

	own := []models.UserSkillDetails{
		{Role: models.SkillRoleOffered, SkillName: "Гитара"},
		{Role: models.SkillRoleWanted, SkillName: "Английский язык"},
	}
	skills.On("ListUserSkills", ctx, userID).Return(own, nil)

	rows := []models.MatchRow{
		{
			UserID:     candidateID,
			Name:       "Анна Петрова",
			SkillName:  "Английский язык",
			Category:   "Языки",
			Role:       models.SkillRoleOffered,
			SkillLevel: models.SkillLevelAdvanced,
		},
		{
			UserID:     candidateID,
			Name:       "Анна Петрова",
			SkillName:  "Гитара",
			Category:   "Музыка",
			Role:       models.SkillRoleWanted,
			SkillLevel: models.SkillLevelBeginner,
		},
	}
	matches.On("FindCandidates", ctx, userID, []string{"Английский язык"}, []string{"Гитара"}).Return(rows, nil)

	result, err := svc.FindMatches(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Гитара"}, result.UserOfferedSkills)
	assert.Equal(t, []string{"Английский язык"}, result.UserWantedSkills)
	assert.Len(t, result.Matches, 1)

	candidate := result.Matches[0]
	assert.Equal(t, candidateID, candidate.UserID)
	assert.Len(t, candidate.CanTeach, 1)
	assert.Equal(t, "Английский язык", candidate.CanTeach[0].SkillName)
	assert.Len(t, candidate.WantsToLearn, 1)
	assert.Equal(t, "Гитара", candidate.WantsToLearn[0].SkillName)
}

func TestMatchService_FindMatches_NoSkills(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	userID := uuid.New()
	skills.On("ListUserSkills", ctx, userID).Return([]models.UserSkillDetails{}, nil)

	_, err := svc.FindMatches(ctx, userID)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	matches.AssertNotCalled(t, "FindCandidates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchService_FindMatches_NoCandidates(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	userID := uuid.New()
	own := []models.UserSkillDetails{
		{Role: models.SkillRoleOffered, SkillName: "Шахматы"},
	}
	skills.On("ListUserSkills", ctx, userID).Return(own, nil)
	matches.On("FindCandidates", ctx, userID, []string{}, []string{"Шахматы"}).Return([]models.MatchRow{}, nil)

	result, err := svc.FindMatches(ctx, userID)

	assert.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.NotNil(t, result.Matches)
}

func TestMatchService_FindMatches_MultipleCandidatesKeepOrder(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	userID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	own := []models.UserSkillDetails{
		{Role: models.SkillRoleWanted, SkillName: "Python"},
	}
	skills.On("ListUserSkills", ctx, userID).Return(own, nil)

	rows := []models.MatchRow{
		{UserID: firstID, Name: "Первый", SkillName: "Python", Role: models.SkillRoleOffered, SkillLevel: models.SkillLevelExpert},
		{UserID: secondID, Name: "Второй", SkillName: "Python", Role: models.SkillRoleOffered, SkillLevel: models.SkillLevelIntermediate},
	}
	matches.On("FindCandidates", ctx, userID, []string{"Python"}, []string{}).Return(rows, nil)

	result, err := svc.FindMatches(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, result.Matches, 2)
	assert.Equal(t, firstID, result.Matches[0].UserID)
	assert.Equal(t, secondID, result.Matches[1].UserID)
	assert.Empty(t, result.Matches[0].WantsToLearn)
	assert.Len(t, result.Matches[0].CanTeach, 1)
}

func TestMatchService_FindMatches_DefaultSkillLevel(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	userID := uuid.New()
	own := []models.UserSkillDetails{
		{Role: models.SkillRoleWanted, SkillName: "Вокал"},
	}
	skills.On("ListUserSkills", ctx, userID).Return(own, nil)

	rows := []models.MatchRow{
		{UserID: uuid.New(), Name: "Кандидат", SkillName: "Вокал", Role: models.SkillRoleOffered, SkillLevel: ""},
	}
	matches.On("FindCandidates", ctx, userID, []string{"Вокал"}, []string{}).Return(rows, nil)

	result, err := svc.FindMatches(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, models.SkillLevelBeginner, result.Matches[0].CanTeach[0].SkillLevel)
}

func TestMatchService_FindReciprocalMatches(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	userID := uuid.New()
	expected := []models.ReciprocalMatch{
		{UserID: uuid.New(), Name: "Партнёр", OfferedSkillName: "Йога", WantedSkillName: "Гитара"},
	}
	matches.On("FindReciprocal", ctx, userID).Return(expected, nil)

	result, err := svc.FindReciprocalMatches(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Йога", result[0].OfferedSkillName)
}

func TestMatchService_FindReciprocalMatches_ClosedLoop(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	// Пользователь предлагает гитару и хочет испанский; кандидат — наоборот.
	// Каждая строка результата несёт обе стороны замкнутой пары.
	userID := uuid.New()
	partnerID := uuid.New()
	rows := []models.ReciprocalMatch{
		{
			UserID:            partnerID,
			Name:              "Мария",
			OfferedSkillName:  "Испанский",
			OfferedSkillLevel: models.SkillLevelAdvanced,
			WantedSkillName:   "Гитара",
			WantedSkillLevel:  models.SkillLevelBeginner,
		},
	}
	matches.On("FindReciprocal", ctx, userID).Return(rows, nil)

	result, err := svc.FindReciprocalMatches(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, partnerID, result[0].UserID)
	assert.Equal(t, "Испанский", result[0].OfferedSkillName)
	assert.Equal(t, "Гитара", result[0].WantedSkillName)
	matches.AssertCalled(t, "FindReciprocal", ctx, userID)
}

func TestMatchService_FindReciprocalMatches_Empty(t *testing.T) {
	matches := new(mockMatchRepo)
	skills := new(mockMatchSkillSource)
	svc := NewMatchService(matches, skills)
	ctx := context.Background()

	userID := uuid.New()
	matches.On("FindReciprocal", ctx, userID).Return(nil, nil)

	result, err := svc.FindReciprocalMatches(ctx, userID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

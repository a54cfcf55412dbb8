package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

type mockFeedbackRepo struct {
	mock.Mock
}

func (m *mockFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	args := m.Called(ctx, fb)
	if args.Error(0) == nil {
		fb.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockFeedbackRepo) GetBySwapAndAuthor(ctx context.Context, swapID, authorID uuid.UUID) (*models.Feedback, error) {
	args := m.Called(ctx, swapID, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *mockFeedbackRepo) GetByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (*models.Feedback, error) {
	args := m.Called(ctx, id, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *mockFeedbackRepo) ListBySwap(ctx context.Context, swapID uuid.UUID) ([]models.FeedbackDetails, error) {
	args := m.Called(ctx, swapID)
	return args.Get(0).([]models.FeedbackDetails), args.Error(1)
}

func (m *mockFeedbackRepo) ListSentByUser(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.FeedbackHistoryItem), args.Error(1)
}

func (m *mockFeedbackRepo) ListReceivedByUser(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.FeedbackHistoryItem), args.Error(1)
}

func (m *mockFeedbackRepo) GetRatingStats(ctx context.Context, userID uuid.UUID) (*models.RatingStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingStats), args.Error(1)
}

func (m *mockFeedbackRepo) Update(ctx context.Context, fb *models.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

type mockFeedbackSwapSource struct {
	mock.Mock
}

func (m *mockFeedbackSwapSource) GetByID(ctx context.Context, id uuid.UUID) (*models.Swap, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Swap), args.Error(1)
}

type mockFeedbackUserSource struct {
	mock.Mock
}

func (m *mockFeedbackUserSource) ExistsPublic(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newFeedbackServiceForTest() (*FeedbackService, *mockFeedbackRepo, *mockFeedbackSwapSource, *mockFeedbackUserSource) {
	feedback := new(mockFeedbackRepo)
	swaps := new(mockFeedbackSwapSource)
	users := new(mockFeedbackUserSource)
	return NewFeedbackService(feedback, swaps, users), feedback, swaps, users
}

func TestFeedbackService_Create_Success(t *testing.T) {
	svc, feedback, swaps, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	authorID := uuid.New()
	partnerID := uuid.New()
	swapID := uuid.New()

	swap := &models.Swap{ID: swapID, FromUserID: authorID, ToUserID: partnerID, Status: models.SwapStatusAccepted}
	swaps.On("GetByID", ctx, swapID).Return(swap, nil)
	feedback.On("GetBySwapAndAuthor", ctx, swapID, authorID).Return(nil, nil)
	feedback.On("Create", ctx, mock.AnythingOfType("*models.Feedback")).Return(nil)

	comment := "Отличный обмен!"
	fb, err := svc.Create(ctx, authorID, CreateFeedbackInput{SwapID: swapID, Rating: 5, Comment: &comment})

	assert.NoError(t, err)
	assert.NotNil(t, fb)
	assert.Equal(t, authorID, fb.FromUser)
	assert.Equal(t, 5, fb.Rating)
}

func TestFeedbackService_Create_InvalidRating(t *testing.T) {
	svc, _, _, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), CreateFeedbackInput{SwapID: uuid.New(), Rating: 0})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "от 1 до 5")

	_, err = svc.Create(ctx, uuid.New(), CreateFeedbackInput{SwapID: uuid.New(), Rating: 6})
	assert.Error(t, err)
}

func TestFeedbackService_Create_SwapNotAccepted(t *testing.T) {
	svc, _, swaps, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	authorID := uuid.New()
	swapID := uuid.New()

	swap := &models.Swap{ID: swapID, FromUserID: authorID, ToUserID: uuid.New(), Status: models.SwapStatusPending}
	swaps.On("GetByID", ctx, swapID).Return(swap, nil)

	_, err := svc.Create(ctx, authorID, CreateFeedbackInput{SwapID: swapID, Rating: 4})

	assert.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestFeedbackService_Create_NotParticipant(t *testing.T) {
	svc, _, swaps, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	swap := &models.Swap{ID: swapID, FromUserID: uuid.New(), ToUserID: uuid.New(), Status: models.SwapStatusAccepted}
	swaps.On("GetByID", ctx, swapID).Return(swap, nil)

	_, err := svc.Create(ctx, uuid.New(), CreateFeedbackInput{SwapID: swapID, Rating: 4})

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestFeedbackService_Create_AlreadyLeft(t *testing.T) {
	svc, feedback, swaps, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	authorID := uuid.New()
	swapID := uuid.New()

	swap := &models.Swap{ID: swapID, FromUserID: authorID, ToUserID: uuid.New(), Status: models.SwapStatusAccepted}
	swaps.On("GetByID", ctx, swapID).Return(swap, nil)
	feedback.On("GetBySwapAndAuthor", ctx, swapID, authorID).Return(&models.Feedback{ID: uuid.New()}, nil)

	_, err := svc.Create(ctx, authorID, CreateFeedbackInput{SwapID: swapID, Rating: 4})

	assert.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestFeedbackService_Create_SwapNotFound(t *testing.T) {
	svc, _, swaps, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	swaps.On("GetByID", ctx, swapID).Return(nil, repository.ErrSwapNotFound)

	_, err := svc.Create(ctx, uuid.New(), CreateFeedbackInput{SwapID: swapID, Rating: 4})

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFeedbackService_ListBySwap_ParticipantOnly(t *testing.T) {
	svc, _, swaps, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	swap := &models.Swap{ID: swapID, FromUserID: uuid.New(), ToUserID: uuid.New(), Status: models.SwapStatusAccepted}
	swaps.On("GetByID", ctx, swapID).Return(swap, nil)

	_, err := svc.ListBySwap(ctx, swapID, uuid.New())

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestFeedbackService_GetRatingStats(t *testing.T) {
	svc, feedback, _, users := newFeedbackServiceForTest()
	ctx := context.Background()

	userID := uuid.New()
	users.On("ExistsPublic", ctx, userID).Return(true, nil)
	feedback.On("GetRatingStats", ctx, userID).Return(&models.RatingStats{
		TotalFeedback: 3,
		AverageRating: 4.67,
		FiveStar:      2,
		FourStar:      1,
	}, nil)

	stats, err := svc.GetRatingStats(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalFeedback)
	assert.Equal(t, 2, stats.FiveStar)
}

func TestFeedbackService_GetRatingStats_UserNotFound(t *testing.T) {
	svc, _, _, users := newFeedbackServiceForTest()
	ctx := context.Background()

	userID := uuid.New()
	users.On("ExistsPublic", ctx, userID).Return(false, nil)

	_, err := svc.GetRatingStats(ctx, userID)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFeedbackService_Update_Success(t *testing.T) {
	svc, feedback, _, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	authorID := uuid.New()
	feedbackID := uuid.New()

	existing := &models.Feedback{ID: feedbackID, FromUser: authorID, Rating: 3}
	feedback.On("GetByIDAndAuthor", ctx, feedbackID, authorID).Return(existing, nil)
	feedback.On("Update", ctx, mock.AnythingOfType("*models.Feedback")).Return(nil)

	comment := "Пересмотрел оценку"
	fb, err := svc.Update(ctx, feedbackID, authorID, 4, &comment)

	assert.NoError(t, err)
	assert.Equal(t, 4, fb.Rating)
	assert.Equal(t, &comment, fb.Comment)
}

func TestFeedbackService_Update_NotOwn(t *testing.T) {
	svc, feedback, _, _ := newFeedbackServiceForTest()
	ctx := context.Background()

	feedbackID := uuid.New()
	authorID := uuid.New()
	feedback.On("GetByIDAndAuthor", ctx, feedbackID, authorID).Return(nil, repository.ErrFeedbackNotFound)

	_, err := svc.Update(ctx, feedbackID, authorID, 4, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

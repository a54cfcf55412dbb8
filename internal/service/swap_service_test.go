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

type mockSwapRepo struct {
	mock.Mock
}

func (m *mockSwapRepo) Create(ctx context.Context, swap *models.Swap) error {
	args := m.Called(ctx, swap)
	if args.Error(0) == nil {
		swap.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockSwapRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Swap, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Swap), args.Error(1)
}

func (m *mockSwapRepo) GetDetails(ctx context.Context, id, userID uuid.UUID) (*models.SwapDetails, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapDetails), args.Error(1)
}

func (m *mockSwapRepo) ListByUser(ctx context.Context, userID uuid.UUID, status models.SwapStatus) ([]models.SwapDetails, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).([]models.SwapDetails), args.Error(1)
}

func (m *mockSwapRepo) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.SwapStatus) (*models.Swap, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Swap), args.Error(1)
}

type mockSwapUserSource struct {
	mock.Mock
}

func (m *mockSwapUserSource) ExistsPublic(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockSwapSkillSource struct {
	mock.Mock
}

func (m *mockSwapSkillSource) GetUserSkill(ctx context.Context, id uuid.UUID) (*models.UserSkill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSkill), args.Error(1)
}

func newSwapServiceForTest() (*SwapService, *mockSwapRepo, *mockSwapUserSource, *mockSwapSkillSource) {
	swaps := new(mockSwapRepo)
	users := new(mockSwapUserSource)
	skills := new(mockSwapSkillSource)
	return NewSwapService(swaps, users, skills), swaps, users, skills
}

func TestSwapService_Create_Success(t *testing.T) {
	svc, swaps, users, skills := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	offeredID := uuid.New()
	requestedID := uuid.New()

	users.On("ExistsPublic", ctx, toID).Return(true, nil)
	skills.On("GetUserSkill", ctx, offeredID).Return(&models.UserSkill{ID: offeredID, UserID: fromID}, nil)
	skills.On("GetUserSkill", ctx, requestedID).Return(&models.UserSkill{ID: requestedID, UserID: toID}, nil)
	swaps.On("Create", ctx, mock.AnythingOfType("*models.Swap")).Return(nil)

	swap, err := svc.Create(ctx, fromID, CreateSwapInput{
		ToUserID:         toID,
		SkillOfferedUS:   offeredID,
		SkillRequestedUS: requestedID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, swap)
	assert.Equal(t, models.SwapStatusPending, swap.Status)
	assert.Equal(t, fromID, swap.FromUserID)
	assert.Equal(t, toID, swap.ToUserID)
}

func TestSwapService_Create_WithSelf(t *testing.T) {
	svc, _, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	userID := uuid.New()
	_, err := svc.Create(ctx, userID, CreateSwapInput{ToUserID: userID})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "самим собой")
}

func TestSwapService_Create_TargetNotFound(t *testing.T) {
	svc, _, users, _ := newSwapServiceForTest()
	ctx := context.Background()

	toID := uuid.New()
	users.On("ExistsPublic", ctx, toID).Return(false, nil)

	_, err := svc.Create(ctx, uuid.New(), CreateSwapInput{ToUserID: toID})

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSwapService_Create_OfferedSkillNotOwned(t *testing.T) {
	svc, _, users, skills := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	offeredID := uuid.New()

	users.On("ExistsPublic", ctx, toID).Return(true, nil)
	// Навык принадлежит другому пользователю
	skills.On("GetUserSkill", ctx, offeredID).Return(&models.UserSkill{ID: offeredID, UserID: uuid.New()}, nil)

	_, err := svc.Create(ctx, fromID, CreateSwapInput{
		ToUserID:       toID,
		SkillOfferedUS: offeredID,
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "не принадлежит вам")
}

func TestSwapService_Create_RequestedSkillNotOwnedByTarget(t *testing.T) {
	svc, _, users, skills := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	offeredID := uuid.New()
	requestedID := uuid.New()

	users.On("ExistsPublic", ctx, toID).Return(true, nil)
	skills.On("GetUserSkill", ctx, offeredID).Return(&models.UserSkill{ID: offeredID, UserID: fromID}, nil)
	skills.On("GetUserSkill", ctx, requestedID).Return(nil, repository.ErrUserSkillNotFound)

	_, err := svc.Create(ctx, fromID, CreateSwapInput{
		ToUserID:         toID,
		SkillOfferedUS:   offeredID,
		SkillRequestedUS: requestedID,
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "получателю")
}

func TestSwapService_Create_DuplicatePending(t *testing.T) {
	svc, swaps, users, skills := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	offeredID := uuid.New()
	requestedID := uuid.New()

	users.On("ExistsPublic", ctx, toID).Return(true, nil)
	skills.On("GetUserSkill", ctx, offeredID).Return(&models.UserSkill{ID: offeredID, UserID: fromID}, nil)
	skills.On("GetUserSkill", ctx, requestedID).Return(&models.UserSkill{ID: requestedID, UserID: toID}, nil)
	swaps.On("Create", ctx, mock.AnythingOfType("*models.Swap")).Return(repository.ErrDuplicatePendingSwap)

	_, err := svc.Create(ctx, fromID, CreateSwapInput{
		ToUserID:         toID,
		SkillOfferedUS:   offeredID,
		SkillRequestedUS: requestedID,
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestSwapService_Transition_AcceptByRecipient(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	pending := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusPending}
	accepted := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusAccepted}

	swaps.On("GetByID", ctx, swapID).Return(pending, nil)
	swaps.On("UpdateStatusIfPending", ctx, swapID, models.SwapStatusAccepted).Return(accepted, nil)

	swap, err := svc.Transition(ctx, swapID, toID, models.SwapStatusAccepted)

	assert.NoError(t, err)
	assert.Equal(t, models.SwapStatusAccepted, swap.Status)
}

func TestSwapService_Transition_AcceptBySenderForbidden(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	pending := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusPending}
	swaps.On("GetByID", ctx, swapID).Return(pending, nil)

	_, err := svc.Transition(ctx, swapID, fromID, models.SwapStatusAccepted)

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestSwapService_Transition_RejectBySenderForbidden(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	pending := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusPending}
	swaps.On("GetByID", ctx, swapID).Return(pending, nil)

	_, err := svc.Transition(ctx, swapID, fromID, models.SwapStatusRejected)

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestSwapService_Transition_CancelBySender(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	pending := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusPending}
	cancelled := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusCancelled}

	swaps.On("GetByID", ctx, swapID).Return(pending, nil)
	swaps.On("UpdateStatusIfPending", ctx, swapID, models.SwapStatusCancelled).Return(cancelled, nil)

	swap, err := svc.Transition(ctx, swapID, fromID, models.SwapStatusCancelled)

	assert.NoError(t, err)
	assert.Equal(t, models.SwapStatusCancelled, swap.Status)
}

func TestSwapService_Transition_CancelByRecipientForbidden(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	pending := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusPending}
	swaps.On("GetByID", ctx, swapID).Return(pending, nil)

	_, err := svc.Transition(ctx, swapID, toID, models.SwapStatusCancelled)

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestSwapService_Transition_NotParticipant(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	pending := &models.Swap{ID: swapID, FromUserID: uuid.New(), ToUserID: uuid.New(), Status: models.SwapStatusPending}
	swaps.On("GetByID", ctx, swapID).Return(pending, nil)

	_, err := svc.Transition(ctx, swapID, uuid.New(), models.SwapStatusAccepted)

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestSwapService_Transition_NotPending(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	done := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusAccepted}
	swaps.On("GetByID", ctx, swapID).Return(done, nil)

	_, err := svc.Transition(ctx, swapID, toID, models.SwapStatusRejected)

	assert.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestSwapService_Transition_NotPendingAnyActor(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	// Завершённый обмен нельзя изменить никому из участников,
	// включая тех, у кого нет прав на сам переход.
	done := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusAccepted}
	swaps.On("GetByID", ctx, swapID).Return(done, nil)

	for _, tc := range []struct {
		actor  uuid.UUID
		status models.SwapStatus
	}{
		{fromID, models.SwapStatusRejected},
		{fromID, models.SwapStatusCancelled},
		{toID, models.SwapStatusAccepted},
		{toID, models.SwapStatusCancelled},
	} {
		_, err := svc.Transition(ctx, swapID, tc.actor, tc.status)
		assert.Error(t, err)
		assert.True(t, apperror.IsInvalidState(err))
	}
}

func TestSwapService_Transition_ConcurrentTransition(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	fromID := uuid.New()
	toID := uuid.New()
	swapID := uuid.New()

	// Между чтением и обновлением обмен успели перевести в другой статус.
	pending := &models.Swap{ID: swapID, FromUserID: fromID, ToUserID: toID, Status: models.SwapStatusPending}
	swaps.On("GetByID", ctx, swapID).Return(pending, nil)
	swaps.On("UpdateStatusIfPending", ctx, swapID, models.SwapStatusAccepted).Return(nil, repository.ErrSwapNotPending)

	_, err := svc.Transition(ctx, swapID, toID, models.SwapStatusAccepted)

	assert.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestSwapService_Transition_ToPendingRejected(t *testing.T) {
	svc, _, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	_, err := svc.Transition(ctx, uuid.New(), uuid.New(), models.SwapStatusPending)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "недопустимый статус")
}

func TestSwapService_Transition_NotFound(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	swaps.On("GetByID", ctx, swapID).Return(nil, repository.ErrSwapNotFound)

	_, err := svc.Transition(ctx, swapID, uuid.New(), models.SwapStatusAccepted)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSwapService_ListUserSwaps_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	_, err := svc.ListUserSwaps(ctx, uuid.New(), "finished")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "недопустимый статус")
}

func TestSwapService_ListUserSwaps_WithFilter(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	userID := uuid.New()
	expected := []models.SwapDetails{{ID: uuid.New()}}
	swaps.On("ListByUser", ctx, userID, models.SwapStatusPending).Return(expected, nil)

	list, err := svc.ListUserSwaps(ctx, userID, "pending")

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSwapService_GetSwap_NotParticipant(t *testing.T) {
	svc, swaps, _, _ := newSwapServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	userID := uuid.New()
	swaps.On("GetDetails", ctx, swapID, userID).Return(nil, repository.ErrSwapNotFound)

	_, err := svc.GetSwap(ctx, swapID, userID)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

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

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) InsertLog(ctx context.Context, log *models.AdminLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockAdminRepo) ListLogs(ctx context.Context, filter repository.AdminLogFilter) ([]models.AdminLogDetails, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.AdminLogDetails), args.Error(1)
}

func (m *mockAdminRepo) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(*models.SystemStats), args.Error(1)
}

type mockAdminUserRepo struct {
	mock.Mock
}

func (m *mockAdminUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminUserRepo) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (m *mockAdminUserRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockAdminSkillRepo struct {
	mock.Mock
}

func (m *mockAdminSkillRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAdminSwapRepo struct {
	mock.Mock
}

func (m *mockAdminSwapRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminSwapRepo) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.SwapStatus) (*models.Swap, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Swap), args.Error(1)
}

func newAdminServiceForTest() (*AdminService, *mockAdminRepo, *mockAdminUserRepo, *mockAdminSwapRepo) {
	admin := new(mockAdminRepo)
	users := new(mockAdminUserRepo)
	skills := new(mockAdminSkillRepo)
	swaps := new(mockAdminSwapRepo)
	return NewAdminService(admin, users, skills, swaps), admin, users, swaps
}

func TestAdminService_CancelSwap_NotFound(t *testing.T) {
	svc, _, _, swaps := newAdminServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	swaps.On("Exists", ctx, swapID).Return(false, nil)

	err := svc.CancelSwap(ctx, uuid.New(), swapID, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	swaps.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_CancelSwap_NotPending(t *testing.T) {
	svc, _, _, swaps := newAdminServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	swaps.On("Exists", ctx, swapID).Return(true, nil)
	swaps.On("UpdateStatusIfPending", ctx, swapID, models.SwapStatusCancelled).Return(nil, repository.ErrSwapNotPending)

	err := svc.CancelSwap(ctx, uuid.New(), swapID, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestAdminService_CancelSwap_Success(t *testing.T) {
	svc, admin, _, swaps := newAdminServiceForTest()
	ctx := context.Background()

	swapID := uuid.New()
	cancelled := &models.Swap{ID: swapID, Status: models.SwapStatusCancelled}
	swaps.On("Exists", ctx, swapID).Return(true, nil)
	swaps.On("UpdateStatusIfPending", ctx, swapID, models.SwapStatusCancelled).Return(cancelled, nil)
	// Запись журнала асинхронная, её вызов не детерминирован к концу теста.
	admin.On("InsertLog", mock.Anything, mock.AnythingOfType("*models.AdminLog")).Return(nil).Maybe()

	err := svc.CancelSwap(ctx, uuid.New(), swapID, nil)

	assert.NoError(t, err)
}

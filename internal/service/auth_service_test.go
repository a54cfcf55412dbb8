package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

type mockAuthRepo struct {
	mock.Mock
}

func (m *mockAuthRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockAuthRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthRepo) GetPublicByID(ctx context.Context, id uuid.UUID) (*models.PublicUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicUser), args.Error(1)
}

func (m *mockAuthRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, upd repository.ProfileUpdate) (*models.User, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthRepo) UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockAuthRepo) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockAuthRepo) DeleteSession(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *mockAuthRepo) ListSessions(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *mockAuthRepo) DeleteSessionByID(ctx context.Context, sessionID, userID uuid.UUID) error {
	args := m.Called(ctx, sessionID, userID)
	return args.Error(0)
}

func newAuthServiceForTest() (*AuthService, *mockAuthRepo) {
	repo := new(mockAuthRepo)
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthService(repo, tm), repo
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ivan@example.com").Return(nil, repository.ErrUserNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)
	repo.On("CreateSession", ctx, mock.AnythingOfType("*models.Session")).Return(nil)

	result, err := svc.Register(ctx, RegisterInput{
		Name:     "Иван Иванов",
		Email:    "ivan@example.com",
		Password: "secret123",
	}, nil)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "ivan@example.com", result.User.Email)
	assert.Equal(t, models.UserRoleMember, result.User.Role)
	assert.True(t, result.User.IsPublic)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
	assert.NotEmpty(t, result.TokenPair.RefreshToken)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	existing := &models.User{ID: uuid.New(), Email: "ivan@example.com"}
	repo.On("GetByEmail", ctx, "ivan@example.com").Return(existing, nil)

	_, err := svc.Register(ctx, RegisterInput{
		Name:     "Иван Иванов",
		Email:    "ivan@example.com",
		Password: "secret123",
	}, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name:     "Иван Иванов",
		Email:    "ivan@example.com",
		Password: "123",
	}, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не менее 6")
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name:     "Иван Иванов",
		Email:    "not-an-email",
		Password: "secret123",
	}, nil)

	assert.Error(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleMember,
		IsActive:     true,
	}

	repo.On("GetByEmail", ctx, "ivan@example.com").Return(user, nil)
	repo.On("UpdateLastLoginAt", ctx, user.ID).Return(nil)
	repo.On("CreateSession", ctx, mock.AnythingOfType("*models.Session")).Return(nil)

	result, err := svc.Login(ctx, LoginInput{Email: "ivan@example.com", Password: "secret123"}, map[string]string{
		"user_agent": "test-agent",
		"ip":         "127.0.0.1",
	})

	assert.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	repo.On("GetByEmail", ctx, "ivan@example.com").Return(user, nil)

	_, err := svc.Login(ctx, LoginInput{Email: "ivan@example.com", Password: "wrong-pass"}, nil)

	assert.Error(t, err)
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "secret123"}, nil)

	assert.Error(t, err)
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestAuthService_Login_BannedAccount(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "banned@example.com",
		PasswordHash: string(hash),
		IsActive:     false,
	}
	repo.On("GetByEmail", ctx, "banned@example.com").Return(user, nil)

	_, err := svc.Login(ctx, LoginInput{Email: "banned@example.com", Password: "secret123"}, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Role: models.UserRoleMember, IsActive: true}
	pair, _, err := svc.tokenManager.GeneratePair(user)
	assert.NoError(t, err)

	repo.On("GetByID", ctx, user.ID).Return(user, nil)
	repo.On("DeleteSession", ctx, pair.RefreshToken).Return(nil)
	repo.On("CreateSession", ctx, mock.AnythingOfType("*models.Session")).Return(nil)

	newPair, err := svc.Refresh(ctx, pair.RefreshToken, nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "garbage-token", nil)

	assert.Error(t, err)
}

func TestAuthService_UpdateProfile_ValidatesBio(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	longBio := make([]byte, 501)
	for i := range longBio {
		longBio[i] = 'a'
	}
	bio := string(longBio)

	_, err := svc.UpdateProfile(ctx, uuid.New(), ProfileUpdateInput{Bio: &bio})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не более 500")
}

func TestAuthService_UpdateProfile_NoFields(t *testing.T) {
	svc, repo := newAuthServiceForTest()
	ctx := context.Background()

	userID := uuid.New()
	repo.On("UpdateProfile", ctx, userID, mock.AnythingOfType("repository.ProfileUpdate")).
		Return(nil, repository.ErrNoFieldsToUpdate)

	_, err := svc.UpdateProfile(ctx, userID, ProfileUpdateInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "нет полей")
}

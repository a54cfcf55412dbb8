package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/goroutine"
	"github.com/skillswap/skillswap-backend/internal/logger"
	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

// AdminRepo описывает журнал модерации и статистику.
type AdminRepo interface {
	InsertLog(ctx context.Context, log *models.AdminLog) error
	ListLogs(ctx context.Context, filter repository.AdminLogFilter) ([]models.AdminLogDetails, error)
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
}

// AdminUserRepo описывает операции модерации над пользователями.
type AdminUserRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AdminSkillRepo описывает операции модерации над каталогом навыков.
type AdminSkillRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminSwapRepo описывает операции модерации над обменами.
type AdminSwapRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.SwapStatus) (*models.Swap, error)
}

// AdminService выполняет действия модерации. Каждое действие фиксируется
// в журнале; запись журнала идёт асинхронно и не блокирует ответ.
type AdminService struct {
	admin  AdminRepo
	users  AdminUserRepo
	skills AdminSkillRepo
	swaps  AdminSwapRepo
}

// NewAdminService создаёт сервис модерации.
func NewAdminService(admin AdminRepo, users AdminUserRepo, skills AdminSkillRepo, swaps AdminSwapRepo) *AdminService {
	return &AdminService{admin: admin, users: users, skills: skills, swaps: swaps}
}

// FlagUser помечает пользователя для проверки.
func (s *AdminService) FlagUser(ctx context.Context, adminID, userID uuid.UUID, reason *string) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ErrUserNotFound
	}
	s.logAction(models.AdminEntityUser, userID, models.AdminActionFlag, reason, adminID)
	return nil
}

// BanUser деактивирует аккаунт пользователя.
func (s *AdminService) BanUser(ctx context.Context, adminID, userID uuid.UUID, reason *string) error {
	if err := s.users.SetActive(ctx, userID, false); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperror.ErrUserNotFound
		}
		return err
	}
	s.logAction(models.AdminEntityUser, userID, models.AdminActionBan, reason, adminID)
	return nil
}

// DeleteUser удаляет пользователя вместе с его данными.
func (s *AdminService) DeleteUser(ctx context.Context, adminID, userID uuid.UUID, reason *string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperror.ErrUserNotFound
		}
		return err
	}
	s.logAction(models.AdminEntityUser, userID, models.AdminActionDelete, reason, adminID)
	return nil
}

// FlagSkill помечает каталожный навык для проверки.
func (s *AdminService) FlagSkill(ctx context.Context, adminID, skillID uuid.UUID, reason *string) error {
	exists, err := s.skills.Exists(ctx, skillID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ErrSkillNotFound
	}
	s.logAction(models.AdminEntitySkill, skillID, models.AdminActionFlag, reason, adminID)
	return nil
}

// DeleteSkill удаляет каталожный навык.
func (s *AdminService) DeleteSkill(ctx context.Context, adminID, skillID uuid.UUID, reason *string) error {
	if err := s.skills.Delete(ctx, skillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return apperror.ErrSkillNotFound
		}
		return err
	}
	s.logAction(models.AdminEntitySkill, skillID, models.AdminActionDelete, reason, adminID)
	return nil
}

// FlagSwap помечает обмен для проверки.
func (s *AdminService) FlagSwap(ctx context.Context, adminID, swapID uuid.UUID, reason *string) error {
	exists, err := s.swaps.Exists(ctx, swapID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ErrSwapNotFound
	}
	s.logAction(models.AdminEntitySwap, swapID, models.AdminActionFlag, reason, adminID)
	return nil
}

// CancelSwap отменяет ожидающий обмен от имени администратора.
func (s *AdminService) CancelSwap(ctx context.Context, adminID, swapID uuid.UUID, reason *string) error {
	exists, err := s.swaps.Exists(ctx, swapID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ErrSwapNotFound
	}

	if _, err := s.swaps.UpdateStatusIfPending(ctx, swapID, models.SwapStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrSwapNotPending) {
			return apperror.New(apperror.ErrCodeInvalidState, "отменить можно только ожидающий обмен")
		}
		return err
	}
	s.logAction(models.AdminEntitySwap, swapID, models.AdminActionCancel, reason, adminID)
	return nil
}

// ListLogs возвращает журнал модерации.
func (s *AdminService) ListLogs(ctx context.Context, filter repository.AdminLogFilter) ([]models.AdminLogDetails, error) {
	return s.admin.ListLogs(ctx, filter)
}

// GetStats возвращает сводную статистику платформы.
func (s *AdminService) GetStats(ctx context.Context) (*models.SystemStats, error) {
	return s.admin.GetSystemStats(ctx)
}

// logAction асинхронно пишет действие в журнал модерации.
func (s *AdminService) logAction(entityType string, entityID uuid.UUID, action string, reason *string, adminID uuid.UUID) {
	entry := &models.AdminLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Reason:     reason,
		AdminID:    adminID,
	}
	goroutine.SafeGo(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.admin.InsertLog(ctx, entry); err != nil && logger.Log != nil {
			logger.Log.WithFields(map[string]interface{}{
				"entity_type": entityType,
				"entity_id":   entityID,
				"action":      action,
				"error":       err.Error(),
			}).Error("admin service: не удалось записать действие в журнал")
		}
	})
}

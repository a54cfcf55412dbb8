package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

// SwapRepo описывает зависимости SwapService от слоя хранилища.
type SwapRepo interface {
	Create(ctx context.Context, swap *models.Swap) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Swap, error)
	GetDetails(ctx context.Context, id, userID uuid.UUID) (*models.SwapDetails, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status models.SwapStatus) ([]models.SwapDetails, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.SwapStatus) (*models.Swap, error)
}

// SwapUserSource проверяет существование участников обмена.
type SwapUserSource interface {
	ExistsPublic(ctx context.Context, id uuid.UUID) (bool, error)
}

// SwapSkillSource проверяет принадлежность навыков участникам.
type SwapSkillSource interface {
	GetUserSkill(ctx context.Context, id uuid.UUID) (*models.UserSkill, error)
}

// SwapService управляет жизненным циклом обменов: создание заявки
// и переходы pending -> accepted | rejected | cancelled.
type SwapService struct {
	swaps  SwapRepo
	users  SwapUserSource
	skills SwapSkillSource
}

// NewSwapService создаёт сервис обменов.
func NewSwapService(swaps SwapRepo, users SwapUserSource, skills SwapSkillSource) *SwapService {
	return &SwapService{swaps: swaps, users: users, skills: skills}
}

// CreateSwapInput содержит данные новой заявки на обмен.
type CreateSwapInput struct {
	ToUserID         uuid.UUID
	SkillOfferedUS   uuid.UUID
	SkillRequestedUS uuid.UUID
}

// Create регистрирует заявку на обмен от fromUserID.
// Предлагаемый навык должен принадлежать инициатору, запрашиваемый —
// получателю. Дубликат ожидающей заявки с теми же навыками между той же
// парой пользователей (в любом направлении) отклоняется.
func (s *SwapService) Create(ctx context.Context, fromUserID uuid.UUID, in CreateSwapInput) (*models.Swap, error) {
	if in.ToUserID == fromUserID {
		return nil, apperror.New(apperror.ErrCodeValidation, "нельзя создать обмен с самим собой")
	}

	exists, err := s.users.ExistsPublic(ctx, in.ToUserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.New(apperror.ErrCodeNotFound, "получатель не найден или его профиль скрыт")
	}

	offered, err := s.skills.GetUserSkill(ctx, in.SkillOfferedUS)
	if err != nil && !errors.Is(err, repository.ErrUserSkillNotFound) {
		return nil, err
	}
	if offered == nil || offered.UserID != fromUserID {
		return nil, apperror.New(apperror.ErrCodeNotFound, "предлагаемый навык не найден или не принадлежит вам")
	}

	requested, err := s.skills.GetUserSkill(ctx, in.SkillRequestedUS)
	if err != nil && !errors.Is(err, repository.ErrUserSkillNotFound) {
		return nil, err
	}
	if requested == nil || requested.UserID != in.ToUserID {
		return nil, apperror.New(apperror.ErrCodeNotFound, "запрашиваемый навык не найден или не принадлежит получателю")
	}

	swap := &models.Swap{
		FromUserID:       fromUserID,
		ToUserID:         in.ToUserID,
		SkillOfferedUS:   in.SkillOfferedUS,
		SkillRequestedUS: in.SkillRequestedUS,
		Status:           models.SwapStatusPending,
	}

	if err := s.swaps.Create(ctx, swap); err != nil {
		if errors.Is(err, repository.ErrDuplicatePendingSwap) {
			return nil, apperror.New(apperror.ErrCodeConflict, "ожидающий обмен с этими навыками уже существует")
		}
		return nil, err
	}

	return swap, nil
}

// Transition переводит ожидающий обмен в конечный статус.
// Принять или отклонить может только получатель, отменить — только
// инициатор. Обмен не в статусе pending изменить нельзя.
func (s *SwapService) Transition(ctx context.Context, swapID, actorID uuid.UUID, newStatus models.SwapStatus) (*models.Swap, error) {
	if _, ok := models.ValidSwapStatuses[newStatus]; !ok || newStatus == models.SwapStatusPending {
		return nil, apperror.New(apperror.ErrCodeValidation, "недопустимый статус обмена")
	}

	swap, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapNotFound) {
			return nil, apperror.ErrSwapNotFound
		}
		return nil, err
	}

	if !swap.IsParticipant(actorID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "вы не участвуете в этом обмене")
	}

	// Статус проверяется до прав на конкретный переход: участник
	// завершённого обмена получает INVALID_STATE, а не FORBIDDEN.
	if swap.Status != models.SwapStatusPending {
		return nil, apperror.New(apperror.ErrCodeInvalidState, "изменить можно только ожидающий обмен")
	}

	switch newStatus {
	case models.SwapStatusAccepted, models.SwapStatusRejected:
		if swap.ToUserID != actorID {
			return nil, apperror.New(apperror.ErrCodeForbidden, "принять или отклонить обмен может только получатель")
		}
	case models.SwapStatusCancelled:
		if swap.FromUserID != actorID {
			return nil, apperror.New(apperror.ErrCodeForbidden, "отменить обмен может только инициатор")
		}
	}

	updated, err := s.swaps.UpdateStatusIfPending(ctx, swapID, newStatus)
	if err != nil {
		// Конкурирующий переход успел первым.
		if errors.Is(err, repository.ErrSwapNotPending) {
			return nil, apperror.New(apperror.ErrCodeInvalidState, "изменить можно только ожидающий обмен")
		}
		return nil, err
	}

	return updated, nil
}

// ListUserSwaps возвращает обмены пользователя, отправленные и полученные.
// Непустой статус фильтрует выборку.
func (s *SwapService) ListUserSwaps(ctx context.Context, userID uuid.UUID, status string) ([]models.SwapDetails, error) {
	if status != "" {
		if _, ok := models.ValidSwapStatuses[models.SwapStatus(status)]; !ok {
			return nil, apperror.New(apperror.ErrCodeValidation, "недопустимый статус обмена")
		}
	}
	return s.swaps.ListByUser(ctx, userID, models.SwapStatus(status))
}

// GetSwap возвращает обмен с деталями. Доступен только участникам,
// для остальных обмен считается не найденным.
func (s *SwapService) GetSwap(ctx context.Context, swapID, userID uuid.UUID) (*models.SwapDetails, error) {
	details, err := s.swaps.GetDetails(ctx, swapID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapNotFound) {
			return nil, apperror.ErrSwapNotFound
		}
		return nil, err
	}
	return details, nil
}

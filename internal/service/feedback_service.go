package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/pkg/apperror"
	"github.com/skillswap/skillswap-backend/internal/repository"
	"github.com/skillswap/skillswap-backend/internal/validation"
)

// FeedbackRepo описывает зависимости FeedbackService от слоя хранилища.
type FeedbackRepo interface {
	Create(ctx context.Context, fb *models.Feedback) error
	GetBySwapAndAuthor(ctx context.Context, swapID, authorID uuid.UUID) (*models.Feedback, error)
	GetByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (*models.Feedback, error)
	ListBySwap(ctx context.Context, swapID uuid.UUID) ([]models.FeedbackDetails, error)
	ListSentByUser(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error)
	ListReceivedByUser(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error)
	GetRatingStats(ctx context.Context, userID uuid.UUID) (*models.RatingStats, error)
	Update(ctx context.Context, fb *models.Feedback) error
}

// FeedbackSwapSource отдаёт обмены для проверки участия и статуса.
type FeedbackSwapSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Swap, error)
}

// FeedbackUserSource проверяет существование пользователя.
type FeedbackUserSource interface {
	ExistsPublic(ctx context.Context, id uuid.UUID) (bool, error)
}

// FeedbackService управляет отзывами по состоявшимся обменам.
type FeedbackService struct {
	feedback FeedbackRepo
	swaps    FeedbackSwapSource
	users    FeedbackUserSource
}

// NewFeedbackService создаёт сервис отзывов.
func NewFeedbackService(feedback FeedbackRepo, swaps FeedbackSwapSource, users FeedbackUserSource) *FeedbackService {
	return &FeedbackService{feedback: feedback, swaps: swaps, users: users}
}

// CreateFeedbackInput содержит данные нового отзыва.
type CreateFeedbackInput struct {
	SwapID  uuid.UUID
	Rating  int
	Comment *string
}

// Create сохраняет отзыв участника по принятому обмену.
// Пользователь может оставить не более одного отзыва на обмен.
func (s *FeedbackService) Create(ctx context.Context, authorID uuid.UUID, in CreateFeedbackInput) (*models.Feedback, error) {
	if err := validation.ValidateRating(in.Rating); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if in.Comment != nil {
		if err := validation.ValidateComment(*in.Comment); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}

	swap, err := s.swaps.GetByID(ctx, in.SwapID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapNotFound) {
			return nil, apperror.ErrSwapNotFound
		}
		return nil, err
	}

	if !swap.IsParticipant(authorID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "отзыв могут оставить только участники обмена")
	}

	if swap.Status != models.SwapStatusAccepted {
		return nil, apperror.New(apperror.ErrCodeInvalidState, "отзыв можно оставить только по принятому обмену")
	}

	existing, err := s.feedback.GetBySwapAndAuthor(ctx, in.SwapID, authorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(apperror.ErrCodeConflict, "вы уже оставили отзыв по этому обмену")
	}

	fb := &models.Feedback{
		SwapID:   in.SwapID,
		FromUser: authorID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// ListBySwap возвращает отзывы по обмену. Доступно только участникам.
func (s *FeedbackService) ListBySwap(ctx context.Context, swapID, userID uuid.UUID) ([]models.FeedbackDetails, error) {
	swap, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapNotFound) {
			return nil, apperror.ErrSwapNotFound
		}
		return nil, err
	}
	if !swap.IsParticipant(userID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "отзывы доступны только участникам обмена")
	}
	return s.feedback.ListBySwap(ctx, swapID)
}

// ListSent возвращает отзывы, оставленные пользователем.
func (s *FeedbackService) ListSent(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error) {
	return s.feedback.ListSentByUser(ctx, userID)
}

// ListReceived возвращает отзывы, полученные публичным пользователем.
func (s *FeedbackService) ListReceived(ctx context.Context, userID uuid.UUID) ([]models.FeedbackHistoryItem, error) {
	exists, err := s.users.ExistsPublic(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}
	return s.feedback.ListReceivedByUser(ctx, userID)
}

// GetRatingStats возвращает агрегированный рейтинг публичного пользователя.
func (s *FeedbackService) GetRatingStats(ctx context.Context, userID uuid.UUID) (*models.RatingStats, error) {
	exists, err := s.users.ExistsPublic(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}
	return s.feedback.GetRatingStats(ctx, userID)
}

// Update меняет собственный отзыв автора.
func (s *FeedbackService) Update(ctx context.Context, feedbackID, authorID uuid.UUID, rating int, comment *string) (*models.Feedback, error) {
	if err := validation.ValidateRating(rating); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if comment != nil {
		if err := validation.ValidateComment(*comment); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}

	fb, err := s.feedback.GetByIDAndAuthor(ctx, feedbackID, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, apperror.ErrFeedbackNotFound
		}
		return nil, err
	}

	fb.Rating = rating
	fb.Comment = comment
	if err := s.feedback.Update(ctx, fb); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, apperror.ErrFeedbackNotFound
		}
		return nil, err
	}
	return fb, nil
}

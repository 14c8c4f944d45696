package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
)

// MaxNotifications feed size cap
const MaxNotifications = 20

// NotificationService append-only donation event log
type NotificationService interface {
	Notify(ctx context.Context, userID, donationID int, status string) error
	NotifyMany(ctx context.Context, userIDs []int, donationID int, status string) error
	// ListForUser newest first; limit outside 1..MaxNotifications means MaxNotifications
	ListForUser(ctx context.Context, userID, limit int) ([]dto.NotificationResponse, error)
	// WithTx binds the emitter to a transaction so events commit with the change they describe
	WithTx(tx *repository.Repository) NotificationService
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService creates a NotificationService
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) WithTx(tx *repository.Repository) NotificationService {
	return &notificationService{repo: tx, logger: s.logger}
}

func (s *notificationService) Notify(ctx context.Context, userID, donationID int, status string) error {
	return s.repo.Notification.Create(ctx, &model.Notification{
		UserID:     userID,
		DonationID: donationID,
		Status:     status,
	})
}

func (s *notificationService) NotifyMany(ctx context.Context, userIDs []int, donationID int, status string) error {
	list := make([]model.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		list = append(list, model.Notification{
			UserID:     id,
			DonationID: donationID,
			Status:     status,
		})
	}
	return s.repo.Notification.CreateBatch(ctx, list)
}

func (s *notificationService) ListForUser(ctx context.Context, userID, limit int) ([]dto.NotificationResponse, error) {
	if limit <= 0 || limit > MaxNotifications {
		limit = MaxNotifications
	}

	list, err := s.repo.Notification.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error("failed to list notifications", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:          n.NotificationID,
			DonationID:  n.DonationID,
			Status:      n.Status,
			GeneratedAt: n.GeneratedAt,
		})
	}
	return out, nil
}

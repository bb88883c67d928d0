package notification

import (
	"context"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	notificationrepo "github.com/muhammadheryan/tamirse/repository/notification"
	"github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/muhammadheryan/tamirse/utils/logger"
	validatorx "github.com/muhammadheryan/tamirse/utils/validator"
	"go.uber.org/zap"
)

type NotificationApp interface {
	List(ctx context.Context, userID string) ([]model.NotificationEntity, error)
	MarkRead(ctx context.Context, userID, id string) (*model.NotificationEntity, error)
	MarkAllRead(ctx context.Context, userID string) error
	Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.NotificationEntity, error)
}

type notificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository) NotificationApp {
	return &notificationAppImpl{notificationRepo: notificationRepo}
}

func (s *notificationAppImpl) List(ctx context.Context, userID string) ([]model.NotificationEntity, error) {
	items, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListNotifications] err notificationRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *notificationAppImpl) MarkRead(ctx context.Context, userID, id string) (*model.NotificationEntity, error) {
	if !validatorx.IsUUID(id) {
		return nil, errors.SetCustomError(constant.ErrNotificationNotFound)
	}

	item, err := s.notificationRepo.MarkRead(ctx, userID, id)
	if err != nil {
		logger.Error("[MarkRead] err notificationRepo.MarkRead", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotificationNotFound)
	}
	return item, nil
}

func (s *notificationAppImpl) MarkAllRead(ctx context.Context, userID string) error {
	if _, err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		logger.Error("[MarkAllRead] err notificationRepo.MarkAllRead", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Create stores a notification delivered by the internal consumer
func (s *notificationAppImpl) Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.NotificationEntity, error) {
	if !validatorx.IsUUID(req.UserID) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	item, err := s.notificationRepo.Create(ctx, &model.NotificationEntity{
		UserID:    req.UserID,
		Type:      req.Type,
		Message:   req.Message,
		ActionURL: req.ActionURL,
	})
	if err != nil {
		logger.Error("[CreateNotification] err notificationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return item, nil
}

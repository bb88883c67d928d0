package model

import (
	"time"

	"github.com/muhammadheryan/tamirse/constant"
)

// NotificationEntity represents the notifications table entity
type NotificationEntity struct {
	ID        string                    `db:"id" json:"id"`
	UserID    string                    `db:"user_id" json:"userId"`
	Type      constant.NotificationType `db:"type" json:"type"`
	Message   string                    `db:"message" json:"message"`
	IsRead    bool                      `db:"is_read" json:"isRead"`
	ActionURL string                    `db:"action_url" json:"actionUrl"`
	CreatedAt time.Time                 `db:"created_at" json:"createdAt"`
}

type CreateNotificationRequest struct {
	UserID    string                    `json:"user_id" validate:"required"`
	Type      constant.NotificationType `json:"type" validate:"required,oneof=request_update payment message system"`
	Message   string                    `json:"message" validate:"required"`
	ActionURL string                    `json:"action_url"`
}

package notification_test

import (
	"context"
	"errors"
	"testing"

	appnotification "github.com/muhammadheryan/tamirse/application/notification"
	"github.com/muhammadheryan/tamirse/constant"
	notificationmocks "github.com/muhammadheryan/tamirse/mocks/repository/notification"
	"github.com/muhammadheryan/tamirse/model"
	cerr "github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/stretchr/testify/mock"
)

const (
	userID         = "6e5d4c3b-2a19-4807-b6a5-948372615049"
	notificationID = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

func checkErr(t *testing.T, err error, wantErr bool, errCode constant.ErrorType) {
	t.Helper()
	if wantErr {
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("expected CustomError, got %v", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotificationApp_List(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(m *notificationmocks.NotificationRepository)
		wantLen  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(m *notificationmocks.NotificationRepository) {
				m.On("ListByUser", mock.Anything, userID).
					Return([]model.NotificationEntity{{ID: "n2"}, {ID: "n1"}}, nil).Once()
			},
			wantLen: 2,
		},
		{
			name: "error: repository fails",
			mockCall: func(m *notificationmocks.NotificationRepository) {
				m.On("ListByUser", mock.Anything, userID).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := notificationmocks.NewNotificationRepository(t)
			tt.mockCall(repo)

			got, err := appnotification.NewNotificationApp(repo).List(context.Background(), userID)
			checkErr(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestNotificationApp_MarkRead(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		mockCall func(m *notificationmocks.NotificationRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: returns the updated notification",
			id:   notificationID,
			mockCall: func(m *notificationmocks.NotificationRepository) {
				m.On("MarkRead", mock.Anything, userID, notificationID).
					Return(&model.NotificationEntity{ID: notificationID, UserID: userID, IsRead: true}, nil).Once()
			},
		},
		{
			name: "error: belongs to another user",
			id:   notificationID,
			mockCall: func(m *notificationmocks.NotificationRepository) {
				m.On("MarkRead", mock.Anything, userID, notificationID).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotificationNotFound,
		},
		{
			name:     "error: malformed id",
			id:       "n-1",
			mockCall: func(m *notificationmocks.NotificationRepository) {},
			wantErr:  true,
			errCode:  constant.ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := notificationmocks.NewNotificationRepository(t)
			tt.mockCall(repo)

			got, err := appnotification.NewNotificationApp(repo).MarkRead(context.Background(), userID, tt.id)
			checkErr(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && !got.IsRead {
				t.Fatalf("expected notification to be read")
			}
		})
	}
}

func TestNotificationApp_MarkAllRead(t *testing.T) {
	repo := notificationmocks.NewNotificationRepository(t)
	repo.On("MarkAllRead", mock.Anything, userID).Return(int64(3), nil).Once()
	repo.On("MarkAllRead", mock.Anything, "broken").Return(int64(0), errors.New("db error")).Once()

	app := appnotification.NewNotificationApp(repo)
	checkErr(t, app.MarkAllRead(context.Background(), userID), false, 0)
	checkErr(t, app.MarkAllRead(context.Background(), "broken"), true, constant.ErrInternal)
}

func TestNotificationApp_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateNotificationRequest
		mockCall func(m *notificationmocks.NotificationRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.CreateNotificationRequest{UserID: userID, Type: constant.NotificationPayment, Message: "paid", ActionURL: "/requests/1"},
			mockCall: func(m *notificationmocks.NotificationRepository) {
				m.On("Create", mock.Anything, &model.NotificationEntity{
					UserID: userID, Type: constant.NotificationPayment, Message: "paid", ActionURL: "/requests/1",
				}).Return(&model.NotificationEntity{ID: notificationID, UserID: userID}, nil).Once()
			},
		},
		{
			name:     "error: user id is not a uuid",
			req:      &model.CreateNotificationRequest{UserID: "u1", Type: constant.NotificationSystem, Message: "hi"},
			mockCall: func(m *notificationmocks.NotificationRepository) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: insert fails",
			req:  &model.CreateNotificationRequest{UserID: userID, Type: constant.NotificationSystem, Message: "hi"},
			mockCall: func(m *notificationmocks.NotificationRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("fk violation")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := notificationmocks.NewNotificationRepository(t)
			tt.mockCall(repo)

			_, err := appnotification.NewNotificationApp(repo).Create(context.Background(), tt.req)
			checkErr(t, err, tt.wantErr, tt.errCode)
		})
	}
}

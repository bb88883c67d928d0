package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/tamirse/model"
)

// ListNotifications handler
// @Summary List notifications
// @Tags Notification
// @Produce json
// @Success 200 {array} model.NotificationEntity
// @Security BearerAuth
// @Router /api/notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	res, err := s.NotificationApp.List(r.Context(), authUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MarkNotificationRead handler
// @Summary Mark notification read
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} model.NotificationEntity
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/notifications/{id}/read [patch]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	res, err := s.NotificationApp.MarkRead(r.Context(), authUser(r).ID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MarkAllNotificationsRead handler
// @Summary Mark all notifications read
// @Tags Notification
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Security BearerAuth
// @Router /api/notifications/read-all [patch]
func (s *RestHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.NotificationApp.MarkAllRead(r.Context(), authUser(r).ID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MessageResponse{Message: "All notifications marked as read"})
}

// CreateNotification handler
// @Summary Store a notification (internal)
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.CreateNotificationRequest true "Notification"
// @Success 201 {object} model.NotificationEntity
// @Failure 403 {object} ErrorResponse
// @Router /internal/v1/notifications [post]
func (s *RestHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req model.CreateNotificationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.NotificationApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

package request

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	businessrepo "github.com/muhammadheryan/tamirse/repository/business"
	messagerepo "github.com/muhammadheryan/tamirse/repository/message"
	requestrepo "github.com/muhammadheryan/tamirse/repository/request"
	txrepo "github.com/muhammadheryan/tamirse/repository/tx"
	"github.com/muhammadheryan/tamirse/thirdparty/rabbitmq"
	"github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/muhammadheryan/tamirse/utils/logger"
	validatorx "github.com/muhammadheryan/tamirse/utils/validator"
	"go.uber.org/zap"
)

type RequestApp interface {
	Create(ctx context.Context, caller *model.AuthUser, req *model.CreateRequestRequest) (*model.ServiceRequestEntity, error)
	List(ctx context.Context, caller *model.AuthUser) ([]model.ServiceRequestDetail, error)
	Get(ctx context.Context, caller *model.AuthUser, id string) (*model.ServiceRequestDetail, error)
	UpdateStatus(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error)
	Approve(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error)
	Reject(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error)
	Complete(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error)
	Rate(ctx context.Context, caller *model.AuthUser, id string, req *model.RateRequest) (*model.ServiceRequestEntity, error)
	Pay(ctx context.Context, caller *model.AuthUser, id string, req *model.PayRequest) (*model.ServiceRequestDetail, error)
	AddMessage(ctx context.Context, caller *model.AuthUser, id string, req *model.AddMessageRequest) (*model.RequestMessageEntity, error)
	ListMessages(ctx context.Context, caller *model.AuthUser, id string) ([]model.RequestMessageEntity, error)
}

type requestAppImpl struct {
	txRepo       txrepo.TxRepository
	requestRepo  requestrepo.RequestRepository
	businessRepo businessrepo.BusinessRepository
	messageRepo  messagerepo.MessageRepository
	publisher    rabbitmq.NotificationPublisher
}

func NewRequestApp(txRepo txrepo.TxRepository, requestRepo requestrepo.RequestRepository, businessRepo businessrepo.BusinessRepository, messageRepo messagerepo.MessageRepository, publisher rabbitmq.NotificationPublisher) RequestApp {
	return &requestAppImpl{
		txRepo:       txRepo,
		requestRepo:  requestRepo,
		businessRepo: businessRepo,
		messageRepo:  messageRepo,
		publisher:    publisher,
	}
}

func (s *requestAppImpl) Create(ctx context.Context, caller *model.AuthUser, req *model.CreateRequestRequest) (*model.ServiceRequestEntity, error) {
	if !caller.IsCustomer() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if req.ShopID == "" || req.Vehicle == nil || req.IssueDescription == "" || len(req.SelectedIssues) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if !validatorx.IsUUID(req.ShopID) {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	business, err := s.businessRepo.GetByID(ctx, req.ShopID)
	if err != nil {
		logger.Error("[CreateRequest] err businessRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if business == nil {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	urgency := constant.Urgency(req.Urgency)
	if urgency == "" {
		urgency = constant.UrgencyMedium
	}

	v := req.Vehicle
	firstIssue := req.SelectedIssues[0]
	description := fmt.Sprintf("%s\n\nVehicle: %s %s (%d)", req.IssueDescription, v.Brand, v.Model, v.Year)
	if v.Mileage != nil && *v.Mileage > 0 {
		description += fmt.Sprintf("\nMileage: %d km", *v.Mileage)
	}

	entity := &model.ServiceRequestEntity{
		Title:          fmt.Sprintf("%s %s - %s", v.Brand, v.Model, firstIssue),
		Description:    description,
		Category:       firstIssue,
		Urgency:        urgency,
		Status:         constant.RequestStatusPending,
		CustomerID:     caller.ID,
		BusinessID:     &business.ID,
		VehicleBrand:   v.Brand,
		VehicleModel:   v.Model,
		VehicleYear:    v.Year,
		VehicleMileage: v.Mileage,
		StatusHistory: model.StatusHistory{{
			Status:    constant.RequestStatusPending,
			Timestamp: time.Now().UTC(),
			UpdatedBy: constant.SenderCustomer,
		}},
	}

	entity, err = s.requestRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateRequest] err requestRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.notify(ctx, business.UserID, constant.NotificationRequestUpdate,
		fmt.Sprintf("New service request: %s", entity.Title), entity.ID)

	return entity, nil
}

func (s *requestAppImpl) List(ctx context.Context, caller *model.AuthUser) ([]model.ServiceRequestDetail, error) {
	filter := &model.RequestFilter{}
	switch {
	case caller.IsCustomer():
		filter.CustomerID = caller.ID
	case caller.IsBusiness():
		business, err := s.businessRepo.GetByUserID(ctx, caller.ID)
		if err != nil {
			logger.Error("[ListRequests] err businessRepo.GetByUserID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if business == nil {
			return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
		}
		filter.BusinessID = business.ID
	default:
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	items, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListRequests] err requestRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *requestAppImpl) Get(ctx context.Context, caller *model.AuthUser, id string) (*model.ServiceRequestDetail, error) {
	detail, err := s.getDetail(ctx, "GetRequest", id)
	if err != nil {
		return nil, err
	}
	if _, ok := participantRole(caller, detail); !ok {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return detail, nil
}

func (s *requestAppImpl) Approve(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error) {
	return s.UpdateStatus(ctx, caller, id, withStatus(req, constant.RequestStatusApproved))
}

func (s *requestAppImpl) Reject(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error) {
	return s.UpdateStatus(ctx, caller, id, withStatus(req, constant.RequestStatusRejected))
}

func (s *requestAppImpl) Complete(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error) {
	return s.UpdateStatus(ctx, caller, id, withStatus(req, constant.RequestStatusCompleted))
}

// UpdateStatus moves a request to a new status on behalf of the owning business.
// The request and business rows are locked and written in one transaction.
func (s *requestAppImpl) UpdateStatus(ctx context.Context, caller *model.AuthUser, id string, req *model.UpdateStatusRequest) (*model.ServiceRequestEntity, error) {
	if !caller.IsBusiness() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if !req.Status.IsTarget() {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}
	if !validatorx.IsUUID(id) {
		return nil, errors.SetCustomError(constant.ErrRequestNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateStatus] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, business, err := s.lockAssigned(ctx, tx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}
	if business.UserID != caller.ID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	now := time.Now().UTC()
	if req.Price != nil {
		price := *req.Price
		entity.Price = &price
	}

	note := req.Note
	if note == nil {
		note = req.BusinessNotes
	}

	from := entity.Status
	changed := from != req.Status
	if changed {
		entity.Status = req.Status
		entity.StatusHistory = append(entity.StatusHistory, model.StatusHistoryEntry{
			Status:    req.Status,
			Note:      note,
			Timestamp: now,
			UpdatedBy: constant.SenderBusiness,
		})
		applyTransition(from, req.Status, entity, business, now)

		if err := s.businessRepo.UpdateStatsTx(ctx, tx, business); err != nil {
			logger.Error("[UpdateStatus] err businessRepo.UpdateStatsTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if note != nil {
		entity.BusinessNotes = note
	}
	if req.EstimatedCompletionDate != nil {
		entity.EstimatedCompletionDate = req.EstimatedCompletionDate
	}

	if err := s.requestRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[UpdateStatus] err requestRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStatus] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if changed {
		logger.Info("request status changed",
			zap.String("request_id", entity.ID),
			zap.String("from", string(from)),
			zap.String("to", string(entity.Status)),
			zap.Int("active_requests", business.ActiveRequests),
			zap.Int("completed_requests", business.CompletedRequests),
			zap.Float64("total_earnings", business.TotalEarnings),
		)
		s.notify(ctx, entity.CustomerID, constant.NotificationRequestUpdate,
			fmt.Sprintf("Your request \"%s\" is now %s", entity.Title, entity.Status), entity.ID)
	}

	return entity, nil
}

// Rate stores the customer's rating and recomputes the business average in one transaction
func (s *requestAppImpl) Rate(ctx context.Context, caller *model.AuthUser, id string, req *model.RateRequest) (*model.ServiceRequestEntity, error) {
	if !validatorx.IsUUID(id) {
		return nil, errors.SetCustomError(constant.ErrRequestNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Rate] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.requestRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Rate] err requestRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrRequestNotFound)
	}
	if entity.Status != constant.RequestStatusCompleted {
		return nil, errors.SetCustomError(constant.ErrRequestNotCompleted)
	}
	if caller == nil || entity.CustomerID != caller.ID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	rating := req.Rating
	entity.Rating = &rating
	entity.Review = req.Review
	if err := s.requestRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[Rate] err requestRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if entity.BusinessID != nil {
		if err := s.recomputeRating(ctx, tx, *entity.BusinessID); err != nil {
			return nil, err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Rate] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return entity, nil
}

func (s *requestAppImpl) recomputeRating(ctx context.Context, tx *sqlx.Tx, businessID string) error {
	business, err := s.businessRepo.GetForUpdateTx(ctx, tx, businessID)
	if err != nil {
		logger.Error("[Rate] err businessRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if business == nil {
		return nil
	}

	ratings, err := s.requestRepo.ListRatingsTx(ctx, tx, businessID)
	if err != nil {
		logger.Error("[Rate] err requestRepo.ListRatingsTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if len(ratings) == 0 {
		return nil
	}

	business.AverageRating = averageRating(ratings)
	if err := s.businessRepo.UpdateStatsTx(ctx, tx, business); err != nil {
		logger.Error("[Rate] err businessRepo.UpdateStatsTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Pay records a customer payment against the assigned business's earnings
func (s *requestAppImpl) Pay(ctx context.Context, caller *model.AuthUser, id string, req *model.PayRequest) (*model.ServiceRequestDetail, error) {
	detail, err := s.getDetail(ctx, "Pay", id)
	if err != nil {
		return nil, err
	}
	if caller == nil || detail.CustomerID != caller.ID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if detail.BusinessID == nil {
		return nil, errors.SetCustomError(constant.ErrRequestNotAssigned)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Pay] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	business, err := s.businessRepo.GetForUpdateTx(ctx, tx, *detail.BusinessID)
	if err != nil {
		logger.Error("[Pay] err businessRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if business == nil {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	business.TotalEarnings += req.Amount
	if err := s.businessRepo.UpdateStatsTx(ctx, tx, business); err != nil {
		logger.Error("[Pay] err businessRepo.UpdateStatsTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Pay] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notify(ctx, business.UserID, constant.NotificationPayment,
		fmt.Sprintf("Payment of %.2f received via %s for \"%s\"", req.Amount, req.PaymentMethod, detail.Title), detail.ID)

	return detail, nil
}

func (s *requestAppImpl) AddMessage(ctx context.Context, caller *model.AuthUser, id string, req *model.AddMessageRequest) (*model.RequestMessageEntity, error) {
	detail, err := s.getDetail(ctx, "AddMessage", id)
	if err != nil {
		return nil, err
	}
	sender, ok := participantRole(caller, detail)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	msg, err := s.messageRepo.Create(ctx, &model.RequestMessageEntity{
		RequestID:   detail.ID,
		Content:     req.Content,
		Sender:      sender,
		Attachments: req.Attachments,
	})
	if err != nil {
		logger.Error("[AddMessage] err messageRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	recipient := detail.CustomerID
	if sender == constant.SenderCustomer {
		recipient = ""
		if detail.BusinessUserID != nil {
			recipient = *detail.BusinessUserID
		}
	}
	if recipient != "" {
		s.notify(ctx, recipient, constant.NotificationMessage,
			fmt.Sprintf("New message on \"%s\"", detail.Title), detail.ID)
	}

	return msg, nil
}

func (s *requestAppImpl) ListMessages(ctx context.Context, caller *model.AuthUser, id string) ([]model.RequestMessageEntity, error) {
	detail, err := s.getDetail(ctx, "ListMessages", id)
	if err != nil {
		return nil, err
	}
	if _, ok := participantRole(caller, detail); !ok {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	items, err := s.messageRepo.ListByRequest(ctx, detail.ID)
	if err != nil {
		logger.Error("[ListMessages] err messageRepo.ListByRequest", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *requestAppImpl) getDetail(ctx context.Context, op, id string) (*model.ServiceRequestDetail, error) {
	if !validatorx.IsUUID(id) {
		return nil, errors.SetCustomError(constant.ErrRequestNotFound)
	}
	detail, err := s.requestRepo.GetDetail(ctx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err requestRepo.GetDetail", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrRequestNotFound)
	}
	return detail, nil
}

// lockAssigned locks the request and its business, in that order
func (s *requestAppImpl) lockAssigned(ctx context.Context, tx *sqlx.Tx, op, id string) (*model.ServiceRequestEntity, *model.BusinessEntity, error) {
	entity, err := s.requestRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err requestRepo.GetForUpdateTx", op), zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, nil, errors.SetCustomError(constant.ErrRequestNotFound)
	}
	if entity.BusinessID == nil {
		return nil, nil, errors.SetCustomError(constant.ErrRequestNotAssigned)
	}

	business, err := s.businessRepo.GetForUpdateTx(ctx, tx, *entity.BusinessID)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err businessRepo.GetForUpdateTx", op), zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	if business == nil {
		return nil, nil, errors.SetCustomError(constant.ErrRequestNotAssigned)
	}
	return entity, business, nil
}

// notify publishes best-effort; a broker outage never fails the request
func (s *requestAppImpl) notify(ctx context.Context, userID string, kind constant.NotificationType, message, requestID string) {
	if s.publisher == nil || userID == "" {
		return
	}
	err := s.publisher.PublishNotification(ctx, &model.CreateNotificationRequest{
		UserID:    userID,
		Type:      kind,
		Message:   message,
		ActionURL: "/requests/" + requestID,
	})
	if err != nil {
		logger.Warn("[notify] err publisher.PublishNotification", zap.String("user_id", userID), zap.String("error", err.Error()))
	}
}

func participantRole(caller *model.AuthUser, detail *model.ServiceRequestDetail) (constant.SenderRole, bool) {
	if caller == nil {
		return "", false
	}
	if caller.ID == detail.CustomerID {
		return constant.SenderCustomer, true
	}
	if detail.BusinessUserID != nil && *detail.BusinessUserID == caller.ID {
		return constant.SenderBusiness, true
	}
	return "", false
}

func withStatus(req *model.UpdateStatusRequest, status constant.RequestStatus) *model.UpdateStatusRequest {
	out := model.UpdateStatusRequest{}
	if req != nil {
		out = *req
	}
	out.Status = status
	return &out
}

package business

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	businessrepo "github.com/muhammadheryan/tamirse/repository/business"
	"github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/muhammadheryan/tamirse/utils/logger"
	validatorx "github.com/muhammadheryan/tamirse/utils/validator"
	"go.uber.org/zap"
)

const (
	defaultEstimatedTime = "1-2 days"
	anonymousCustomer    = "Anonymous"
)

type BusinessApp interface {
	ListOnline(ctx context.Context) ([]model.BusinessResponse, error)
	GetByID(ctx context.Context, id string) (*model.BusinessResponse, error)
	ListReviews(ctx context.Context, id string) ([]model.ReviewResponse, error)
	GetStats(ctx context.Context, caller *model.AuthUser, id string) (*model.BusinessStatsResponse, error)
}

type businessAppImpl struct {
	businessRepo businessrepo.BusinessRepository
}

func NewBusinessApp(businessRepo businessrepo.BusinessRepository) BusinessApp {
	return &businessAppImpl{businessRepo: businessRepo}
}

func (s *businessAppImpl) ListOnline(ctx context.Context) ([]model.BusinessResponse, error) {
	items, err := s.businessRepo.ListOnline(ctx)
	if err != nil {
		logger.Error("[ListOnline] err businessRepo.ListOnline", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.BusinessResponse, 0, len(items))
	for i := range items {
		res = append(res, ToBusinessResponse(&items[i]))
	}
	return res, nil
}

func (s *businessAppImpl) GetByID(ctx context.Context, id string) (*model.BusinessResponse, error) {
	if !validatorx.IsUUID(id) {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	item, err := s.businessRepo.GetWithOwner(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err businessRepo.GetWithOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	res := ToBusinessResponse(item)
	return &res, nil
}

// ListReviews returns an empty list when the business has no rated work
func (s *businessAppImpl) ListReviews(ctx context.Context, id string) ([]model.ReviewResponse, error) {
	if !validatorx.IsUUID(id) {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	rows, err := s.businessRepo.ListReviews(ctx, id)
	if err != nil {
		logger.Error("[ListReviews] err businessRepo.ListReviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.ReviewResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, ToReviewResponse(r))
	}
	return res, nil
}

func (s *businessAppImpl) GetStats(ctx context.Context, caller *model.AuthUser, id string) (*model.BusinessStatsResponse, error) {
	if !validatorx.IsUUID(id) {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetStats] err businessRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if business == nil {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}
	if caller == nil || business.UserID != caller.ID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	from, to := dayBounds(time.Now())
	daily, err := s.businessRepo.GetDailyStats(ctx, id, from, to)
	if err != nil {
		logger.Error("[GetStats] err businessRepo.GetDailyStats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.BusinessStatsResponse{
		TotalEarnings:     business.TotalEarnings,
		CompletedRequests: business.CompletedRequests,
		ActiveRequests:    business.ActiveRequests,
		AverageRating:     business.AverageRating,
		TodayEarnings:     daily.TodayEarnings,
		TodayRequests:     daily.TodayRequests,
		CompletedToday:    daily.CompletedToday,
		RejectedToday:     daily.RejectedToday,
		PendingApproval:   daily.PendingApproval,
		InProgress:        daily.InProgress,
	}, nil
}

// ToBusinessResponse builds the directory listing view of a business
func ToBusinessResponse(b *model.BusinessWithOwner) model.BusinessResponse {
	estimated := defaultEstimatedTime
	if b.EstimatedDeliveryTime != nil && *b.EstimatedDeliveryTime != "" {
		estimated = *b.EstimatedDeliveryTime
	}
	var description string
	if b.Description != nil {
		description = *b.Description
	}
	owner := b.Owner

	return model.BusinessResponse{
		ID:            b.ID,
		Name:          b.BusinessName,
		Rating:        b.AverageRating,
		ReviewCount:   b.CompletedRequests,
		Distance:      Distance(b.ID),
		Services:      SplitServices(b.Services),
		EstimatedTime: estimated,
		PriceRange:    PriceRange(b.TotalEarnings),
		IsOnline:      b.IsOnline,
		Description:   description,
		Address:       b.BusinessAddress,
		Phone:         b.BusinessPhone,
		WorkingHours:  b.WorkingHours,
		Images:        []string{},
		Owner:         &owner,
	}
}

func ToReviewResponse(r model.ReviewRow) model.ReviewResponse {
	res := model.ReviewResponse{
		ID:           r.ID,
		CustomerName: anonymousCustomer,
		Date:         r.UpdatedAt,
	}
	if r.CustomerName != nil && *r.CustomerName != "" {
		res.CustomerName = *r.CustomerName
	}
	if r.Rating != nil {
		res.Rating = *r.Rating
	}
	if r.Review != nil {
		res.Comment = *r.Review
	}
	if r.CompletedAt != nil {
		res.Date = *r.CompletedAt
	}
	return res
}

// Distance is a stable pseudo distance in the 1.2-6.1 km range derived from the id
func Distance(id string) string {
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	return fmt.Sprintf("%.1f km", 1.2+float64(sum%50)/10)
}

func SplitServices(services string) []string {
	res := make([]string, 0)
	for _, s := range strings.Split(services, ",") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

func PriceRange(earnings float64) string {
	switch {
	case earnings < 10000:
		return "₺"
	case earnings < 50000:
		return "₺₺"
	default:
		return "₺₺₺"
	}
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

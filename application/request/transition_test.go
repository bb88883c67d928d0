package request

import (
	"testing"
	"time"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
)

func TestApplyTransition(t *testing.T) {
	price := 250.0
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		from, to      constant.RequestStatus
		price         *float64
		active        int
		wantActive    int
		wantCompleted int
		wantEarnings  float64
		wantStamped   bool
	}{
		{name: "pending to approved opens a slot", from: constant.RequestStatusPending, to: constant.RequestStatusApproved, active: 1, wantActive: 2},
		{name: "pending to in_progress opens a slot", from: constant.RequestStatusPending, to: constant.RequestStatusInProgress, wantActive: 1},
		{name: "approved to in_progress keeps the slot", from: constant.RequestStatusApproved, to: constant.RequestStatusInProgress, active: 1, wantActive: 1},
		{name: "approved to rejected closes the slot", from: constant.RequestStatusApproved, to: constant.RequestStatusRejected, active: 1, wantActive: 0},
		{name: "in_progress to cancelled closes the slot", from: constant.RequestStatusInProgress, to: constant.RequestStatusCancelled, active: 3, wantActive: 2},
		{name: "close never goes below zero", from: constant.RequestStatusApproved, to: constant.RequestStatusRejected, active: 0, wantActive: 0},
		{name: "pending to rejected touches nothing", from: constant.RequestStatusPending, to: constant.RequestStatusRejected, active: 2, wantActive: 2},
		{
			name: "in_progress to completed closes and records earnings", from: constant.RequestStatusInProgress, to: constant.RequestStatusCompleted,
			price: &price, active: 1, wantActive: 0, wantCompleted: 1, wantEarnings: 250, wantStamped: true,
		},
		{
			name: "pending to completed records completion without a slot", from: constant.RequestStatusPending, to: constant.RequestStatusCompleted,
			active: 1, wantActive: 1, wantCompleted: 1, wantStamped: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := &model.ServiceRequestEntity{Status: tt.from, Price: tt.price}
			biz := &model.BusinessEntity{ActiveRequests: tt.active}

			applyTransition(tt.from, tt.to, req, biz, now)

			if biz.ActiveRequests != tt.wantActive {
				t.Errorf("ActiveRequests = %d, want %d", biz.ActiveRequests, tt.wantActive)
			}
			if biz.CompletedRequests != tt.wantCompleted {
				t.Errorf("CompletedRequests = %d, want %d", biz.CompletedRequests, tt.wantCompleted)
			}
			if biz.TotalEarnings != tt.wantEarnings {
				t.Errorf("TotalEarnings = %v, want %v", biz.TotalEarnings, tt.wantEarnings)
			}
			if (req.CompletedAt != nil) != tt.wantStamped {
				t.Fatalf("CompletedAt set = %v, want %v", req.CompletedAt != nil, tt.wantStamped)
			}
			if tt.wantStamped && !req.CompletedAt.Equal(now) {
				t.Errorf("CompletedAt = %v, want %v", req.CompletedAt, now)
			}
		})
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		ratings []float64
		want    float64
	}{
		{[]float64{5}, 5},
		{[]float64{5, 4}, 4.5},
		{[]float64{5, 4, 5}, 4.67},
		{[]float64{1, 2, 2}, 1.67},
	}
	for _, tt := range tests {
		if got := averageRating(tt.ratings); got != tt.want {
			t.Errorf("averageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
		}
	}
}

func TestParticipantRole(t *testing.T) {
	owner := "owner-1"
	detail := &model.ServiceRequestDetail{
		ServiceRequestEntity: model.ServiceRequestEntity{CustomerID: "customer-1"},
		BusinessUserID:       &owner,
	}

	tests := []struct {
		name   string
		caller *model.AuthUser
		want   constant.SenderRole
		ok     bool
	}{
		{name: "customer", caller: &model.AuthUser{ID: "customer-1"}, want: constant.SenderCustomer, ok: true},
		{name: "business owner", caller: &model.AuthUser{ID: "owner-1"}, want: constant.SenderBusiness, ok: true},
		{name: "stranger", caller: &model.AuthUser{ID: "someone"}},
		{name: "anonymous"},
	}
	for _, tt := range tests {
		got, ok := participantRole(tt.caller, detail)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: participantRole() = (%s, %v), want (%s, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

package request

import (
	"math"
	"time"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
)

// anyStatus matches every previous status in the transition table
const anyStatus constant.RequestStatus = "*"

type transitionKey struct {
	from constant.RequestStatus
	to   constant.RequestStatus
}

type effect func(req *model.ServiceRequestEntity, biz *model.BusinessEntity, now time.Time)

var transitions = map[transitionKey][]effect{
	{constant.RequestStatusPending, constant.RequestStatusApproved}:     {openSlot},
	{constant.RequestStatusPending, constant.RequestStatusInProgress}:   {openSlot},
	{constant.RequestStatusApproved, constant.RequestStatusCompleted}:   {closeSlot},
	{constant.RequestStatusInProgress, constant.RequestStatusCompleted}: {closeSlot},
	{constant.RequestStatusApproved, constant.RequestStatusRejected}:    {closeSlot},
	{constant.RequestStatusApproved, constant.RequestStatusCancelled}:   {closeSlot},
	{constant.RequestStatusInProgress, constant.RequestStatusRejected}:  {closeSlot},
	{constant.RequestStatusInProgress, constant.RequestStatusCancelled}: {closeSlot},
	{anyStatus, constant.RequestStatusCompleted}:                        {recordCompletion},
}

// applyTransition runs the exact (from,to) effects first, then the wildcard ones
func applyTransition(from, to constant.RequestStatus, req *model.ServiceRequestEntity, biz *model.BusinessEntity, now time.Time) {
	for _, key := range []transitionKey{{from, to}, {anyStatus, to}} {
		for _, fn := range transitions[key] {
			fn(req, biz, now)
		}
	}
}

func openSlot(_ *model.ServiceRequestEntity, biz *model.BusinessEntity, _ time.Time) {
	biz.ActiveRequests++
}

func closeSlot(_ *model.ServiceRequestEntity, biz *model.BusinessEntity, _ time.Time) {
	if biz.ActiveRequests > 0 {
		biz.ActiveRequests--
	}
}

func recordCompletion(req *model.ServiceRequestEntity, biz *model.BusinessEntity, now time.Time) {
	completedAt := now
	req.CompletedAt = &completedAt
	biz.CompletedRequests++
	if req.Price != nil {
		biz.TotalEarnings += *req.Price
	}
}

// averageRating is the mean rounded to two decimals; callers guarantee len > 0
func averageRating(ratings []float64) float64 {
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return math.Round(sum/float64(len(ratings))*100) / 100
}

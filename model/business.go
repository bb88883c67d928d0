package model

import (
	"time"

	"github.com/muhammadheryan/tamirse/constant"
)

// BusinessEntity represents the businesses table entity
type BusinessEntity struct {
	ID                    string    `db:"id" json:"id"`
	UserID                string    `db:"user_id" json:"userId"`
	BusinessName          string    `db:"business_name" json:"businessName"`
	BusinessAddress       string    `db:"business_address" json:"businessAddress"`
	BusinessPhone         string    `db:"business_phone" json:"businessPhone"`
	Services              string    `db:"services" json:"services"`
	WorkingHours          string    `db:"working_hours" json:"workingHours"`
	Description           *string   `db:"description" json:"description,omitempty"`
	EstimatedDeliveryTime *string   `db:"estimated_delivery_time" json:"estimatedDeliveryTime,omitempty"`
	TotalEarnings         float64   `db:"total_earnings" json:"totalEarnings"`
	CompletedRequests     int       `db:"completed_requests" json:"completedRequests"`
	ActiveRequests        int       `db:"active_requests" json:"activeRequests"`
	AverageRating         float64   `db:"average_rating" json:"averageRating"`
	IsOnline              bool      `db:"is_online" json:"isOnline"`
	CreatedAt             time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time `db:"updated_at" json:"updatedAt"`
}

// BusinessOwner is the minimal user projection joined onto directory reads
type BusinessOwner struct {
	ID    string            `db:"id" json:"id"`
	Name  string            `db:"name" json:"name"`
	Email string            `db:"email" json:"email"`
	Type  constant.UserType `db:"type" json:"type"`
}

type BusinessWithOwner struct {
	BusinessEntity
	Owner BusinessOwner `db:"owner" json:"user"`
}

// BusinessResponse is the directory listing view of a business
type BusinessResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	Distance      string         `json:"distance"`
	Services      []string       `json:"services"`
	EstimatedTime string         `json:"estimatedTime"`
	PriceRange    string         `json:"priceRange"`
	IsOnline      bool           `json:"isOnline"`
	Description   string         `json:"description"`
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	WorkingHours  string         `json:"workingHours"`
	Images        []string       `json:"images"`
	Owner         *BusinessOwner `json:"user,omitempty"`
}

// ReviewRow is a completed, rated request joined with its customer
type ReviewRow struct {
	ID           string     `db:"id"`
	CustomerName *string    `db:"customer_name"`
	Rating       *float64   `db:"rating"`
	Review       *string    `db:"review"`
	CompletedAt  *time.Time `db:"completed_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}

// DailyStats holds the per-day request counters of one business
type DailyStats struct {
	TodayEarnings   float64 `db:"today_earnings"`
	TodayRequests   int     `db:"today_requests"`
	CompletedToday  int     `db:"completed_today"`
	RejectedToday   int     `db:"rejected_today"`
	PendingApproval int     `db:"pending_approval"`
	InProgress      int     `db:"in_progress"`
}

type BusinessStatsResponse struct {
	TotalEarnings     float64 `json:"totalEarnings"`
	CompletedRequests int     `json:"completedRequests"`
	ActiveRequests    int     `json:"activeRequests"`
	AverageRating     float64 `json:"averageRating"`
	TodayEarnings     float64 `json:"todayEarnings"`
	TodayRequests     int     `json:"todayRequests"`
	CompletedToday    int     `json:"completedToday"`
	RejectedToday     int     `json:"rejectedToday"`
	PendingApproval   int     `json:"pendingApproval"`
	InProgress        int     `json:"inProgress"`
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/muhammadheryan/tamirse/constant"
)

type StatusHistoryEntry struct {
	Status    constant.RequestStatus `json:"status"`
	Note      *string                `json:"note,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	UpdatedBy constant.SenderRole    `json:"updatedBy"`
}

// StatusHistory is the append-only audit log stored as a JSONB column
type StatusHistory []StatusHistoryEntry

func (h StatusHistory) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h)
}

func (h *StatusHistory) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*h = StatusHistory{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported status history type %T", src)
	}
	out := StatusHistory{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*h = out
	return nil
}

// ServiceRequestEntity represents the service_requests table entity
type ServiceRequestEntity struct {
	ID                      string                 `db:"id" json:"id"`
	Title                   string                 `db:"title" json:"title"`
	Description             string                 `db:"description" json:"description"`
	Category                string                 `db:"category" json:"category"`
	Urgency                 constant.Urgency       `db:"urgency" json:"urgency"`
	Status                  constant.RequestStatus `db:"status" json:"status"`
	Price                   *float64               `db:"price" json:"price,omitempty"`
	BusinessNotes           *string                `db:"business_notes" json:"businessNotes,omitempty"`
	EstimatedCompletionDate *time.Time             `db:"estimated_completion_date" json:"estimatedCompletionDate,omitempty"`
	CompletedAt             *time.Time             `db:"completed_at" json:"completedAt,omitempty"`
	CustomerID              string                 `db:"customer_id" json:"customerId"`
	BusinessID              *string                `db:"business_id" json:"businessId,omitempty"`
	VehicleBrand            string                 `db:"vehicle_brand" json:"vehicleBrand"`
	VehicleModel            string                 `db:"vehicle_model" json:"vehicleModel"`
	VehicleYear             int                    `db:"vehicle_year" json:"vehicleYear"`
	VehicleMileage          *int                   `db:"vehicle_mileage" json:"vehicleMileage,omitempty"`
	StatusHistory           StatusHistory          `db:"status_history" json:"statusHistory"`
	Rating                  *float64               `db:"rating" json:"rating,omitempty"`
	Review                  *string                `db:"review" json:"review,omitempty"`
	CreatedAt               time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt               time.Time              `db:"updated_at" json:"updatedAt"`
}

// ServiceRequestDetail is a request joined with its customer and business contact fields
type ServiceRequestDetail struct {
	ServiceRequestEntity
	CustomerName    string  `db:"customer_name" json:"customerName"`
	CustomerEmail   string  `db:"customer_email" json:"customerEmail"`
	CustomerPhone   *string `db:"customer_phone" json:"customerPhone,omitempty"`
	BusinessName    *string `db:"business_name" json:"businessName,omitempty"`
	BusinessPhone   *string `db:"business_phone" json:"businessPhone,omitempty"`
	BusinessAddress *string `db:"business_address" json:"businessAddress,omitempty"`
	BusinessUserID  *string `db:"business_user_id" json:"-"`
}

type RequestFilter struct {
	CustomerID string
	BusinessID string
}

type VehicleInput struct {
	Brand   string `json:"brand" validate:"required"`
	Model   string `json:"model" validate:"required"`
	Year    int    `json:"year"`
	Mileage *int   `json:"mileage"`
}

type CreateRequestRequest struct {
	ShopID           string        `json:"shopId" validate:"required"`
	Vehicle          *VehicleInput `json:"vehicle" validate:"required"`
	IssueDescription string        `json:"issueDescription" validate:"required"`
	SelectedIssues   []string      `json:"selectedIssues" validate:"required,min=1,dive,required"`
	Urgency          string        `json:"urgency" validate:"omitempty,oneof=low medium high"`
}

// UpdateStatusRequest drives every business-side transition. BusinessNotes is
// accepted as an alias of Note for the completion endpoint.
type UpdateStatusRequest struct {
	Status                  constant.RequestStatus `json:"status"`
	Note                    *string                `json:"note"`
	BusinessNotes           *string                `json:"businessNotes"`
	Price                   *float64               `json:"price" validate:"omitempty,gte=0"`
	EstimatedCompletionDate *time.Time             `json:"estimatedCompletionDate"`
}

type RateRequest struct {
	Rating float64 `json:"rating" validate:"required,min=1,max=5"`
	Review *string `json:"review"`
}

type PayRequest struct {
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

// RequestMessageEntity represents the request_messages table entity
type RequestMessageEntity struct {
	ID          string              `db:"id" json:"id"`
	RequestID   string              `db:"request_id" json:"requestId"`
	Content     string              `db:"content" json:"content"`
	Sender      constant.SenderRole `db:"sender" json:"sender"`
	Attachments pq.StringArray      `db:"attachments" json:"attachments"`
	CreatedAt   time.Time           `db:"created_at" json:"createdAt"`
}

type AddMessageRequest struct {
	Content     string   `json:"content" validate:"required"`
	Attachments []string `json:"attachments"`
}

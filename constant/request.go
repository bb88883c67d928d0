package constant

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusApproved   RequestStatus = "approved"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// IsTarget reports whether a business may move a request into s.
func (s RequestStatus) IsTarget() bool {
	switch s {
	case RequestStatusApproved, RequestStatusInProgress, RequestStatusCompleted,
		RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type SenderRole string

const (
	SenderCustomer SenderRole = "customer"
	SenderBusiness SenderRole = "business"
)

type NotificationType string

const (
	NotificationRequestUpdate NotificationType = "request_update"
	NotificationPayment       NotificationType = "payment"
	NotificationMessage       NotificationType = "message"
	NotificationSystem        NotificationType = "system"
)

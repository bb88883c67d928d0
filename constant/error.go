package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrEmailExists
	ErrInvalidCredentials
	ErrAccountPending
	ErrUserNotFound
	ErrBusinessNotFound
	ErrRequestNotFound
	ErrNotificationNotFound
	ErrRequestNotAssigned
	ErrRequestNotCompleted
	ErrInvalidStatus
	ErrMissingRefreshToken
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "Internal server error",
	ErrNotFound:             "Data not found",
	ErrInvalidRequest:       "Invalid request",
	ErrUnauthorize:          "Unauthorized",
	ErrForbidden:            "You are not authorized to perform this action",
	ErrEmailExists:          "Email already exists",
	ErrInvalidCredentials:   "Invalid credentials",
	ErrAccountPending:       "Your business account is pending approval. Please wait for admin confirmation.",
	ErrUserNotFound:         "User not found",
	ErrBusinessNotFound:     "Business not found",
	ErrRequestNotFound:      "Request not found",
	ErrNotificationNotFound: "Notification not found",
	ErrRequestNotAssigned:   "This request is not assigned to any business",
	ErrRequestNotCompleted:  "Only completed requests can be rated",
	ErrInvalidStatus:        "Invalid request status",
	ErrMissingRefreshToken:  "No refresh token provided",
	ErrTooManyRequests:      "Too many requests, please try again later.",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrEmailExists:          http.StatusConflict,
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrAccountPending:       http.StatusForbidden,
	ErrUserNotFound:         http.StatusNotFound,
	ErrBusinessNotFound:     http.StatusNotFound,
	ErrRequestNotFound:      http.StatusNotFound,
	ErrNotificationNotFound: http.StatusNotFound,
	ErrRequestNotAssigned:   http.StatusBadRequest,
	ErrRequestNotCompleted:  http.StatusBadRequest,
	ErrInvalidStatus:        http.StatusBadRequest,
	ErrMissingRefreshToken:  http.StatusBadRequest,
	ErrTooManyRequests:      http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrForbidden:            "0005",
	ErrEmailExists:          "0006",
	ErrInvalidCredentials:   "0007",
	ErrAccountPending:       "0008",
	ErrUserNotFound:         "0009",
	ErrBusinessNotFound:     "0010",
	ErrRequestNotFound:      "0011",
	ErrNotificationNotFound: "0012",
	ErrRequestNotAssigned:   "0013",
	ErrRequestNotCompleted:  "0014",
	ErrInvalidStatus:        "0015",
	ErrMissingRefreshToken:  "0016",
	ErrTooManyRequests:      "0017",
}

package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	"github.com/muhammadheryan/tamirse/utils/errors"
	validatorx "github.com/muhammadheryan/tamirse/utils/validator"
)

// decodeOptionalBody accepts an empty body as the zero value
func decodeOptionalBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// CreateRequest handler
// @Summary Create service request
// @Tags Request
// @Accept json
// @Produce json
// @Param request body model.CreateRequestRequest true "Service request"
// @Success 201 {object} model.ServiceRequestEntity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/requests [post]
func (s *RestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRequestRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Create(r.Context(), authUser(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListRequests handler
// @Summary List service requests of the caller
// @Tags Request
// @Produce json
// @Success 200 {array} model.ServiceRequestDetail
// @Security BearerAuth
// @Router /api/requests [get]
func (s *RestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	res, err := s.RequestApp.List(r.Context(), authUser(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetRequest handler
// @Summary Get service request
// @Tags Request
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} model.ServiceRequestDetail
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/requests/{id} [get]
func (s *RestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	res, err := s.RequestApp.Get(r.Context(), authUser(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateRequestStatus handler
// @Summary Change request status
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body model.UpdateStatusRequest true "Status change"
// @Success 200 {object} model.ServiceRequestEntity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/requests/{id}/status [patch]
func (s *RestHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.UpdateStatus(r.Context(), authUser(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveRequest handler
// @Summary Approve request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body model.UpdateStatusRequest false "Optional price, note and estimate"
// @Success 200 {object} model.ServiceRequestEntity
// @Security BearerAuth
// @Router /api/requests/{id}/approve [patch]
func (s *RestHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Approve(r.Context(), authUser(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RejectRequest handler
// @Summary Reject request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body model.UpdateStatusRequest false "Optional note"
// @Success 200 {object} model.ServiceRequestEntity
// @Security BearerAuth
// @Router /api/requests/{id}/reject [patch]
func (s *RestHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Reject(r.Context(), authUser(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CompleteRequest handler
// @Summary Complete request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body model.UpdateStatusRequest false "Optional final price and notes"
// @Success 200 {object} model.ServiceRequestEntity
// @Security BearerAuth
// @Router /api/requests/{id}/complete [patch]
func (s *RestHandler) CompleteRequest(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Complete(r.Context(), authUser(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RateRequest handler
// @Summary Rate a completed request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body model.RateRequest true "Rating"
// @Success 200 {object} model.ServiceRequestEntity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/requests/{id}/rate [post]
func (s *RestHandler) RateRequest(w http.ResponseWriter, r *http.Request) {
	var req model.RateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Rate(r.Context(), authUser(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PayRequest handler
// @Summary Pay for a request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body model.PayRequest true "Payment"
// @Success 200 {object} model.ServiceRequestDetail
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/requests/{id}/pay [post]
func (s *RestHandler) PayRequest(w http.ResponseWriter, r *http.Request) {
	var req model.PayRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Pay(r.Context(), authUser(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddMessage handler
// @Summary Add message to request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body model.AddMessageRequest true "Message"
// @Success 201 {object} model.RequestMessageEntity
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/requests/{id}/messages [post]
func (s *RestHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	var req model.AddMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.AddMessage(r.Context(), authUser(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListMessages handler
// @Summary List request messages
// @Tags Request
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {array} model.RequestMessageEntity
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/requests/{id}/messages [get]
func (s *RestHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	res, err := s.RequestApp.ListMessages(r.Context(), authUser(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

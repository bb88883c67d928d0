package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListBusinesses handler
// @Summary List online businesses
// @Tags Business
// @Produce json
// @Success 200 {array} model.BusinessResponse
// @Security BearerAuth
// @Router /api/businesses [get]
func (s *RestHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	res, err := s.BusinessApp.ListOnline(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetBusiness handler
// @Summary Get business
// @Tags Business
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} model.BusinessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/businesses/{id} [get]
func (s *RestHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	res, err := s.BusinessApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListReviews handler
// @Summary List business reviews
// @Tags Business
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {array} model.ReviewResponse
// @Security BearerAuth
// @Router /api/businesses/{id}/reviews [get]
func (s *RestHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	res, err := s.BusinessApp.ListReviews(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetBusinessStats handler
// @Summary Business dashboard statistics
// @Tags Business
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} model.BusinessStatsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/businesses/{id}/stats [get]
func (s *RestHandler) GetBusinessStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.BusinessApp.GetStats(r.Context(), authUser(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

package transport

import (
	"net/http"

	"github.com/muhammadheryan/tamirse/model"
)

// GetProfile handler
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} model.UserProfile
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.GetProfile(r.Context(), authUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.UserProfile
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/profile [patch]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), authUser(r).ID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateBusinessProfile handler
// @Summary Update business profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body model.UpdateBusinessProfileRequest true "Business fields"
// @Success 200 {object} model.BusinessEntity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/profile/business [patch]
func (s *RestHandler) UpdateBusinessProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBusinessProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateBusinessProfile(r.Context(), authUser(r).ID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	utilsContext "github.com/muhammadheryan/tamirse/utils/context"
	"github.com/muhammadheryan/tamirse/utils/errors"
	validatorx "github.com/muhammadheryan/tamirse/utils/validator"
)

// decodeBody decodes a JSON body and validates it
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

func authUser(r *http.Request) *model.AuthUser {
	u, _ := utilsContext.GetAuthUser(r.Context())
	return u
}

// Signup handler
// @Summary Register customer
// @Description Register a new customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 201 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.LoginResponse{Message: "User created successfully", User: res})
}

// SignupBusiness handler
// @Summary Register business
// @Description Register a business account together with its shop; the account starts inactive
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.BusinessSignupRequest true "Business Signup Request"
// @Success 201 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/signup/business [post]
func (s *RestHandler) SignupBusiness(w http.ResponseWriter, r *http.Request) {
	var req model.BusinessSignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.SignupBusiness(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.LoginResponse{Message: "Business account created, pending approval", User: res})
}

// Login handler
// @Summary Login user
// @Description Login with email and password; tokens are set as httpOnly cookies
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setAuthCookies(w, res.Tokens.AccessToken, res.Tokens.RefreshToken)
	writeSuccess(w, model.LoginResponse{Message: "Login successful", User: res.User})
}

// Refresh handler
// @Summary Refresh tokens
// @Description Rotate the access and refresh cookies using the refresh cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/refresh [post]
func (s *RestHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.Refresh(r.Context(), refreshCookie(r))
	if err != nil {
		writeError(w, err)
		return
	}

	s.setAuthCookies(w, res.Tokens.AccessToken, res.Tokens.RefreshToken)
	writeSuccess(w, model.LoginResponse{Message: "Token refreshed successfully", User: res.User})
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.UserApp.Logout(r.Context(), refreshCookie(r)); err != nil {
		writeError(w, err)
		return
	}

	s.clearAuthCookies(w)
	writeSuccess(w, model.MessageResponse{Message: "Logged out successfully"})
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} model.UserProfile
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	s.GetProfile(w, r)
}

func refreshCookie(r *http.Request) string {
	c, err := r.Cookie(constant.RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/muhammadheryan/tamirse/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// writeError renders a CustomError; anything else is reported as an opaque 500
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.Error(err))
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{Code: ce.ErrorCode(), Message: ce.Error()})
}

func (s *RestHandler) setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, s.cookie(constant.AccessTokenCookie, accessToken, s.config.Auth.AccessTokenExp))
	http.SetCookie(w, s.cookie(constant.RefreshTokenCookie, refreshToken, s.config.Auth.RefreshTokenExp))
}

func (s *RestHandler) clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(constant.AccessTokenCookie, "", -1))
	http.SetCookie(w, s.cookie(constant.RefreshTokenCookie, "", -1))
}

func (s *RestHandler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.Auth.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if s.config.Auth.SecureCookies {
		c.SameSite = http.SameSiteNoneMode
	}
	if ttl < 0 {
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
	} else {
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}

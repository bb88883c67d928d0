package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/tamirse/cmd/config"
	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	businessrepo "github.com/muhammadheryan/tamirse/repository/business"
	redisrepo "github.com/muhammadheryan/tamirse/repository/redis"
	txrepo "github.com/muhammadheryan/tamirse/repository/tx"
	userrepo "github.com/muhammadheryan/tamirse/repository/user"
	"github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/muhammadheryan/tamirse/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.UserProfile, error)
	SignupBusiness(ctx context.Context, req *model.BusinessSignupRequest) (*model.UserProfile, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*model.LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.AuthUser, error)
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.UserProfile, error)
	UpdateBusinessProfile(ctx context.Context, userID string, req *model.UpdateBusinessProfileRequest) (*model.BusinessEntity, error)
}

type UserAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	userRepo     userrepo.UserRepository
	businessRepo businessrepo.BusinessRepository
	redisRepo    redisrepo.RedisRepository
}

func NewUserApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, businessRepo businessrepo.BusinessRepository, redisRepo redisrepo.RedisRepository) UserApp {
	return &UserAppImpl{
		config:       config,
		txRepo:       txRepo,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		redisRepo:    redisRepo,
	}
}

func (s *UserAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.UserProfile, error) {
	if err := s.ensureEmailFree(ctx, "Signup", req.Email); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		logger.Error("[Signup] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Type:         constant.UserTypeCustomer,
		IsActive:     true,
		Phone:        req.Phone,
	})
	if err != nil {
		if userrepo.IsUniqueViolation(err) {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[Signup] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserProfile{UserEntity: *user, Business: []model.BusinessEntity{}}, nil
}

// SignupBusiness creates an inactive business user and its shop in one transaction
func (s *UserAppImpl) SignupBusiness(ctx context.Context, req *model.BusinessSignupRequest) (*model.UserProfile, error) {
	if err := s.ensureEmailFree(ctx, "SignupBusiness", req.Email); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		logger.Error("[SignupBusiness] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SignupBusiness] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Type:         constant.UserTypeBusiness,
		IsActive:     false,
		Phone:        req.Phone,
	}
	if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
		if userrepo.IsUniqueViolation(err) {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[SignupBusiness] err userRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	details := req.BusinessDetails
	business := &model.BusinessEntity{
		UserID:          user.ID,
		BusinessName:    details.BusinessName,
		BusinessAddress: details.BusinessAddress,
		BusinessPhone:   details.BusinessPhone,
		Services:        details.Services,
		WorkingHours:    details.WorkingHours,
		IsOnline:        true,
	}
	if details.Description != "" {
		desc := details.Description
		business.Description = &desc
	}
	if err := s.businessRepo.CreateTx(ctx, tx, business); err != nil {
		logger.Error("[SignupBusiness] err businessRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SignupBusiness] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.UserProfile{UserEntity: *user, Business: []model.BusinessEntity{*business}}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	// password first, so a pending account is only revealed to its owner
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if user.Type == constant.UserTypeBusiness && !user.IsActive {
		return nil, errors.SetCustomError(constant.ErrAccountPending)
	}

	return s.issueTokens(ctx, "Login", user)
}

// Refresh rotates the token pair when the presented refresh token is the stored one
func (s *UserAppImpl) Refresh(ctx context.Context, refreshToken string) (*model.LoginResult, error) {
	if refreshToken == "" {
		return nil, errors.SetCustomError(constant.ErrMissingRefreshToken)
	}

	claims, err := parseToken(refreshToken, s.config.Auth.RefreshTokenSecret)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	stored, err := s.redisRepo.GetRefreshToken(ctx, claims.Subject)
	if err != nil {
		logger.Error("[Refresh] err redisRepo.GetRefreshToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stored == "" || stored != refreshToken {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: claims.Subject})
	if err != nil {
		logger.Error("[Refresh] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return s.issueTokens(ctx, "Refresh", user)
}

// Logout drops the stored refresh token; an unparsable token still logs the caller out
func (s *UserAppImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return errors.SetCustomError(constant.ErrMissingRefreshToken)
	}

	claims, err := parseToken(refreshToken, s.config.Auth.RefreshTokenSecret)
	if err != nil {
		logger.Warn("[Logout] invalid refresh token", zap.String("error", err.Error()))
		return nil
	}

	if err := s.redisRepo.DeleteRefreshToken(ctx, claims.Subject); err != nil {
		logger.Error("[Logout] err redisRepo.DeleteRefreshToken", zap.String("error", err.Error()))
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.AuthUser, error) {
	claims, err := parseToken(tokenString, s.config.Auth.AccessTokenSecret)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: claims.Subject})
	if err != nil {
		logger.Error("[ValidateToken] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	return &model.AuthUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Type:  user.Type,
	}, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	return s.withBusinesses(ctx, "GetProfile", user)
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.ensureEmailFree(ctx, "UpdateProfile", *req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if userrepo.IsUniqueViolation(err) {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.withBusinesses(ctx, "UpdateProfile", user)
}

func (s *UserAppImpl) UpdateBusinessProfile(ctx context.Context, userID string, req *model.UpdateBusinessProfileRequest) (*model.BusinessEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateBusinessProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	if user.Type != constant.UserTypeBusiness {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	business, err := s.businessRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("[UpdateBusinessProfile] err businessRepo.GetByUserID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if business == nil {
		return nil, errors.SetCustomError(constant.ErrBusinessNotFound)
	}

	required := []struct {
		in  *string
		dst *string
	}{
		{req.BusinessName, &business.BusinessName},
		{req.BusinessAddress, &business.BusinessAddress},
		{req.BusinessPhone, &business.BusinessPhone},
		{req.Services, &business.Services},
		{req.WorkingHours, &business.WorkingHours},
	}
	for _, f := range required {
		if f.in == nil {
			continue
		}
		if strings.TrimSpace(*f.in) == "" {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		*f.dst = *f.in
	}
	if req.Description != nil {
		business.Description = req.Description
	}
	if req.EstimatedDeliveryTime != nil {
		business.EstimatedDeliveryTime = req.EstimatedDeliveryTime
	}

	if err := s.businessRepo.UpdateProfile(ctx, business); err != nil {
		logger.Error("[UpdateBusinessProfile] err businessRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return business, nil
}

func (s *UserAppImpl) ensureEmailFree(ctx context.Context, op, email string) error {
	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err userRepo.Get email", op), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomError(constant.ErrEmailExists)
	}
	return nil
}

func (s *UserAppImpl) hashPassword(password string) (string, error) {
	cost := s.config.Auth.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *UserAppImpl) withBusinesses(ctx context.Context, op string, user *model.UserEntity) (*model.UserProfile, error) {
	profile := &model.UserProfile{UserEntity: *user, Business: []model.BusinessEntity{}}
	if user.Type != constant.UserTypeBusiness {
		return profile, nil
	}
	businesses, err := s.businessRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err businessRepo.ListByUserID", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	profile.Business = businesses
	return profile, nil
}

func (s *UserAppImpl) issueTokens(ctx context.Context, op string, user *model.UserEntity) (*model.LoginResult, error) {
	access, err := generateJWT(user.ID, s.config.Auth.AccessTokenSecret, s.config.Auth.AccessTokenExp)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err generateJWT access", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	refresh, err := generateJWT(user.ID, s.config.Auth.RefreshTokenSecret, s.config.Auth.RefreshTokenExp)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err generateJWT refresh", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetRefreshToken(ctx, user.ID, refresh, s.config.Auth.RefreshTokenExp); err != nil {
		logger.Error(fmt.Sprintf("[%s] err redisRepo.SetRefreshToken", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	profile, err := s.withBusinesses(ctx, op, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{
		User:   profile,
		Tokens: model.TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}

// generateJWT signs an HS256 token whose subject is the user id
func generateJWT(userID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func parseToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	return claims, nil
}

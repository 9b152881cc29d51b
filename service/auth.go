package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"Immob/config"
	"Immob/dao"
	"Immob/dao/cache"
	"Immob/models"
	"Immob/pkg/encrypt"
	"Immob/pkg/jwt"
	"Immob/pkg/log"
	"Immob/pkg/response"
	"Immob/pkg/secure"
	"Immob/pkg/snowflake"
	"Immob/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*types.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	PasswordReset(ctx context.Context, email string) error
	PasswordResetConfirm(ctx context.Context, token, newPassword string) error
}

type AuthService struct {
	Config      *config.Config
	UsersRepo   *dao.Users
	ResetRepo   *dao.PasswordResetTokens
	Blacklist   *cache.TokenBlacklist
	MailService IMailService
}

// Register creates an account after password-policy and uniqueness checks.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	username := secure.Sanitize(req.Username)
	if err := secure.ValidatePassword(req.Password, username, req.Email, req.FirstName, req.LastName); err != nil {
		return nil, response.NewError(http.StatusBadRequest, err.Error())
	}
	if s.UsersRepo.IsEmailExist(ctx, req.Email) {
		return nil, response.NewError(http.StatusConflict, "an account with this email already exists")
	}

	user := &models.User{
		ID:            snowflake.GenUserID(),
		Email:         strings.ToLower(req.Email),
		Username:      username,
		Password:      encrypt.HashPassword(req.Password),
		FirstName:     secure.Sanitize(req.FirstName),
		LastName:      secure.Sanitize(req.LastName),
		PhoneNumber:   req.PhoneNumber,
		IsAgent:       req.IsAgent,
		AgencyName:    secure.Sanitize(req.AgencyName),
		LicenseNumber: secure.Sanitize(req.LicenseNumber),
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusConflict, "an account with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "invalid email or password")
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, password) {
		log.L.Warn("failed login attempt", zap.String("email", email))
		return nil, response.NewError(http.StatusUnauthorized, "invalid email or password")
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	if err := s.UsersRepo.TouchLastLogin(ctx, user.ID); err != nil {
		log.L.Warn("touch last_login failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	return &types.LoginResponse{TokenPair: *pair, User: types.NewUserInfo(user)}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeRefresh, refreshToken)
	if err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "invalid refresh token")
	}
	if s.Blacklist.IsRevoked(ctx, refreshToken) {
		return nil, response.NewError(http.StatusUnauthorized, "invalid refresh token")
	}
	user, err := s.UsersRepo.FindById(ctx, claims.UserID)
	if err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "account no longer exists")
	}
	return s.issueTokens(user)
}

// Logout revokes the presented refresh token. An already expired or
// malformed token is reported as a bad request, matching the login flow's
// refusal to distinguish failure causes any further.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeRefresh, refreshToken)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid refresh token")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.Blacklist.Revoke(ctx, refreshToken, ttl); err != nil {
		return err
	}
	return nil
}

// PasswordReset always succeeds from the caller's point of view so the
// endpoint cannot be used to probe which emails are registered.
func (s *AuthService) PasswordReset(ctx context.Context, email string) error {
	user, err := s.UsersRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.ResetRepo.DeletePending(ctx, user.ID); err != nil {
		return err
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	reset := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.ResetRepo.Create(ctx, reset); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.Config.App.FrontendURL, token)
	body := fmt.Sprintf("Hello %s,\n\nUse the link below to reset your password. It expires in one hour.\n\n%s\n\nThe Immob team",
		user.Username, resetURL)
	s.MailService.SendAsync("Reset your Immob password", body, user.Email)

	log.L.Warn("password reset requested", zap.String("email", email))
	return nil
}

func (s *AuthService) PasswordResetConfirm(ctx context.Context, token, newPassword string) error {
	reset, err := s.ResetRepo.FindByToken(ctx, token)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "reset token is invalid or expired")
	}
	if !reset.IsValid(time.Now()) {
		return response.NewError(http.StatusBadRequest, "reset token is invalid or expired")
	}

	user, err := s.UsersRepo.FindById(ctx, reset.UserID)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "reset token is invalid or expired")
	}
	if err := secure.ValidatePassword(newPassword, user.Username, user.Email, user.FirstName, user.LastName); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if _, err := s.UsersRepo.UpdateById(ctx, user.ID, map[string]any{
		"password": encrypt.HashPassword(newPassword),
	}); err != nil {
		return err
	}
	if err := s.ResetRepo.MarkUsed(ctx, reset.ID); err != nil {
		return err
	}

	log.L.Warn("password reset completed", zap.Int64("user_id", user.ID))
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*types.TokenPair, error) {
	secret := []byte(s.Config.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, user.ID, user.Email, user.IsAdmin, jwt.TypeAccess,
		time.Duration(s.Config.Jwt.AccessExpire)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, user.Email, user.IsAdmin, jwt.TypeRefresh,
		time.Duration(s.Config.Jwt.RefreshExpire)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

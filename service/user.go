package service

import (
	"context"
	"errors"
	"net/http"

	"Immob/dao"
	"Immob/pkg/response"
	"Immob/pkg/secure"
	"Immob/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID int64) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error)
}

type UserService struct {
	UsersRepo    *dao.Users
	ProfilesRepo *dao.UserProfiles
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*types.ProfileResponse, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "user not found")
		}
		return nil, err
	}
	profile, err := s.ProfilesRepo.GetOrInit(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.ProfileResponse{User: types.NewUserInfo(user), Profile: profile}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	if _, err := s.ProfilesRepo.GetOrInit(ctx, userID); err != nil {
		return nil, err
	}

	userData := map[string]any{}
	setSanitized(userData, "username", req.Username)
	setSanitized(userData, "first_name", req.FirstName)
	setSanitized(userData, "last_name", req.LastName)
	setSanitized(userData, "phone_number", req.PhoneNumber)
	setSanitized(userData, "agency_name", req.AgencyName)
	setSanitized(userData, "license_number", req.LicenseNumber)
	if len(userData) > 0 {
		if _, err := s.UsersRepo.UpdateById(ctx, userID, userData); err != nil {
			return nil, err
		}
	}

	profileData := map[string]any{}
	setSanitized(profileData, "bio", req.Bio)
	setSanitized(profileData, "website", req.Website)
	setSanitized(profileData, "facebook", req.Facebook)
	setSanitized(profileData, "twitter", req.Twitter)
	setSanitized(profileData, "instagram", req.Instagram)
	setSanitized(profileData, "linkedin", req.Linkedin)
	setSanitized(profileData, "preferred_language", req.PreferredLanguage)
	if req.NotificationEmail != nil {
		profileData["notification_email"] = *req.NotificationEmail
	}
	if req.NotificationSms != nil {
		profileData["notification_sms"] = *req.NotificationSms
	}
	if len(profileData) > 0 {
		if err := s.ProfilesRepo.UpdateByUserID(ctx, userID, profileData); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

func setSanitized(data map[string]any, column string, value *string) {
	if value != nil {
		data[column] = secure.Sanitize(*value)
	}
}

package types

import (
	"time"

	"Immob/models"
)

type UserInfo struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	PhoneNumber    string     `json:"phone_number"`
	ProfilePicture string     `json:"profile_picture"`
	IsVerified     bool       `json:"is_verified"`
	IsAgent        bool       `json:"is_agent"`
	AgencyName     string     `json:"agency_name"`
	LicenseNumber  string     `json:"license_number"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedAt      time.Time  `json:"date_joined"`
}

func NewUserInfo(u *models.User) *UserInfo {
	return &UserInfo{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PhoneNumber:    u.PhoneNumber,
		ProfilePicture: u.ProfilePicture,
		IsVerified:     u.IsVerified,
		IsAgent:        u.IsAgent,
		AgencyName:     u.AgencyName,
		LicenseNumber:  u.LicenseNumber,
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
	}
}

type ProfileResponse struct {
	User    *UserInfo           `json:"user"`
	Profile *models.UserProfile `json:"profile"`
}

type UpdateProfileRequest struct {
	Username          *string `json:"username" binding:"omitempty,min=3,max=150"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	PhoneNumber       *string `json:"phone_number" binding:"omitempty,e164"`
	AgencyName        *string `json:"agency_name"`
	LicenseNumber     *string `json:"license_number"`
	Bio               *string `json:"bio"`
	Website           *string `json:"website"`
	Facebook          *string `json:"facebook"`
	Twitter           *string `json:"twitter"`
	Instagram         *string `json:"instagram"`
	Linkedin          *string `json:"linkedin"`
	PreferredLanguage *string `json:"preferred_language" binding:"omitempty,oneof=fr en"`
	NotificationEmail *bool   `json:"notification_email"`
	NotificationSms   *bool   `json:"notification_sms"`
}

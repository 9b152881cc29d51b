package models

import "time"

// User account record, table users.
// Emails are the login identifier and unique.
type User struct {
	ID                int64      `gorm:"column:id;primaryKey" json:"id"`
	Email             string     `gorm:"column:email;not null;uniqueIndex:uk_email;size:191" json:"email"`
	Username          string     `gorm:"column:username;not null;size:150" json:"username"`
	Password          string     `gorm:"column:password;not null;size:255" json:"-"`
	FirstName         string     `gorm:"column:first_name;size:150" json:"first_name"`
	LastName          string     `gorm:"column:last_name;size:150" json:"last_name"`
	PhoneNumber       string     `gorm:"column:phone_number;size:17" json:"phone_number"`
	ProfilePicture    string     `gorm:"column:profile_picture;size:512" json:"profile_picture"`
	IsVerified        bool       `gorm:"column:is_verified;not null;default:0" json:"is_verified"`
	VerificationToken string     `gorm:"column:verification_token;size:100" json:"-"`
	IsAdmin           bool       `gorm:"column:is_admin;not null;default:0" json:"is_admin"`
	IsAgent           bool       `gorm:"column:is_agent;not null;default:0" json:"is_agent"`
	AgencyName        string     `gorm:"column:agency_name;size:255" json:"agency_name"`
	LicenseNumber     string     `gorm:"column:license_number;size:100" json:"license_number"`
	LastLogin         *time.Time `gorm:"column:last_login" json:"last_login"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserProfile 1:1 extension of User, table user_profiles.
type UserProfile struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID            int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user" json:"user_id"`
	Bio               string    `gorm:"column:bio;type:text" json:"bio"`
	Website           string    `gorm:"column:website;size:255" json:"website"`
	Facebook          string    `gorm:"column:facebook;size:255" json:"facebook"`
	Twitter           string    `gorm:"column:twitter;size:255" json:"twitter"`
	Instagram         string    `gorm:"column:instagram;size:255" json:"instagram"`
	Linkedin          string    `gorm:"column:linkedin;size:255" json:"linkedin"`
	PreferredLanguage string    `gorm:"column:preferred_language;size:10;default:fr" json:"preferred_language"`
	NotificationEmail bool      `gorm:"column:notification_email;not null;default:1" json:"notification_email"`
	NotificationSms   bool      `gorm:"column:notification_sms;not null;default:0" json:"notification_sms"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// PasswordResetToken single-use reset token, table password_reset_tokens.
type PasswordResetToken struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Token     string    `gorm:"column:token;not null;uniqueIndex:uk_token;size:100" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	IsUsed    bool      `gorm:"column:is_used;not null;default:0" json:"is_used"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return !t.IsUsed && now.Before(t.ExpiresAt)
}

package dao

import (
	"context"
	"time"

	"Immob/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.User](db)}
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist reports whether the email is already registered.
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

func (u *Users) TouchLastLogin(ctx context.Context, id int64) error {
	now := time.Now()
	_, err := u.Repo.UpdateById(ctx, id, map[string]any{"last_login": &now})
	return err
}

type UserProfiles struct {
	Repo[models.UserProfile]
}

func NewUserProfiles(db *gorm.DB) *UserProfiles {
	return &UserProfiles{Repo: NewRepo[models.UserProfile](db)}
}

// GetOrInit returns the user's profile, creating an empty row on first access.
func (p *UserProfiles) GetOrInit(ctx context.Context, userID int64) (*models.UserProfile, error) {
	profile := &models.UserProfile{UserID: userID}
	err := p.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(profile).Error
	return profile, err
}

func (p *UserProfiles) UpdateByUserID(ctx context.Context, userID int64, data map[string]any) error {
	return p.Db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(data).Error
}

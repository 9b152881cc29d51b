package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
)

type PasswordResetTokens struct {
	Repo[models.PasswordResetToken]
}

func NewPasswordResetTokens(db *gorm.DB) *PasswordResetTokens {
	return &PasswordResetTokens{Repo: NewRepo[models.PasswordResetToken](db)}
}

func (d *PasswordResetTokens) FindByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	return d.Repo.FindByWhere(ctx, "token = ?", token)
}

// DeletePending removes a user's unused tokens before issuing a new one.
func (d *PasswordResetTokens) DeletePending(ctx context.Context, userID int64) error {
	return d.Db.WithContext(ctx).
		Where("user_id = ? AND is_used = ?", userID, false).
		Delete(&models.PasswordResetToken{}).Error
}

func (d *PasswordResetTokens) MarkUsed(ctx context.Context, id uint64) error {
	_, err := d.Repo.UpdateById(ctx, id, map[string]any{"is_used": true})
	return err
}

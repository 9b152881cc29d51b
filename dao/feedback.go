package dao

import (
	"context"
	"time"

	"Immob/models"

	"gorm.io/gorm"
)

type FeedbackDAO struct {
	Repo[models.ApplicationFeedback]
}

func NewFeedbackDAO(db *gorm.DB) *FeedbackDAO {
	return &FeedbackDAO{Repo: NewRepo[models.ApplicationFeedback](db)}
}

func (d *FeedbackDAO) ListByUser(ctx context.Context, userID int64) ([]*models.ApplicationFeedback, error) {
	var items []*models.ApplicationFeedback
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (d *FeedbackDAO) ListAll(ctx context.Context) ([]*models.ApplicationFeedback, error) {
	var items []*models.ApplicationFeedback
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (d *FeedbackDAO) Respond(ctx context.Context, id uint64, responseText string) error {
	now := time.Now()
	_, err := d.UpdateById(ctx, id, map[string]any{
		"response":     responseText,
		"is_resolved":  true,
		"responded_at": &now,
	})
	return err
}

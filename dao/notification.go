package dao

import (
	"context"
	"time"

	"Immob/models"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

// ListByUser returns the user's notifications newest-first. isRead and
// notifType are optional filters.
func (d *NotificationDAO) ListByUser(ctx context.Context, userID int64, isRead *bool, notifType string) ([]*models.Notification, error) {
	db := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if isRead != nil {
		db = db.Where("is_read = ?", *isRead)
	}
	if notifType != "" {
		db = db.Where("notification_type = ?", notifType)
	}
	var items []*models.Notification
	err := db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (d *NotificationDAO) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return d.QueryCount(ctx, "user_id = ? AND is_read = ?", userID, false)
}

func (d *NotificationDAO) LatestUnread(ctx context.Context, userID int64, limit int) ([]*models.Notification, error) {
	var items []*models.Notification
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// MarkRead marks one notification read; a no-op when already read.
func (d *NotificationDAO) MarkRead(ctx context.Context, id uint64) error {
	now := time.Now()
	return d.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{"is_read": true, "read_at": &now}).Error
}

// MarkAllRead is a single set-based update over the unread selector, not a
// per-row walk.
func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	now := time.Now()
	res := d.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": &now})
	return res.RowsAffected, res.Error
}

func (d *NotificationDAO) MarkReadByIds(ctx context.Context, userID int64, ids []uint64) (int64, error) {
	now := time.Now()
	res := d.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND id IN ?", userID, false, ids).
		Updates(map[string]any{"is_read": true, "read_at": &now})
	return res.RowsAffected, res.Error
}

func (d *NotificationDAO) FindOwned(ctx context.Context, id uint64, userID int64) (*models.Notification, error) {
	return d.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

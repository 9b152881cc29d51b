package models

import "time"

// Notification type values.
const (
	NotificationTypePropertyUpdate = "property_update"
	NotificationTypeNewMessage     = "new_message"
	NotificationTypeFavoriteUpdate = "favorite_update"
	NotificationTypeSystem         = "system"
	NotificationTypeReviewResponse = "review_response"
	NotificationTypePayment        = "payment"
	NotificationTypeBooking        = "booking"
)

// Notification per-user notification, table notifications.
// is_read only ever goes false -> true.
type Notification struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64      `gorm:"column:user_id;not null;index:idx_user_read,priority:1" json:"user_id"`
	Title     string     `gorm:"column:title;not null;size:255" json:"title"`
	Message   string     `gorm:"column:message;type:text" json:"message"`
	Type      string     `gorm:"column:notification_type;not null;size:50;default:system" json:"notification_type"`
	IsRead    bool       `gorm:"column:is_read;not null;default:0;index:idx_user_read,priority:2" json:"is_read"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at"`
	Link      string     `gorm:"column:link;size:512" json:"link"`
	CreatedAt time.Time  `gorm:"column:created_at;index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

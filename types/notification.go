package types

import "Immob/models"

type NotificationListQuery struct {
	IsRead *bool  `form:"is_read"`
	Type   string `form:"type" binding:"omitempty,oneof=property_update new_message favorite_update system review_response payment booking"`
}

type NotificationListResponse struct {
	Count         int64                  `json:"count"`
	UnreadCount   int64                  `json:"unread_count"`
	Notifications []*models.Notification `json:"notifications"`
}

type CreateNotificationRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=property_update new_message favorite_update system review_response payment booking"`
	Link    string `json:"link" binding:"omitempty,url"`
}

type MarkReadRequest struct {
	NotificationIDs []uint64 `json:"notification_ids"`
}

type MarkReadResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type UnreadCountResponse struct {
	Count               int64                  `json:"count"`
	UnreadNotifications []*models.Notification `json:"unread_notifications"`
}

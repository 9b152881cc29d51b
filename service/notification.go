package service

import (
	"context"
	"errors"
	"net/http"

	"Immob/dao"
	"Immob/models"
	"Immob/pkg/response"
	"Immob/pkg/secure"
	"Immob/types"

	"gorm.io/gorm"
)

const unreadPreviewLimit = 5

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	List(ctx context.Context, userID int64, q *types.NotificationListQuery) (*types.NotificationListResponse, error)
	Get(ctx context.Context, userID int64, id uint64) (*models.Notification, error)
	Create(ctx context.Context, userID int64, req *types.CreateNotificationRequest) (*models.Notification, error)
	Delete(ctx context.Context, userID int64, id uint64) error
	MarkRead(ctx context.Context, userID int64, ids []uint64) (*types.MarkReadResponse, error)
	MarkAllRead(ctx context.Context, userID int64) (*types.MarkReadResponse, error)
	UnreadCount(ctx context.Context, userID int64) (*types.UnreadCountResponse, error)
}

type NotificationService struct {
	NotificationRepo *dao.NotificationDAO
}

func (s *NotificationService) List(ctx context.Context, userID int64, q *types.NotificationListQuery) (*types.NotificationListResponse, error) {
	items, err := s.NotificationRepo.ListByUser(ctx, userID, q.IsRead, q.Type)
	if err != nil {
		return nil, err
	}
	unread, err := s.NotificationRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.NotificationListResponse{
		Count:         int64(len(items)),
		UnreadCount:   unread,
		Notifications: items,
	}, nil
}

// Get returns one notification and marks it read as a side effect of the
// retrieval. Reading is one-way: a read notification never goes back.
func (s *NotificationService) Get(ctx context.Context, userID int64, id uint64) (*models.Notification, error) {
	item, err := s.NotificationRepo.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "notification not found")
		}
		return nil, err
	}
	if !item.IsRead {
		if err := s.NotificationRepo.MarkRead(ctx, id); err != nil {
			return nil, err
		}
		item, err = s.NotificationRepo.FindOwned(ctx, id, userID)
		if err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Create always targets the caller; the API offers no way to write into
// another user's feed.
func (s *NotificationService) Create(ctx context.Context, userID int64, req *types.CreateNotificationRequest) (*models.Notification, error) {
	notifType := req.Type
	if notifType == "" {
		notifType = models.NotificationTypeSystem
	}
	item := &models.Notification{
		UserID:  userID,
		Title:   secure.Sanitize(req.Title),
		Message: secure.Sanitize(req.Message),
		Type:    notifType,
		Link:    req.Link,
	}
	if err := s.NotificationRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *NotificationService) Delete(ctx context.Context, userID int64, id uint64) error {
	if _, err := s.NotificationRepo.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "notification not found")
		}
		return err
	}
	_, err := s.NotificationRepo.DeleteById(ctx, id)
	return err
}

// MarkRead marks the given ids read, or only the single most recent unread
// notification when no ids were sent. The count reflects rows actually
// flipped, so re-sending the same ids reports zero.
func (s *NotificationService) MarkRead(ctx context.Context, userID int64, ids []uint64) (*types.MarkReadResponse, error) {
	if len(ids) == 0 {
		latest, err := s.NotificationRepo.LatestUnread(ctx, userID, 1)
		if err != nil {
			return nil, err
		}
		if len(latest) == 0 {
			return &types.MarkReadResponse{Message: "no unread notifications", Count: 0}, nil
		}
		ids = []uint64{latest[0].ID}
	}
	count, err := s.NotificationRepo.MarkReadByIds(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	return &types.MarkReadResponse{Message: "notifications marked as read", Count: count}, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (*types.MarkReadResponse, error) {
	count, err := s.NotificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.MarkReadResponse{Message: "all notifications marked as read", Count: count}, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (*types.UnreadCountResponse, error) {
	count, err := s.NotificationRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.NotificationRepo.LatestUnread(ctx, userID, unreadPreviewLimit)
	if err != nil {
		return nil, err
	}
	return &types.UnreadCountResponse{Count: count, UnreadNotifications: latest}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"Immob/dao"
	"Immob/models"
	"Immob/pkg/response"
	"Immob/pkg/secure"
	"Immob/types"

	"gorm.io/gorm"
)

var _ IFeedbackService = (*FeedbackService)(nil)

type IFeedbackService interface {
	// Create accepts feedback from authenticated and anonymous callers alike;
	// userID 0 means anonymous.
	Create(ctx context.Context, userID int64, req *types.CreateFeedbackRequest) (*models.ApplicationFeedback, error)
	List(ctx context.Context, userID int64, isAdmin bool) (*types.FeedbackListResponse, error)
	Respond(ctx context.Context, id uint64, responseText string) (*models.ApplicationFeedback, error)
}

type FeedbackService struct {
	FeedbackRepo     *dao.FeedbackDAO
	NotificationRepo *dao.NotificationDAO
	MailService      IMailService
}

func (s *FeedbackService) Create(ctx context.Context, userID int64, req *types.CreateFeedbackRequest) (*models.ApplicationFeedback, error) {
	feedbackType := req.FeedbackType
	if feedbackType == "" {
		feedbackType = models.FeedbackTypeGeneral
	}
	item := &models.ApplicationFeedback{
		FeedbackType: feedbackType,
		Rating:       req.Rating,
		Title:        secure.Sanitize(req.Title),
		Message:      secure.Sanitize(req.Message),
		Email:        req.Email,
	}
	if userID != 0 {
		item.UserID = &userID
	}
	if err := s.FeedbackRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FeedbackService) List(ctx context.Context, userID int64, isAdmin bool) (*types.FeedbackListResponse, error) {
	var (
		items []*models.ApplicationFeedback
		err   error
	)
	if isAdmin {
		items, err = s.FeedbackRepo.ListAll(ctx)
	} else {
		items, err = s.FeedbackRepo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return &types.FeedbackListResponse{Count: int64(len(items)), Results: items}, nil
}

// Respond records the admin answer, then notifies the submitter over every
// channel we have: mail when an address was left, an in-app notification when
// the feedback was not anonymous.
func (s *FeedbackService) Respond(ctx context.Context, id uint64, responseText string) (*models.ApplicationFeedback, error) {
	item, err := s.FeedbackRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "feedback not found")
		}
		return nil, err
	}

	responseText = secure.Sanitize(responseText)
	if err := s.FeedbackRepo.Respond(ctx, id, responseText); err != nil {
		return nil, err
	}

	if item.Email != "" {
		body := fmt.Sprintf("Hello,\n\nWe have responded to your feedback %q:\n\n%s\n\nThe Immob team",
			item.Title, responseText)
		s.MailService.SendAsync("Your feedback received a response", body, item.Email)
	}
	if item.UserID != nil {
		notif := &models.Notification{
			UserID:  *item.UserID,
			Title:   "Your feedback received a response",
			Message: responseText,
			Type:    models.NotificationTypeSystem,
		}
		if err := s.NotificationRepo.Create(ctx, notif); err != nil {
			return nil, err
		}
	}

	return s.FeedbackRepo.FindById(ctx, id)
}

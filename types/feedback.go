package types

import "Immob/models"

type CreateFeedbackRequest struct {
	FeedbackType string `json:"feedback_type" binding:"omitempty,oneof=general bug suggestion complaint praise"`
	Rating       *uint8 `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Title        string `json:"title" binding:"required,max=200"`
	Message      string `json:"message" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
}

type RespondFeedbackRequest struct {
	Response string `json:"response" binding:"required"`
}

type FeedbackListResponse struct {
	Count   int64                         `json:"count"`
	Results []*models.ApplicationFeedback `json:"results"`
}

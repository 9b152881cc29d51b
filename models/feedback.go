package models

import "time"

// Feedback type values.
const (
	FeedbackTypeGeneral    = "general"
	FeedbackTypeBug        = "bug"
	FeedbackTypeSuggestion = "suggestion"
	FeedbackTypeComplaint  = "complaint"
	FeedbackTypePraise     = "praise"
)

var FeedbackTypes = []string{
	FeedbackTypeGeneral, FeedbackTypeBug, FeedbackTypeSuggestion,
	FeedbackTypeComplaint, FeedbackTypePraise,
}

// ApplicationFeedback user-submitted feedback, table application_feedbacks.
// UserID is nullable: anonymous submissions are allowed.
type ApplicationFeedback struct {
	ID           uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       *int64     `gorm:"column:user_id;index" json:"user_id"`
	FeedbackType string     `gorm:"column:feedback_type;not null;size:20;default:general" json:"feedback_type"`
	Rating       *uint8     `gorm:"column:rating" json:"rating"`
	Title        string     `gorm:"column:title;not null;size:200" json:"title"`
	Message      string     `gorm:"column:message;type:text" json:"message"`
	Email        string     `gorm:"column:email;size:191" json:"email"`
	IsResolved   bool       `gorm:"column:is_resolved;not null;default:0" json:"is_resolved"`
	Response     string     `gorm:"column:response;type:text" json:"response"`
	RespondedAt  *time.Time `gorm:"column:responded_at" json:"responded_at"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (ApplicationFeedback) TableName() string { return "application_feedbacks" }

package types

import "Immob/models"

type ReviewListQuery struct {
	Property  string `form:"property" binding:"omitempty,uuid4"`
	User      int64  `form:"user"`
	MinRating uint8  `form:"min_rating" binding:"omitempty,gte=1,lte=5"`
	Page      int    `form:"page" binding:"omitempty,gte=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

type ReviewListResponse struct {
	Count    int64            `json:"count"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Results  []*models.Review `json:"results"`
}

type CreateReviewRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid4"`
	Rating     uint8  `json:"rating" binding:"required,gte=1,lte=5"`
	Title      string `json:"title" binding:"required,max=200"`
	Comment    string `json:"comment" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating  *uint8  `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Comment *string `json:"comment"`
}

// ToggleLikeResponse uses is_liked, unlike the favorite toggle's
// is_favorited shape; the asymmetry is historical and kept on purpose.
type ToggleLikeResponse struct {
	Message string `json:"message"`
	IsLiked bool   `json:"is_liked"`
}

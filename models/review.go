package models

import "time"

// Review of a property, table reviews.
// Unique key: user_id + property_id — one review per user per property.
// likes_count is denormalized and kept equal to the review_likes row count.
type Review struct {
	ID                 string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	UserID             int64     `gorm:"column:user_id;not null;uniqueIndex:uk_review_user_property,priority:1" json:"user_id"`
	PropertyID         string    `gorm:"column:property_id;not null;size:36;uniqueIndex:uk_review_user_property,priority:2;index:idx_property_rating,priority:1" json:"property_id"`
	Rating             uint8     `gorm:"column:rating;not null;index:idx_property_rating,priority:2" json:"rating"`
	Title              string    `gorm:"column:title;not null;size:200" json:"title"`
	Comment            string    `gorm:"column:comment;type:text" json:"comment"`
	IsVerifiedPurchase bool      `gorm:"column:is_verified_purchase;not null;default:0" json:"is_verified_purchase"`
	LikesCount         uint64    `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	IsApproved         bool      `gorm:"column:is_approved;not null;default:0" json:"is_approved"`
	IsEdited           bool      `gorm:"column:is_edited;not null;default:0" json:"is_edited"`
	CreatedAt          time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updated_at"`

	Property *Property     `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Images   []ReviewImage `gorm:"foreignKey:ReviewID" json:"images,omitempty"`
}

func (Review) TableName() string { return "reviews" }

// ReviewLike join row, table review_likes.
// Unique key: user_id + review_id.
type ReviewLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_review,priority:1" json:"user_id"`
	ReviewID  string    `gorm:"column:review_id;not null;size:36;uniqueIndex:uk_user_review,priority:2" json:"review_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ReviewLike) TableName() string { return "review_likes" }

type ReviewImage struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReviewID  string    `gorm:"column:review_id;not null;size:36;index" json:"review_id"`
	URL       string    `gorm:"column:url;not null;size:512" json:"url"`
	Caption   string    `gorm:"column:caption;size:255" json:"caption"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ReviewImage) TableName() string { return "review_images" }

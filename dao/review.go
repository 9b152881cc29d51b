package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
)

// ReviewFilter narrows the public review listing.
type ReviewFilter struct {
	PropertyID string
	UserID     int64
	MinRating  uint8
}

// ReviewStats aggregate for a property's reviews.
type ReviewStats struct {
	TotalReviews       int64           `json:"total_reviews"`
	AvgRating          float64         `json:"avg_rating"`
	RatingDistribution map[uint8]int64 `json:"rating_distribution"`
}

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

// List returns approved reviews only.
func (d *ReviewDAO) List(ctx context.Context, f *ReviewFilter, limit, offset int) ([]*models.Review, int64, error) {
	base := d.Db.WithContext(ctx).Model(&models.Review{}).Where("is_approved = ?", true)
	if f.PropertyID != "" {
		base = base.Where("property_id = ?", f.PropertyID)
	}
	if f.UserID != 0 {
		base = base.Where("user_id = ?", f.UserID)
	}
	if f.MinRating > 0 {
		base = base.Where("rating >= ?", f.MinRating)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*models.Review
	err := base.
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (d *ReviewDAO) ListByUser(ctx context.Context, userID int64) ([]*models.Review, error) {
	var items []*models.Review
	err := d.Db.WithContext(ctx).
		Preload("Property").Preload("Property.Location").Preload("Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// RecountLikes recomputes likes_count from the review_likes table.
func (d *ReviewDAO) RecountLikes(ctx context.Context, tx *gorm.DB, reviewID string) error {
	if tx == nil {
		tx = d.Db.WithContext(ctx)
	}
	return tx.Exec(
		"UPDATE reviews SET likes_count = ("+
			"SELECT COUNT(*) FROM review_likes WHERE review_likes.review_id = reviews.id"+
			") WHERE reviews.id = ?",
		reviewID,
	).Error
}

func (d *ReviewDAO) Stats(ctx context.Context, propertyID string) (*ReviewStats, error) {
	var agg struct {
		TotalReviews int64
		AvgRating    float64
	}
	err := d.Db.WithContext(ctx).Model(&models.Review{}).
		Select("COUNT(*) AS total_reviews, COALESCE(AVG(rating), 0) AS avg_rating").
		Where("property_id = ? AND is_approved = ?", propertyID, true).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	var dist []struct {
		Rating uint8
		Count  int64
	}
	err = d.Db.WithContext(ctx).Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("property_id = ? AND is_approved = ?", propertyID, true).
		Group("rating").
		Order("rating").
		Scan(&dist).Error
	if err != nil {
		return nil, err
	}

	stats := &ReviewStats{
		TotalReviews:       agg.TotalReviews,
		AvgRating:          agg.AvgRating,
		RatingDistribution: make(map[uint8]int64, len(dist)),
	}
	for _, row := range dist {
		stats.RatingDistribution[row.Rating] = row.Count
	}
	return stats, nil
}

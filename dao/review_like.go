package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewLikeDAO struct {
	Repo[models.ReviewLike]
	reviewDAO *ReviewDAO
}

func NewReviewLikeDAO(db *gorm.DB) *ReviewLikeDAO {
	return &ReviewLikeDAO{
		Repo:      NewRepo[models.ReviewLike](db),
		reviewDAO: NewReviewDAO(db),
	}
}

// Toggle flips the (user, review) like membership; same conditional-insert
// shape as FavoriteDAO.Toggle, with likes_count recomputed in-transaction.
func (d *ReviewLikeDAO) Toggle(ctx context.Context, userID int64, reviewID string) (liked bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item := models.ReviewLike{UserID: userID, ReviewID: reviewID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			err := tx.Where("user_id = ? AND review_id = ?", userID, reviewID).
				Delete(&models.ReviewLike{}).Error
			if err != nil {
				return err
			}
			liked = false
		} else {
			liked = true
		}

		return d.reviewDAO.RecountLikes(ctx, tx, reviewID)
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (d *ReviewLikeDAO) IsLiked(ctx context.Context, userID int64, reviewID string) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND review_id = ?", userID, reviewID)
}

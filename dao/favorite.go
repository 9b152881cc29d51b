package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteDAO struct {
	Repo[models.Favorite]
	propertyDAO *PropertyDAO
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{
		Repo:        NewRepo[models.Favorite](db),
		propertyDAO: NewPropertyDAO(db),
	}
}

// Toggle flips the (user, property) favorite membership in one transaction.
// The insert is conditional on the unique key, so two concurrent toggles
// cannot both observe "absent": the statement itself decides which branch
// runs. favorites_count is recomputed from the favorites table before the
// transaction commits.
func (d *FavoriteDAO) Toggle(ctx context.Context, userID int64, propertyID string) (added bool, fav *models.Favorite, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item := models.Favorite{UserID: userID, PropertyID: propertyID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Row already existed: this toggle removes it.
			err := tx.Where("user_id = ? AND property_id = ?", userID, propertyID).
				Delete(&models.Favorite{}).Error
			if err != nil {
				return err
			}
			added = false
		} else {
			added = true
			fav = &item
		}

		return d.propertyDAO.RecountFavorites(ctx, tx, propertyID)
	})
	if err != nil {
		return false, nil, err
	}
	return added, fav, nil
}

func (d *FavoriteDAO) IsFavorited(ctx context.Context, userID int64, propertyID string) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND property_id = ?", userID, propertyID)
}

func (d *FavoriteDAO) ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	var items []*models.Favorite
	err := d.Db.WithContext(ctx).
		Preload("Property").
		Preload("Property.Location").
		Preload("Property.PropertyType").
		Preload("Property.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// DeleteOwned removes a favorite by id, scoped to its owner, and recounts.
func (d *FavoriteDAO) DeleteOwned(ctx context.Context, id uint64, userID int64) (bool, error) {
	var deleted bool
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Favorite
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&item).Error
		if err != nil {
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		deleted = true
		return d.propertyDAO.RecountFavorites(ctx, tx, item.PropertyID)
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

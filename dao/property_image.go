package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
)

type PropertyImageDAO struct {
	Repo[models.PropertyImage]
}

func NewPropertyImageDAO(db *gorm.DB) *PropertyImageDAO {
	return &PropertyImageDAO{Repo: NewRepo[models.PropertyImage](db)}
}

// CreateImage inserts the image; a new primary image demotes existing ones
// for the same property in the same transaction.
func (d *PropertyImageDAO) CreateImage(ctx context.Context, img *models.PropertyImage) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if img.IsPrimary {
			err := tx.Model(&models.PropertyImage{}).
				Where("property_id = ? AND is_primary = ?", img.PropertyID, true).
				Update("is_primary", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(img).Error
	})
}

func (d *PropertyImageDAO) ListByProperty(ctx context.Context, propertyID string) ([]*models.PropertyImage, error) {
	var items []*models.PropertyImage
	err := d.Db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("sort_order, created_at").
		Find(&items).Error
	return items, err
}

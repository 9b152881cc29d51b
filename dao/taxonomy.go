package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
)

// CategoryWithCount includes how many properties fall under the category.
type CategoryWithCount struct {
	models.PropertyCategory
	PropertyCount int64 `json:"property_count"`
}

type PropertyCategoryDAO struct {
	Repo[models.PropertyCategory]
}

func NewPropertyCategoryDAO(db *gorm.DB) *PropertyCategoryDAO {
	return &PropertyCategoryDAO{Repo: NewRepo[models.PropertyCategory](db)}
}

func (d *PropertyCategoryDAO) ListWithCounts(ctx context.Context) ([]CategoryWithCount, error) {
	var rows []CategoryWithCount
	err := d.Db.WithContext(ctx).Model(&models.PropertyCategory{}).
		Select("property_categories.*, COUNT(properties.id) AS property_count").
		Joins("LEFT JOIN property_types ON property_types.category_id = property_categories.id").
		Joins("LEFT JOIN properties ON properties.property_type_id = property_types.id").
		Group("property_categories.id").
		Order("property_categories.name").
		Scan(&rows).Error
	return rows, err
}

type PropertyTypeDAO struct {
	Repo[models.PropertyType]
}

func NewPropertyTypeDAO(db *gorm.DB) *PropertyTypeDAO {
	return &PropertyTypeDAO{Repo: NewRepo[models.PropertyType](db)}
}

type LocationDAO struct {
	Repo[models.Location]
}

func NewLocationDAO(db *gorm.DB) *LocationDAO {
	return &LocationDAO{Repo: NewRepo[models.Location](db)}
}

// GetOrCreate reuses an identical location row when one exists.
func (d *LocationDAO) GetOrCreate(ctx context.Context, loc *models.Location) (*models.Location, error) {
	err := d.Db.WithContext(ctx).
		Where("region = ? AND city = ? AND quarter = ? AND address = ?",
			loc.Region, loc.City, loc.Quarter, loc.Address).
		FirstOrCreate(loc).Error
	return loc, err
}

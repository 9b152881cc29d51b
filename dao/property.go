package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
)

// PropertyFilter narrows the public property listing. Zero values mean
// "not filtered".
type PropertyFilter struct {
	Status       string
	Verified     bool
	Featured     bool
	MinPrice     *float64
	MaxPrice     *float64
	MinArea      *float64
	MaxArea      *float64
	MinBedrooms  *uint
	MaxBedrooms  *uint
	MinBathrooms *uint
	MaxBathrooms *uint
	City         string
	Region       string
	PropertyType string
	HasPool      *bool
	HasGarage    *bool
	HasSecurity  *bool
	HasAc        *bool
	Search       string
}

// PropertyStats aggregate row for the stats endpoint.
type PropertyStats struct {
	TotalProperties    int64
	ForSale            int64
	ForRent            int64
	FeaturedProperties int64
	VerifiedProperties int64
	TotalViews         int64
	AvgPriceForSale    float64
	AvgPriceForRent    float64
}

type PropertyTypeCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type PropertyDAO struct {
	Repo[models.Property]
}

func NewPropertyDAO(db *gorm.DB) *PropertyDAO {
	return &PropertyDAO{Repo: NewRepo[models.Property](db)}
}

func (d *PropertyDAO) publicScope(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", []string{models.PropertyStatusForSale, models.PropertyStatusForRent})
}

func (d *PropertyDAO) applyFilter(db *gorm.DB, f *PropertyFilter) *gorm.DB {
	if f.Status != "" {
		db = db.Where("properties.status = ?", f.Status)
	}
	if f.Verified {
		db = db.Where("properties.is_verified = ?", true)
	}
	if f.Featured {
		db = db.Where("properties.is_featured = ?", true)
	}
	if f.MinPrice != nil {
		db = db.Where("properties.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("properties.price <= ?", *f.MaxPrice)
	}
	if f.MinArea != nil {
		db = db.Where("properties.area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		db = db.Where("properties.area <= ?", *f.MaxArea)
	}
	if f.MinBedrooms != nil {
		db = db.Where("properties.bedrooms >= ?", *f.MinBedrooms)
	}
	if f.MaxBedrooms != nil {
		db = db.Where("properties.bedrooms <= ?", *f.MaxBedrooms)
	}
	if f.MinBathrooms != nil {
		db = db.Where("properties.bathrooms >= ?", *f.MinBathrooms)
	}
	if f.MaxBathrooms != nil {
		db = db.Where("properties.bathrooms <= ?", *f.MaxBathrooms)
	}
	if f.City != "" {
		db = db.Joins("JOIN locations ON locations.id = properties.location_id").
			Where("locations.city LIKE ?", "%"+f.City+"%")
	}
	if f.Region != "" {
		if f.City == "" {
			db = db.Joins("JOIN locations ON locations.id = properties.location_id")
		}
		db = db.Where("locations.region = ?", f.Region)
	}
	if f.PropertyType != "" {
		db = db.Joins("JOIN property_types ON property_types.id = properties.property_type_id").
			Where("property_types.name = ?", f.PropertyType)
	}
	if f.HasPool != nil {
		db = db.Where("properties.has_pool = ?", *f.HasPool)
	}
	if f.HasGarage != nil {
		db = db.Where("properties.has_garage = ?", *f.HasGarage)
	}
	if f.HasSecurity != nil {
		db = db.Where("properties.has_security = ?", *f.HasSecurity)
	}
	if f.HasAc != nil {
		db = db.Where("properties.has_ac = ?", *f.HasAc)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		db = db.Where("(properties.title LIKE ? OR properties.description LIKE ?)", like, like)
	}
	return db
}

// List returns the public page of listings plus the unpaged total.
func (d *PropertyDAO) List(ctx context.Context, f *PropertyFilter, limit, offset int) ([]*models.Property, int64, error) {
	base := d.applyFilter(d.publicScope(d.Db.WithContext(ctx).Model(&models.Property{})), f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*models.Property
	err := base.
		Preload("PropertyType").Preload("PropertyType.Category").
		Preload("Location").Preload("Images").
		Order("properties.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (d *PropertyDAO) GetDetail(ctx context.Context, id string) (*models.Property, error) {
	var item models.Property
	err := d.Db.WithContext(ctx).
		Preload("PropertyType").Preload("PropertyType.Category").
		Preload("Location").Preload("Images").
		Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// IncrViews bumps views_count atomically; never gated by the cache.
func (d *PropertyDAO) IncrViews(ctx context.Context, id string) error {
	return d.Db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}

// RecountFavorites recomputes favorites_count from the favorites table.
// Full recompute rather than arithmetic so the counter self-heals from any
// drift caused by cascade deletes.
func (d *PropertyDAO) RecountFavorites(ctx context.Context, tx *gorm.DB, propertyID string) error {
	if tx == nil {
		tx = d.Db.WithContext(ctx)
	}
	return tx.Exec(
		"UPDATE properties SET favorites_count = ("+
			"SELECT COUNT(*) FROM favorites WHERE favorites.property_id = properties.id"+
			") WHERE properties.id = ?",
		propertyID,
	).Error
}

func (d *PropertyDAO) Featured(ctx context.Context, limit int) ([]*models.Property, error) {
	var items []*models.Property
	err := d.publicScope(d.Db.WithContext(ctx)).
		Preload("PropertyType").Preload("Location").Preload("Images").
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (d *PropertyDAO) Stats(ctx context.Context) (*PropertyStats, error) {
	var stats PropertyStats
	err := d.Db.WithContext(ctx).Model(&models.Property{}).
		Select(
			"COUNT(*) AS total_properties, " +
				"COALESCE(SUM(CASE WHEN status = 'for_sale' THEN 1 ELSE 0 END), 0) AS for_sale, " +
				"COALESCE(SUM(CASE WHEN status = 'for_rent' THEN 1 ELSE 0 END), 0) AS for_rent, " +
				"COALESCE(SUM(CASE WHEN is_featured THEN 1 ELSE 0 END), 0) AS featured_properties, " +
				"COALESCE(SUM(CASE WHEN is_verified THEN 1 ELSE 0 END), 0) AS verified_properties, " +
				"COALESCE(SUM(views_count), 0) AS total_views, " +
				"COALESCE(AVG(CASE WHEN status = 'for_sale' THEN price END), 0) AS avg_price_for_sale, " +
				"COALESCE(AVG(CASE WHEN status = 'for_rent' THEN price END), 0) AS avg_price_for_rent",
		).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (d *PropertyDAO) TopPropertyTypes(ctx context.Context, limit int) ([]PropertyTypeCount, error) {
	var rows []PropertyTypeCount
	err := d.Db.WithContext(ctx).Model(&models.Property{}).
		Select("property_types.name AS name, COUNT(*) AS count").
		Joins("JOIN property_types ON property_types.id = properties.property_type_id").
		Group("property_types.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (d *PropertyDAO) DistinctCities(ctx context.Context, limit int) ([]string, error) {
	var cities []string
	err := d.Db.WithContext(ctx).Model(&models.Property{}).
		Distinct("locations.city").
		Joins("JOIN locations ON locations.id = properties.location_id").
		Limit(limit).
		Pluck("locations.city", &cities).Error
	return cities, err
}

package types

import (
	"Immob/dao"
	"Immob/models"
)

type PropertyListQuery struct {
	Status       string   `form:"status" binding:"omitempty,oneof=for_sale for_rent sold rented pending"`
	Verified     bool     `form:"verified"`
	Featured     bool     `form:"featured"`
	MinPrice     *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice     *float64 `form:"max_price" binding:"omitempty,gte=0"`
	MinArea      *float64 `form:"min_area" binding:"omitempty,gte=0"`
	MaxArea      *float64 `form:"max_area" binding:"omitempty,gte=0"`
	MinBedrooms  *uint    `form:"min_bedrooms"`
	MaxBedrooms  *uint    `form:"max_bedrooms"`
	MinBathrooms *uint    `form:"min_bathrooms"`
	MaxBathrooms *uint    `form:"max_bathrooms"`
	Location     string   `form:"location"`
	Region       string   `form:"region"`
	PropertyType string   `form:"property_type"`
	HasPool      *bool    `form:"has_pool"`
	HasGarage    *bool    `form:"has_garage"`
	HasSecurity  *bool    `form:"has_security"`
	HasAc        *bool    `form:"has_ac"`
	Q            string   `form:"q"`
	Page         int      `form:"page" binding:"omitempty,gte=1"`
	PageSize     int      `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

type PropertyListResponse struct {
	Count    int64              `json:"count"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Results  []*models.Property `json:"results"`
}

type LocationInput struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Region    string   `json:"region" binding:"required,oneof=adamaoua centre est extreme_nord littoral nord nord_ouest ouest sud sud_ouest"`
	City      string   `json:"city" binding:"required,max=100"`
	Quarter   string   `json:"quarter" binding:"max=100"`
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

type CreatePropertyRequest struct {
	Title          string         `json:"title" binding:"required,max=255"`
	Description    string         `json:"description" binding:"required"`
	PropertyTypeID uint64         `json:"property_type_id" binding:"required"`
	LocationID     uint64         `json:"location_id"`
	Location       *LocationInput `json:"location"`
	Status         string         `json:"status" binding:"omitempty,oneof=for_sale for_rent sold rented pending"`
	Price          float64        `json:"price" binding:"required,gt=0"`
	Currency       string         `json:"currency" binding:"omitempty,len=3"`
	Area           float64        `json:"area" binding:"required,gt=0"`
	Bedrooms       uint           `json:"bedrooms"`
	Bathrooms      uint           `json:"bathrooms"`
	ParkingSpaces  uint           `json:"parking_spaces"`
	HasKitchen     *bool          `json:"has_kitchen"`
	HasLivingRoom  *bool          `json:"has_living_room"`
	HasDiningRoom  bool           `json:"has_dining_room"`
	HasBalcony     bool           `json:"has_balcony"`
	HasGarden      bool           `json:"has_garden"`
	HasPool        bool           `json:"has_pool"`
	HasGarage      bool           `json:"has_garage"`
	HasSecurity    bool           `json:"has_security"`
	HasInternet    bool           `json:"has_internet"`
	HasAc          bool           `json:"has_ac"`
	AgentID        *int64         `json:"agent_id"`
}

type UpdatePropertyRequest struct {
	Title         *string  `json:"title" binding:"omitempty,max=255"`
	Description   *string  `json:"description"`
	Status        *string  `json:"status" binding:"omitempty,oneof=for_sale for_rent sold rented pending"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	Currency      *string  `json:"currency" binding:"omitempty,len=3"`
	Area          *float64 `json:"area" binding:"omitempty,gt=0"`
	Bedrooms      *uint    `json:"bedrooms"`
	Bathrooms     *uint    `json:"bathrooms"`
	ParkingSpaces *uint    `json:"parking_spaces"`
	IsFeatured    *bool    `json:"is_featured"`
	HasPool       *bool    `json:"has_pool"`
	HasGarage     *bool    `json:"has_garage"`
	HasSecurity   *bool    `json:"has_security"`
	HasAc         *bool    `json:"has_ac"`
}

type PropertyStatsResponse struct {
	TotalProperties    int64                   `json:"total_properties"`
	ForSale            int64                   `json:"for_sale"`
	ForRent            int64                   `json:"for_rent"`
	FeaturedProperties int64                   `json:"featured_properties"`
	VerifiedProperties int64                   `json:"verified_properties"`
	TotalViews         int64                   `json:"total_views"`
	AvgPriceForSale    float64                 `json:"avg_price_for_sale"`
	AvgPriceForRent    float64                 `json:"avg_price_for_rent"`
	TopPropertyTypes   []dao.PropertyTypeCount `json:"top_property_types"`
}

type SearchSuggestionsResponse struct {
	SearchTerms   []string `json:"search_terms"`
	PopularCities []string `json:"popular_cities"`
}

type UploadImageRequest struct {
	Caption   string `form:"caption"`
	IsPrimary bool   `form:"is_primary"`
	Order     uint   `form:"order"`
}

type UploadImageResponse struct {
	Image *models.PropertyImage `json:"image"`
}

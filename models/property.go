package models

import "time"

// Property status values.
const (
	PropertyStatusForSale = "for_sale"
	PropertyStatusForRent = "for_rent"
	PropertyStatusSold    = "sold"
	PropertyStatusRented  = "rented"
	PropertyStatusPending = "pending"
)

// Regions recognised by Location.
var Regions = []string{
	"adamaoua", "centre", "est", "extreme_nord", "littoral",
	"nord", "nord_ouest", "ouest", "sud", "sud_ouest",
}

type PropertyCategory struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;not null;size:100" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Icon        string    `gorm:"column:icon;size:50" json:"icon"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PropertyCategory) TableName() string { return "property_categories" }

type PropertyType struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;not null;size:100" json:"name"`
	CategoryID  uint64    `gorm:"column:category_id;not null;index" json:"category_id"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Category *PropertyCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (PropertyType) TableName() string { return "property_types" }

type Location struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;not null;size:100" json:"name"`
	Region    string    `gorm:"column:region;not null;size:20" json:"region"`
	City      string    `gorm:"column:city;not null;size:100;index" json:"city"`
	Quarter   string    `gorm:"column:quarter;size:100" json:"quarter"`
	Address   string    `gorm:"column:address;type:text" json:"address"`
	Latitude  *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude *float64  `gorm:"column:longitude" json:"longitude"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Location) TableName() string { return "locations" }

// Property listing, table properties.
// favorites_count and views_count are denormalized; favorites_count is kept
// equal to the favorites row count on every favorite write.
type Property struct {
	ID             string  `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title          string  `gorm:"column:title;not null;size:255" json:"title"`
	Description    string  `gorm:"column:description;type:text" json:"description"`
	PropertyTypeID uint64  `gorm:"column:property_type_id;not null;index" json:"property_type_id"`
	LocationID     uint64  `gorm:"column:location_id;not null;index" json:"location_id"`
	Status         string  `gorm:"column:status;not null;size:20;default:pending;index" json:"status"`
	Price          float64 `gorm:"column:price;not null;index" json:"price"`
	Currency       string  `gorm:"column:currency;not null;size:3;default:XAF" json:"currency"`
	Area           float64 `gorm:"column:area;not null" json:"area"`
	Bedrooms       uint    `gorm:"column:bedrooms;not null;default:0" json:"bedrooms"`
	Bathrooms      uint    `gorm:"column:bathrooms;not null;default:0" json:"bathrooms"`
	ParkingSpaces  uint    `gorm:"column:parking_spaces;not null;default:0" json:"parking_spaces"`

	HasKitchen    bool `gorm:"column:has_kitchen;not null;default:1" json:"has_kitchen"`
	HasLivingRoom bool `gorm:"column:has_living_room;not null;default:1" json:"has_living_room"`
	HasDiningRoom bool `gorm:"column:has_dining_room;not null;default:0" json:"has_dining_room"`
	HasBalcony    bool `gorm:"column:has_balcony;not null;default:0" json:"has_balcony"`
	HasGarden     bool `gorm:"column:has_garden;not null;default:0" json:"has_garden"`
	HasPool       bool `gorm:"column:has_pool;not null;default:0" json:"has_pool"`
	HasGarage     bool `gorm:"column:has_garage;not null;default:0" json:"has_garage"`
	HasSecurity   bool `gorm:"column:has_security;not null;default:0" json:"has_security"`
	HasInternet   bool `gorm:"column:has_internet;not null;default:0" json:"has_internet"`
	HasAc         bool `gorm:"column:has_ac;not null;default:0" json:"has_ac"`

	OwnerID int64  `gorm:"column:owner_id;not null;index" json:"owner_id"`
	AgentID *int64 `gorm:"column:agent_id" json:"agent_id"`

	IsFeatured     bool       `gorm:"column:is_featured;not null;default:0" json:"is_featured"`
	IsVerified     bool       `gorm:"column:is_verified;not null;default:0" json:"is_verified"`
	ViewsCount     uint64     `gorm:"column:views_count;not null;default:0" json:"views_count"`
	FavoritesCount uint64     `gorm:"column:favorites_count;not null;default:0" json:"favorites_count"`
	PublishedAt    *time.Time `gorm:"column:published_at" json:"published_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at" json:"updated_at"`

	PropertyType *PropertyType   `gorm:"foreignKey:PropertyTypeID" json:"property_type,omitempty"`
	Location     *Location       `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Images       []PropertyImage `gorm:"foreignKey:PropertyID" json:"images,omitempty"`
}

func (Property) TableName() string { return "properties" }

// Published reports whether the listing is publicly visible.
func (p *Property) Published() bool {
	return p.Status == PropertyStatusForSale || p.Status == PropertyStatusForRent
}

type PropertyImage struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PropertyID string    `gorm:"column:property_id;not null;size:36;index" json:"property_id"`
	URL        string    `gorm:"column:url;not null;size:512" json:"url"`
	Caption    string    `gorm:"column:caption;size:255" json:"caption"`
	IsPrimary  bool      `gorm:"column:is_primary;not null;default:0" json:"is_primary"`
	Order      uint      `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PropertyImage) TableName() string { return "property_images" }

type SearchHistory struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Query        string    `gorm:"column:query;type:text" json:"query"`
	Filters      string    `gorm:"column:filters;type:text" json:"filters"`
	ResultsCount uint64    `gorm:"column:results_count;not null;default:0" json:"results_count"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SearchHistory) TableName() string { return "search_histories" }

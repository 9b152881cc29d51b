package models

import "time"

// Favorite join row, table favorites.
// Unique key: user_id + property_id.
type Favorite struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:uk_fav_user_property,priority:1" json:"user_id"`
	PropertyID string    `gorm:"column:property_id;not null;size:36;uniqueIndex:uk_fav_user_property,priority:2" json:"property_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

func (Favorite) TableName() string { return "favorites" }

package models

import "gorm.io/gorm"

// CollectibleItem is a geofenced virtual object athletes pick up by passing
// within 100 meters of it. The collected set is append-only.
type CollectibleItem struct {
	gorm.Model
	Name      string  `json:"name"`
	UID       string  `json:"uid"`
	Latitude  float64 `json:"latitude" gorm:"type:decimal(8,4)"`
	Longitude float64 `json:"longitude" gorm:"type:decimal(9,4)"`
	Picture   string  `json:"picture"`
	Value     int     `json:"value"`

	Athletes []User `gorm:"many2many:user_collectible_items;" json:"-"`
}

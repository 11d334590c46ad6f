package models

import (
	"time"

	"gorm.io/gorm"
)

// Position is one GPS sample belonging to a run. Append-only, ordered by DateTime.
type Position struct {
	gorm.Model
	RunID     uint      `json:"run" gorm:"index"`
	Run       Run       `gorm:"foreignKey:RunID" json:"-"`
	Latitude  float64   `json:"latitude" gorm:"type:decimal(8,4)"`
	Longitude float64   `json:"longitude" gorm:"type:decimal(9,4)"`
	DateTime  time.Time `json:"date_time"`
	Speed     float64   `json:"speed" gorm:"default:0"`    // m/s over the last segment
	Distance  float64   `json:"distance" gorm:"default:0"` // cumulative meters from the run start
}

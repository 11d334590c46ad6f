package models

import (
	"gorm.io/gorm"
)

// Run statuses. A run only ever moves forward: init -> in_progress -> finished.
const (
	RunStatusInit       = "init"
	RunStatusInProgress = "in_progress"
	RunStatusFinished   = "finished"
)

type Run struct {
	gorm.Model
	AthleteID uint   `json:"athlete" gorm:"index"`
	Athlete   User   `gorm:"foreignKey:AthleteID" json:"-"`
	Comment   string `json:"comment"`
	Status    string `json:"status" gorm:"default:init"`

	// Aggregates filled in when the run is stopped.
	Distance       *float64 `json:"distance"` // kilometers, 3 decimal places
	RunTimeSeconds int      `json:"run_time_seconds" gorm:"default:0"`
	Speed          float64  `json:"speed" gorm:"default:0"` // average of position speeds, m/s
}

package models

import "gorm.io/gorm"

// Subscribe links an athlete to a coach. An athlete may subscribe to a given
// coach at most once; Rating stays nil until the athlete rates the coach.
type Subscribe struct {
	gorm.Model
	AthleteID uint `json:"athlete" gorm:"uniqueIndex:idx_subscribe_athlete_coach"`
	CoachID   uint `json:"coach" gorm:"uniqueIndex:idx_subscribe_athlete_coach"`
	Athlete   User `gorm:"foreignKey:AthleteID" json:"-"`
	Coach     User `gorm:"foreignKey:CoachID" json:"-"`

	Rating *int `json:"rating"` // 1..5
}

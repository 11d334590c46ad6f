package models

import "gorm.io/gorm"

// Challenge is an earned badge. Rows are only ever created, never updated.
type Challenge struct {
	gorm.Model
	FullName  string `json:"full_name"`
	AthleteID uint   `json:"athlete" gorm:"index"`
	Athlete   User   `gorm:"foreignKey:AthleteID" json:"-"`
}

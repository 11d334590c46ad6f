package models

import "gorm.io/gorm"

type AthleteInfo struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Goals  string `json:"goals"`
	Weight *int   `json:"weight"` // must satisfy 0 < weight < 900 when present
}

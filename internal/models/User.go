package models

import "gorm.io/gorm"

const (
	RoleAthlete = "athlete"
	RoleCoach   = "coach"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`
	Role      string `json:"role" gorm:"default:athlete"` // "athlete", "coach", "admin"

	Runs             []Run             `gorm:"foreignKey:AthleteID" json:"runs,omitempty"`
	CollectibleItems []CollectibleItem `gorm:"many2many:user_collectible_items;" json:"collectible_items,omitempty"`
}

// IsStaff reports whether the user can be subscribed to (coaches and admins).
func (u *User) IsStaff() bool {
	return u.Role == RoleCoach || u.Role == RoleAdmin
}

// FullName joins first and last name the way athlete listings display it.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"run_tracker/internal/models"
)

// UserSummary is one row of the user listing: profile fields plus the
// runs_finished count and, for coaches, the average subscriber rating.
type UserSummary struct {
	ID           uint      `json:"id"`
	DateJoined   time.Time `json:"date_joined"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Type         string    `json:"type"`
	RunsFinished int64     `json:"runs_finished"`
	Rating       *float64  `json:"rating"`
}

// ListUsers returns non-admin users, optionally filtered to athletes or
// coaches, annotated with finished-run counts and average rating. One query:
// the annotations are correlated subselects, not per-user lookups.
func ListUsers(db *gorm.DB, userType string) ([]UserSummary, error) {
	q := db.Model(&models.User{}).Where("users.role <> ?", models.RoleAdmin)
	switch userType {
	case "athlete":
		q = q.Where("users.role = ?", models.RoleAthlete)
	case "coach":
		q = q.Where("users.role = ?", models.RoleCoach)
	}

	summaries := []UserSummary{}
	err := q.
		Select(`users.id,
			users.created_at AS date_joined,
			users.username,
			users.first_name,
			users.last_name,
			users.role AS type,
			(SELECT COUNT(*) FROM runs
				WHERE runs.athlete_id = users.id
				  AND runs.status = ?
				  AND runs.deleted_at IS NULL) AS runs_finished,
			(SELECT AVG(subscribes.rating) FROM subscribes
				WHERE subscribes.coach_id = users.id
				  AND subscribes.rating IS NOT NULL
				  AND subscribes.deleted_at IS NULL) AS rating`,
			models.RunStatusFinished).
		Order("users.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetUser fetches one user with collected items preloaded.
func GetUser(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.Preload("CollectibleItems").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SubscribedCoachIDs lists the coaches an athlete is subscribed to.
func SubscribedCoachIDs(db *gorm.DB, athleteID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.Subscribe{}).
		Where("athlete_id = ?", athleteID).
		Pluck("coach_id", &ids).Error
	return ids, err
}

// SubscribedAthleteIDs lists the athletes subscribed to a coach.
func SubscribedAthleteIDs(db *gorm.DB, coachID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.Subscribe{}).
		Where("coach_id = ?", coachID).
		Pluck("athlete_id", &ids).Error
	return ids, err
}

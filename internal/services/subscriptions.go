package services

import (
	"errors"

	"gorm.io/gorm"

	"run_tracker/internal/models"
)

// SubscribeToCoach links an athlete to a coach. Only non-staff accounts may
// subscribe and only staff accounts may be subscribed to; the pair is unique.
func SubscribeToCoach(db *gorm.DB, athleteID, coachID uint) (*models.Subscribe, error) {
	var athlete models.User
	if err := db.First(&athlete, athleteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Field: "athlete", Message: "invalid athlete id"}
		}
		return nil, err
	}

	var coach models.User
	if err := db.First(&coach, coachID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if athlete.IsStaff() || !coach.IsStaff() {
		return nil, &ValidationError{Field: "athlete", Message: "only athletes can subscribe to coaches"}
	}

	var existing int64
	if err := db.Model(&models.Subscribe{}).
		Where("athlete_id = ? AND coach_id = ?", athleteID, coachID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrConflict
	}

	subscription := models.Subscribe{AthleteID: athleteID, CoachID: coachID}
	if err := db.Create(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// RateCoach sets the rating on an existing subscription. Last write wins.
func RateCoach(db *gorm.DB, coachID, athleteID uint, rating *int) (*models.Subscribe, error) {
	var subscription models.Subscribe
	if err := db.Where("coach_id = ? AND athlete_id = ?", coachID, athleteID).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if rating == nil || *rating < 1 || *rating > 5 {
		return nil, &ValidationError{Field: "rating", Message: "must be an integer between 1 and 5"}
	}

	subscription.Rating = rating
	if err := db.Save(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// CoachRating averages all subscriber ratings for the coach; nil when nobody
// has rated yet.
func CoachRating(db *gorm.DB, coachID uint) (*float64, error) {
	var avg *float64
	if err := db.Model(&models.Subscribe{}).
		Where("coach_id = ? AND rating IS NOT NULL", coachID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	return avg, nil
}

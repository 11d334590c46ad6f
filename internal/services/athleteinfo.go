package services

import (
	"errors"

	"gorm.io/gorm"

	"run_tracker/internal/models"
)

// GetOrCreateAthleteInfo returns the athlete's info record, creating an empty
// one on first access. The boolean reports whether a row was created.
func GetOrCreateAthleteInfo(db *gorm.DB, userID uint) (*models.AthleteInfo, bool, error) {
	if err := ensureUserExists(db, userID); err != nil {
		return nil, false, err
	}

	var info models.AthleteInfo
	err := db.Where("user_id = ?", userID).First(&info).Error
	if err == nil {
		return &info, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	info = models.AthleteInfo{UserID: userID}
	if err := db.Create(&info).Error; err != nil {
		return nil, false, err
	}
	return &info, true, nil
}

// UpdateAthleteInfo validates and writes goals/weight, creating the record if
// it does not exist yet.
func UpdateAthleteInfo(db *gorm.DB, userID uint, goals string, weight *int) (*models.AthleteInfo, bool, error) {
	if err := ensureUserExists(db, userID); err != nil {
		return nil, false, err
	}

	if weight != nil && (*weight <= 0 || *weight >= 900) {
		return nil, false, &ValidationError{Field: "weight", Message: "must be > 0 and < 900"}
	}

	var info models.AthleteInfo
	err := db.Where("user_id = ?", userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.AthleteInfo{UserID: userID, Goals: goals, Weight: weight}
		if err := db.Create(&info).Error; err != nil {
			return nil, false, err
		}
		return &info, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := db.Model(&info).Updates(map[string]interface{}{
		"goals":  goals,
		"weight": weight,
	}).Error; err != nil {
		return nil, false, err
	}
	info.Goals = goals
	info.Weight = weight
	return &info, false, nil
}

func ensureUserExists(db *gorm.DB, userID uint) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

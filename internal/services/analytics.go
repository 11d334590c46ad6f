package services

import (
	"errors"

	"gorm.io/gorm"

	"run_tracker/internal/models"
)

// CoachAnalytics is the aggregate summary over a coach's subscribed athletes'
// finished runs. Each pair is nil when no qualifying run exists.
type CoachAnalytics struct {
	LongestRunUser  *uint    `json:"longest_run_user"`
	LongestRunValue *float64 `json:"longest_run_value"`

	TotalRunUser  *uint    `json:"total_run_user"`
	TotalRunValue *float64 `json:"total_run_value"`

	SpeedAvgUser  *uint    `json:"speed_avg_user"`
	SpeedAvgValue *float64 `json:"speed_avg_value"`
}

type athleteValue struct {
	AthleteID uint
	Value     float64
}

// AnalyticsForCoach computes the three independent leaderboards for a coach.
func AnalyticsForCoach(db *gorm.DB, coachID uint) (*CoachAnalytics, error) {
	var coach models.User
	if err := db.First(&coach, coachID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var athleteIDs []uint
	if err := db.Model(&models.Subscribe{}).
		Where("coach_id = ?", coachID).
		Pluck("athlete_id", &athleteIDs).Error; err != nil {
		return nil, err
	}

	analytics := &CoachAnalytics{}
	if len(athleteIDs) == 0 {
		return analytics, nil
	}

	finished := func() *gorm.DB {
		return db.Model(&models.Run{}).
			Where("athlete_id IN ? AND status = ?", athleteIDs, models.RunStatusFinished)
	}

	var longest athleteValue
	res := finished().
		Select("athlete_id, distance AS value").
		Order("distance DESC").
		Limit(1).
		Scan(&longest)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		analytics.LongestRunUser = &longest.AthleteID
		analytics.LongestRunValue = &longest.Value
	}

	var total athleteValue
	res = finished().
		Select("athlete_id, SUM(distance) AS value").
		Group("athlete_id").
		Order("value DESC").
		Limit(1).
		Scan(&total)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		analytics.TotalRunUser = &total.AthleteID
		analytics.TotalRunValue = &total.Value
	}

	var fastest athleteValue
	res = finished().
		Select("athlete_id, AVG(speed) AS value").
		Group("athlete_id").
		Order("value DESC").
		Limit(1).
		Scan(&fastest)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		analytics.SpeedAvgUser = &fastest.AthleteID
		analytics.SpeedAvgValue = &fastest.Value
	}

	return analytics, nil
}

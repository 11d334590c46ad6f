package services

import (
	"errors"

	"gorm.io/gorm"

	"run_tracker/internal/geo"
	"run_tracker/internal/models"
)

type transition struct {
	from string
	to   string
}

var allowedTransitions = map[string]transition{
	"start": {models.RunStatusInit, models.RunStatusInProgress},
	"stop":  {models.RunStatusInProgress, models.RunStatusFinished},
}

// CreateRun creates a run in the init state for the given athlete.
func CreateRun(db *gorm.DB, athleteID uint, comment string) (*models.Run, error) {
	var athlete models.User
	if err := db.First(&athlete, athleteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	run := models.Run{
		AthleteID: athleteID,
		Comment:   comment,
		Status:    models.RunStatusInit,
	}
	if err := db.Create(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// UpdateRunStatus applies a named lifecycle action ("start" or "stop") to the
// run. Stopping computes the run aggregates and awards challenges; the whole
// transition runs in one transaction so a concurrent stop cannot double-award.
func UpdateRunStatus(db *gorm.DB, runID uint, action string) (*models.Run, error) {
	tr, ok := allowedTransitions[action]
	if !ok {
		return nil, ErrInvalidAction
	}

	var run models.Run
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&run, runID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if run.Status != tr.from {
			return &InvalidTransitionError{Expected: tr.from, Current: run.Status}
		}
		run.Status = tr.to

		if action == "stop" {
			if err := computeRunAggregates(tx, &run); err != nil {
				return err
			}
		}

		if err := tx.Save(&run).Error; err != nil {
			return err
		}

		if action == "stop" {
			return AwardChallenges(tx, &run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// computeRunAggregates fills Distance (km), RunTimeSeconds and Speed from the
// run's position stream.
func computeRunAggregates(tx *gorm.DB, run *models.Run) error {
	var positions []models.Position
	if err := tx.Where("run_id = ?", run.ID).Order("date_time, id").Find(&positions).Error; err != nil {
		return err
	}

	var meters float64
	for i := 1; i < len(positions); i++ {
		prev, cur := positions[i-1], positions[i]
		meters += geo.Haversine(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
	}
	km := round(meters/1000, 3)
	run.Distance = &km

	run.RunTimeSeconds = 0
	run.Speed = 0
	if len(positions) > 0 {
		first := positions[0].DateTime
		last := positions[len(positions)-1].DateTime
		run.RunTimeSeconds = int(last.Sub(first).Seconds())

		var sum float64
		for _, p := range positions {
			sum += p.Speed
		}
		run.Speed = round(sum/float64(len(positions)), 2)
	}
	return nil
}

// GetRun fetches a run with its athlete preloaded.
func GetRun(db *gorm.DB, runID uint) (*models.Run, error) {
	var run models.Run
	if err := db.Preload("Athlete").First(&run, runID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}

// ListRuns returns runs, optionally filtered by status and/or athlete id,
// ordered by creation time.
func ListRuns(db *gorm.DB, status string, athleteID uint) ([]models.Run, error) {
	q := db.Order("created_at")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if athleteID != 0 {
		q = q.Where("athlete_id = ?", athleteID)
	}
	var runs []models.Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// RunPositions returns a run's position stream ordered by timestamp.
func RunPositions(db *gorm.DB, runID uint) ([]models.Position, error) {
	var run models.Run
	if err := db.First(&run, runID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var positions []models.Position
	if err := db.Where("run_id = ?", runID).Order("date_time, id").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

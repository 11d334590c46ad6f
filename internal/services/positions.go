package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"run_tracker/internal/geo"
	"run_tracker/internal/models"
)

// collectRadiusMeters is how close a position must be to a collectible item
// for the athlete to pick it up.
const collectRadiusMeters = 100.0

// PositionInput is the payload for a single GPS sample.
type PositionInput struct {
	RunID     uint       `json:"run" binding:"required"`
	Latitude  *float64   `json:"latitude" binding:"required"`
	Longitude *float64   `json:"longitude" binding:"required"`
	DateTime  *time.Time `json:"date_time"`
}

// CreatePosition validates and stores one GPS sample for a run in progress,
// grants any collectible items within reach and recomputes the last segment's
// cumulative distance and speed.
func CreatePosition(db *gorm.DB, in PositionInput) (*models.Position, error) {
	if in.Latitude == nil || *in.Latitude < -90 || *in.Latitude > 90 {
		return nil, &ValidationError{Field: "latitude", Message: "must be between -90.0 and 90.0"}
	}
	if in.Longitude == nil || *in.Longitude < -180 || *in.Longitude > 180 {
		return nil, &ValidationError{Field: "longitude", Message: "must be between -180.0 and 180.0"}
	}

	var run models.Run
	if err := db.First(&run, in.RunID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if run.Status != models.RunStatusInProgress {
		return nil, &ValidationError{Field: "run", Message: "positions may only be submitted while a run is in progress"}
	}

	at := time.Now()
	if in.DateTime != nil {
		at = *in.DateTime
	}

	position := models.Position{
		RunID:     run.ID,
		Latitude:  round(*in.Latitude, 4),
		Longitude: round(*in.Longitude, 4),
		DateTime:  at,
	}
	if err := db.Create(&position).Error; err != nil {
		return nil, err
	}

	if err := collectNearbyItems(db, run.AthleteID, &position); err != nil {
		return nil, err
	}
	if err := updateLastSegment(db, run.ID); err != nil {
		return nil, err
	}

	// Reload: the segment update may have touched this row.
	if err := db.First(&position, position.ID).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

// collectNearbyItems scans the full collectible table and grants every item
// within collectRadiusMeters of the position. Set semantics: picking up an
// already-held item is a no-op. O(items) per ingest.
func collectNearbyItems(db *gorm.DB, athleteID uint, position *models.Position) error {
	var items []models.CollectibleItem
	if err := db.Find(&items).Error; err != nil {
		return err
	}

	athlete := models.User{Model: gorm.Model{ID: athleteID}}
	for i := range items {
		item := &items[i]
		d := geo.Haversine(position.Latitude, position.Longitude, item.Latitude, item.Longitude)
		if d >= collectRadiusMeters {
			continue
		}
		var held int64
		if err := db.Table("user_collectible_items").
			Where("user_id = ? AND collectible_item_id = ?", athleteID, item.ID).
			Count(&held).Error; err != nil {
			return err
		}
		if held > 0 {
			continue
		}
		if err := db.Model(&athlete).Association("CollectibleItems").Append(item); err != nil {
			return err
		}
	}
	return nil
}

// updateLastSegment recomputes the newest position's cumulative distance and
// segment speed from its predecessor. Identical consecutive timestamps leave
// the speed at zero instead of dividing by zero.
func updateLastSegment(db *gorm.DB, runID uint) error {
	var positions []models.Position
	// id breaks timestamp ties so the newest sample is always last.
	if err := db.Where("run_id = ?", runID).Order("date_time, id").Find(&positions).Error; err != nil {
		return err
	}
	if len(positions) < 2 {
		return nil
	}

	prev := positions[len(positions)-2]
	last := positions[len(positions)-1]

	segment := geo.Haversine(prev.Latitude, prev.Longitude, last.Latitude, last.Longitude)
	last.Distance = round(prev.Distance+segment, 2)

	last.Speed = 0
	if elapsed := last.DateTime.Sub(prev.DateTime).Seconds(); elapsed > 0 {
		last.Speed = round(segment/elapsed, 2)
	}
	return db.Save(&last).Error
}

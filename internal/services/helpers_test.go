package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"run_tracker/internal/config"
	"run_tracker/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  username,
		Email:     username + "@example.com",
		Password:  "hash",
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newRunWithStatus(t *testing.T, db *gorm.DB, athleteID uint, status string) *models.Run {
	t.Helper()
	run := &models.Run{AthleteID: athleteID, Status: status}
	require.NoError(t, db.Create(run).Error)
	return run
}

func newFinishedRun(t *testing.T, db *gorm.DB, athleteID uint, distanceKm float64, seconds int, speed float64) *models.Run {
	t.Helper()
	run := &models.Run{
		AthleteID:      athleteID,
		Status:         models.RunStatusFinished,
		Distance:       &distanceKm,
		RunTimeSeconds: seconds,
		Speed:          speed,
	}
	require.NoError(t, db.Create(run).Error)
	return run
}

func addRawPosition(t *testing.T, db *gorm.DB, runID uint, lat, lon float64, at time.Time, speed, distance float64) *models.Position {
	t.Helper()
	position := &models.Position{
		RunID:     runID,
		Latitude:  lat,
		Longitude: lon,
		DateTime:  at,
		Speed:     speed,
		Distance:  distance,
	}
	require.NoError(t, db.Create(position).Error)
	return position
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

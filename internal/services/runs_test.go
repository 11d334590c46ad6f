package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"run_tracker/internal/geo"
	"run_tracker/internal/models"
)

func TestRunLifecycleHappyPath(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)

	run, err := CreateRun(db, athlete.ID, "morning run")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusInit, run.Status)

	run, err = UpdateRunStatus(db, run.ID, "start")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusInProgress, run.Status)

	run, err = UpdateRunStatus(db, run.ID, "stop")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFinished, run.Status)
}

func TestCreateRunUnknownAthlete(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateRun(db, 12345, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunStatusOnlyMovesForward(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)

	t.Run("stop before start", func(t *testing.T) {
		run := newRunWithStatus(t, db, athlete.ID, models.RunStatusInit)

		_, err := UpdateRunStatus(db, run.ID, "stop")
		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, models.RunStatusInProgress, transitionErr.Expected)
		assert.Equal(t, models.RunStatusInit, transitionErr.Current)

		var reloaded models.Run
		require.NoError(t, db.First(&reloaded, run.ID).Error)
		assert.Equal(t, models.RunStatusInit, reloaded.Status)
	})

	t.Run("start twice", func(t *testing.T) {
		run := newRunWithStatus(t, db, athlete.ID, models.RunStatusInProgress)

		_, err := UpdateRunStatus(db, run.ID, "start")
		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, models.RunStatusInProgress, transitionErr.Current)
	})

	t.Run("start after finish", func(t *testing.T) {
		run := newRunWithStatus(t, db, athlete.ID, models.RunStatusFinished)

		_, err := UpdateRunStatus(db, run.ID, "start")
		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, models.RunStatusFinished, transitionErr.Current)
	})
}

func TestRunStatusUnknownAction(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	run := newRunWithStatus(t, db, athlete.ID, models.RunStatusInit)

	_, err := UpdateRunStatus(db, run.ID, "pause")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestRunStatusMissingRun(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateRunStatus(db, 9999, "start")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStopComputesAggregatesInKilometers(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	run := newRunWithStatus(t, db, athlete.ID, models.RunStatusInProgress)

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	addRawPosition(t, db, run.ID, 55.0000, 37.0000, base, 0, 0)
	addRawPosition(t, db, run.ID, 55.0100, 37.0000, base.Add(5*time.Minute), 3.7, 1112)
	addRawPosition(t, db, run.ID, 55.0200, 37.0000, base.Add(10*time.Minute), 3.7, 2224)

	run, err := UpdateRunStatus(db, run.ID, "stop")
	require.NoError(t, err)

	meters := geo.Haversine(55.0000, 37.0000, 55.0100, 37.0000) +
		geo.Haversine(55.0100, 37.0000, 55.0200, 37.0000)
	expectedKm := round(meters/1000, 3)

	require.NotNil(t, run.Distance)
	assert.InDelta(t, expectedKm, *run.Distance, 1e-9)
	assert.Equal(t, 600, run.RunTimeSeconds)
	// Average of per-position speeds: (0 + 3.7 + 3.7) / 3 = 2.47 (rounded to 2dp).
	assert.InDelta(t, 2.47, run.Speed, 1e-9)
}

func TestStopWithoutPositions(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	run := newRunWithStatus(t, db, athlete.ID, models.RunStatusInProgress)

	run, err := UpdateRunStatus(db, run.ID, "stop")
	require.NoError(t, err)

	require.NotNil(t, run.Distance)
	assert.Equal(t, 0.0, *run.Distance)
	assert.Equal(t, 0, run.RunTimeSeconds)
	assert.Equal(t, 0.0, run.Speed)
}

func TestStopWithSinglePosition(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	run := newRunWithStatus(t, db, athlete.ID, models.RunStatusInProgress)
	addRawPosition(t, db, run.ID, 55.0, 37.0, time.Now(), 2.5, 0)

	run, err := UpdateRunStatus(db, run.ID, "stop")
	require.NoError(t, err)

	require.NotNil(t, run.Distance)
	assert.Equal(t, 0.0, *run.Distance)
	assert.Equal(t, 0, run.RunTimeSeconds)
	assert.Equal(t, 2.5, run.Speed)
}

func TestListRunsFilters(t *testing.T) {
	db := newTestDB(t)
	first := newUser(t, db, "first", models.RoleAthlete)
	second := newUser(t, db, "second", models.RoleAthlete)
	newRunWithStatus(t, db, first.ID, models.RunStatusInit)
	newRunWithStatus(t, db, first.ID, models.RunStatusFinished)
	newRunWithStatus(t, db, second.ID, models.RunStatusFinished)

	all, err := ListRuns(db, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	finished, err := ListRuns(db, models.RunStatusFinished, 0)
	require.NoError(t, err)
	assert.Len(t, finished, 2)

	firstOnly, err := ListRuns(db, models.RunStatusFinished, first.ID)
	require.NoError(t, err)
	assert.Len(t, firstOnly, 1)
}

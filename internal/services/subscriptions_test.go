package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"run_tracker/internal/models"
)

func TestSubscribeToCoach(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	coach := newUser(t, db, "coach", models.RoleCoach)

	subscription, err := SubscribeToCoach(db, athlete.ID, coach.ID)
	require.NoError(t, err)
	assert.Equal(t, athlete.ID, subscription.AthleteID)
	assert.Equal(t, coach.ID, subscription.CoachID)
	assert.Nil(t, subscription.Rating)
}

func TestSubscribeDuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	coach := newUser(t, db, "coach", models.RoleCoach)

	_, err := SubscribeToCoach(db, athlete.ID, coach.ID)
	require.NoError(t, err)

	_, err = SubscribeToCoach(db, athlete.ID, coach.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSubscribeRoleRules(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	otherAthlete := newUser(t, db, "runner2", models.RoleAthlete)
	coach := newUser(t, db, "coach", models.RoleCoach)
	otherCoach := newUser(t, db, "coach2", models.RoleCoach)

	t.Run("coach cannot subscribe", func(t *testing.T) {
		_, err := SubscribeToCoach(db, coach.ID, otherCoach.ID)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("cannot subscribe to a non-coach", func(t *testing.T) {
		_, err := SubscribeToCoach(db, athlete.ID, otherAthlete.ID)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown athlete", func(t *testing.T) {
		_, err := SubscribeToCoach(db, 9999, coach.ID)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown coach", func(t *testing.T) {
		_, err := SubscribeToCoach(db, athlete.ID, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRateCoach(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	coach := newUser(t, db, "coach", models.RoleCoach)
	_, err := SubscribeToCoach(db, athlete.ID, coach.ID)
	require.NoError(t, err)

	subscription, err := RateCoach(db, coach.ID, athlete.ID, ptrInt(4))
	require.NoError(t, err)
	require.NotNil(t, subscription.Rating)
	assert.Equal(t, 4, *subscription.Rating)

	// Last write wins.
	subscription, err = RateCoach(db, coach.ID, athlete.ID, ptrInt(2))
	require.NoError(t, err)
	assert.Equal(t, 2, *subscription.Rating)
}

func TestRateCoachValidation(t *testing.T) {
	db := newTestDB(t)
	athlete := newUser(t, db, "runner", models.RoleAthlete)
	coach := newUser(t, db, "coach", models.RoleCoach)

	t.Run("unsubscribed pair", func(t *testing.T) {
		_, err := RateCoach(db, coach.ID, athlete.ID, ptrInt(5))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	_, err := SubscribeToCoach(db, athlete.ID, coach.ID)
	require.NoError(t, err)

	for _, bad := range []int{0, -1, 6, 100} {
		_, err := RateCoach(db, coach.ID, athlete.ID, ptrInt(bad))
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "rating %d must be rejected", bad)
		assert.Equal(t, "rating", validationErr.Field)
	}

	_, err = RateCoach(db, coach.ID, athlete.ID, nil)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCoachRatingAverages(t *testing.T) {
	db := newTestDB(t)
	coach := newUser(t, db, "coach", models.RoleCoach)

	rating, err := CoachRating(db, coach.ID)
	require.NoError(t, err)
	assert.Nil(t, rating)

	for i, score := range []int{5, 3} {
		athlete := newUser(t, db, "runner"+string(rune('a'+i)), models.RoleAthlete)
		_, err := SubscribeToCoach(db, athlete.ID, coach.ID)
		require.NoError(t, err)
		_, err = RateCoach(db, coach.ID, athlete.ID, ptrInt(score))
		require.NoError(t, err)
	}

	rating, err = CoachRating(db, coach.ID)
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.InDelta(t, 4.0, *rating, 1e-9)
}

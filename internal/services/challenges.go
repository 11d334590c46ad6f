package services

import (
	"gorm.io/gorm"

	"run_tracker/internal/models"
)

// Challenge names are the user-facing badge titles.
const (
	ChallengeTenRuns = "Сделай 10 Забегов!"
	ChallengeFiftyKm = "Пробеги 50 километров!"
	ChallengeFast2Km = "2 километра за 10 минут!"
)

// AwardChallenges evaluates every award rule for the athlete of a just-finished
// run. Called exactly once per stop transition, inside its transaction, after
// the run row (with aggregates) has been saved, so counts and sums include the
// run being finished. Each rule awards at most once per athlete lifetime.
func AwardChallenges(tx *gorm.DB, run *models.Run) error {
	var finished int64
	if err := tx.Model(&models.Run{}).
		Where("athlete_id = ? AND status = ?", run.AthleteID, models.RunStatusFinished).
		Count(&finished).Error; err != nil {
		return err
	}
	if finished == 10 {
		if err := awardOnce(tx, run.AthleteID, ChallengeTenRuns); err != nil {
			return err
		}
	}

	var totalKm float64
	if err := tx.Model(&models.Run{}).
		Where("athlete_id = ? AND status = ?", run.AthleteID, models.RunStatusFinished).
		Select("COALESCE(SUM(distance), 0)").
		Scan(&totalKm).Error; err != nil {
		return err
	}
	if totalKm >= 50 {
		if err := awardOnce(tx, run.AthleteID, ChallengeFiftyKm); err != nil {
			return err
		}
	}

	// Evaluated only against the run being finished, not historical runs.
	if run.Distance != nil && *run.Distance >= 2 && run.RunTimeSeconds <= 600 {
		if err := awardOnce(tx, run.AthleteID, ChallengeFast2Km); err != nil {
			return err
		}
	}
	return nil
}

// awardOnce creates the challenge unless the athlete already holds it.
func awardOnce(tx *gorm.DB, athleteID uint, fullName string) error {
	var existing int64
	if err := tx.Model(&models.Challenge{}).
		Where("athlete_id = ? AND full_name = ?", athleteID, fullName).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return tx.Create(&models.Challenge{FullName: fullName, AthleteID: athleteID}).Error
}

// ListChallenges returns challenge rows, optionally filtered by athlete.
func ListChallenges(db *gorm.DB, athleteID uint) ([]models.Challenge, error) {
	q := db.Order("id")
	if athleteID != 0 {
		q = q.Where("athlete_id = ?", athleteID)
	}
	var challenges []models.Challenge
	if err := q.Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

// ChallengeAthlete is one holder of a badge in the grouped summary.
type ChallengeAthlete struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

// ChallengeGroup is all holders of one badge.
type ChallengeGroup struct {
	NameToDisplay string             `json:"name_to_display"`
	Athletes      []ChallengeAthlete `json:"athletes"`
}

// ChallengesSummary groups challenges by badge name, preserving first-seen
// order of the badge names.
func ChallengesSummary(db *gorm.DB) ([]ChallengeGroup, error) {
	var challenges []models.Challenge
	if err := db.Preload("Athlete").Order("id").Find(&challenges).Error; err != nil {
		return nil, err
	}

	grouped := map[string][]ChallengeAthlete{}
	var order []string
	for _, ch := range challenges {
		if _, seen := grouped[ch.FullName]; !seen {
			order = append(order, ch.FullName)
		}
		grouped[ch.FullName] = append(grouped[ch.FullName], ChallengeAthlete{
			ID:       ch.AthleteID,
			FullName: ch.Athlete.FullName(),
			Username: ch.Athlete.Username,
		})
	}

	groups := make([]ChallengeGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, ChallengeGroup{NameToDisplay: name, Athletes: grouped[name]})
	}
	return groups, nil
}

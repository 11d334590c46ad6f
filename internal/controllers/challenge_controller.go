package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"run_tracker/internal/config"
	"run_tracker/internal/services"
)

// ListChallenges returns earned badges, optionally filtered by athlete.
func ListChallenges(c *gin.Context) {
	var athleteID uint
	if raw := c.Query("athlete"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid athlete filter."})
			return
		}
		athleteID = uint(parsed)
	}

	challenges, err := services.ListChallenges(config.DB, athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(challenges))
	for _, ch := range challenges {
		out = append(out, gin.H{"full_name": ch.FullName, "athlete": ch.AthleteID})
	}
	c.JSON(http.StatusOK, out)
}

// ChallengesSummary returns challenges grouped by badge name with the athletes
// holding each one.
func ChallengesSummary(c *gin.Context) {
	groups, err := services.ChallengesSummary(config.DB)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

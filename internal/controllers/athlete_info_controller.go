package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"run_tracker/internal/config"
	"run_tracker/internal/services"
)

// GetAthleteInfo returns the athlete's info record, creating an empty one on
// first access. Always 200.
func GetAthleteInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	info, _, err := services.GetOrCreateAthleteInfo(config.DB, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type athleteInfoInput struct {
	Goals  string `json:"goals"`
	Weight *int   `json:"weight"`
}

// PutAthleteInfo validates and writes goals/weight; 201 when the record was
// created by this request, 200 otherwise.
func PutAthleteInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input athleteInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	info, created, err := services.UpdateAthleteInfo(config.DB, id, input.Goals, input.Weight)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, info)
}

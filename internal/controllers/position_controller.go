package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"run_tracker/internal/config"
	"run_tracker/internal/services"
)

// CreatePosition stores one GPS sample for a run in progress.
func CreatePosition(c *gin.Context) {
	var input services.PositionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	position, err := services.CreatePosition(config.DB, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, position)
}

// ListPositions returns the position stream of a run, ordered by timestamp.
func ListPositions(c *gin.Context) {
	raw := c.Query("run")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run query parameter is required."})
		return
	}
	runID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid run filter."})
		return
	}

	positions, err := services.RunPositions(config.DB, uint(runID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": positions})
}

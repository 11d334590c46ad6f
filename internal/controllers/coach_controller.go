package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"run_tracker/internal/config"
	"run_tracker/internal/services"
)

type subscribeInput struct {
	Athlete uint `json:"athlete" binding:"required"`
}

// SubscribeToCoach links the athlete in the body to the coach in the URL.
func SubscribeToCoach(c *gin.Context) {
	coachID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input subscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	subscription, err := services.SubscribeToCoach(config.DB, input.Athlete, coachID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subscription)
}

type rateInput struct {
	Athlete uint `json:"athlete" binding:"required"`
	Rating  *int `json:"rating"`
}

// RateCoach sets the athlete's rating on an existing subscription.
func RateCoach(c *gin.Context) {
	coachID, ok := parseIDParam(c, "coach_id")
	if !ok {
		return
	}

	var input rateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	subscription, err := services.RateCoach(config.DB, coachID, input.Athlete, input.Rating)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating has been saved", "subscription": subscription})
}

// AnalyticsForCoach returns the three leaderboards over the coach's athletes.
func AnalyticsForCoach(c *gin.Context) {
	coachID, ok := parseIDParam(c, "coach_id")
	if !ok {
		return
	}

	analytics, err := services.AnalyticsForCoach(config.DB, coachID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

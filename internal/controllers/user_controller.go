package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"run_tracker/internal/config"
	"run_tracker/internal/services"
)

// ListUsers lists non-admin users with runs_finished and rating annotations.
// The optional type query narrows to athletes or coaches.
func ListUsers(c *gin.Context) {
	users, err := services.ListUsers(config.DB, c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GetUser returns a single user. The payload shape is keyed on the stored
// role: coaches get their subscriber list and average rating, athletes get
// their coach list and collected items.
func GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := services.GetUser(config.DB, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	base := gin.H{
		"id":          user.ID,
		"date_joined": user.CreatedAt,
		"username":    user.Username,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
	}

	if user.IsStaff() {
		athletes, err := services.SubscribedAthleteIDs(config.DB, user.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		rating, err := services.CoachRating(config.DB, user.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		base["type"] = "coach"
		base["athletes"] = athletes
		base["rating"] = rating
	} else {
		coaches, err := services.SubscribedCoachIDs(config.DB, user.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		base["type"] = "athlete"
		base["coach"] = coaches
		base["items"] = user.CollectibleItems
	}

	c.JSON(http.StatusOK, base)
}

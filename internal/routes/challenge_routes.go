package routes

import (
	"run_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func ChallengeRoutes(r *gin.Engine) {
	r.GET("/api/challenges", controllers.ListChallenges)
	r.GET("/api/challenges_summary", controllers.ChallengesSummary)
}

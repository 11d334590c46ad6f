package routes

import (
	"run_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func CoachRoutes(r *gin.Engine) {
	r.POST("/api/subscribe_to_coach/:id", controllers.SubscribeToCoach)
	r.POST("/api/rate_coach/:coach_id", controllers.RateCoach)
	r.GET("/api/analytics_for_coach/:coach_id", controllers.AnalyticsForCoach)
}

package routes

import (
	"run_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RunRoutes(r *gin.Engine) {
	runs := r.Group("/api/runs")
	{
		runs.POST("", controllers.CreateRun)
		runs.GET("", controllers.ListRuns)
		runs.GET("/:id", controllers.GetRun)
		runs.GET("/:id/track", controllers.GetRunTrack)
		runs.POST("/:id/:action", controllers.UpdateRunStatus)
	}
}

package routes

import (
	"run_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func PositionRoutes(r *gin.Engine) {
	positions := r.Group("/api/positions")
	{
		positions.POST("", controllers.CreatePosition)
		positions.GET("", controllers.ListPositions)
	}
}

package routes

import (
	"run_tracker/internal/controllers"
	"run_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CollectibleRoutes(r *gin.Engine) {
	r.GET("/api/collectible_item", controllers.ListCollectibleItems)

	// Bulk import is restricted to admins.
	upload := r.Group("/api/upload_file")
	upload.Use(middleware.RequireAuthWithRole("admin"))
	{
		upload.POST("", controllers.UploadCollectibleItems)
	}
}

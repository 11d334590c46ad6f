package routes

import (
	"run_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.Engine) {
	r.GET("/api/users", controllers.ListUsers)
	r.GET("/api/users/:id", controllers.GetUser)
	r.GET("/api/athlete_info/:id", controllers.GetAthleteInfo)
	r.PUT("/api/athlete_info/:id", controllers.PutAthleteInfo)
	r.GET("/api/company_details", controllers.CompanyDetails)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"run_tracker/internal/config"
)

// CompanyDetails serves the static product info from the environment config.
func CompanyDetails(c *gin.Context) {
	c.JSON(http.StatusOK, config.Company())
}

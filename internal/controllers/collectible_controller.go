package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"run_tracker/internal/config"
	"run_tracker/internal/services"
)

// ListCollectibleItems returns every collectible on the map.
func ListCollectibleItems(c *gin.Context) {
	items, err := services.ListCollectibleItems(config.DB)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// UploadCollectibleItems bulk-imports collectibles from an uploaded xlsx file.
// Rows that fail validation come back in broken_rows; valid rows are committed.
func UploadCollectibleItems(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required: " + err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("UploadCollectibleItems: could not open upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	broken, err := services.ImportCollectiblesFromXLSX(config.DB, file)
	if err != nil {
		logrus.WithError(err).Error("UploadCollectibleItems: import failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not parse spreadsheet: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"broken_rows": broken})
}

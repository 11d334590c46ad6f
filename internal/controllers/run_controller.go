package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	geom "github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"run_tracker/internal/config"
	"run_tracker/internal/services"
)

type createRunInput struct {
	Athlete uint   `json:"athlete" binding:"required"`
	Comment string `json:"comment"`
}

// CreateRun opens a new run in the init state.
func CreateRun(c *gin.Context) {
	var input createRunInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	run, err := services.CreateRun(config.DB, input.Athlete, input.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

// ListRuns returns runs filtered by the optional status and athlete query params.
func ListRuns(c *gin.Context) {
	var athleteID uint
	if raw := c.Query("athlete"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid athlete filter."})
			return
		}
		athleteID = uint(parsed)
	}

	runs, err := services.ListRuns(config.DB, c.Query("status"), athleteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": runs})
}

// GetRun returns one run with its athlete embedded.
func GetRun(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	run, err := services.GetRun(config.DB, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ID":               run.ID,
		"created_at":       run.CreatedAt,
		"comment":          run.Comment,
		"status":           run.Status,
		"distance":         run.Distance,
		"run_time_seconds": run.RunTimeSeconds,
		"speed":            run.Speed,
		"athlete":          run.AthleteID,
		"athlete_data": gin.H{
			"id":         run.Athlete.ID,
			"username":   run.Athlete.Username,
			"first_name": run.Athlete.FirstName,
			"last_name":  run.Athlete.LastName,
		},
	})
}

// UpdateRunStatus applies the start/stop action from the URL to the run.
func UpdateRunStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	run, err := services.UpdateRunStatus(config.DB, id, c.Param("action"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// GetRunTrack exports a run's position stream as a GeoJSON LineString.
func GetRunTrack(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	positions, err := services.RunPositions(config.DB, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	coords := make([]geom.Coord, 0, len(positions))
	for _, p := range positions {
		coords = append(coords, geom.Coord{p.Longitude, p.Latitude})
	}

	line := geom.NewLineString(geom.XY)
	if len(coords) > 0 {
		if _, err := line.SetCoords(coords); err != nil {
			logrus.WithError(err).Error("GetRunTrack: could not build line geometry")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build track geometry"})
			return
		}
	}

	raw, err := gjson.Marshal(line)
	if err != nil {
		logrus.WithError(err).Error("GetRunTrack: could not encode GeoJSON")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode track"})
		return
	}

	c.Data(http.StatusOK, "application/geo+json", raw)
}

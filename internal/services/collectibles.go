package services

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"run_tracker/internal/models"
)

// ListCollectibleItems returns every known collectible.
func ListCollectibleItems(db *gorm.DB) ([]models.CollectibleItem, error) {
	var items []models.CollectibleItem
	if err := db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ImportCollectiblesFromXLSX reads a spreadsheet with the columns
// name/uid/value/latitude/longitude/picture (header row first) and creates a
// collectible per valid row. Rows failing validation are returned as-is in the
// broken list; valid rows are still committed — no all-or-nothing batch.
func ImportCollectiblesFromXLSX(db *gorm.DB, r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	broken := [][]string{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		item, ok := parseCollectibleRow(row)
		if !ok {
			broken = append(broken, row)
			continue
		}
		if err := db.Create(item).Error; err != nil {
			return nil, err
		}
	}
	return broken, nil
}

func parseCollectibleRow(row []string) (*models.CollectibleItem, bool) {
	if len(row) < 6 {
		return nil, false
	}
	name := strings.TrimSpace(row[0])
	uid := strings.TrimSpace(row[1])
	if name == "" || uid == "" {
		return nil, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil || value <= 0 {
		return nil, false
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return nil, false
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return nil, false
	}
	picture := strings.TrimSpace(row[5])
	if !strings.HasPrefix(picture, "http://") && !strings.HasPrefix(picture, "https://") {
		return nil, false
	}

	return &models.CollectibleItem{
		Name:      name,
		UID:       uid,
		Value:     value,
		Latitude:  round(latitude, 4),
		Longitude: round(longitude, 4),
		Picture:   picture,
	}, true
}

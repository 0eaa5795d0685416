// Package seed ships a small embedded course dataset so the service can
// boot without the scraper's artifact, e.g. in development or tests.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/falconsdev/coursecatalog/internal/app/models"
)

//go:embed default_courses.json
var defaultCourses []byte

// DefaultRawRecords returns the embedded fallback dataset in the same raw
// shape the scraper artifact uses.
func DefaultRawRecords() ([]models.RawCourseRecord, error) {
	var records []models.RawCourseRecord
	if err := json.Unmarshal(defaultCourses, &records); err != nil {
		return nil, fmt.Errorf("failed to decode embedded course dataset: %w", err)
	}
	return records, nil
}

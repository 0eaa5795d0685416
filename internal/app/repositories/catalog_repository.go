package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/falconsdev/coursecatalog/internal/app/catalog"
	"github.com/falconsdev/coursecatalog/internal/app/models"
	"github.com/falconsdev/coursecatalog/internal/pkg/apperrors"
	"github.com/falconsdev/coursecatalog/internal/seed"
)

// CatalogRepository serves the canonical course dataset. The dataset is
// normalized once at construction and is immutable afterwards, so reads need
// no locking.
type CatalogRepository struct {
	courses     []models.Course
	byID        map[string]models.Course
	departments []string
}

// NewCatalogRepository loads the scraper artifact at path, normalizes it,
// and precomputes the department set. A missing file falls back to the
// embedded default dataset; a malformed file is a startup error.
func NewCatalogRepository(path string, lgr zerolog.Logger) (*CatalogRepository, error) {
	records, err := loadRawRecords(path, lgr)
	if err != nil {
		return nil, err
	}
	return NewCatalogRepositoryFromRaw(records), nil
}

// NewCatalogRepositoryFromRaw builds a repository directly from raw records.
func NewCatalogRepositoryFromRaw(records []models.RawCourseRecord) *CatalogRepository {
	courses := catalog.Normalize(records)

	byID := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	return &CatalogRepository{
		courses:     courses,
		byID:        byID,
		departments: catalog.Departments(courses),
	}
}

func loadRawRecords(path string, lgr zerolog.Logger) ([]models.RawCourseRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		lgr.Warn().Str("path", path).Msg("Catalog artifact not found, using embedded default dataset")
		return seed.DefaultRawRecords()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrCatalogUnavailable, path, err)
	}

	var records []models.RawCourseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", apperrors.ErrCatalogUnavailable, path, err)
	}

	lgr.Info().Str("path", path).Int("courses", len(records)).Msg("Catalog artifact loaded")
	return records, nil
}

// AllCourses returns the full canonical dataset in insertion order. Callers
// must treat the slice as read-only.
func (r *CatalogRepository) AllCourses() []models.Course {
	return r.courses
}

// CourseByID looks up one course by its id (the course code).
func (r *CatalogRepository) CourseByID(id string) (models.Course, error) {
	c, ok := r.byID[id]
	if !ok {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return c, nil
}

// Departments returns the distinct sorted department set of the full
// dataset.
func (r *CatalogRepository) Departments() []string {
	return r.departments
}

// Count returns the number of courses in the dataset.
func (r *CatalogRepository) Count() int {
	return len(r.courses)
}

package view

import (
	"github.com/falconsdev/coursecatalog/internal/app/catalog"
	"github.com/falconsdev/coursecatalog/internal/app/models"
)

// Model is everything the catalog page needs to render one browse state:
// the grouped results, the shown-course count, the department selector
// options, and the state itself (so controls reflect their current values).
type Model struct {
	State       State                `json:"state"`
	Departments []string             `json:"departments"`
	Groups      []models.CourseGroup `json:"groups"`
	Count       int                  `json:"count"`
	NoResults   bool                 `json:"noResults"`
}

// Build derives the view model for a browse state. departments is the
// precomputed set over the full dataset; the selector always offers "All"
// first. Build is recomputed whenever any state field changes.
func Build(dataset []models.Course, departments []string, s State) Model {
	filtered := catalog.Filter(dataset, s.Filters())

	options := make([]string, 0, len(departments)+1)
	options = append(options, catalog.AllDepartments)
	options = append(options, departments...)

	return Model{
		State:       s,
		Departments: options,
		Groups:      catalog.Group(filtered),
		Count:       len(filtered),
		NoResults:   len(filtered) == 0,
	}
}

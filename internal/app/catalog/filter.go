package catalog

import (
	"strings"

	"github.com/falconsdev/coursecatalog/internal/app/models"
)

// AllDepartments is the department filter value that matches every course.
const AllDepartments = "All"

// Filters describes the active predicates of one browse interaction.
type Filters struct {
	// Grades a course must overlap with. An empty set matches nothing.
	Grades []int
	// Department to restrict to, or AllDepartments.
	Department string
	// Query is a free-text search term. Empty means no text filter.
	Query string
	// APOnly restricts results to Advanced Placement courses.
	APOnly bool
}

// DefaultFilters matches the entire catalog: all four grade levels, every
// department, no search term.
func DefaultFilters() Filters {
	return Filters{
		Grades:     []int{9, 10, 11, 12},
		Department: AllDepartments,
	}
}

// Filter returns the courses matching every active predicate, preserving the
// input order. All predicate categories are ANDed; only the text predicate
// ORs internally across the four searched fields.
func Filter(courses []models.Course, f Filters) []models.Course {
	matched := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if f.matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (f Filters) matches(c models.Course) bool {
	if !gradesIntersect(c.Grades, f.Grades) {
		return false
	}
	if f.Department != AllDepartments && c.Department != f.Department {
		return false
	}
	if f.APOnly && !c.AP {
		return false
	}
	return f.Query == "" || matchesQuery(c, f.Query)
}

// gradesIntersect reports whether the two grade sets overlap. Either side
// being empty means no overlap, so records the scraper emitted without
// grades are excluded rather than crashing or matching everything.
func gradesIntersect(courseGrades, selected []int) bool {
	for _, g := range courseGrades {
		for _, s := range selected {
			if g == s {
				return true
			}
		}
	}
	return false
}

// matchesQuery does a case-insensitive substring check of the query against
// name, code, department, and description; a hit on any one field matches.
func matchesQuery(c models.Course, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{c.Name, c.Code, c.Department, c.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

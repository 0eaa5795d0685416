// Package view models the transient browse state of the catalog UI and the
// view model derived from it. State transitions are pure: each reducer
// returns a new State and never mutates the receiver, which keeps the
// filter/group core independently testable.
package view

import "github.com/falconsdev/coursecatalog/internal/app/catalog"

// State is the full browse state owned by the presentation layer.
type State struct {
	Grades     []int  `json:"grades"`
	Department string `json:"department"`
	Query      string `json:"query"`
	APOnly     bool   `json:"apOnly"`

	// ExpandedCourseID is the id of the one expanded card, or empty. It is
	// independent of the filters and survives filter changes even while the
	// expanded course is not visible.
	ExpandedCourseID string `json:"expandedCourseId"`
}

// DefaultState selects all four grade levels and every department, with no
// search term, AP toggle off, and nothing expanded.
func DefaultState() State {
	return State{
		Grades:     []int{9, 10, 11, 12},
		Department: catalog.AllDepartments,
	}
}

// ToggleGrade flips membership of one grade level in the selected set.
func (s State) ToggleGrade(grade int) State {
	next := make([]int, 0, len(s.Grades)+1)
	removed := false
	for _, g := range s.Grades {
		if g == grade {
			removed = true
			continue
		}
		next = append(next, g)
	}
	if !removed {
		next = append(next, grade)
	}
	s.Grades = next
	return s
}

// WithGrades replaces the selected grade set wholesale, e.g. when restoring
// state from request parameters.
func (s State) WithGrades(grades []int) State {
	s.Grades = grades
	return s
}

// SelectDepartment switches the department filter.
func (s State) SelectDepartment(department string) State {
	s.Department = department
	return s
}

// SetQuery replaces the search term.
func (s State) SetQuery(query string) State {
	s.Query = query
	return s
}

// SetAPOnly switches the AP-only toggle.
func (s State) SetAPOnly(on bool) State {
	s.APOnly = on
	return s
}

// ToggleExpanded expands the given course, collapsing any other; selecting
// the already-expanded course collapses it. At most one course is expanded.
func (s State) ToggleExpanded(courseID string) State {
	if s.ExpandedCourseID == courseID {
		s.ExpandedCourseID = ""
	} else {
		s.ExpandedCourseID = courseID
	}
	return s
}

// Filters maps the browse state onto the filter engine's predicate set.
func (s State) Filters() catalog.Filters {
	return catalog.Filters{
		Grades:     s.Grades,
		Department: s.Department,
		Query:      s.Query,
		APOnly:     s.APOnly,
	}
}

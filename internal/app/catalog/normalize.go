// Package catalog holds the pure course-catalog core: normalization of raw
// scraper records, filtering, and department grouping. Everything in this
// package is side-effect free and operates on in-memory values only.
package catalog

import (
	"strconv"
	"strings"

	"github.com/falconsdev/coursecatalog/internal/app/models"
)

const (
	// placeholder is shown for optional display fields the scraper could
	// not extract.
	placeholder = "—"
	// noPrerequisite is the default when a course lists no prerequisites.
	noPrerequisite = "None"
	// apPrefix marks Advanced Placement courses. Matched case-sensitively
	// against the course name.
	apPrefix = "AP "
)

// Normalize maps raw catalog records into canonical courses. It is total and
// order-preserving: every record yields exactly one course and missing
// optional fields become documented defaults rather than errors.
func Normalize(records []models.RawCourseRecord) []models.Course {
	courses := make([]models.Course, 0, len(records))
	for _, r := range records {
		courses = append(courses, normalizeRecord(r))
	}
	return courses
}

func normalizeRecord(r models.RawCourseRecord) models.Course {
	return models.Course{
		ID:           r.Code,
		Code:         r.Code,
		Name:         r.Name,
		Department:   departmentFor(r.Subject, r.SubSubject),
		Subject:      r.Subject,
		Grades:       r.Grades,
		Tracks:       r.Tracks,
		Length:       textOr(r.Duration, placeholder),
		Credits:      formatCredits(r.Credits),
		Prerequisite: textOr(r.Prerequisites, noPrerequisite),
		Diploma:      textOr(r.DiplomaCategory, placeholder),
		Description:  textOr(r.Description, ""),
		Notes:        textOr(r.Notes, ""),
		Fees:         textOr(r.Fees, ""),
		AP:           strings.HasPrefix(r.Name, apPrefix),
	}
}

// departmentFor derives the display-grouping department. English courses are
// grouped under one department regardless of their grade-level sub-subject;
// everything else groups by sub-subject when the scraper found one.
func departmentFor(subject string, subSubject *string) string {
	if subject == "English" {
		return subject
	}
	if subSubject != nil && *subSubject != "" {
		return *subSubject
	}
	return subject
}

func formatCredits(credits *float64) string {
	if credits == nil {
		return placeholder
	}
	return strconv.FormatFloat(*credits, 'f', -1, 64)
}

func textOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/falconsdev/coursecatalog/internal/app/models"
)

// Group partitions courses by department. Courses keep their relative order
// within each bucket (first-seen order of the input); buckets are sorted by
// department name using English collation. An empty input yields an empty
// sequence.
func Group(courses []models.Course) []models.CourseGroup {
	byDept := make(map[string]int)
	groups := make([]models.CourseGroup, 0)
	for _, c := range courses {
		idx, ok := byDept[c.Department]
		if !ok {
			idx = len(groups)
			byDept[c.Department] = idx
			groups = append(groups, models.CourseGroup{Department: c.Department})
		}
		groups[idx].Courses = append(groups[idx].Courses, c)
	}

	col := collate.New(language.English)
	sort.SliceStable(groups, func(i, j int) bool {
		return col.CompareString(groups[i].Department, groups[j].Department) < 0
	})
	return groups
}

// Departments returns the distinct department names of the given courses,
// sorted with English collation. Called on the full canonical dataset to
// populate the department filter control.
func Departments(courses []models.Course) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, c := range courses {
		if !seen[c.Department] {
			seen[c.Department] = true
			names = append(names, c.Department)
		}
	}

	col := collate.New(language.English)
	col.SortStrings(names)
	return names
}

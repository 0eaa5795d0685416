package view_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/falconsdev/coursecatalog/internal/app/models"
	"github.com/falconsdev/coursecatalog/internal/app/view"
)

func TestDefaultState(t *testing.T) {
	s := view.DefaultState()
	if diff := cmp.Diff([]int{9, 10, 11, 12}, s.Grades); diff != "" {
		t.Errorf("default grades mismatch:\n%s", diff)
	}
	if s.Department != "All" {
		t.Errorf("Department = %q, want \"All\"", s.Department)
	}
	if s.Query != "" || s.APOnly || s.ExpandedCourseID != "" {
		t.Errorf("unexpected non-zero defaults: %+v", s)
	}
}

func TestToggleGrade(t *testing.T) {
	s := view.DefaultState()

	s = s.ToggleGrade(9)
	if diff := cmp.Diff([]int{10, 11, 12}, s.Grades); diff != "" {
		t.Errorf("after removing 9:\n%s", diff)
	}

	s = s.ToggleGrade(9)
	if diff := cmp.Diff([]int{10, 11, 12, 9}, s.Grades); diff != "" {
		t.Errorf("after re-adding 9:\n%s", diff)
	}
}

func TestToggleGrade_DoesNotMutateReceiver(t *testing.T) {
	s := view.DefaultState()
	_ = s.ToggleGrade(9)
	if diff := cmp.Diff([]int{9, 10, 11, 12}, s.Grades); diff != "" {
		t.Errorf("receiver mutated:\n%s", diff)
	}
}

func TestToggleExpanded(t *testing.T) {
	s := view.DefaultState()

	s = s.ToggleExpanded("SCI401")
	if s.ExpandedCourseID != "SCI401" {
		t.Fatalf("ExpandedCourseID = %q, want SCI401", s.ExpandedCourseID)
	}

	// Expanding another card collapses the first.
	s = s.ToggleExpanded("MAT300")
	if s.ExpandedCourseID != "MAT300" {
		t.Fatalf("ExpandedCourseID = %q, want MAT300", s.ExpandedCourseID)
	}

	// Re-selecting the expanded card collapses it.
	s = s.ToggleExpanded("MAT300")
	if s.ExpandedCourseID != "" {
		t.Fatalf("ExpandedCourseID = %q, want empty", s.ExpandedCourseID)
	}
}

// Filter changes never reset the expansion, even when the expanded course is
// filtered out of view.
func TestExpansionSurvivesFilterChanges(t *testing.T) {
	s := view.DefaultState().ToggleExpanded("SCI401")
	s = s.SetQuery("algebra").SelectDepartment("Mathematics").SetAPOnly(true).ToggleGrade(12)
	if s.ExpandedCourseID != "SCI401" {
		t.Errorf("ExpandedCourseID = %q, want SCI401", s.ExpandedCourseID)
	}
}

func buildDataset() []models.Course {
	return []models.Course{
		{ID: "SCI401", Name: "AP Biology", Department: "Science", Grades: []int{10, 11, 12}, AP: true},
		{ID: "MAT300", Name: "Algebra 2", Department: "Mathematics", Grades: []int{10, 11}},
		{ID: "ENG110", Name: "English 9", Department: "English", Grades: []int{9}},
	}
}

func TestBuild(t *testing.T) {
	departments := []string{"English", "Mathematics", "Science"}
	m := view.Build(buildDataset(), departments, view.DefaultState())

	if m.Count != 3 || m.NoResults {
		t.Errorf("Count = %d, NoResults = %v; want 3, false", m.Count, m.NoResults)
	}
	if diff := cmp.Diff([]string{"All", "English", "Mathematics", "Science"}, m.Departments); diff != "" {
		t.Errorf("department options mismatch:\n%s", diff)
	}
	wantGroups := []string{"English", "Mathematics", "Science"}
	for i, g := range m.Groups {
		if g.Department != wantGroups[i] {
			t.Errorf("Groups[%d].Department = %q, want %q", i, g.Department, wantGroups[i])
		}
	}
}

func TestBuild_NoResults(t *testing.T) {
	s := view.DefaultState().SetQuery("underwater basket weaving")
	m := view.Build(buildDataset(), []string{"English"}, s)
	if !m.NoResults || m.Count != 0 || len(m.Groups) != 0 {
		t.Errorf("expected empty view model, got count=%d groups=%d", m.Count, len(m.Groups))
	}
}

func TestBuild_RecomputesPerState(t *testing.T) {
	dataset := buildDataset()
	departments := []string{"English", "Mathematics", "Science"}

	ap := view.Build(dataset, departments, view.DefaultState().SetAPOnly(true))
	if ap.Count != 1 || ap.Groups[0].Courses[0].ID != "SCI401" {
		t.Errorf("apOnly view mismatch: %+v", ap.Groups)
	}

	ninth := view.Build(dataset, departments, view.DefaultState().WithGrades([]int{9}))
	if ninth.Count != 1 || ninth.Groups[0].Department != "English" {
		t.Errorf("grade-9 view mismatch: %+v", ninth.Groups)
	}
}

package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/falconsdev/coursecatalog/internal/app/catalog"
	"github.com/falconsdev/coursecatalog/internal/app/models"
)

func TestGroup_SortsDepartmentsKeepsCourseOrder(t *testing.T) {
	courses := []models.Course{
		{ID: "S1", Department: "Science"},
		{ID: "M1", Department: "Mathematics"},
		{ID: "S2", Department: "Science"},
	}

	got := catalog.Group(courses)
	want := []models.CourseGroup{
		{Department: "Mathematics", Courses: []models.Course{{ID: "M1", Department: "Mathematics"}}},
		{Department: "Science", Courses: []models.Course{
			{ID: "S1", Department: "Science"},
			{ID: "S2", Department: "Science"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Group mismatch:\n%s", diff)
	}
}

func TestGroup_Empty(t *testing.T) {
	got := catalog.Group(nil)
	if len(got) != 0 {
		t.Errorf("expected empty sequence, got %d groups", len(got))
	}
}

func TestGroup_SingleDepartment(t *testing.T) {
	courses := []models.Course{
		{ID: "E2", Department: "English"},
		{ID: "E1", Department: "English"},
	}
	got := catalog.Group(courses)
	if len(got) != 1 {
		t.Fatalf("expected one group, got %d", len(got))
	}
	if diff := cmp.Diff([]string{"E2", "E1"}, ids(got[0].Courses)); diff != "" {
		t.Errorf("relative order within bucket not preserved:\n%s", diff)
	}
}

func TestDepartments_DistinctSorted(t *testing.T) {
	courses := []models.Course{
		{ID: "1", Department: "World Languages"},
		{ID: "2", Department: "English"},
		{ID: "3", Department: "Business & Marketing"},
		{ID: "4", Department: "English"},
		{ID: "5", Department: "Mathematics"},
	}
	got := catalog.Departments(courses)
	want := []string{"Business & Marketing", "English", "Mathematics", "World Languages"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Departments mismatch:\n%s", diff)
	}
}

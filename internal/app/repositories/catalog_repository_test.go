package repositories_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/falconsdev/coursecatalog/internal/app/repositories"
	"github.com/falconsdev/coursecatalog/internal/pkg/apperrors"
)

const artifactJSON = `[
  {
    "code": "SCI401",
    "name": "AP Biology",
    "subject": "Science",
    "sub_subject": null,
    "credits": 1.0,
    "duration": "Full Year",
    "grades": [10, 11, 12],
    "prerequisites": "Biology",
    "diploma_category": "Lab Science",
    "fees": null,
    "notes": null,
    "description": "College-level biology.",
    "tracks": ["College Prep", "STEM"]
  },
  {
    "code": "ENG101",
    "name": "English 9",
    "subject": "English",
    "sub_subject": "English 9",
    "credits": 1.0,
    "duration": "Full Year",
    "grades": [9],
    "prerequisites": null,
    "diploma_category": "English",
    "fees": null,
    "notes": null,
    "description": null,
    "tracks": ["Language Arts"]
  }
]`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing artifact: %v", err)
	}
	return path
}

func TestNewCatalogRepository_LoadsArtifact(t *testing.T) {
	repo, err := repositories.NewCatalogRepository(writeArtifact(t, artifactJSON), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCatalogRepository: %v", err)
	}

	if repo.Count() != 2 {
		t.Errorf("Count = %d, want 2", repo.Count())
	}

	course, err := repo.CourseByID("SCI401")
	if err != nil {
		t.Fatalf("CourseByID: %v", err)
	}
	if !course.AP || course.Department != "Science" {
		t.Errorf("normalization not applied: %+v", course)
	}

	// English 9's sub-subject must not leak into the department set.
	if diff := cmp.Diff([]string{"English", "Science"}, repo.Departments()); diff != "" {
		t.Errorf("Departments mismatch:\n%s", diff)
	}
}

func TestNewCatalogRepository_MissingFileUsesEmbeddedDefaults(t *testing.T) {
	repo, err := repositories.NewCatalogRepository(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCatalogRepository: %v", err)
	}
	if repo.Count() == 0 {
		t.Error("embedded default dataset should not be empty")
	}
	if len(repo.Departments()) == 0 {
		t.Error("embedded default dataset should cover at least one department")
	}
}

func TestNewCatalogRepository_MalformedArtifact(t *testing.T) {
	_, err := repositories.NewCatalogRepository(writeArtifact(t, "{not json"), zerolog.Nop())
	if !errors.Is(err, apperrors.ErrCatalogUnavailable) {
		t.Errorf("err = %v, want ErrCatalogUnavailable", err)
	}
}

func TestCourseByID_NotFound(t *testing.T) {
	repo, err := repositories.NewCatalogRepository(writeArtifact(t, artifactJSON), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCatalogRepository: %v", err)
	}
	_, err = repo.CourseByID("NOPE999")
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestAllCourses_PreservesArtifactOrder(t *testing.T) {
	repo, err := repositories.NewCatalogRepository(writeArtifact(t, artifactJSON), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCatalogRepository: %v", err)
	}
	courses := repo.AllCourses()
	if courses[0].ID != "SCI401" || courses[1].ID != "ENG101" {
		t.Errorf("order not preserved: %v, %v", courses[0].ID, courses[1].ID)
	}
}

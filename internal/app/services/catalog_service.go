package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/falconsdev/coursecatalog/internal/app/catalog"
	"github.com/falconsdev/coursecatalog/internal/app/models"
	"github.com/falconsdev/coursecatalog/internal/app/repositories"
	"github.com/falconsdev/coursecatalog/internal/app/view"
)

// CatalogService handles course catalog queries. All operations are pure
// reads over the immutable dataset held by the repository.
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo *repositories.CatalogRepository, lgr zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      lgr,
	}
}

// ListCourses returns the courses matching the filters, in dataset order.
func (s *CatalogService) ListCourses(ctx context.Context, filters catalog.Filters) []models.Course {
	return catalog.Filter(s.catalogRepo.AllCourses(), filters)
}

// ListGroupedCourses returns the filtered courses partitioned by department.
// The second return value is the total number of matching courses.
func (s *CatalogService) ListGroupedCourses(ctx context.Context, filters catalog.Filters) ([]models.CourseGroup, int) {
	filtered := catalog.Filter(s.catalogRepo.AllCourses(), filters)
	return catalog.Group(filtered), len(filtered)
}

// GetCourse retrieves a single course by its id.
func (s *CatalogService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	return s.catalogRepo.CourseByID(id)
}

// GetDepartments returns the department set of the full dataset.
func (s *CatalogService) GetDepartments(ctx context.Context) []string {
	return s.catalogRepo.Departments()
}

// BuildView derives the complete view model for one browse state.
func (s *CatalogService) BuildView(ctx context.Context, state view.State) view.Model {
	return view.Build(s.catalogRepo.AllCourses(), s.catalogRepo.Departments(), state)
}

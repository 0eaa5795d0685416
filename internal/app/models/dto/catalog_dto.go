package dto

import (
	"github.com/falconsdev/coursecatalog/internal/app/models"
)

// CourseQuery binds the filter parameters of the course listing endpoints.
// Grades stays a raw string because its presence matters: an absent
// parameter means "all grades" while an explicitly empty one means an empty
// selection, which matches nothing.
type CourseQuery struct {
	Grades     *string `form:"grades"`
	Department string  `form:"department" binding:"omitempty,max=100"`
	Query      string  `form:"q" binding:"omitempty,max=200"`
	APOnly     bool    `form:"ap"`
}

// ViewQuery binds the browse-state parameters of the view endpoint.
type ViewQuery struct {
	CourseQuery
	Expanded string `form:"expanded" binding:"omitempty,max=50"`
}

// CourseListResponse is the payload of the flat course listing.
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
	Count   int             `json:"count"`
}

// GroupedCoursesResponse is the payload of the grouped course listing.
type GroupedCoursesResponse struct {
	Groups []models.CourseGroup `json:"groups"`
	Count  int                  `json:"count"`
}

// DepartmentListResponse is the payload of the department listing.
type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}

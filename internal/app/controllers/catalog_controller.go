package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/falconsdev/coursecatalog/internal/app/catalog"
	"github.com/falconsdev/coursecatalog/internal/app/models/dto"
	"github.com/falconsdev/coursecatalog/internal/app/services"
	"github.com/falconsdev/coursecatalog/internal/app/view"
	"github.com/falconsdev/coursecatalog/internal/middleware"
)

// CatalogController handles course catalog operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCourses lists courses matching the active filters
// @Summary List courses
// @Description Retrieves courses matching the grade, department, AP, and search filters, in catalog order
// @Tags courses
// @Accept json
// @Produce json
// @Param grades query string false "Comma-separated grade levels (default all of 9,10,11,12; empty matches nothing)"
// @Param department query string false "Department name, or All"
// @Param q query string false "Free-text search over name, code, department, and description"
// @Param ap query bool false "Only Advanced Placement courses"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	filters, ok := c.bindFilters(ctx)
	if !ok {
		return
	}

	courses := c.catalogService.ListCourses(ctx, filters)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CourseListResponse{
			Courses: courses,
			Count:   len(courses),
		},
		Timestamp: time.Now(),
	})
}

// ListGroupedCourses lists filtered courses grouped by department
// @Summary List courses grouped by department
// @Description Retrieves courses matching the filters, partitioned by department and sorted by department name
// @Tags courses
// @Accept json
// @Produce json
// @Param grades query string false "Comma-separated grade levels (default all of 9,10,11,12; empty matches nothing)"
// @Param department query string false "Department name, or All"
// @Param q query string false "Free-text search over name, code, department, and description"
// @Param ap query bool false "Only Advanced Placement courses"
// @Success 200 {object} dto.APIResponse{data=dto.GroupedCoursesResponse} "Grouped courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Router /courses/grouped [get]
func (c *CatalogController) ListGroupedCourses(ctx *gin.Context) {
	filters, ok := c.bindFilters(ctx)
	if !ok {
		return
	}

	groups, count := c.catalogService.ListGroupedCourses(ctx, filters)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.GroupedCoursesResponse{
			Groups: groups,
			Count:  count,
		},
		Timestamp: time.Now(),
	})
}

// GetCourseByCode retrieves a single course
// @Summary Get course by code
// @Description Retrieves a specific course by its course code
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CatalogController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.catalogService.GetCourse(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// ListDepartments lists the department filter options
// @Summary List departments
// @Description Retrieves the distinct, sorted department set of the full catalog
// @Tags departments
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Departments retrieved successfully"
// @Router /departments [get]
func (c *CatalogController) ListDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DepartmentListResponse{
			Departments: c.catalogService.GetDepartments(ctx),
		},
		Timestamp: time.Now(),
	})
}

// GetCatalogView derives the full browse view model
// @Summary Get catalog view
// @Description Retrieves the grouped results, shown-course count, and filter control options for one browse state
// @Tags catalog
// @Accept json
// @Produce json
// @Param grades query string false "Comma-separated grade levels (default all of 9,10,11,12; empty matches nothing)"
// @Param department query string false "Department name, or All"
// @Param q query string false "Free-text search over name, code, department, and description"
// @Param ap query bool false "Only Advanced Placement courses"
// @Param expanded query string false "Course code of the expanded card"
// @Success 200 {object} dto.APIResponse{data=view.Model} "View model retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid browse-state parameters"
// @Router /catalog/view [get]
func (c *CatalogController) GetCatalogView(ctx *gin.Context) {
	var query dto.ViewQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	state, ok := c.buildState(ctx, query)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalogService.BuildView(ctx, state),
		Timestamp: time.Now(),
	})
}

// bindFilters binds and validates the filter query parameters, writing the
// error response itself when they are invalid.
func (c *CatalogController) bindFilters(ctx *gin.Context) (catalog.Filters, bool) {
	var query dto.CourseQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return catalog.Filters{}, false
	}

	filters := catalog.DefaultFilters()
	if query.Grades != nil {
		grades, err := parseGrades(*query.Grades)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade filter")
			errorDetail = errorDetail.WithField("grades").WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return catalog.Filters{}, false
		}
		filters.Grades = grades
	}
	if query.Department != "" {
		filters.Department = query.Department
	}
	filters.Query = query.Query
	filters.APOnly = query.APOnly
	return filters, true
}

// buildState restores a browse state from request parameters by applying
// reducer transitions to the default state.
func (c *CatalogController) buildState(ctx *gin.Context, query dto.ViewQuery) (view.State, bool) {
	state := view.DefaultState()
	if query.Grades != nil {
		grades, err := parseGrades(*query.Grades)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade filter")
			errorDetail = errorDetail.WithField("grades").WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return view.State{}, false
		}
		state = state.WithGrades(grades)
	}
	if query.Department != "" {
		state = state.SelectDepartment(query.Department)
	}
	state = state.SetQuery(query.Query).SetAPOnly(query.APOnly)
	if query.Expanded != "" {
		state = state.ToggleExpanded(query.Expanded)
	}
	return state, true
}

// parseGrades parses a comma-separated grade list. The empty string is a
// valid empty selection.
func parseGrades(raw string) ([]int, error) {
	grades := make([]int, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		g, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, nil
}

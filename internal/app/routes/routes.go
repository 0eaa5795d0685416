package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/falconsdev/coursecatalog/internal/app/controllers"
	"github.com/falconsdev/coursecatalog/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// Course routes (public access)
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.ListCourses)
		courses.GET("/grouped", catalogController.ListGroupedCourses)
		courses.GET("/:code", catalogController.GetCourseByCode)
	}

	// Department routes (public access)
	departments := v1.Group("/departments")
	{
		departments.GET("", catalogController.ListDepartments)
	}

	// Catalog view route (public access)
	catalogGroup := v1.Group("/catalog")
	{
		catalogGroup.GET("/view", catalogController.GetCatalogView)
	}
}

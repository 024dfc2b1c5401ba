package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursesvc/internal/app/controllers"
	"github.com/yigit/coursesvc/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	homeController *controllers.HomeController,
) {
	router.GET("/", homeController.Greet)
	router.GET("/health", homeController.Health)

	courses := router.Group("/api/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		// Write routes get their JSON body parsed before the handler runs
		withBody := courses.Group("", middleware.ParseJSONBody(middleware.DefaultBodyLimit))
		withBody.POST("", courseController.CreateCourse)
		withBody.PUT("/:id", courseController.UpdateCourse)

		courses.DELETE("/:id", courseController.DeleteCourse)
	}
}

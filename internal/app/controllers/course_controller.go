package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursesvc/internal/app/services"
	"github.com/yigit/coursesvc/internal/middleware"
	"github.com/yigit/coursesvc/internal/pkg/apperrors"
	"github.com/yigit/coursesvc/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// courseID parses the :id path parameter. Ids without leading digits can never match a
// course, so they are answered like any other unknown id.
func courseID(ctx *gin.Context) (int64, bool) {
	id, ok := helpers.ParseLeadingInt(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrCourseNotFound)
		return 0, false
	}
	return id, true
}

// GetAllCourses lists the whole collection
// @Summary List courses
// @Description Returns every stored course in insertion order
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "All courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a course by ID
// @Summary Get a course
// @Description Returns the first course whose id matches
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course "The course"
// @Failure 404 {string} string "The course with the given ID was not found."
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Validates the name and appends a new course with a server assigned id
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Course name"
// @Success 200 {object} models.Course "The created course"
// @Failure 400 {string} string "Validation message"
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	course, err := c.courseService.CreateCourse(ctx, middleware.GetDocument(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// UpdateCourse renames an existing course
// @Summary Update a course
// @Description Renames the course in place. An unknown id is reported before an invalid body.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "New course name"
// @Success 200 {object} models.Course "The updated course"
// @Failure 400 {string} string "Validation message"
// @Failure 404 {string} string "The course with the given ID was not found."
// @Router /api/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, middleware.GetDocument(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Removes the course and returns it as it was before removal
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course "The deleted course"
// @Failure 404 {string} string "The course with the given ID was not found."
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.DeleteCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

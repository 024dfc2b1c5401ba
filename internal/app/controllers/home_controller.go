package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursesvc/internal/app/models/dto"
	"github.com/yigit/coursesvc/internal/app/services"
)

// Greeting is the body served at the site root
const Greeting = "Hello World from Express!"

// HomeController serves the root greeting and the health probe
type HomeController struct {
	courseService services.CourseService
}

// NewHomeController creates a new HomeController
func NewHomeController(courseService services.CourseService) *HomeController {
	return &HomeController{
		courseService: courseService,
	}
}

// Greet returns the fixed greeting
// @Summary Greeting
// @Tags home
// @Produce plain
// @Success 200 {string} string "Hello World from Express!"
// @Router / [get]
func (h *HomeController) Greet(ctx *gin.Context) {
	ctx.String(http.StatusOK, Greeting)
}

// Health reports liveness
// @Summary Health check
// @Tags home
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service is up"
// @Router /health [get]
func (h *HomeController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.HealthResponse{
		Status:  "ok",
		Courses: h.courseService.CountCourses(ctx),
	}))
}

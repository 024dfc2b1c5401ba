package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/coursesvc/internal/app/repositories"
	"github.com/yigit/coursesvc/internal/pkg/validation"
)

// Services holds all the service instances
type Services struct {
	CourseService CourseService
}

// NewServices initializes all services on top of the given repositories
func NewServices(repos *repositories.Repositories, schema *validation.CourseSchema, logger zerolog.Logger) *Services {
	return &Services{
		CourseService: NewCourseService(repos.CourseRepository, schema, logger),
	}
}

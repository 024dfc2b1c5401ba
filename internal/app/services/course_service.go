package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursesvc/internal/app/models"
	"github.com/yigit/coursesvc/internal/app/repositories"
	"github.com/yigit/coursesvc/internal/pkg/apperrors"
	"github.com/yigit/coursesvc/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, doc validation.Document) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, doc validation.Document) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) (*models.Course, error)
	CountCourses(ctx context.Context) int
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	schema     *validation.CourseSchema
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, schema *validation.CourseSchema, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		schema:     schema,
		logger:     logger.With().Str("component", "course_service").Logger(),
	}
}

// wrapLookupError keeps not-found errors recognizable and annotates everything else
func wrapLookupError(err error, action string, id int64) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}
	return fmt.Errorf("error %s course %d: %w", action, id, err)
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, wrapLookupError(err, "retrieving", id)
	}
	return course, nil
}

// CreateCourse validates doc and appends a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, doc validation.Document) (*models.Course, error) {
	input, result := s.schema.Validate(doc)
	if err := result.Err(); err != nil {
		s.logger.Debug().Interface("issues", result.Issues).Msg("Rejected course creation")
		return nil, err
	}

	course, err := s.courseRepo.CreateCourse(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Debug().Int64("courseID", course.ID).Str("name", course.Name).Msg("Course created")
	return course, nil
}

// UpdateCourse renames an existing course. A missing course is reported before an invalid
// payload.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, doc validation.Document) (*models.Course, error) {
	if _, err := s.courseRepo.GetCourseByID(ctx, id); err != nil {
		return nil, wrapLookupError(err, "retrieving", id)
	}

	input, result := s.schema.Validate(doc)
	if err := result.Err(); err != nil {
		s.logger.Debug().Int64("courseID", id).Interface("issues", result.Issues).Msg("Rejected course update")
		return nil, err
	}

	// The course may have been deleted since the lookup; the repository re-checks under its lock
	course, err := s.courseRepo.UpdateCourse(ctx, id, input.Name)
	if err != nil {
		return nil, wrapLookupError(err, "updating", id)
	}

	s.logger.Debug().Int64("courseID", course.ID).Str("name", course.Name).Msg("Course updated")
	return course, nil
}

// DeleteCourse removes a course and returns it as it was before removal
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.DeleteCourse(ctx, id)
	if err != nil {
		return nil, wrapLookupError(err, "deleting", id)
	}

	s.logger.Debug().Int64("courseID", course.ID).Msg("Course deleted")
	return course, nil
}

// CountCourses returns the current size of the collection
func (s *courseServiceImpl) CountCourses(ctx context.Context) int {
	return s.courseRepo.Count()
}

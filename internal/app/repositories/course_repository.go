package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/yigit/coursesvc/internal/app/models"
	"github.com/yigit/coursesvc/internal/config"
	"github.com/yigit/coursesvc/internal/pkg/apperrors"
)

// CourseRepository keeps the course collection in process memory. The slice preserves
// insertion order; all access goes through mu so handlers running on separate goroutines
// each see a consistent collection.
type CourseRepository struct {
	mu         sync.RWMutex
	courses    []models.Course
	idStrategy string
	lastID     int64
}

// NewCourseRepository creates an empty CourseRepository using the given id strategy
// (config.IDStrategySequence or config.IDStrategyLength).
func NewCourseRepository(idStrategy string) (*CourseRepository, error) {
	switch idStrategy {
	case config.IDStrategySequence, config.IDStrategyLength:
	default:
		return nil, fmt.Errorf("unknown course id strategy %q", idStrategy)
	}
	return &CourseRepository{
		courses:    []models.Course{},
		idStrategy: idStrategy,
	}, nil
}

// nextID must be called with mu held for writing
func (r *CourseRepository) nextID() int64 {
	if r.idStrategy == config.IDStrategyLength {
		return int64(len(r.courses)) + 1
	}
	r.lastID++
	return r.lastID
}

// indexOf returns the position of the first course with id, or -1. Callers hold mu.
func (r *CourseRepository) indexOf(id int64) int {
	for i := range r.courses {
		if r.courses[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateCourse appends a new course and returns it with its assigned id
func (r *CourseRepository) CreateCourse(ctx context.Context, name string) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	course := models.Course{ID: r.nextID(), Name: name}
	r.courses = append(r.courses, course)
	return &course, nil
}

// GetCourseByID returns a copy of the first course whose id matches
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	course := r.courses[i]
	return &course, nil
}

// GetAllCourses returns a snapshot of the collection in insertion order
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, len(r.courses))
	copy(courses, r.courses)
	return courses, nil
}

// UpdateCourse renames the first course whose id matches and returns the updated course
func (r *CourseRepository) UpdateCourse(ctx context.Context, id int64, name string) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	r.courses[i].Name = name
	course := r.courses[i]
	return &course, nil
}

// DeleteCourse removes the first course whose id matches and returns it as it was stored
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	course := r.courses[i]
	r.courses = append(r.courses[:i], r.courses[i+1:]...)
	return &course, nil
}

// Count returns the number of stored courses
func (r *CourseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.courses)
}

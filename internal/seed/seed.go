package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appRepos "github.com/yigit/coursesvc/internal/app/repositories"
)

// CreateDefaultCourses fills an empty collection with the configured course names, in order.
// A collection that already holds courses is left untouched.
func CreateDefaultCourses(ctx context.Context, courseRepo *appRepos.CourseRepository, names []string, lgr zerolog.Logger) error {
	if count := courseRepo.Count(); count > 0 {
		lgr.Info().Int("courses", count).Msg("Course collection already populated, skipping seed")
		return nil
	}

	lgr.Info().Int("courses", len(names)).Msg("Seeding default courses...")
	var finalErr error // collect failures without stopping the loop

	for _, name := range names {
		course, err := courseRepo.CreateCourse(ctx, name)
		if err != nil {
			lgr.Error().Err(err).Str("name", name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, fmt.Errorf("seed course %q: %w", name, err))
			continue
		}
		lgr.Debug().Int64("courseID", course.ID).Str("name", course.Name).Msg("Default course created")
	}

	lgr.Info().Msg("Default course seeding finished.")
	return finalErr
}

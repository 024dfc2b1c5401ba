package repositories

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(idStrategy string) (*Repositories, error) {
	courseRepo, err := NewCourseRepository(idStrategy)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		CourseRepository: courseRepo,
	}, nil
}

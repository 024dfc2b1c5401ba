package dto

// CourseRequest documents the body accepted by the create and update endpoints.
// Bodies are validated by validation.CourseSchema, not by binding tags.
type CourseRequest struct {
	Name string `json:"name" example:"course6" minLength:"3"`
}

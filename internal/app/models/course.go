package models

// Course is a single entry of the course collection.
type Course struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"course1"`
}

package models

import "time"

var (
	FirestoreMaterialsCollection = "course_materials"
)

// CourseMaterial is a document (slides, handout, link) attached to a course.
// It carries no access list of its own; readers are the parent course's
// instructor and enrolled students.
type CourseMaterial struct {
	ID           string    `json:"id" mapstructure:"id"`
	CourseID     string    `json:"courseID" mapstructure:"courseID"`
	Title        string    `json:"title" mapstructure:"title"`
	Description  string    `json:"description" mapstructure:"description"`
	FileURL      string    `json:"fileUrl" mapstructure:"fileUrl"`
	UploadedByID string    `json:"uploadedByID" mapstructure:"uploadedByID"`
	CreatedAt    time.Time `json:"createdAt" mapstructure:"createdAt"`
}

type CreateMaterialRequest struct {
	CourseID    string `json:"courseID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	UploadedBy  *User  `json:"-"`
}

type EditMaterialRequest struct {
	MaterialID  string `json:"materialID,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
}

type DeleteMaterialRequest struct {
	MaterialID string `json:"materialID,omitempty"`
}

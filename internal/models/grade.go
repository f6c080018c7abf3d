package models

import "time"

var (
	FirestoreGradesCollection = "grades"
)

// Grade is a course-level grade record. Readable only by the named student,
// the course's instructor, or an admin.
type Grade struct {
	ID           string    `json:"id" mapstructure:"id"`
	StudentID    string    `json:"studentID" mapstructure:"studentID"`
	CourseID     string    `json:"courseID" mapstructure:"courseID"`
	AssignmentID string    `json:"assignmentID,omitempty" mapstructure:"assignmentID"`
	Score        float64   `json:"score" mapstructure:"score"`
	Comment      string    `json:"comment" mapstructure:"comment"`
	GradedByID   string    `json:"gradedByID" mapstructure:"gradedByID"`
	CreatedAt    time.Time `json:"createdAt" mapstructure:"createdAt"`
}

type CreateGradeRequest struct {
	StudentID    string  `json:"studentID"`
	CourseID     string  `json:"courseID"`
	AssignmentID string  `json:"assignmentID,omitempty"`
	Score        float64 `json:"score"`
	Comment      string  `json:"comment"`
	GradedBy     *User   `json:"-"`
}

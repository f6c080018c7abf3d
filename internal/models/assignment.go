package models

import "time"

var (
	FirestoreAssignmentsCollection = "assignments"
	FirestoreSubmissionsCollection = "submissions"
)

// Assignment is a graded piece of coursework. Submissions live in a
// subcollection keyed by student id, so resubmitting overwrites rather than
// duplicates.
type Assignment struct {
	ID          string    `json:"id" mapstructure:"id"`
	CourseID    string    `json:"courseID" mapstructure:"courseID"`
	Title       string    `json:"title" mapstructure:"title"`
	Description string    `json:"description" mapstructure:"description"`
	DueDate     time.Time `json:"dueDate" mapstructure:"dueDate"`
	MaxPoints   int       `json:"maxPoints" mapstructure:"maxPoints"`
}

// Submission is a single student's answer to an assignment.
type Submission struct {
	StudentID   string    `json:"studentID" mapstructure:"studentID"`
	Content     string    `json:"content" mapstructure:"content"`
	SubmittedAt time.Time `json:"submittedAt" mapstructure:"submittedAt"`
	Grade       *float64  `json:"grade,omitempty" mapstructure:"grade"`
	Feedback    string    `json:"feedback,omitempty" mapstructure:"feedback"`
}

type CreateAssignmentRequest struct {
	CourseID    string    `json:"courseID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	MaxPoints   int       `json:"maxPoints"`
}

type EditAssignmentRequest struct {
	AssignmentID string    `json:"assignmentID,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate"`
	MaxPoints    int       `json:"maxPoints"`
}

type DeleteAssignmentRequest struct {
	AssignmentID string `json:"assignmentID,omitempty"`
}

// CreateSubmissionRequest is the parameter struct for the CreateSubmission function.
type CreateSubmissionRequest struct {
	AssignmentID string `json:"assignmentID,omitempty"`
	Content      string `json:"content"`
	CreatedBy    *User  `json:"-"`
}

// GradeSubmissionRequest is the parameter struct for the GradeSubmission function.
type GradeSubmissionRequest struct {
	AssignmentID string  `json:"assignmentID,omitempty"`
	StudentID    string  `json:"studentID"`
	Grade        float64 `json:"grade"`
	Feedback     string  `json:"feedback"`
	GradedBy     *User   `json:"-"`
}

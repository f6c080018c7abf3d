package models

var (
	FirestoreCoursesCollection = "courses"
)

// Course is the root entity every course-scoped resource hangs off of.
// Access relationships for materials, assignments, grades and notifications
// are all resolved through the owning course's instructor and student set.
type Course struct {
	ID           string   `json:"id" mapstructure:"id"`
	Title        string   `json:"title" mapstructure:"title"`
	Code         string   `json:"code" mapstructure:"code"`
	Term         string   `json:"term" mapstructure:"term"`
	InstructorID string   `json:"instructorID" mapstructure:"instructorID"`
	StudentIDs   []string `json:"studentIDs" mapstructure:"studentIDs"`
	IsArchived   bool     `json:"isArchived" mapstructure:"isArchived"`
}

type GetCourseRequest struct {
	CourseID string `json:"courseID"`
}

type CreateCourseRequest struct {
	Title     string `json:"title"`
	Code      string `json:"code"`
	Term      string `json:"term"`
	CreatedBy *User  `json:"-"`
}

type DeleteCourseRequest struct {
	CourseID string `json:"courseID"`
}

type EditCourseRequest struct {
	CourseID string `json:"courseID,omitempty"`
	Title    string `json:"title"`
	Code     string `json:"code"`
	Term     string `json:"term"`
}

// EnrollStudentRequest is the parameter struct for the EnrollStudent function.
type EnrollStudentRequest struct {
	CourseID  string `json:"courseID,omitempty"`
	StudentID string `json:"studentID"`
}

// UnenrollStudentRequest is the parameter struct for the UnenrollStudent function.
type UnenrollStudentRequest struct {
	CourseID  string `json:"courseID,omitempty"`
	StudentID string `json:"studentID"`
}

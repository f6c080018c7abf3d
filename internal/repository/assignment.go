package repository

import (
	"fmt"
	"time"

	"campushub/internal/apperrors"
	"campushub/internal/firebase"
	"campushub/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (fr *FirebaseRepository) GetAssignmentByID(ID string) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := fr.getDocument(models.FirestoreAssignmentsCollection, ID, &assignment, apperrors.AssignmentNotFoundError); err != nil {
		return nil, err
	}
	assignment.ID = ID
	return &assignment, nil
}

func (fr *FirebaseRepository) CreateAssignment(c *models.CreateAssignmentRequest) (assignment *models.Assignment, err error) {
	assignment = &models.Assignment{
		CourseID:    c.CourseID,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.DueDate,
		MaxPoints:   c.MaxPoints,
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreAssignmentsCollection).Add(firebase.Context, map[string]interface{}{
		"courseID":    assignment.CourseID,
		"title":       assignment.Title,
		"description": assignment.Description,
		"dueDate":     assignment.DueDate,
		"maxPoints":   assignment.MaxPoints,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating assignment: %v", err)
	}
	assignment.ID = ref.ID

	return assignment, nil
}

func (fr *FirebaseRepository) EditAssignment(c *models.EditAssignmentRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreAssignmentsCollection).Doc(c.AssignmentID).Update(firebase.Context, []firestore.Update{
		{Path: "title", Value: c.Title},
		{Path: "description", Value: c.Description},
		{Path: "dueDate", Value: c.DueDate},
		{Path: "maxPoints", Value: c.MaxPoints},
	})
	return err
}

func (fr *FirebaseRepository) DeleteAssignment(c *models.DeleteAssignmentRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreAssignmentsCollection).Doc(c.AssignmentID).Delete(firebase.Context)
	return err
}

func (fr *FirebaseRepository) ListAssignmentsForCourse(courseID string) ([]*models.Assignment, error) {
	var assignments []*models.Assignment
	iter := fr.firestoreClient.Collection(models.FirestoreAssignmentsCollection).Where("courseID", "==", courseID).Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing assignments: %v", err)
		}

		var assignment models.Assignment
		if err := mapstructure.Decode(doc.Data(), &assignment); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		assignment.ID = doc.Ref.ID
		assignments = append(assignments, &assignment)
	}

	return assignments, nil
}

// CreateSubmission records a student's submission in the assignment's
// submissions subcollection. The document is keyed by student id, so a
// resubmission overwrites the previous one instead of duplicating it.
func (fr *FirebaseRepository) CreateSubmission(c *models.CreateSubmissionRequest) (*models.Submission, error) {
	submission := &models.Submission{
		StudentID:   c.CreatedBy.ID,
		Content:     c.Content,
		SubmittedAt: time.Now(),
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreAssignmentsCollection).Doc(c.AssignmentID).
		Collection(models.FirestoreSubmissionsCollection).Doc(submission.StudentID).Set(firebase.Context, map[string]interface{}{
		"studentID":   submission.StudentID,
		"content":     submission.Content,
		"submittedAt": submission.SubmittedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating submission: %v", err)
	}

	return submission, nil
}

// GradeSubmission attaches a grade and feedback to a student's submission.
func (fr *FirebaseRepository) GradeSubmission(c *models.GradeSubmissionRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreAssignmentsCollection).Doc(c.AssignmentID).
		Collection(models.FirestoreSubmissionsCollection).Doc(c.StudentID).Update(firebase.Context, []firestore.Update{
		{Path: "grade", Value: c.Grade},
		{Path: "feedback", Value: c.Feedback},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return apperrors.SubmissionNotFoundError
		}
		return err
	}
	return nil
}

func (fr *FirebaseRepository) ListSubmissions(assignmentID string) ([]*models.Submission, error) {
	var submissions []*models.Submission
	iter := fr.firestoreClient.Collection(models.FirestoreAssignmentsCollection).Doc(assignmentID).
		Collection(models.FirestoreSubmissionsCollection).Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing submissions: %v", err)
		}

		var submission models.Submission
		if err := mapstructure.Decode(doc.Data(), &submission); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		submissions = append(submissions, &submission)
	}

	return submissions, nil
}

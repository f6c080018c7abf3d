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
)

func (fr *FirebaseRepository) GetGradeByID(ID string) (*models.Grade, error) {
	var grade models.Grade
	if err := fr.getDocument(models.FirestoreGradesCollection, ID, &grade, apperrors.GradeNotFoundError); err != nil {
		return nil, err
	}
	grade.ID = ID
	return &grade, nil
}

func (fr *FirebaseRepository) CreateGrade(c *models.CreateGradeRequest) (grade *models.Grade, err error) {
	grade = &models.Grade{
		StudentID:    c.StudentID,
		CourseID:     c.CourseID,
		AssignmentID: c.AssignmentID,
		Score:        c.Score,
		Comment:      c.Comment,
		GradedByID:   c.GradedBy.ID,
		CreatedAt:    time.Now(),
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreGradesCollection).Add(firebase.Context, map[string]interface{}{
		"studentID":    grade.StudentID,
		"courseID":     grade.CourseID,
		"assignmentID": grade.AssignmentID,
		"score":        grade.Score,
		"comment":      grade.Comment,
		"gradedByID":   grade.GradedByID,
		"createdAt":    grade.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating grade: %v", err)
	}
	grade.ID = ref.ID

	return grade, nil
}

func (fr *FirebaseRepository) listGrades(query firestore.Query) ([]*models.Grade, error) {
	var grades []*models.Grade
	iter := query.Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing grades: %v", err)
		}

		var grade models.Grade
		if err := mapstructure.Decode(doc.Data(), &grade); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		grade.ID = doc.Ref.ID
		grades = append(grades, &grade)
	}

	return grades, nil
}

func (fr *FirebaseRepository) ListGradesForStudent(studentID string) ([]*models.Grade, error) {
	return fr.listGrades(fr.firestoreClient.Collection(models.FirestoreGradesCollection).Where("studentID", "==", studentID))
}

func (fr *FirebaseRepository) ListGradesForCourse(courseID string) ([]*models.Grade, error) {
	return fr.listGrades(fr.firestoreClient.Collection(models.FirestoreGradesCollection).Where("courseID", "==", courseID))
}

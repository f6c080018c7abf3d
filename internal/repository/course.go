package repository

import (
	"context"
	"fmt"

	"campushub/internal/apperrors"
	"campushub/internal/firebase"
	"campushub/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

// GetCourseByID fetches the Course document with the provided course ID.
func (fr *FirebaseRepository) GetCourseByID(ID string) (*models.Course, error) {
	var course models.Course
	if err := fr.getDocument(models.FirestoreCoursesCollection, ID, &course, apperrors.CourseNotFoundError); err != nil {
		return nil, err
	}
	course.ID = ID
	return &course, nil
}

func (fr *FirebaseRepository) CreateCourse(c *models.CreateCourseRequest) (course *models.Course, err error) {
	course = &models.Course{
		Title:        c.Title,
		Code:         c.Code,
		Term:         c.Term,
		InstructorID: c.CreatedBy.ID,
		StudentIDs:   []string{},
		IsArchived:   false,
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Add(firebase.Context, map[string]interface{}{
		"title":        course.Title,
		"code":         course.Code,
		"term":         course.Term,
		"instructorID": course.InstructorID,
		"studentIDs":   course.StudentIDs,
		"isArchived":   course.IsArchived,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %v\n", err)
	}
	course.ID = ref.ID

	return course, nil
}

func (fr *FirebaseRepository) EditCourse(c *models.EditCourseRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(c.CourseID).Update(firebase.Context, []firestore.Update{
		{Path: "title", Value: c.Title},
		{Path: "term", Value: c.Term},
		{Path: "code", Value: c.Code},
	})
	return err
}

func (fr *FirebaseRepository) DeleteCourse(c *models.DeleteCourseRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(c.CourseID).Delete(firebase.Context)
	return err
}

// ListCoursesForUser returns the courses the user participates in: every
// course for admins, taught courses for teachers, enrolled courses for
// students.
func (fr *FirebaseRepository) ListCoursesForUser(user *models.User) ([]*models.Course, error) {
	col := fr.firestoreClient.Collection(models.FirestoreCoursesCollection)

	var query firestore.Query
	switch user.Role {
	case models.RoleAdmin:
		query = col.Query
	case models.RoleTeacher:
		query = col.Where("instructorID", "==", user.ID)
	default:
		query = col.Where("studentIDs", "array-contains", user.ID)
	}

	var courses []*models.Course
	iter := query.Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing courses: %v", err)
		}

		var course models.Course
		if err := mapstructure.Decode(doc.Data(), &course); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		course.ID = doc.Ref.ID
		courses = append(courses, &course)
	}

	return courses, nil
}

// EnrollStudent adds a student to the course's enrollment set. The membership
// check and the write happen inside one transaction, and the write is an
// ArrayUnion, so concurrent enrolls can never produce a duplicate entry.
func (fr *FirebaseRepository) EnrollStudent(c *models.EnrollStudentRequest) error {
	ref := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(c.CourseID)
	return fr.firestoreClient.RunTransaction(firebase.Context, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return apperrors.CourseNotFoundError
		}

		students, err := doc.DataAt("studentIDs")
		if err != nil {
			return err
		}
		if contains(toStringSlice(students), c.StudentID) {
			return apperrors.NewConflictError("student is already enrolled in this course", c.StudentID)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "studentIDs", Value: firestore.ArrayUnion(c.StudentID)},
		})
	})
}

// UnenrollStudent removes a student from the course's enrollment set.
// Removing a student who is not enrolled is a conflict, not a silent no-op.
func (fr *FirebaseRepository) UnenrollStudent(c *models.UnenrollStudentRequest) error {
	ref := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(c.CourseID)
	return fr.firestoreClient.RunTransaction(firebase.Context, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return apperrors.CourseNotFoundError
		}

		students, err := doc.DataAt("studentIDs")
		if err != nil {
			return err
		}
		if !contains(toStringSlice(students), c.StudentID) {
			return apperrors.NewConflictError("student is not enrolled in this course", c.StudentID)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "studentIDs", Value: firestore.ArrayRemove(c.StudentID)},
		})
	})
}

package repository

import (
	"campushub/internal/authz"
	"campushub/internal/models"
)

// Relationship lookups. Course-scoped resources (materials, assignments,
// grades, notifications) carry no access list of their own; their
// relationships are resolved through the parent course. A child whose parent
// course is missing is treated as not found, never as accessible.

// CourseRelationships returns the access relationships for a course:
// the instructor owns it, enrolled students participate.
func (fr *FirebaseRepository) CourseRelationships(courseID string) (authz.Relationships, error) {
	course, err := fr.GetCourseByID(courseID)
	if err != nil {
		return authz.Relationships{}, err
	}

	return authz.Relationships{
		OwnerID:        course.InstructorID,
		ParticipantIDs: course.StudentIDs,
	}, nil
}

// GradeRelationships narrows the course relationships for a grade record:
// the course instructor owns it, but the only participant is the graded
// student, not the whole class.
func (fr *FirebaseRepository) GradeRelationships(grade *models.Grade) (authz.Relationships, error) {
	rel, err := fr.CourseRelationships(grade.CourseID)
	if err != nil {
		return authz.Relationships{}, err
	}

	return authz.Relationships{
		OwnerID:        rel.OwnerID,
		ParticipantIDs: []string{grade.StudentID},
	}, nil
}

// MessageRelationships maps a message onto the relationship model: the
// sender owns it and the recipient is the sole participant. There is no
// admin override on messages, so nothing else appears here.
func MessageRelationships(m *models.Message) authz.Relationships {
	return authz.Relationships{
		OwnerID:        m.SenderID,
		ParticipantIDs: []string{m.RecipientID},
	}
}

// NewsRelationships maps a news item onto the relationship model. Published
// items are publicly readable; everything else is policy-by-role.
func NewsRelationships(n *models.News) authz.Relationships {
	return authz.Relationships{
		Public: n.IsPublished,
	}
}

package authz

import (
	"testing"
	"time"

	"campushub/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	instructor   = Principal{ID: "t1", Role: models.RoleTeacher}
	otherTeacher = Principal{ID: "t2", Role: models.RoleTeacher}
	enrolled     = Principal{ID: "s1", Role: models.RoleStudent}
	outsider     = Principal{ID: "s2", Role: models.RoleStudent}
	admin        = Principal{ID: "a1", Role: models.RoleAdmin}

	courseRel = Relationships{OwnerID: "t1", ParticipantIDs: []string{"s1"}}
)

func TestCourseRead(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		want      bool
	}{
		{"admin", admin, true},
		{"instructor", instructor, true},
		{"enrolled student", enrolled, true},
		{"unenrolled student", outsider, false},
		{"teacher of another course", otherTeacher, false},
		{"anonymous", Anonymous, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.principal, ActionRead, ResourceCourse, courseRel)
			assert.Equal(t, tc.want, d.Allowed)
		})
	}
}

func TestCourseEnroll(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		want      bool
	}{
		{"admin", admin, true},
		{"instructor", instructor, true},
		{"enrolled student", enrolled, false},
		{"teacher of another course", otherTeacher, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.principal, ActionEnroll, ResourceCourse, courseRel)
			assert.Equal(t, tc.want, d.Allowed)
		})
	}
}

// A teacher who does not own the course must not be able to write materials
// to it; having the teacher role alone is not enough.
func TestMaterialWriteRequiresCourseOwnership(t *testing.T) {
	d := Authorize(otherTeacher, ActionCreate, ResourceMaterial, courseRel)
	assert.False(t, d.Allowed)

	assert.True(t, Authorize(instructor, ActionCreate, ResourceMaterial, courseRel).Allowed)
	assert.True(t, Authorize(admin, ActionCreate, ResourceMaterial, courseRel).Allowed)
}

func TestMaterialReadInheritsCourse(t *testing.T) {
	assert.True(t, Authorize(enrolled, ActionRead, ResourceMaterial, courseRel).Allowed)
	assert.False(t, Authorize(outsider, ActionRead, ResourceMaterial, courseRel).Allowed)
}

func TestSubmission(t *testing.T) {
	due := time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC)
	rel := courseRel
	rel.Deadline = &due

	onTime := due.Add(-time.Hour)
	late := due.Add(time.Minute)

	// enrolled student, before the deadline
	assert.True(t, AuthorizeAt(enrolled, ActionSubmit, ResourceAssignment, rel, onTime).Allowed)

	// enrolled student, after the deadline
	assert.False(t, AuthorizeAt(enrolled, ActionSubmit, ResourceAssignment, rel, late).Allowed)

	// unenrolled student, even before the deadline
	assert.False(t, AuthorizeAt(outsider, ActionSubmit, ResourceAssignment, rel, onTime).Allowed)

	// the instructor does not submit to their own assignment
	assert.False(t, AuthorizeAt(instructor, ActionSubmit, ResourceAssignment, rel, onTime).Allowed)
}

func TestGradeRead(t *testing.T) {
	// grade for s1 in t1's course: only s1, t1 and admins may read it
	gradeRel := Relationships{OwnerID: "t1", ParticipantIDs: []string{"s1"}}

	tests := []struct {
		name      string
		principal Principal
		want      bool
	}{
		{"the graded student", enrolled, true},
		{"the course instructor", instructor, true},
		{"admin", admin, true},
		{"another student", outsider, false},
		{"another teacher", otherTeacher, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.principal, ActionRead, ResourceGrade, gradeRel)
			assert.Equal(t, tc.want, d.Allowed)
		})
	}
}

func TestNotification(t *testing.T) {
	assert.True(t, Authorize(instructor, ActionCreate, ResourceNotification, courseRel).Allowed)
	assert.True(t, Authorize(admin, ActionCreate, ResourceNotification, courseRel).Allowed)
	assert.False(t, Authorize(enrolled, ActionCreate, ResourceNotification, courseRel).Allowed)

	assert.True(t, Authorize(enrolled, ActionMarkRead, ResourceNotification, courseRel).Allowed)
	assert.False(t, Authorize(outsider, ActionMarkRead, ResourceNotification, courseRel).Allowed)
}

// Messages are private between sender and recipient; the admin role grants
// no access to them. This is deliberate, not an oversight.
func TestMessageHasNoAdminBypass(t *testing.T) {
	rel := Relationships{OwnerID: "sender", ParticipantIDs: []string{"recipient"}}

	sender := Principal{ID: "sender", Role: models.RoleStudent}
	recipient := Principal{ID: "recipient", Role: models.RoleTeacher}

	for _, action := range []Action{ActionRead, ActionMarkRead, ActionDelete} {
		assert.True(t, Authorize(sender, action, ResourceMessage, rel).Allowed, "sender %s", action)
		assert.True(t, Authorize(recipient, action, ResourceMessage, rel).Allowed, "recipient %s", action)
		assert.False(t, Authorize(admin, action, ResourceMessage, rel).Allowed, "admin %s", action)
		assert.False(t, Authorize(outsider, action, ResourceMessage, rel).Allowed, "outsider %s", action)
	}
}

func TestNews(t *testing.T) {
	published := Relationships{Public: true}
	draft := Relationships{Public: false}

	// published news is readable by anyone, authenticated or not
	assert.True(t, Authorize(Anonymous, ActionRead, ResourceNews, published).Allowed)
	assert.True(t, Authorize(enrolled, ActionRead, ResourceNews, published).Allowed)

	// drafts are admin-only
	assert.False(t, Authorize(Anonymous, ActionRead, ResourceNews, draft).Allowed)
	assert.False(t, Authorize(instructor, ActionRead, ResourceNews, draft).Allowed)
	assert.True(t, Authorize(admin, ActionRead, ResourceNews, draft).Allowed)

	// all writes are admin-only
	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete, ActionSetVisibility} {
		assert.True(t, Authorize(admin, action, ResourceNews, draft).Allowed, "admin %s", action)
		assert.False(t, Authorize(instructor, action, ResourceNews, draft).Allowed, "teacher %s", action)
	}
}

func TestCourseCreate(t *testing.T) {
	assert.True(t, Authorize(instructor, ActionCreate, ResourceCourse, Relationships{}).Allowed)
	assert.True(t, Authorize(admin, ActionCreate, ResourceCourse, Relationships{}).Allowed)
	assert.False(t, Authorize(enrolled, ActionCreate, ResourceCourse, Relationships{}).Allowed)
	assert.False(t, Authorize(Anonymous, ActionCreate, ResourceCourse, Relationships{}).Allowed)
}

func TestUnknownActionOrResourceDenied(t *testing.T) {
	assert.False(t, Authorize(admin, Action("frobnicate"), ResourceCourse, courseRel).Allowed)
	assert.False(t, Authorize(admin, ActionRead, Resource("widget"), courseRel).Allowed)
}

// An anonymous principal must never match an owner or participant rule via
// empty-string ids in the relationship facts.
func TestAnonymousNeverMatchesEmptyIDs(t *testing.T) {
	rel := Relationships{OwnerID: "", ParticipantIDs: []string{""}}
	assert.False(t, Authorize(Anonymous, ActionRead, ResourceCourse, rel).Allowed)
}

func TestDenyReasonIsSet(t *testing.T) {
	d := Authorize(outsider, ActionRead, ResourceCourse, courseRel)
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)
}

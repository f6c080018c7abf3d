// Package authz is the single authorization decision point for the server.
// Every route handler resolves the resource's relationships first, then asks
// Authorize whether the principal may act. The decision is a pure function of
// its inputs; all datastore reads happen before it runs and it never writes.
package authz

import (
	"time"

	"campushub/internal/models"
)

// Principal is the authenticated actor making a request. The zero value is
// the anonymous principal, used for routes that allow unauthenticated reads.
type Principal struct {
	ID   string
	Role models.Role
}

// Anonymous is the principal attached to unauthenticated requests.
var Anonymous = Principal{}

// Action names an operation on a resource.
type Action string

const (
	ActionRead     Action = "read"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionEnroll   Action = "enroll"
	ActionUnenroll Action = "unenroll"
	ActionSubmit   Action = "submit"
	ActionGrade    Action = "grade"
	ActionMarkRead Action = "markRead"
	// ActionSetVisibility toggles the featured flag on a news item.
	ActionSetVisibility Action = "setVisibility"
)

// Resource names a type of access-controlled entity.
type Resource string

const (
	ResourceCourse       Resource = "course"
	ResourceMaterial     Resource = "material"
	ResourceAssignment   Resource = "assignment"
	ResourceGrade        Resource = "grade"
	ResourceNotification Resource = "notification"
	ResourceMessage      Resource = "message"
	ResourceNews         Resource = "news"
)

// Relationships are the facts about a resource the policy table is evaluated
// against. For course-scoped resources OwnerID is the course's instructor and
// ParticipantIDs its enrolled students; for a message the owner is the sender
// and the sole participant the recipient; for a grade the sole participant is
// the graded student.
type Relationships struct {
	OwnerID        string
	ParticipantIDs []string

	// Public marks a resource readable without authentication
	// (a published news item).
	Public bool

	// Deadline, when set, bounds ActionSubmit in time.
	Deadline *time.Time
}

// Decision is the result of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// grant is a bitmask of who a policy rule admits.
type grant uint8

const (
	// grantAdmin admits any principal with the admin role.
	grantAdmin grant = 1 << iota
	// grantTeacher admits any principal with the teacher role, regardless of
	// relationship to the resource. Used only where creation has no owner yet.
	grantTeacher
	// grantOwner admits the resource's owning principal.
	grantOwner
	// grantParticipant admits principals in the resource's participant set.
	grantParticipant
	// grantPublic admits anyone, including anonymous, when the resource is
	// marked Public.
	grantPublic
)

// policy is the declarative access table: resource × action → admitted set.
// A missing entry denies. Note the deliberate absence of grantAdmin on every
// message action: messages are private even from admins.
var policy = map[Resource]map[Action]grant{
	ResourceCourse: {
		ActionCreate:   grantAdmin | grantTeacher,
		ActionRead:     grantAdmin | grantOwner | grantParticipant,
		ActionUpdate:   grantAdmin | grantOwner,
		ActionDelete:   grantAdmin | grantOwner,
		ActionEnroll:   grantAdmin | grantOwner,
		ActionUnenroll: grantAdmin | grantOwner,
	},
	ResourceMaterial: {
		// Writes require course ownership, not just the teacher role: a
		// teacher from another course has no business uploading here.
		ActionCreate: grantAdmin | grantOwner,
		ActionRead:   grantAdmin | grantOwner | grantParticipant,
		ActionUpdate: grantAdmin | grantOwner,
		ActionDelete: grantAdmin | grantOwner,
	},
	ResourceAssignment: {
		ActionCreate: grantAdmin | grantOwner,
		ActionRead:   grantAdmin | grantOwner | grantParticipant,
		ActionUpdate: grantAdmin | grantOwner,
		ActionDelete: grantAdmin | grantOwner,
		ActionSubmit: grantParticipant,
		ActionGrade:  grantAdmin | grantOwner,
	},
	ResourceGrade: {
		ActionCreate: grantAdmin | grantOwner,
		ActionRead:   grantAdmin | grantOwner | grantParticipant,
	},
	ResourceNotification: {
		ActionCreate:   grantAdmin | grantOwner,
		ActionRead:     grantAdmin | grantOwner | grantParticipant,
		ActionMarkRead: grantAdmin | grantOwner | grantParticipant,
	},
	ResourceMessage: {
		ActionRead:     grantOwner | grantParticipant,
		ActionMarkRead: grantOwner | grantParticipant,
		ActionDelete:   grantOwner | grantParticipant,
	},
	ResourceNews: {
		ActionCreate:        grantAdmin,
		ActionRead:          grantAdmin | grantPublic,
		ActionUpdate:        grantAdmin,
		ActionDelete:        grantAdmin,
		ActionSetVisibility: grantAdmin,
	},
}

// Authorize evaluates the policy table for the given principal, action and
// resource relationships at the current time.
func Authorize(p Principal, action Action, resource Resource, rel Relationships) Decision {
	return AuthorizeAt(p, action, resource, rel, time.Now())
}

// AuthorizeAt is Authorize with an explicit evaluation time, so deadline
// rules can be tested deterministically.
func AuthorizeAt(p Principal, action Action, resource Resource, rel Relationships, at time.Time) Decision {
	rules, ok := policy[resource]
	if !ok {
		return deny("unknown resource type")
	}

	g, ok := rules[action]
	if !ok {
		return deny("action not permitted on this resource")
	}

	// Deadline bound applies before any grant: a late submission is denied
	// even for enrolled students.
	if action == ActionSubmit && rel.Deadline != nil && at.After(*rel.Deadline) {
		return deny("the submission deadline has passed")
	}

	if g&grantAdmin != 0 && p.Role == models.RoleAdmin {
		return allow()
	}
	if g&grantPublic != 0 && rel.Public {
		return allow()
	}
	if g&grantTeacher != 0 && p.Role == models.RoleTeacher {
		return allow()
	}
	if p.ID != "" {
		if g&grantOwner != 0 && p.ID == rel.OwnerID {
			return allow()
		}
		if g&grantParticipant != 0 && contains(rel.ParticipantIDs, p.ID) {
			return allow()
		}
	}

	return deny("you do not have permission to perform this action")
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

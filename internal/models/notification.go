package models

import "time"

var (
	FirestoreNotificationsCollection = "notifications"
)

// Notification is a course-wide alert posted by the instructor. ReadBy is an
// acknowledgment set with at most one entry per user; marking read twice is
// a no-op.
type Notification struct {
	ID        string    `json:"id" mapstructure:"id"`
	CourseID  string    `json:"courseID" mapstructure:"courseID"`
	SenderID  string    `json:"senderID" mapstructure:"senderID"`
	Title     string    `json:"title" mapstructure:"title"`
	Body      string    `json:"body" mapstructure:"body"`
	CreatedAt time.Time `json:"createdAt" mapstructure:"createdAt"`
	ReadBy    []string  `json:"readBy" mapstructure:"readBy"`
}

type CreateNotificationRequest struct {
	CourseID string `json:"courseID"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Sender   *User  `json:"-"`
}

type MarkNotificationReadRequest struct {
	NotificationID string `json:"notificationID,omitempty"`
	UserID         string `json:"-"`
}

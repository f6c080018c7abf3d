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

func (fr *FirebaseRepository) GetNotificationByID(ID string) (*models.Notification, error) {
	var notification models.Notification
	if err := fr.getDocument(models.FirestoreNotificationsCollection, ID, &notification, apperrors.NotificationNotFoundError); err != nil {
		return nil, err
	}
	notification.ID = ID
	return &notification, nil
}

func (fr *FirebaseRepository) CreateNotification(c *models.CreateNotificationRequest) (notification *models.Notification, err error) {
	notification = &models.Notification{
		CourseID:  c.CourseID,
		SenderID:  c.Sender.ID,
		Title:     c.Title,
		Body:      c.Body,
		CreatedAt: time.Now(),
		ReadBy:    []string{},
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreNotificationsCollection).Add(firebase.Context, map[string]interface{}{
		"courseID":  notification.CourseID,
		"senderID":  notification.SenderID,
		"title":     notification.Title,
		"body":      notification.Body,
		"createdAt": notification.CreatedAt,
		"readBy":    notification.ReadBy,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating notification: %v", err)
	}
	notification.ID = ref.ID

	return notification, nil
}

// MarkNotificationRead adds the user to the notification's acknowledgment
// set. ArrayUnion never inserts a duplicate, so marking twice is a no-op.
func (fr *FirebaseRepository) MarkNotificationRead(c *models.MarkNotificationReadRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreNotificationsCollection).Doc(c.NotificationID).Update(firebase.Context, []firestore.Update{
		{Path: "readBy", Value: firestore.ArrayUnion(c.UserID)},
	})
	return err
}

func (fr *FirebaseRepository) ListNotificationsForCourse(courseID string) ([]*models.Notification, error) {
	var notifications []*models.Notification
	iter := fr.firestoreClient.Collection(models.FirestoreNotificationsCollection).Where("courseID", "==", courseID).Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing notifications: %v", err)
		}

		var notification models.Notification
		if err := mapstructure.Decode(doc.Data(), &notification); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		notification.ID = doc.Ref.ID
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

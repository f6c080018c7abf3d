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

func (fr *FirebaseRepository) GetMessageByID(ID string) (*models.Message, error) {
	var message models.Message
	if err := fr.getDocument(models.FirestoreMessagesCollection, ID, &message, apperrors.MessageNotFoundError); err != nil {
		return nil, err
	}
	message.ID = ID
	return &message, nil
}

func (fr *FirebaseRepository) CreateMessage(c *models.SendMessageRequest) (message *models.Message, err error) {
	// Confirm the recipient exists before writing.
	if _, err := fr.GetUserByID(c.RecipientID); err != nil {
		return nil, err
	}

	message = &models.Message{
		SenderID:    c.Sender.ID,
		RecipientID: c.RecipientID,
		Subject:     c.Subject,
		Body:        c.Body,
		Read:        false,
		CreatedAt:   time.Now(),
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreMessagesCollection).Add(firebase.Context, map[string]interface{}{
		"senderID":    message.SenderID,
		"recipientID": message.RecipientID,
		"subject":     message.Subject,
		"body":        message.Body,
		"read":        message.Read,
		"createdAt":   message.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating message: %v", err)
	}
	message.ID = ref.ID

	return message, nil
}

func (fr *FirebaseRepository) MarkMessageRead(ID string) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreMessagesCollection).Doc(ID).Update(firebase.Context, []firestore.Update{
		{Path: "read", Value: true},
	})
	return err
}

func (fr *FirebaseRepository) DeleteMessage(c *models.DeleteMessageRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreMessagesCollection).Doc(c.MessageID).Delete(firebase.Context)
	return err
}

func (fr *FirebaseRepository) listMessages(query firestore.Query) ([]*models.Message, error) {
	var messages []*models.Message
	iter := query.Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing messages: %v", err)
		}

		var message models.Message
		if err := mapstructure.Decode(doc.Data(), &message); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, nil
}

// ListInbox returns messages received by the user.
func (fr *FirebaseRepository) ListInbox(userID string) ([]*models.Message, error) {
	return fr.listMessages(fr.firestoreClient.Collection(models.FirestoreMessagesCollection).Where("recipientID", "==", userID))
}

// ListSent returns messages sent by the user.
func (fr *FirebaseRepository) ListSent(userID string) ([]*models.Message, error) {
	return fr.listMessages(fr.firestoreClient.Collection(models.FirestoreMessagesCollection).Where("senderID", "==", userID))
}

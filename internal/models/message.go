package models

import "time"

var (
	FirestoreMessagesCollection = "messages"
)

// Message is a direct message between two users. Only the sender and the
// recipient may read or delete it. Admins get no special access to messages.
type Message struct {
	ID          string    `json:"id" mapstructure:"id"`
	SenderID    string    `json:"senderID" mapstructure:"senderID"`
	RecipientID string    `json:"recipientID" mapstructure:"recipientID"`
	Subject     string    `json:"subject" mapstructure:"subject"`
	Body        string    `json:"body" mapstructure:"body"`
	Read        bool      `json:"read" mapstructure:"read"`
	CreatedAt   time.Time `json:"createdAt" mapstructure:"createdAt"`
}

type SendMessageRequest struct {
	RecipientID string `json:"recipientID"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Sender      *User  `json:"-"`
}

type DeleteMessageRequest struct {
	MessageID string `json:"messageID,omitempty"`
}

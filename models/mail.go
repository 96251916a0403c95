package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mail is an append-only log entry for an outbound message.
type Mail struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email   string             `bson:"email" json:"email"` // sender address
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Subject string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string             `bson:"message" json:"message"`
	SentAt  time.Time          `bson:"sentAt" json:"sentAt"`
}

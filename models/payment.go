package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed charge, linked 1:1 to a
// Participation by RegisterID.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegisterID    primitive.ObjectID `bson:"registerId" json:"registerId"`
	CampID        primitive.ObjectID `bson:"campId,omitempty" json:"campId,omitempty"`
	CampName      string             `bson:"campName,omitempty" json:"campName,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Method        string             `bson:"method,omitempty" json:"method,omitempty"`
	Approval      string             `bson:"approval" json:"approval"` // mirrors Participation.Approval
	Date          time.Time          `bson:"date" json:"date"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Approval workflow states for a registration.
const (
	ApprovalPending   = "Pending"
	ApprovalConfirmed = "Confirmed"
)

// Payment states carried on a registration.
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

// Participation links a participant to a camp. At most one record may
// exist per (participant, campId); the collection carries a unique
// compound index backing that invariant.
type Participation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampID          primitive.ObjectID `bson:"campId" json:"campId"`
	CampName        string             `bson:"campName,omitempty" json:"campName,omitempty"`
	CampFees        float64            `bson:"campFees,omitempty" json:"campFees,omitempty"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	ParticipantName string             `bson:"participantName,omitempty" json:"participantName,omitempty"`
	Participant     string             `bson:"participant" json:"participant"` // participant email
	Organizer       string             `bson:"organizer" json:"organizer"`     // organizer email, denormalized
	Approval        string             `bson:"approval" json:"approval"`       // Pending, Confirmed
	Payment         string             `bson:"payment" json:"payment"`         // Unpaid, Paid
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

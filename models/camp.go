package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Camp struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Organizer        string             `bson:"organizer" json:"organizer"` // organizer email
	CampName         string             `bson:"campName" json:"campName"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	CampFees         float64            `bson:"campFees" json:"campFees"`
	DateTime         *time.Time         `bson:"dateTime,omitempty" json:"dateTime,omitempty"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	Professional     string             `bson:"healthcareProfessional,omitempty" json:"healthcareProfessional,omitempty"`
	ParticipantCount int                `bson:"participantCount" json:"participantCount"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpcomingCamp is a future camp open for expressed interest prior to full
// registration. Interest is tracked per audience: healthcare professionals
// and ordinary participants each have a counter and email list.
type UpcomingCamp struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Organizer              string             `bson:"organizer" json:"organizer"`
	CampName               string             `bson:"campName" json:"campName"`
	Image                  string             `bson:"image,omitempty" json:"image,omitempty"`
	CampFees               float64            `bson:"campFees,omitempty" json:"campFees,omitempty"`
	DateTime               *time.Time         `bson:"dateTime,omitempty" json:"dateTime,omitempty"`
	Location               string             `bson:"location,omitempty" json:"location,omitempty"`
	Description            string             `bson:"description,omitempty" json:"description,omitempty"`
	InterestedProfessional int                `bson:"interestedProfessional" json:"interestedProfessional"`
	InterestedParticipant  int                `bson:"interestedParticipant" json:"interestedParticipant"`
	Professionals          []string           `bson:"professionals" json:"professionals"`
	ProfessionalsEmail     []string           `bson:"professionalsEmail" json:"professionalsEmail"`
	ParticipantsEmail      []string           `bson:"participantsEmail" json:"participantsEmail"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InterestJoin records one person's declared interest in an upcoming camp.
// Professional and participant joins live in separate collections but share
// this shape; each collection carries a unique (participant, campId) index.
type InterestJoin struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampID      primitive.ObjectID `bson:"campId" json:"campId"`
	CampName    string             `bson:"campName,omitempty" json:"campName,omitempty"`
	Participant string             `bson:"participant" json:"participant"` // joiner email
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Profession  string             `bson:"profession,omitempty" json:"profession,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

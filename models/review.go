package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author     string             `bson:"author" json:"author"` // author email
	AuthorName string             `bson:"authorName,omitempty" json:"authorName,omitempty"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	CampID     primitive.ObjectID `bson:"campId" json:"campId"`
	Rating     float64            `bson:"rating" json:"rating"` // 1-5
	Text       string             `bson:"text,omitempty" json:"text,omitempty"`
	ReviewDate time.Time          `bson:"reviewDate" json:"reviewDate"`
}

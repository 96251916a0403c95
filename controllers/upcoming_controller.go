package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/phillip/medcamp-server-go/config"
	models "github.com/phillip/medcamp-server-go/models"
	utils "github.com/phillip/medcamp-server-go/utils"
)

// interestAudience describes one audience kind for the interest-join flow:
// which join collection records the dedup key and which counter/list fields
// on the upcoming-camp document get the fan-out.
type interestAudience struct {
	joinCollection string
	counterField   string
	emailField     string
	nameField      string // empty when the audience has no name list
}

var (
	professionalAudience = interestAudience{
		joinCollection: "upcomingJoins",
		counterField:   "interestedProfessional",
		emailField:     "professionalsEmail",
		nameField:      "professionals",
	}
	participantAudience = interestAudience{
		joinCollection: "upcomingParticipantJoins",
		counterField:   "interestedParticipant",
		emailField:     "participantsEmail",
	}
)

// ---------------- CREATE ----------------
func CreateUpcomingCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpcomingCamp
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.CampName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "campName is required"})
			return
		}

		now := time.Now()
		input.ID = primitive.NewObjectID()
		input.InterestedProfessional = 0
		input.InterestedParticipant = 0
		input.Professionals = []string{}
		input.ProfessionalsEmail = []string{}
		input.ParticipantsEmail = []string{}
		input.CreatedAt = now
		input.UpdatedAt = now

		col := cfg.MongoClient.Database(cfg.DBName).Collection("upcomingCamps")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.InsertOne(ctx, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID})
	}
}

// ---------------- LIST ----------------
func ListUpcomingCamps(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("upcomingCamps")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(6))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var camps []models.UpcomingCamp
		if err := cursor.All(ctx, &camps); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if camps == nil {
			camps = []models.UpcomingCamp{}
		}

		c.JSON(http.StatusOK, camps)
	}
}

// ---------------- MY UPCOMING CAMPS ----------------
func MyUpcomingCamps(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		col := cfg.MongoClient.Database(cfg.DBName).Collection("upcomingCamps")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{"organizer": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var camps []models.UpcomingCamp
		if err := cursor.All(ctx, &camps); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if camps == nil {
			camps = []models.UpcomingCamp{}
		}

		c.JSON(http.StatusOK, camps)
	}
}

// ---------------- GET ----------------
func GetUpcomingCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		var camp models.UpcomingCamp
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.MongoClient.Database(cfg.DBName).
			Collection("upcomingCamps").
			FindOne(ctx, bson.M{"_id": oid}).
			Decode(&camp)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "upcoming camp not found"})
			return
		}

		c.JSON(http.StatusOK, camp)
	}
}

// ---------------- UPDATE ----------------
func UpdateUpcomingCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		var input models.UpcomingCamp
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		update := bson.M{"updatedAt": time.Now()}
		if input.CampName != "" {
			update["campName"] = input.CampName
		}
		if input.Image != "" {
			update["image"] = input.Image
		}
		if input.CampFees > 0 {
			update["campFees"] = input.CampFees
		}
		if input.DateTime != nil {
			update["dateTime"] = input.DateTime
		}
		if input.Location != "" {
			update["location"] = input.Location
		}
		if input.Description != "" {
			update["description"] = input.Description
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("upcomingCamps")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
	}
}

// ---------------- PROFESSIONAL JOINS ----------------
// Interest-join records a professional has placed, by email.
func ProfessionalJoins(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		col := cfg.MongoClient.Database(cfg.DBName).Collection("upcomingJoins")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{"participant": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var joins []models.InterestJoin
		if err := cursor.All(ctx, &joins); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if joins == nil {
			joins = []models.InterestJoin{}
		}

		c.JSON(http.StatusOK, joins)
	}
}

// ---------------- INTEREST JOIN ----------------
func JoinInterestProfessional(cfg *config.Config) gin.HandlerFunc {
	return joinInterest(cfg, professionalAudience)
}

func JoinInterestParticipant(cfg *config.Config) gin.HandlerFunc {
	return joinInterest(cfg, participantAudience)
}

// joinInterest is the single interest-join flow, parameterized by audience.
// Dedup on (participant, campId), then counter increment plus list append on
// the upcoming-camp document, then the join record insert. The fan-out and
// the insert are independent writes; both results are returned.
func joinInterest(cfg *config.Config, aud interestAudience) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.InterestJoin
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Participant == "" || input.CampID.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "participant and campId are required"})
			return
		}

		db := cfg.MongoClient.Database(cfg.DBName)
		joinCol := db.Collection(aud.joinCollection)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.InterestJoin
		err := joinCol.FindOne(ctx, bson.M{"participant": input.Participant, "campId": input.CampID}).Decode(&existing)
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "You have already joined this camp"})
			return
		}

		push := bson.M{aud.emailField: input.Participant}
		if aud.nameField != "" {
			push[aud.nameField] = input.Name
		}

		campRes, err := db.Collection("upcomingCamps").UpdateOne(ctx,
			bson.M{"_id": input.CampID},
			bson.M{
				"$inc":  bson.M{aud.counterField: 1},
				"$push": push,
			})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		input.ID = primitive.NewObjectID()
		input.CreatedAt = time.Now()

		joinRes, err := joinCol.InsertOne(ctx, input)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"message": "You have already joined this camp"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"camp": gin.H{"matchedCount": campRes.MatchedCount, "modifiedCount": campRes.ModifiedCount},
			"join": gin.H{"insertedId": joinRes.InsertedID},
		})
	}
}

// ---------------- DELETE ----------------
// Cascades to both join collections with independent deletes; a failure
// after the camp delete leaves orphaned join records.
func DeleteUpcomingCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		db := cfg.MongoClient.Database(cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.UpcomingCamp
		if err := db.Collection("upcomingCamps").FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "upcoming camp not found"})
			return
		}

		campRes, err := db.Collection("upcomingCamps").DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if campRes.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "upcoming camp not found"})
			return
		}

		if existing.Image != "" {
			utils.DeleteFromCloudinary(existing.Image)
		}

		profRes, err := db.Collection("upcomingJoins").DeleteMany(ctx, bson.M{"campId": oid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		partRes, err := db.Collection("upcomingParticipantJoins").DeleteMany(ctx, bson.M{"campId": oid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"camp":             gin.H{"deletedCount": campRes.DeletedCount},
			"professionalJoin": gin.H{"deletedCount": profRes.DeletedCount},
			"participantJoin":  gin.H{"deletedCount": partRes.DeletedCount},
		})
	}
}

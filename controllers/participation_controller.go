package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/phillip/medcamp-server-go/config"
	models "github.com/phillip/medcamp-server-go/models"
)

// ---------------- LIST BY ORGANIZER ----------------
func ParticipationByOrganizer(cfg *config.Config) gin.HandlerFunc {
	return listParticipation(cfg, func(c *gin.Context) bson.M {
		return bson.M{"organizer": c.Param("email")}
	})
}

// ---------------- LIST BY PARTICIPANT ----------------
func ParticipationByParticipant(cfg *config.Config) gin.HandlerFunc {
	return listParticipation(cfg, func(c *gin.Context) bson.M {
		return bson.M{"participant": c.Param("email")}
	})
}

// ---------------- CONFIRMED BY PARTICIPANT ----------------
func ConfirmedParticipation(cfg *config.Config) gin.HandlerFunc {
	return listParticipation(cfg, func(c *gin.Context) bson.M {
		return bson.M{"participant": c.Param("email"), "approval": models.ApprovalConfirmed}
	})
}

// ---------------- PAID BY PARTICIPANT ----------------
func PaidParticipation(cfg *config.Config) gin.HandlerFunc {
	return listParticipation(cfg, func(c *gin.Context) bson.M {
		return bson.M{"participant": c.Param("email"), "payment": models.PaymentPaid}
	})
}

func listParticipation(cfg *config.Config, filter func(*gin.Context) bson.M) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("participations")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, filter(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var records []models.Participation
		if err := cursor.All(ctx, &records); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if records == nil {
			records = []models.Participation{}
		}

		c.JSON(http.StatusOK, records)
	}
}

// ---------------- REGISTER ----------------
// At most one registration per (participant, campId). The existence check is
// a fast path for the friendly 409; the unique index catches the race where
// two concurrent registrations both pass the check.
func RegisterParticipation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Participation
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Participant == "" || input.CampID.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "participant and campId are required"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("participations")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.Participation
		err := col.FindOne(ctx, bson.M{"participant": input.Participant, "campId": input.CampID}).Decode(&existing)
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "You have already registered for this camp"})
			return
		}

		input.ID = primitive.NewObjectID()
		input.Approval = models.ApprovalPending
		input.Payment = models.PaymentUnpaid
		input.CreatedAt = time.Now()

		res, err := col.InsertOne(ctx, input)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"message": "You have already registered for this camp"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID})
	}
}

// ---------------- CONFIRM ----------------
// Two independent updates: the participation's approval and the approval
// mirror on the payment record keyed by registerId. Not atomic; both
// sub-results go back to the caller regardless of individual outcome.
func ConfirmParticipation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participation id"})
			return
		}

		db := cfg.MongoClient.Database(cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		set := bson.M{"$set": bson.M{"approval": models.ApprovalConfirmed}}

		partRes, err := db.Collection("participations").UpdateOne(ctx, bson.M{"_id": oid}, set)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		payRes, err := db.Collection("payments").UpdateOne(ctx, bson.M{"registerId": oid}, set)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"participation": gin.H{"matchedCount": partRes.MatchedCount, "modifiedCount": partRes.ModifiedCount},
			"payment":       gin.H{"matchedCount": payRes.MatchedCount, "modifiedCount": payRes.ModifiedCount},
		})
	}
}

// ---------------- CANCEL ----------------
func DeleteParticipation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participation id"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("participations")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "participation not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": res.DeletedCount})
	}
}

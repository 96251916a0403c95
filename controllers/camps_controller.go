package controllers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/phillip/medcamp-server-go/config"
	models "github.com/phillip/medcamp-server-go/models"
	utils "github.com/phillip/medcamp-server-go/utils"
)

// ---------------- CREATE ----------------
func CreateCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Camp
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
		input.CreatedAt = now
		input.UpdatedAt = now

		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
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
func ListCamps(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{}
		if q := c.Query("q"); q != "" {
			filter["campName"] = bson.M{"$regex": q, "$options": "i"}
		}

		cursor, err := col.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var camps []models.Camp
		if err := cursor.All(ctx, &camps); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if camps == nil {
			camps = []models.Camp{}
		}

		c.JSON(http.StatusOK, camps)
	}
}

// ---------------- POPULAR ----------------
// Top 6 camps by participant count, descending.
func PopularCamps(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "participantCount", Value: -1}}).
			SetLimit(6)

		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var camps []models.Camp
		if err := cursor.All(ctx, &camps); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if camps == nil {
			camps = []models.Camp{}
		}

		c.JSON(http.StatusOK, camps)
	}
}

// ---------------- GET ----------------
func GetCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		var camp models.Camp
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.MongoClient.Database(cfg.DBName).
			Collection("camps").
			FindOne(ctx, bson.M{"_id": oid}).
			Decode(&camp)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "camp not found"})
			return
		}

		c.JSON(http.StatusOK, camp)
	}
}

// ---------------- MY CAMPS ----------------
func MyCamps(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{"organizer": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var camps []models.Camp
		if err := cursor.All(ctx, &camps); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if camps == nil {
			camps = []models.Camp{}
		}

		c.JSON(http.StatusOK, camps)
	}
}

// bindCount validates the counter payload: a numeric, non-negative integer
// "count" field. Returns -1 after writing a 400 response on bad input.
func bindCount(c *gin.Context) int64 {
	var input struct {
		Count *float64 `json:"count"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "count must be a non-negative integer"})
		return -1
	}
	if input.Count == nil || *input.Count < 0 || *input.Count != math.Trunc(*input.Count) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "count must be a non-negative integer"})
		return -1
	}
	// Values at or above 2^63 would overflow the int64 conversion.
	if *input.Count >= float64(math.MaxInt64) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "count must be a non-negative integer"})
		return -1
	}

	return int64(*input.Count)
}

// ---------------- INCREMENT PARTICIPANT COUNT ----------------
func IncrementParticipant(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		count := bindCount(c)
		if count < 0 {
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"participantCount": count}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
	}
}

// ---------------- DECREMENT PARTICIPANT COUNT ----------------
// Always decrements by exactly 1. The count field is validated for shape
// only; the current value is not checked, so the counter can go negative.
func DecrementParticipant(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		if count := bindCount(c); count < 0 {
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"participantCount": -1}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
	}
}

// ---------------- UPSERT ----------------
func UpdateCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		var input models.Camp
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
		if input.Professional != "" {
			update["healthcareProfessional"] = input.Professional
		}
		if input.Description != "" {
			update["description"] = input.Description
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		opts := options.Update().SetUpsert(true)
		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"matchedCount":  res.MatchedCount,
			"modifiedCount": res.ModifiedCount,
			"upsertedId":    res.UpsertedID,
		})
	}
}

// ---------------- DELETE ----------------
// No cascade: participation and payment records referencing the camp are
// left in place.
func DeleteCamp(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camp id"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("camps")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.Camp
		if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "camp not found"})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "camp not found"})
			return
		}

		if existing.Image != "" {
			utils.DeleteFromCloudinary(existing.Image)
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": res.DeletedCount})
	}
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/phillip/medcamp-server-go/config"
	models "github.com/phillip/medcamp-server-go/models"
)

// ---------------- TESTIMONIALS ----------------
// Latest 3 reviews by review date.
func Testimonials(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("reviews")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "reviewDate", Value: -1}}).
			SetLimit(3)

		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var reviews []models.Review
		if err := cursor.All(ctx, &reviews); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// ---------------- CREATE ----------------
// Reviews are written once and never edited.
func CreateReview(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Review
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Author == "" || input.CampID.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "author and campId are required"})
			return
		}
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
			return
		}

		input.ID = primitive.NewObjectID()
		if input.ReviewDate.IsZero() {
			input.ReviewDate = time.Now()
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("reviews")
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

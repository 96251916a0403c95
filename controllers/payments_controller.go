package controllers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/phillip/medcamp-server-go/config"
	models "github.com/phillip/medcamp-server-go/models"
)

// ---------------- PAYMENT INTENT ----------------
// Relays the amount to Stripe and hands the client secret back to the
// frontend, which completes the charge.
func CreatePaymentIntent(cfg *config.Config) gin.HandlerFunc {
	stripe.Key = cfg.StripeSecret

	return func(c *gin.Context) {
		var input struct {
			Price *float64 `json:"price"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Price == nil || *input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than 0"})
			return
		}

		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(int64(math.Round(*input.Price * 100))),
			Currency:           stripe.String(string(stripe.CurrencyUSD)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		}

		pi, err := paymentintent.New(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
	}
}

// ---------------- RECORD PAYMENT ----------------
// Inserts the payment log entry, then flips the participation's payment
// status. The two writes are independent; duplicate calls append duplicate
// payment documents while the status stays Paid.
func RecordPayment(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participation id"})
			return
		}

		var input models.Payment
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Email == "" || input.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and a positive amount are required"})
			return
		}

		input.ID = primitive.NewObjectID()
		input.RegisterID = oid
		if input.Approval == "" {
			input.Approval = models.ApprovalPending
		}
		input.Date = time.Now()

		db := cfg.MongoClient.Database(cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		insRes, err := db.Collection("payments").InsertOne(ctx, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		updRes, err := db.Collection("participations").UpdateOne(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"payment": models.PaymentPaid}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"payment":       gin.H{"insertedId": insRes.InsertedID},
			"participation": gin.H{"matchedCount": updRes.MatchedCount, "modifiedCount": updRes.ModifiedCount},
		})
	}
}

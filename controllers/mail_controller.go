package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/phillip/medcamp-server-go/config"
	models "github.com/phillip/medcamp-server-go/models"
	utils "github.com/phillip/medcamp-server-go/utils"
)

// ---------------- SEND MAIL ----------------
// Persists the message to the outbound log, then relays it through the mail
// provider. A relay failure is reported in the body, not as an error status;
// the log entry stays either way.
func SendMail(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Mail
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Email == "" || input.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and message are required"})
			return
		}

		input.ID = primitive.NewObjectID()
		input.SentAt = time.Now()

		col := cfg.MongoClient.Database(cfg.DBName).Collection("mails")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.InsertOne(ctx, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		relayErr := utils.SendEmail(cfg.Mail, input.Email, input.Subject, input.Message)

		body := gin.H{"insertedId": res.InsertedID, "relayed": relayErr == nil}
		if relayErr != nil {
			body["relayError"] = relayErr.Error()
		}

		c.JSON(http.StatusOK, body)
	}
}

package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	models "github.com/phillip/medcamp-server-go/models"
)

func TestRegisterParticipation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	campID := primitive.NewObjectID()
	regBody := `{"participant":"a@x.com","campId":"` + campID.Hex() + `","organizer":"org@x.com"}`

	newRouter := func(mt *mtest.T) *gin.Engine {
		r := gin.New()
		r.POST("/participation", RegisterParticipation(mockConfig(mt)))
		return r
	}

	mt.Run("first registration inserts with pending status", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".participations", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		w := doJSON(newRouter(mt), http.MethodPost, "/participation", regBody)
		require.Equal(mt.T, http.StatusOK, w.Code)
		assert.NotNil(mt.T, decodeBody(mt.T, w)["insertedId"])
	})

	mt.Run("second registration conflicts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".participations", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "participant", Value: "a@x.com"},
				{Key: "campId", Value: campID},
				{Key: "approval", Value: models.ApprovalPending},
				{Key: "payment", Value: models.PaymentUnpaid},
			}),
		)

		w := doJSON(newRouter(mt), http.MethodPost, "/participation", regBody)
		assert.Equal(mt.T, http.StatusConflict, w.Code)
		assert.JSONEq(mt.T, `{"message":"You have already registered for this camp"}`, w.Body.String())
	})

	mt.Run("duplicate key on insert maps to conflict", func(mt *mtest.T) {
		// The check-then-insert race: both requests pass the fast-path
		// check, the unique index rejects the loser.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".participations", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		w := doJSON(newRouter(mt), http.MethodPost, "/participation", regBody)
		assert.Equal(mt.T, http.StatusConflict, w.Code)
		assert.JSONEq(mt.T, `{"message":"You have already registered for this camp"}`, w.Body.String())
	})

	mt.Run("missing campId rejected", func(mt *mtest.T) {
		w := doJSON(newRouter(mt), http.MethodPost, "/participation", `{"participant":"a@x.com"}`)
		assert.Equal(mt.T, http.StatusBadRequest, w.Code)
	})
}

func TestConfirmParticipation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	newRouter := func(mt *mtest.T) *gin.Engine {
		r := gin.New()
		r.PATCH("/participation/confirm/:id", ConfirmParticipation(mockConfig(mt)))
		return r
	}

	mt.Run("returns both sub-results even when payment is unmatched", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		w := doJSON(newRouter(mt), http.MethodPatch, "/participation/confirm/"+primitive.NewObjectID().Hex(), "")
		require.Equal(mt.T, http.StatusOK, w.Code)

		body := decodeBody(mt.T, w)
		part := body["participation"].(map[string]any)
		pay := body["payment"].(map[string]any)
		assert.EqualValues(mt.T, 1, part["matchedCount"])
		assert.EqualValues(mt.T, 0, pay["matchedCount"])
	})

	mt.Run("repeated confirm stays confirmed", func(mt *mtest.T) {
		// Idempotent at the status level: matched but nothing modified.
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
		)

		w := doJSON(newRouter(mt), http.MethodPatch, "/participation/confirm/"+primitive.NewObjectID().Hex(), "")
		require.Equal(mt.T, http.StatusOK, w.Code)

		body := decodeBody(mt.T, w)
		part := body["participation"].(map[string]any)
		assert.EqualValues(mt.T, 1, part["matchedCount"])
		assert.EqualValues(mt.T, 0, part["modifiedCount"])
	})

	mt.Run("invalid id rejected", func(mt *mtest.T) {
		w := doJSON(newRouter(mt), http.MethodPatch, "/participation/confirm/not-hex", "")
		assert.Equal(mt.T, http.StatusBadRequest, w.Code)
	})
}

func TestListParticipationEmpty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty result is an empty array, not null", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDB+".participations", mtest.FirstBatch))

		r := gin.New()
		r.GET("/participation/:email", ParticipationByOrganizer(mockConfig(mt)))

		w := doJSON(r, http.MethodGet, "/participation/org@x.com", "")
		require.Equal(mt.T, http.StatusOK, w.Code)
		assert.JSONEq(mt.T, `[]`, w.Body.String())
	})
}

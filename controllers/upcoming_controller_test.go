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
)

func TestJoinInterest(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	campID := primitive.NewObjectID()
	profBody := `{"participant":"doc@x.com","campId":"` + campID.Hex() + `","name":"Dr. Ahmed","profession":"Cardiologist"}`
	partBody := `{"participant":"a@x.com","campId":"` + campID.Hex() + `"}`

	newRouter := func(mt *mtest.T) *gin.Engine {
		r := gin.New()
		r.PUT("/upcoming/interested", JoinInterestProfessional(mockConfig(mt)))
		r.PUT("/upcoming/interested/participant", JoinInterestParticipant(mockConfig(mt)))
		return r
	}

	mt.Run("professional join fans out and inserts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".upcomingJoins", mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(),
		)

		w := doJSON(newRouter(mt), http.MethodPut, "/upcoming/interested", profBody)
		require.Equal(mt.T, http.StatusOK, w.Code)

		body := decodeBody(mt.T, w)
		camp := body["camp"].(map[string]any)
		join := body["join"].(map[string]any)
		assert.EqualValues(mt.T, 1, camp["modifiedCount"])
		assert.NotNil(mt.T, join["insertedId"])
	})

	mt.Run("participant join shares the same flow", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".upcomingParticipantJoins", mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(),
		)

		w := doJSON(newRouter(mt), http.MethodPut, "/upcoming/interested/participant", partBody)
		assert.Equal(mt.T, http.StatusOK, w.Code)
	})

	mt.Run("repeat join conflicts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".upcomingParticipantJoins", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "participant", Value: "a@x.com"},
				{Key: "campId", Value: campID},
			}),
		)

		w := doJSON(newRouter(mt), http.MethodPut, "/upcoming/interested/participant", partBody)
		assert.Equal(mt.T, http.StatusConflict, w.Code)
		assert.JSONEq(mt.T, `{"message":"You have already joined this camp"}`, w.Body.String())
	})
}

func TestDeleteUpcomingCamp(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	newRouter := func(mt *mtest.T) *gin.Engine {
		r := gin.New()
		r.DELETE("/upcoming-camp/delete/:id", DeleteUpcomingCamp(mockConfig(mt)))
		return r
	}

	mt.Run("cascades to both join collections", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".upcomingCamps", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: oid},
				{Key: "campName", Value: "Eye Camp"},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
		)

		w := doJSON(newRouter(mt), http.MethodDelete, "/upcoming-camp/delete/"+oid.Hex(), "")
		require.Equal(mt.T, http.StatusOK, w.Code)

		body := decodeBody(mt.T, w)
		assert.EqualValues(mt.T, 1, body["camp"].(map[string]any)["deletedCount"])
		assert.EqualValues(mt.T, 2, body["professionalJoin"].(map[string]any)["deletedCount"])
		assert.EqualValues(mt.T, 3, body["participantJoin"].(map[string]any)["deletedCount"])
	})

	mt.Run("missing camp yields 404 without cascading", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDB+".upcomingCamps", mtest.FirstBatch))

		w := doJSON(newRouter(mt), http.MethodDelete, "/upcoming-camp/delete/"+primitive.NewObjectID().Hex(), "")
		assert.Equal(mt.T, http.StatusNotFound, w.Code)
	})
}

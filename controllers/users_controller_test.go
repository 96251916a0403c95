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

func TestCreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	body := `{"email":"a@x.com","name":"Amena","role":"Participant"}`

	newRouter := func(mt *mtest.T) *gin.Engine {
		r := gin.New()
		r.POST("/users", CreateUser(mockConfig(mt)))
		return r
	}

	mt.Run("first login inserts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		w := doJSON(newRouter(mt), http.MethodPost, "/users", body)
		require.Equal(mt.T, http.StatusOK, w.Code)
		assert.NotNil(mt.T, decodeBody(mt.T, w)["insertedId"])
	})

	mt.Run("repeat login dedups by email", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, testDB+".users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "a@x.com"},
			}),
		)

		w := doJSON(newRouter(mt), http.MethodPost, "/users", body)
		require.Equal(mt.T, http.StatusOK, w.Code)

		resp := decodeBody(mt.T, w)
		assert.Equal(mt.T, "user already exists", resp["message"])
		assert.Nil(mt.T, resp["insertedId"])
	})

	mt.Run("missing email rejected", func(mt *mtest.T) {
		w := doJSON(newRouter(mt), http.MethodPost, "/users", `{"name":"Amena"}`)
		assert.Equal(mt.T, http.StatusBadRequest, w.Code)
	})
}

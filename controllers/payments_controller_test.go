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

	config "github.com/phillip/medcamp-server-go/config"
)

func TestRecordPayment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	regID := primitive.NewObjectID()
	payBody := `{"email":"a@x.com","amount":50,"campName":"Eye Camp","transactionId":"pi_123"}`

	newRouter := func(mt *mtest.T) *gin.Engine {
		r := gin.New()
		r.PUT("/payment/:id", RecordPayment(mockConfig(mt)))
		return r
	}

	mt.Run("inserts payment then flips participation status", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		w := doJSON(newRouter(mt), http.MethodPut, "/payment/"+regID.Hex(), payBody)
		require.Equal(mt.T, http.StatusOK, w.Code)

		body := decodeBody(mt.T, w)
		pay := body["payment"].(map[string]any)
		part := body["participation"].(map[string]any)
		assert.NotNil(mt.T, pay["insertedId"])
		assert.EqualValues(mt.T, 1, part["matchedCount"])
		assert.EqualValues(mt.T, 1, part["modifiedCount"])
	})

	mt.Run("repeat payment appends a new log entry", func(mt *mtest.T) {
		// No dedup on the payment log: a second call inserts again while
		// the participation status merely stays Paid (matched, unmodified).
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
		)

		w := doJSON(newRouter(mt), http.MethodPut, "/payment/"+regID.Hex(), payBody)
		require.Equal(mt.T, http.StatusOK, w.Code)

		body := decodeBody(mt.T, w)
		pay := body["payment"].(map[string]any)
		part := body["participation"].(map[string]any)
		assert.NotNil(mt.T, pay["insertedId"])
		assert.EqualValues(mt.T, 1, part["matchedCount"])
		assert.EqualValues(mt.T, 0, part["modifiedCount"])
	})

	mt.Run("invalid participation id rejected", func(mt *mtest.T) {
		w := doJSON(newRouter(mt), http.MethodPut, "/payment/not-hex", payBody)
		assert.Equal(mt.T, http.StatusBadRequest, w.Code)
	})

	mt.Run("missing email or amount rejected", func(mt *mtest.T) {
		w := doJSON(newRouter(mt), http.MethodPut, "/payment/"+regID.Hex(), `{"amount":0}`)
		assert.Equal(mt.T, http.StatusBadRequest, w.Code)
	})
}

func TestCreatePaymentIntentValidation(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{StripeSecret: "sk_test_unused"}
	r := gin.New()
	r.POST("/create-payment-intent", CreatePaymentIntent(cfg))

	// Rejections happen before any gateway call.
	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{}`},
		{"zero price", `{"price":0}`},
		{"negative price", `{"price":-5}`},
		{"non-numeric price", `{"price":"fifty"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := doJSON(r, http.MethodPost, "/create-payment-intent", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds environment settings plus the process-wide handles shared by
// every handler: the Mongo client and the gateway credentials. Built once in
// main and injected into each controller constructor.
type Config struct {
	Port          string `env:"PORT" envDefault:"5000"`
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DBName        string `env:"DB_NAME" envDefault:"medcampDB"`
	JWTSecret     string `env:"ACCESS_TOKEN_SECRET"`
	StripeSecret  string `env:"STRIPE_SECRET_KEY"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`

	Mail MailConfig `envPrefix:"ZEPTO_"`

	MongoClient *mongo.Client
}

// MailConfig holds the transactional-mail provider settings.
type MailConfig struct {
	APIURL string `env:"API_URL"`
	APIKey string `env:"API_KEY"`
	From   string `env:"EMAIL_FROM"`
}

// Load reads .env (if present), parses the environment and connects to Mongo.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	cfg.MongoClient = client

	return &cfg, nil
}

// EnsureIndexes creates the unique (participant, campId) indexes backing the
// registration and interest-join dedup checks. The in-handler existence
// checks are a fast path only; these indexes close the check-then-insert
// race window.
func (cfg *Config) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "participant", Value: 1}, {Key: "campId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	db := cfg.MongoClient.Database(cfg.DBName)
	for _, name := range []string{"participations", "upcomingJoins", "upcomingParticipantJoins"} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", name, err)
		}
	}

	return nil
}

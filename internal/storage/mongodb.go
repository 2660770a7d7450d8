// mongodb.go - MongoDB persistence for parsed transactions

package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/spendlens/spendlens-backend/configs"
	"github.com/spendlens/spendlens-backend/internal/model"
)

const transactionCollection = "transactions"

// TransactionRecord is the persisted form of a parsed transaction. Amounts
// are stored as decimal strings to keep them exact.
type TransactionRecord struct {
	ID             string    `bson:"_id" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	Name           string    `bson:"name" json:"name"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Amount         string    `bson:"amount" json:"amount"`
	Type           string    `bson:"type" json:"type"`
	Category       string    `bson:"category" json:"category"`
	Icon           string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Color          string    `bson:"color,omitempty" json:"color,omitempty"`
	PaymentMethod  string    `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	Tags           []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Source         string    `bson:"source" json:"source"`
	ConfidenceTier string    `bson:"confidence_tier" json:"confidence_tier"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// TransactionStore persists parsed transactions for a user.
type TransactionStore interface {
	SaveTransactions(ctx context.Context, userID string, txs []model.ParsedTransaction) ([]TransactionRecord, error)
	Close(ctx context.Context) error
}

// MongoStore implements TransactionStore on a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects and pings the configured MongoDB deployment.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("Connected to MongoDB (database: %s)", configs.MONGO_DB_NAME)

	return &MongoStore{
		client: client,
		coll:   client.Database(configs.MONGO_DB_NAME).Collection(transactionCollection),
	}, nil
}

// SaveTransactions inserts one record per parsed transaction and returns
// the stored records.
func (s *MongoStore) SaveTransactions(ctx context.Context, userID string, txs []model.ParsedTransaction) ([]TransactionRecord, error) {
	if len(txs) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	records := make([]TransactionRecord, 0, len(txs))
	docs := make([]interface{}, 0, len(txs))
	for _, tx := range txs {
		rec := TransactionRecord{
			ID:             uuid.New().String(),
			UserID:         userID,
			Name:           tx.Name,
			Description:    tx.Description,
			Amount:         tx.Amount.String(),
			Type:           string(tx.Type),
			Category:       tx.Category,
			Icon:           tx.Icon,
			Color:          tx.Color,
			PaymentMethod:  tx.PaymentMethod,
			Tags:           tx.Tags,
			Notes:          tx.Notes,
			Source:         string(tx.Provenance.Source),
			ConfidenceTier: string(tx.Provenance.ConfidenceTier),
			CreatedAt:      now,
		}
		records = append(records, rec)
		docs = append(docs, rec)
	}

	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to insert transactions: %w", err)
	}
	return records, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

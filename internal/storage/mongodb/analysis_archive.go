package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
)

type AnalysisArchive struct {
	client     *mongo.Client
	collection *mongo.Collection
	now        func() time.Time
}

func NewAnalysisArchive(ctx context.Context, uri, database, collection string, timeout time.Duration) (*AnalysisArchive, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	coll := client.Database(database).Collection(collection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "analysis_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "transaction_id", Value: 1}, {Key: "archived_at", Value: -1}},
		},
	}

	ctxIndex, cancelIndex := context.WithTimeout(ctx, timeout)
	defer cancelIndex()

	if _, err := coll.Indexes().CreateMany(ctxIndex, indexes); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &AnalysisArchive{
		client:     client,
		collection: coll,
		now:        time.Now,
	}, nil
}

func (a *AnalysisArchive) Save(ctx context.Context, record *models.AnalysisRecord) error {
	record.ArchivedAt = a.now()

	_, err := a.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to archive analysis: %w", err)
	}
	return nil
}

// LatestByTransaction последний по времени архивации анализ транзакции
func (a *AnalysisArchive) LatestByTransaction(ctx context.Context, transactionID int64) (*models.AnalysisRecord, error) {
	var record models.AnalysisRecord

	filter := bson.M{"transaction_id": transactionID}
	opts := options.FindOne().SetSort(bson.D{{Key: "archived_at", Value: -1}})

	err := a.collection.FindOne(ctx, filter, opts).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, custom_err.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &record, nil
}

func (a *AnalysisArchive) Close() error {
	if a.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return a.client.Disconnect(ctx)
}

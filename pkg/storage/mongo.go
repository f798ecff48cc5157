package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptions configures [NewMongoStore].
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
	// TTL expires diagrams through a TTL index on created_at. Zero keeps
	// them forever.
	TTL time.Duration
}

// MongoStore persists diagrams in a MongoDB collection, one document each.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects, pings and ensures the TTL index.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}
	if opts.TTL > 0 {
		idx := mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(opts.TTL.Seconds())),
		}
		if _, err := s.coll.Indexes().CreateOne(ctx, idx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("create ttl index: %w", err)
		}
	}
	return s, nil
}

func (s *MongoStore) Save(ctx context.Context, d Diagram) (Diagram, error) {
	d = stamp(d, time.Now())
	if _, err := s.coll.InsertOne(ctx, d); err != nil {
		return Diagram{}, fmt.Errorf("insert diagram: %w", err)
	}
	return d, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (Diagram, error) {
	var d Diagram
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Diagram{}, ErrNotFound
	}
	if err != nil {
		return Diagram{}, fmt.Errorf("find diagram: %w", err)
	}
	return d, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)

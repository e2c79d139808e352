// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package mongostore is the remote document store backend. Predicates become
// BSON filter documents and analytics run as aggregation pipelines.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

// Store implements store.Store on a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Open connects, pings the primary and ensures secondary indexes.
func Open(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetAppName("cinecatalog")

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{client: client, coll: client.Database(cfg.Database).Collection(cfg.Collection)}
	if err := s.ensureIndexes(connectCtx); err != nil {
		logging.Warn().Err(err).Msg("Failed to create movie indexes")
	}

	logging.Info().Str("database", cfg.Database).Str("collection", cfg.Collection).Msg("MongoDB movie store connected")
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "genre", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: 1}}},
		{Keys: bson.D{{Key: "movieLanguage", Value: 1}}},
		{Keys: bson.D{{Key: "movieCountry", Value: 1}}},
	})
	return err
}

// Name implements store.Store.
func (s *Store) Name() string { return config.BackendMongo }

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return models.Unavailable("mongo ping", err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// Find implements store.Reader.
func (s *Store) Find(ctx context.Context, pred query.Predicate, keys []query.SortKey, skip, limit int) ([]models.Movie, error) {
	filter, err := Filter(pred)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(Sort(keys)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, models.Unavailable("mongo find", err)
	}
	movies := []models.Movie{}
	if err := cur.All(ctx, &movies); err != nil {
		return nil, models.Unavailable("mongo find", err)
	}
	for i := range movies {
		normalize(&movies[i])
	}
	return movies, nil
}

// Count implements store.Reader.
func (s *Store) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	filter, err := Filter(pred)
	if err != nil {
		return 0, err
	}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, models.Unavailable("mongo count", err)
	}
	return n, nil
}

// Get returns one movie by id.
func (s *Store) Get(ctx context.Context, id string) (*models.Movie, error) {
	var m models.Movie
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.NotFoundID(id)
	}
	if err != nil {
		return nil, models.Unavailable("mongo get", err)
	}
	normalize(&m)
	return &m, nil
}

// Insert adds movies with one InsertMany.
func (s *Store) Insert(ctx context.Context, movies ...models.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	docs := make([]interface{}, len(movies))
	for i := range movies {
		docs[i] = movies[i]
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return models.Unavailable("mongo insert", err)
	}
	return nil
}

// Replace swaps the whole document.
func (s *Store) Replace(ctx context.Context, m *models.Movie) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return models.Unavailable("mongo replace", err)
	}
	if res.MatchedCount == 0 {
		return models.NotFoundID(m.ID)
	}
	return nil
}

// Delete removes one document.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.Unavailable("mongo delete", err)
	}
	if res.DeletedCount == 0 {
		return models.NotFoundID(id)
	}
	return nil
}

// DeleteAll empties the collection.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, models.Unavailable("mongo delete all", err)
	}
	return res.DeletedCount, nil
}

// Mongo drops times to millisecond precision and decodes them as UTC;
// empty arrays may come back nil.
func normalize(m *models.Movie) {
	if m.Genre == nil {
		m.Genre = []string{}
	}
	if m.Cast == nil {
		m.Cast = []string{}
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
}

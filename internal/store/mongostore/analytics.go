// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

var (
	summaryPipeline = mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "min", Value: bson.D{{Key: "$min", Value: "$rating"}}},
			{Key: "max", Value: bson.D{{Key: "$max", Value: "$rating"}}},
		}}},
	}

	genrePipeline = mongo.Pipeline{
		{{Key: "$unwind", Value: "$genre"}},
		countBy("$genre"),
	}

	decadePipeline = mongo.Pipeline{
		countBy(bson.D{{Key: "$subtract", Value: bson.A{"$year", bson.D{{Key: "$mod", Value: bson.A{"$year", 10}}}}}}),
	}
)

func countBy(key interface{}) bson.D {
	return bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: key},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
}

type textCount struct {
	Value string `bson:"_id"`
	Count int64  `bson:"count"`
}

type yearCount struct {
	Year  int   `bson:"_id"`
	Count int64 `bson:"count"`
}

// Analytics runs one pipeline per breakdown.
func (s *Store) Analytics(ctx context.Context) (*models.Analytics, error) {
	a := models.EmptyAnalytics()

	var summary []struct {
		Total int64   `bson:"total"`
		Avg   float64 `bson:"avg"`
		Min   float64 `bson:"min"`
		Max   float64 `bson:"max"`
	}
	if err := s.aggregate(ctx, summaryPipeline, &summary); err != nil {
		return nil, err
	}
	if len(summary) == 0 {
		return a, nil
	}
	a.TotalMovies = summary[0].Total
	a.Rating = models.RatingSummary{
		Average: query.RoundRating(summary[0].Avg),
		Min:     summary[0].Min,
		Max:     summary[0].Max,
	}

	var err error
	if a.Languages, err = s.textBuckets(ctx, mongo.Pipeline{countBy("$movieLanguage")}); err != nil {
		return nil, err
	}
	if a.Countries, err = s.textBuckets(ctx, mongo.Pipeline{countBy("$movieCountry")}); err != nil {
		return nil, err
	}
	if a.Genres, err = s.textBuckets(ctx, genrePipeline); err != nil {
		return nil, err
	}
	if a.Years, err = s.yearBuckets(ctx, mongo.Pipeline{countBy("$year")}); err != nil {
		return nil, err
	}
	if a.Decades, err = s.yearBuckets(ctx, decadePipeline); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.Unavailable("mongo aggregate", err)
	}
	if err := cur.All(ctx, out); err != nil {
		return models.Unavailable("mongo aggregate", err)
	}
	return nil
}

func (s *Store) textBuckets(ctx context.Context, pipeline mongo.Pipeline) ([]models.Bucket, error) {
	var rows []textCount
	if err := s.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	out := make([]models.Bucket, len(rows))
	for i, r := range rows {
		out[i] = models.Bucket{Value: r.Value, Count: r.Count}
	}
	models.SortBuckets(out)
	return out, nil
}

func (s *Store) yearBuckets(ctx context.Context, pipeline mongo.Pipeline) ([]models.YearBucket, error) {
	var rows []yearCount
	if err := s.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	out := make([]models.YearBucket, len(rows))
	for i, r := range rows {
		out[i] = models.YearBucket{Year: r.Year, Count: r.Count}
	}
	models.SortYearBucketsDesc(out)
	return out, nil
}

// FilterOptions reads distinct values with the distinct command.
func (s *Store) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{}

	langs, err := s.coll.Distinct(ctx, "movieLanguage", bson.M{})
	if err != nil {
		return nil, models.Unavailable("mongo distinct", err)
	}
	countries, err := s.coll.Distinct(ctx, "movieCountry", bson.M{})
	if err != nil {
		return nil, models.Unavailable("mongo distinct", err)
	}
	years, err := s.coll.Distinct(ctx, "year", bson.M{})
	if err != nil {
		return nil, models.Unavailable("mongo distinct", err)
	}

	opts.Languages = stringValues(langs)
	opts.Countries = stringValues(countries)
	for _, v := range years {
		y, err := toInt(v)
		if err != nil {
			return nil, err
		}
		opts.Years = append(opts.Years, y)
	}
	return query.NormalizeOptions(opts), nil
}

func stringValues(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("unexpected year type %T", v)
	}
}

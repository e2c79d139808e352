// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package mongostore

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/cinecatalog/internal/query"
)

// Filter translates a predicate into a BSON filter document. Field names
// match the bson tags on models.Movie. Search terms are quoted so user input
// never acts as a regular expression.
func Filter(pred query.Predicate) (bson.M, error) {
	docs := make([]bson.M, 0, len(pred.Conditions))
	for _, c := range pred.Conditions {
		doc, err := condition(c)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	switch len(docs) {
	case 0:
		return bson.M{}, nil
	case 1:
		return docs[0], nil
	default:
		and := make(bson.A, len(docs))
		for i := range docs {
			and[i] = docs[i]
		}
		return bson.M{"$and": and}, nil
	}
}

func condition(c query.Condition) (bson.M, error) {
	switch c.Kind {
	case query.KindSearch:
		pattern := regexp.QuoteMeta(c.Text)
		or := make(bson.A, len(c.Fields))
		for i, f := range c.Fields {
			or[i] = bson.M{string(f): bson.M{"$regex": pattern, "$options": "i"}}
		}
		return bson.M{"$or": or}, nil
	case query.KindHasElement:
		// Equality on an array field matches any element.
		return bson.M{string(c.Field): c.Text}, nil
	case query.KindEquals:
		if c.Field.IsNumeric() {
			return bson.M{string(c.Field): number(c.Field, c.Number)}, nil
		}
		return bson.M{string(c.Field): c.Text}, nil
	case query.KindAtLeast:
		return bson.M{string(c.Field): bson.M{"$gte": number(c.Field, c.Number)}}, nil
	default:
		return nil, fmt.Errorf("unsupported condition %s", c.Kind)
	}
}

func number(f query.Field, v float64) interface{} {
	if f == query.FieldRating {
		return v
	}
	return int64(v)
}

// Sort renders sort keys as an ordered BSON sort document.
func Sort(keys []query.SortKey) bson.D {
	if len(keys) == 0 {
		return bson.D{{Key: "_id", Value: 1}}
	}
	d := make(bson.D, 0, len(keys))
	for _, k := range keys {
		dir := 1
		if k.Descending {
			dir = -1
		}
		d = append(d, bson.E{Key: string(k.Field), Value: dir})
	}
	return d
}

// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package mongostore

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/cinecatalog/internal/query"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		pred query.Predicate
		want bson.M
	}{
		{"empty", query.Predicate{}, bson.M{}},
		{
			"genre alone",
			query.Predicate{}.And(query.HasElement(query.FieldGenre, "Drama")),
			bson.M{"genre": "Drama"},
		},
		{
			"search quotes metacharacters",
			query.Predicate{}.And(query.Search("Mission: (Redux)")),
			bson.M{"$or": bson.A{
				bson.M{"title": bson.M{"$regex": `mission: \(redux\)`, "$options": "i"}},
				bson.M{"description": bson.M{"$regex": `mission: \(redux\)`, "$options": "i"}},
			}},
		},
		{
			"conjunction",
			query.Predicate{}.
				And(query.EqualsText(query.FieldLanguage, "English")).
				And(query.EqualsNumber(query.FieldYear, 2019)).
				And(query.AtLeast(query.FieldRating, 7)),
			bson.M{"$and": bson.A{
				bson.M{"movieLanguage": "English"},
				bson.M{"year": int64(2019)},
				bson.M{"rating": bson.M{"$gte": 7.0}},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(tt.pred)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter =\n%#v\nwant\n%#v", got, tt.want)
			}
		})
	}
}

func TestFilter_UnknownKind(t *testing.T) {
	_, err := Filter(query.Predicate{Conditions: []query.Condition{{Kind: 99}}})
	if err == nil {
		t.Error("expected error for unknown condition kind")
	}
}

func TestSort(t *testing.T) {
	keys, err := query.ParseSort("-year")
	if err != nil {
		t.Fatal(err)
	}
	want := bson.D{{Key: "year", Value: -1}, {Key: "_id", Value: 1}}
	if got := Sort(keys); !reflect.DeepEqual(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

func TestToInt(t *testing.T) {
	for _, v := range []interface{}{int32(2001), int64(2001), float64(2001)} {
		n, err := toInt(v)
		if err != nil || n != 2001 {
			t.Errorf("toInt(%T) = %d, %v", v, n, err)
		}
	}
	if _, err := toInt("2001"); err == nil {
		t.Error("expected error for string year")
	}
}

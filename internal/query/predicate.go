// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package query

import (
	"strings"

	"github.com/tomtom215/cinecatalog/internal/models"
)

// Field names a movie attribute by its wire name. Store backends map fields
// to columns or document keys.
type Field string

// Queryable and sortable fields.
const (
	FieldID          Field = "_id"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldGenre       Field = "genre"
	FieldRating      Field = "rating"
	FieldYear        Field = "year"
	FieldLanguage    Field = "movieLanguage"
	FieldCountry     Field = "movieCountry"
	FieldRuntime     Field = "runtime"
	FieldCreatedAt   Field = "createdAt"
	FieldUpdatedAt   Field = "updatedAt"
)

// Kind is the comparison a Condition performs.
type Kind int

const (
	// KindSearch is a case-insensitive substring match on any of Fields.
	KindSearch Kind = iota + 1
	// KindHasElement matches when the list Field contains Text exactly.
	KindHasElement
	// KindEquals matches Field == Text (text fields) or Field == Number (numeric fields).
	KindEquals
	// KindAtLeast matches Field >= Number.
	KindAtLeast
)

func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindHasElement:
		return "has"
	case KindEquals:
		return "eq"
	case KindAtLeast:
		return "gte"
	default:
		return "unknown"
	}
}

// Condition is one constraint of a Predicate.
type Condition struct {
	Kind   Kind
	Field  Field
	Fields []Field
	Text   string
	Number float64
}

// Search matches term, lower-cased, inside title or description.
func Search(term string) Condition {
	return Condition{
		Kind:   KindSearch,
		Fields: []Field{FieldTitle, FieldDescription},
		Text:   strings.ToLower(term),
	}
}

// HasElement matches list fields containing value.
func HasElement(field Field, value string) Condition {
	return Condition{Kind: KindHasElement, Field: field, Text: value}
}

// EqualsText matches a text field exactly.
func EqualsText(field Field, value string) Condition {
	return Condition{Kind: KindEquals, Field: field, Text: value}
}

// EqualsNumber matches a numeric field exactly.
func EqualsNumber(field Field, value float64) Condition {
	return Condition{Kind: KindEquals, Field: field, Number: value}
}

// AtLeast matches a numeric field with an inclusive lower bound.
func AtLeast(field Field, value float64) Condition {
	return Condition{Kind: KindAtLeast, Field: field, Number: value}
}

// IsNumeric reports whether the field holds a number.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldRating, FieldYear, FieldRuntime:
		return true
	}
	return false
}

// Predicate is a conjunction of conditions. The zero value matches everything.
type Predicate struct {
	Conditions []Condition
}

// And returns a new predicate with c appended.
func (p Predicate) And(c Condition) Predicate {
	conds := make([]Condition, 0, len(p.Conditions)+1)
	conds = append(conds, p.Conditions...)
	conds = append(conds, c)
	return Predicate{Conditions: conds}
}

// IsEmpty reports whether the predicate imposes no constraint.
func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// Match evaluates the predicate against one movie in memory.
func (p Predicate) Match(m *models.Movie) bool {
	for _, c := range p.Conditions {
		if !c.Match(m) {
			return false
		}
	}
	return true
}

// Match evaluates a single condition.
func (c Condition) Match(m *models.Movie) bool {
	switch c.Kind {
	case KindSearch:
		for _, f := range c.Fields {
			if strings.Contains(strings.ToLower(textValue(m, f)), c.Text) {
				return true
			}
		}
		return false
	case KindHasElement:
		for _, v := range listValue(m, c.Field) {
			if v == c.Text {
				return true
			}
		}
		return false
	case KindEquals:
		if c.Field.IsNumeric() {
			return numberValue(m, c.Field) == c.Number
		}
		return textValue(m, c.Field) == c.Text
	case KindAtLeast:
		return numberValue(m, c.Field) >= c.Number
	default:
		return false
	}
}

func textValue(m *models.Movie, f Field) string {
	switch f {
	case FieldID:
		return m.ID
	case FieldTitle:
		return m.Title
	case FieldDescription:
		return m.Description
	case FieldLanguage:
		return m.Language
	case FieldCountry:
		return m.Country
	default:
		return ""
	}
}

func listValue(m *models.Movie, f Field) []string {
	if f == FieldGenre {
		return m.Genre
	}
	return nil
}

func numberValue(m *models.Movie, f Field) float64 {
	switch f {
	case FieldRating:
		return m.Rating
	case FieldYear:
		return float64(m.Year)
	case FieldRuntime:
		return float64(m.Runtime)
	default:
		return 0
	}
}

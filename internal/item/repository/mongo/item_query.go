package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	repo "catalog/internal/item/repository"
)

// byID matches the single document keyed by id.
func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// buildListFilter translates a repository Filter into a query document.
// The name pattern is escaped so user input is matched literally.
func buildListFilter(f repo.Filter) bson.D {
	if f.IsEmpty() {
		return bson.D{}
	}
	return bson.D{{
		Key: "name",
		Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(f.NameContains),
			Options: "i",
		},
	}}
}

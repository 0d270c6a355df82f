package catalog

import "go.mongodb.org/mongo-driver/bson"

// Descriptor builders. Each returns a fresh bson document so no descriptor is
// shared between calls.

func filterAll() bson.D {
	return bson.D{}
}

func filterEquals(field string, value interface{}) bson.D {
	return bson.D{{Key: field, Value: value}}
}

func filterGreaterThan(field string, value interface{}) bson.D {
	return bson.D{{Key: field, Value: bson.D{{Key: "$gt", Value: value}}}}
}

// filterInStockAfter matches in_stock == true AND published_year > year.
func filterInStockAfter(year int) bson.D {
	return bson.D{
		{Key: "in_stock", Value: true},
		{Key: "published_year", Value: bson.D{{Key: "$gt", Value: year}}},
	}
}

// projectFields builds an inclusion projection for the given fields with the
// store identifier suppressed.
func projectFields(fields ...string) bson.D {
	doc := bson.D{}
	for _, f := range fields {
		doc = append(doc, bson.E{Key: f, Value: 1})
	}
	return append(doc, bson.E{Key: "_id", Value: 0})
}

func sortBy(field string, order SortOrder) bson.D {
	return bson.D{{Key: field, Value: order.Direction()}}
}

func setField(field string, value interface{}) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}}
}

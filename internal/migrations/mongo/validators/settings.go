package validators

import "go.mongodb.org/mongo-driver/bson"

// Settings is a free-form admin-managed document; only the key shape is
// constrained.
var SettingsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},
		},
	},
}

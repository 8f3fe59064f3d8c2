package validators

import "go.mongodb.org/mongo-driver/bson"

var SlotLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"lockedAt",
			"machine",
			"date",
			"start",
		},
		"additionalProperties": true,

		"properties": bson.M{
			// Composite key "<date>_<machine>_<startTime>".
			"_id": bson.M{
				"bsonType": "string",
			},

			"lockedAt": bson.M{
				"bsonType": "date",
			},

			"machine": bson.M{
				"bsonType": "string",
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"start": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{2}:\d{2}$`,
			},
		},
	},
}

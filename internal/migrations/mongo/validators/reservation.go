package validators

import "go.mongodb.org/mongo-driver/bson"

var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"userName",
			"phoneNumber",
			"code",
			"machineType",
			"date",
			"startTime",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"userName": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"phoneNumber": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 30,
			},

			// Legacy 4-character plaintext PIN or a bcrypt hash.
			"code": bson.M{
				"bsonType":  "string",
				"minLength": 4,
				"maxLength": 100,
			},

			"machineType": bson.M{
				"bsonType": "string",
				"enum": []string{
					"masina1",
					"masina2",
					"uscator1",
					"uscator2",
				},
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"startTime": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{2}:\d{2}$`,
			},

			"duration": bson.M{
				"bsonType": "int",
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}

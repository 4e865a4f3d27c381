package factsRepo

import (
	"context"

	"carelink/config"
	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoFactRepo struct {
	coll *mongo.Collection
}

// NewMongoFactRepo returns a Repository backed by the health_facts
// collection.
func NewMongoFactRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &mongoFactRepo{
		coll: db.Collection("health_facts"),
	}
}

// Query finds the fact for the exact user and date, optionally narrowed
// to one category. Date matching is exact, never a range.
func (r *mongoFactRepo) Query(ctx context.Context, userID, date, category string) (string, error) {
	filter := bson.M{"user_id": userID, "date": date}
	if category != "" {
		filter["category"] = category
	}

	var fact models.HealthFact
	err := r.coll.FindOne(ctx, filter).Decode(&fact)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return fact.Text, nil
}

package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"astromarket/database"
	"astromarket/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo returns a ConsultationRequestRepository backed by MongoDB.
func NewMongoRequestRepo() ConsultationRequestRepository {
	return &mongoRequestRepo{coll: database.Database().Collection("consultation_requests")}
}

func (r *mongoRequestRepo) Create(ctx context.Context, req models.ConsultationRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to save consultation request: %w", err)
	}
	return nil
}

func (r *mongoRequestRepo) ListByUser(ctx context.Context, userID string) ([]models.ConsultationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve consultation requests: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ConsultationRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode consultation requests: %w", err)
	}
	return out, nil
}

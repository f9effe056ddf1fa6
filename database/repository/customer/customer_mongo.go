package customerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astromarket/database"
	"astromarket/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo() *MongoCustomerRepo {
	coll := database.Database().Collection("customers")
	repo := &MongoCustomerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create customer indexes: %v\n", err)
	}
	return repo
}

// newContext derives a context with the given timeout from parent.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// List retrieves the full roster ordered by name.
func (r *MongoCustomerRepo) List(ctx context.Context) ([]models.CustomerData, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []models.CustomerData{}
	for cursor.Next(ctx) {
		var c models.CustomerData
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("customer cursor error: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a customer by its unique ID.
func (r *MongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.CustomerData, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var c models.CustomerData
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &c, nil
}

// SeedIfEmpty inserts customers when the collection holds no documents.
// It returns the number of inserted documents.
func (r *MongoCustomerRepo) SeedIfEmpty(ctx context.Context, customers []models.CustomerData) (int, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 || len(customers) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(customers))
	for _, c := range customers {
		docs = append(docs, c)
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to seed customers: %w", err)
	}
	return len(res.InsertedIDs), nil
}

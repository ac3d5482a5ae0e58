package repositories

import (
	"context"
	"fmt"

	"nutrimix/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInvoiceRepository is a MongoDB implementation of InvoiceRepository.
type MongoInvoiceRepository struct {
	coll *mongo.Collection
}

func NewMongoInvoiceRepository(db *mongo.Database) *MongoInvoiceRepository {
	return &MongoInvoiceRepository{coll: db.Collection(invoicesCollection)}
}

func (r *MongoInvoiceRepository) GetAll(ctx context.Context) ([]models.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get all invoices: %w", err)
	}
	invoices := make([]models.Invoice, 0)
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return invoices, nil
}

func (r *MongoInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("failed to create invoice %s: %w", invoice.InvoiceNo, translateMongoError(err))
	}
	return nil
}

func (r *MongoInvoiceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

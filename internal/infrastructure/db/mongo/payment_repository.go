package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

const paymentsCollection = "payments"

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

// Payment ids are ULIDs generated by the service layer, stored as string _id.
type mongoPayment struct {
	ID            string         `bson:"_id"`
	Email         string         `bson:"email,omitempty"`
	Amount        int64          `bson:"amount"`
	Currency      string         `bson:"currency,omitempty"`
	TransactionID string         `bson:"transaction_id,omitempty"`
	Status        string         `bson:"status,omitempty"`
	CreatedAt     time.Time      `bson:"created_at"`
	Attributes    map[string]any `bson:",inline"`
}

func (mp mongoPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            mp.ID,
		Email:         mp.Email,
		Amount:        mp.Amount,
		Currency:      mp.Currency,
		TransactionID: mp.TransactionID,
		Status:        mp.Status,
		CreatedAt:     mp.CreatedAt,
		Attributes:    mp.Attributes,
	}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		ID:            p.ID,
		Email:         p.Email,
		Amount:        p.Amount,
		Currency:      p.Currency,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		Attributes:    p.Attributes,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	return r.findMany(ctx, bson.M{"email": email})
}

func (r *PaymentRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPayment
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(docs))
	for _, mp := range docs {
		payments = append(payments, mp.toDomain())
	}
	return payments, nil
}

// EnsureIndexes creates lookup indexes on the payments collection.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

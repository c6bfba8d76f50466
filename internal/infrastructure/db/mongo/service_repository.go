package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

const servicesCollection = "services"

type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection(servicesCollection)}
}

type mongoService struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	Price       float64            `bson:"price"`
	CreatedAt   time.Time          `bson:"created_at"`
	Attributes  map[string]any     `bson:",inline"`
}

func (ms mongoService) toDomain() *domain.Service {
	return &domain.Service{
		ID:          ms.ID.Hex(),
		Title:       ms.Title,
		Description: ms.Description,
		Category:    ms.Category,
		Price:       ms.Price,
		CreatedAt:   ms.CreatedAt,
		Attributes:  ms.Attributes,
	}
}

func (r *ServiceRepository) Insert(ctx context.Context, svc *domain.Service) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoService{
		Title:       svc.Title,
		Description: svc.Description,
		Category:    svc.Category,
		Price:       svc.Price,
		CreatedAt:   svc.CreatedAt,
		Attributes:  svc.Attributes,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert service: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert service: unexpected id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoService
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}

	services := make([]*domain.Service, 0, len(docs))
	for _, ms := range docs {
		services = append(services, ms.toDomain())
	}
	return services, nil
}

// EnsureIndexes creates the category lookup index on the services collection.
func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	return err
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidServiceID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoService
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return ms.toDomain(), nil
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

const listingCollection = "listings"

// ListingRepository implements ports.ListingRepository using MongoDB.
type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{coll: db.Collection(listingCollection)}
}

type listingDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID    string             `bson:"company_id"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	PricePerHour float64            `bson:"price_per_hour"`
	Category     string             `bson:"category"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *listingDoc) toDomain() domain.ServiceListing {
	return domain.ServiceListing{
		ID:           d.ID.Hex(),
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		Description:  d.Description,
		PricePerHour: d.PricePerHour,
		Category:     d.Category,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// Create inserts a new listing document.
func (r *ListingRepository) Create(ctx context.Context, listing *domain.ServiceListing) (*domain.ServiceListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := listingDoc{
		CompanyID:    listing.CompanyID,
		Name:         listing.Name,
		Description:  listing.Description,
		PricePerHour: listing.PricePerHour,
		Category:     listing.Category,
		CreatedAt:    listing.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}

	created := *listing
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// List retrieves listings matching the filter, newest first.
func (r *ListingRepository) List(ctx context.Context, filter ports.ListingFilter) ([]domain.ServiceListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.CompanyID != "" {
		query["company_id"] = filter.CompanyID
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cursor.Close(ctx)

	listings := make([]domain.ServiceListing, 0)
	for cursor.Next(ctx) {
		var doc listingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		listings = append(listings, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return listings, nil
}

// EnsureIndexes creates the listing query indexes.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

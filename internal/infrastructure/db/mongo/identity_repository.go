package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

const identityCollection = "identities"

// IdentityRepository serves the identity registry from MongoDB.
type IdentityRepository struct {
	coll *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{coll: db.Collection(identityCollection)}
}

type mongoIdentity struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Role        string `bson:"role"`
	Department  string `bson:"department"`
	AccessLevel string `bson:"access_level"`
	Email       string `bson:"email"`
}

func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	var mi mongoIdentity
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return toDomain(mi)
}

func (r *IdentityRepository) List(ctx context.Context) ([]domain.Identity, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoIdentity
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}

	out := make([]domain.Identity, 0, len(docs))
	for _, d := range docs {
		identity, err := toDomain(d)
		if err != nil {
			return nil, err
		}
		out = append(out, *identity)
	}
	return out, nil
}

// Seed upserts ids into the collection keyed by ID. Existing records are
// overwritten so the collection always matches the built-in registry.
func (r *IdentityRepository) Seed(ctx context.Context, ids []domain.Identity) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("seed identities: %w", err)
		}
		doc := fromDomain(id)
		_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed identity %s: %w", id.ID, err)
		}
	}
	return nil
}

// toDomain rejects stored records that break the registry invariants rather
// than hand out an identity whose tier disagrees with its ID.
func toDomain(mi mongoIdentity) (*domain.Identity, error) {
	identity := domain.Identity{
		ID:          mi.ID,
		Name:        mi.Name,
		Role:        mi.Role,
		Department:  mi.Department,
		AccessLevel: domain.AccessLevel(mi.AccessLevel),
		Email:       mi.Email,
	}
	if err := identity.Validate(); err != nil {
		return nil, fmt.Errorf("stored identity: %w", err)
	}
	return &identity, nil
}

func fromDomain(id domain.Identity) mongoIdentity {
	return mongoIdentity{
		ID:          id.ID,
		Name:        id.Name,
		Role:        id.Role,
		Department:  id.Department,
		AccessLevel: string(id.AccessLevel),
		Email:       id.Email,
	}
}

// Package people is the example domain run through txn sessions: a person
// and their pets are registered in one transaction.
package people

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Registrar interface {
	// Register creates a person owning pets and returns the person id.
	// Nothing is stored if any step fails.
	Register(ctx context.Context, person string, pets []string) (string, error)

	AddPets(ctx context.Context, ownerID string, pets []string) error
}

type PetLister interface {
	Pets(ctx context.Context, ownerID string) ([]Pet, error)
}

type Person struct {
	ID   primitive.ObjectID `bson:"_id"  json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Pet struct {
	ID      primitive.ObjectID `bson:"_id"     json:"id"`
	Name    string             `bson:"name"    json:"name"`
	OwnerID string             `bson:"ownerId" json:"ownerId"`
}

// Package mongopeople stores people and pets in MongoDB.
package mongopeople

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/txcommand/internal/people"
	"github.com/nikmy/txcommand/pkg/mongotools"
	"github.com/nikmy/txcommand/pkg/txn/mongotxn"
)

const (
	PeopleCollection = "people"
	PetsCollection   = "pets"
)

type CreatePerson struct {
	Database string `validate:"required"`
	Name     string `validate:"required,max=255"`
}

func (c CreatePerson) Validate() error {
	return people.Validate(c)
}

func (c CreatePerson) Execute(ctx context.Context, client mongotxn.Client, s mongo.Session) (string, error) {
	id := primitive.NewObjectID()

	_, err := client.Database(c.Database).
		Collection(PeopleCollection).
		InsertOne(mongotools.Bind(ctx, s), bson.M{"_id": id, "name": c.Name})
	if err != nil {
		return "", err
	}

	return id.Hex(), nil
}

type CreatePet struct {
	Database string `validate:"required"`
	Name     string `validate:"required,max=255"`
	OwnerID  string `validate:"required,mongodb"`
}

func (c CreatePet) Validate() error {
	return people.Validate(c)
}

func (c CreatePet) Execute(ctx context.Context, client mongotxn.Client, s mongo.Session) error {
	_, err := client.Database(c.Database).
		Collection(PetsCollection).
		InsertOne(mongotools.Bind(ctx, s), bson.M{
			"_id":     primitive.NewObjectID(),
			"name":    c.Name,
			"ownerId": c.OwnerID,
		})
	return err
}

// ListPets reads inside the session transaction, so it sees pets created
// earlier in the same session.
type ListPets struct {
	Database string `validate:"required"`
	OwnerID  string `validate:"required,mongodb"`
}

func (c ListPets) Validate() error {
	return people.Validate(c)
}

func (c ListPets) Execute(ctx context.Context, client mongotxn.Client, s mongo.Session) ([]people.Pet, error) {
	ctx = mongotools.Bind(ctx, s)

	cursor, err := client.Database(c.Database).
		Collection(PetsCollection).
		Find(ctx, mongotools.Field("ownerId", c.OwnerID))
	if err != nil {
		return nil, err
	}

	return mongotools.FilterFunc[people.Pet](ctx, cursor, nil)
}

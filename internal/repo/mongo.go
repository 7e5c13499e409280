package repo

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/txcommand/internal/people/mongopeople"
	"github.com/nikmy/txcommand/pkg/errors"
)

var petsOwnerIndex = mongo.IndexModel{
	Keys:    bson.D{{Key: "ownerId", Value: 1}},
	Options: options.Index().SetName("pets_owner"),
}

func NewMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	return client, nil
}

// EnsureIndexes creates the collections used in transactions, which cannot
// create them implicitly, and indexes pets by owner.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return errors.WrapFail(err, "list collections")
	}

	for _, name := range []string{mongopeople.PeopleCollection, mongopeople.PetsCollection} {
		if slices.Contains(existing, name) {
			continue
		}

		err = db.CreateCollection(ctx, name)
		if err != nil {
			return errors.WrapFailf(err, "create collection %q", name)
		}
	}

	_, err = db.Collection(mongopeople.PetsCollection).Indexes().CreateOne(ctx, petsOwnerIndex)
	if err != nil {
		return errors.WrapFail(err, "create index")
	}

	return nil
}

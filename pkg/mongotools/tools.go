package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/txcommand/pkg/errors"
)

// Bind makes operations run with ctx join the transaction of s.
func Bind(ctx context.Context, s mongo.Session) context.Context {
	if s == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, s)
}

func Field(field string, value any) bson.M {
	return bson.M{field: value}
}

func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	var filtered []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}

package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is a thin data-access wrapper around one mongo collection. Every
// method is a direct passthrough: no validation, no caching, no retries, and
// store failures propagate unmodified.
type Collection struct {
	coll *mongo.Collection
}

func NewCollection(coll *mongo.Collection) Collection {
	return Collection{coll: coll}
}

func (c Collection) ListAll(ctx context.Context, out interface{}) error {
	return c.FindBy(ctx, bson.M{}, out)
}

func (c Collection) FindBy(ctx context.Context, filter bson.M, out interface{}) error {
	cur, err := c.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// FindOneBy decodes the first match into out and reports whether a document
// was found at all.
func (c Collection) FindOneBy(ctx context.Context, filter bson.M, out interface{}) (bool, error) {
	err := c.coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c Collection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (c Collection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c Collection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c Collection) UpdateOne(ctx context.Context, filter, patch bson.M) (int64, error) {
	res, err := c.coll.UpdateOne(ctx, filter, patch)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (c Collection) EstimatedCount(ctx context.Context) (int64, error) {
	return c.coll.EstimatedDocumentCount(ctx)
}

func (c Collection) Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

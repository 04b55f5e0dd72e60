package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"aquameter/internal/metrics"
)

// ErrNotFound is returned when no document matches a lookup. Malformed
// identifiers resolve to ErrNotFound as well, never to a store error: a bad id
// can never match a document.
var ErrNotFound = errors.New("repository: document not found")

// DefaultQueryLimit caps plural lookups that do not state their own limit.
const DefaultQueryLimit = 1000

// Store is a generic adapter over a single document collection. It hides the
// identifier encoding (hex string outside, ObjectID inside) and converts
// driver failures into wrapped errors, logging the cause at the boundary.
type Store struct {
	coll    *mongo.Collection
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewStore returns an adapter bound to one collection.
func NewStore(db *mongo.Database, collection string, logger *zap.Logger, m *metrics.Metrics) *Store {
	return &Store{
		coll:    db.Collection(collection),
		logger:  logger,
		metrics: m,
	}
}

// EnsureIndexes idempotently creates the unique 2dsphere index on location.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.coll.Indexes().CreateOne(ctx, model); err != nil {
		return s.storeErr("create index", err)
	}
	s.logger.Info("ensured location index", zap.String("collection", s.coll.Name()))
	return nil
}

// Insert stores the document and decodes the full stored form, including the
// generated identifier, into out.
func (s *Store) Insert(ctx context.Context, doc any, out any) error {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return s.storeErr("insert", err)
	}
	if err := s.coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(out); err != nil {
		return s.storeErr("read back insert", err)
	}
	return nil
}

// FindByID looks up a document by its external hex identifier.
func (s *Store) FindByID(ctx context.Context, id string, out any) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return s.FindOne(ctx, bson.M{"_id": oid}, out)
}

// FindOne decodes a single document matching filter into out.
func (s *Store) FindOne(ctx context.Context, filter bson.M, out any) error {
	err := s.coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return s.storeErr("find one", err)
	}
	return nil
}

// FindMany decodes all documents matching filter into out, a pointer to a
// slice. A non-positive limit falls back to DefaultQueryLimit so result sets
// stay bounded.
func (s *Store) FindMany(ctx context.Context, filter bson.M, limit int64, out any) error {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return s.storeErr("find many", err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return s.storeErr("decode cursor", err)
	}
	return nil
}

// UpdateByID applies a merge-style ($set) update and decodes the updated
// document into out.
func (s *Store) UpdateByID(ctx context.Context, id string, fields bson.M, out any) error {
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": fields}, out)
}

// Push atomically appends one element to the named embedded array and decodes
// the updated document into out.
func (s *Store) Push(ctx context.Context, id, field string, element any, out any) error {
	return s.findOneAndUpdate(ctx, id, bson.M{"$push": bson.M{field: element}}, out)
}

// Pull atomically removes elements matching match from the named embedded
// array and decodes the updated document into out.
func (s *Store) Pull(ctx context.Context, id, field string, match bson.M, out any) error {
	return s.findOneAndUpdate(ctx, id, bson.M{"$pull": bson.M{field: match}}, out)
}

func (s *Store) findOneAndUpdate(ctx context.Context, id string, update bson.M, out any) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return s.storeErr("find one and update", err)
	}
	return nil
}

// Paginate decodes one page of documents in the stated order into out and
// returns the total number of documents in the collection.
func (s *Store) Paginate(ctx context.Context, sort bson.D, page, size int64, out any) (int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}

	total, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, s.storeErr("count documents", err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip((page - 1) * size).
		SetLimit(size)
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, s.storeErr("paginate", err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return 0, s.storeErr("decode page", err)
	}
	return total, nil
}

// FindNearest runs a $near query against the location index, decoding the
// nearest-first result into out.
func (s *Store) FindNearest(ctx context.Context, long, lat float64, limit int64, out any) error {
	filter := bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{long, lat},
				},
			},
		},
	}
	return s.FindMany(ctx, filter, limit, out)
}

func (s *Store) storeErr(op string, err error) error {
	s.logger.Error("store operation failed",
		zap.String("collection", s.coll.Name()),
		zap.String("op", op),
		zap.Error(err),
	)
	if s.metrics != nil {
		s.metrics.StoreErrors.Inc()
	}
	return fmt.Errorf("repository: %s: %w", op, err)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

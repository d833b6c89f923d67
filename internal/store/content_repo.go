package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

// ContentRepository stores catalog documents
type ContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(coll *mongo.Collection) *ContentRepository {
	return &ContentRepository{coll: coll}
}

// EnsureIndexes creates the text, type/genre and featured/trending indexes.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}, {Key: "tags", Value: "text"}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "genre", Value: 1}}},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}, {Key: "isTrending", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create content indexes: %w", err)
	}
	return nil
}

// List returns one page of documents matching filter.
func (r *ContentRepository) List(ctx context.Context, filter bson.M, sort bson.D, page, limit int64) (*models.Page, error) {
	page, limit, skip := Paging(page, limit)

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	items, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count content: %w", err)
	}
	return &models.Page{
		Items:       items,
		Total:       total,
		TotalPages:  TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

// Featured returns up to ten featured documents.
func (r *ContentRepository) Featured(ctx context.Context) ([]models.CatalogItem, error) {
	return r.find(ctx, FeaturedFilter(), options.Find().SetLimit(listLimit))
}

// Trending returns up to ten trending documents, most viewed first.
func (r *ContentRepository) Trending(ctx context.Context) ([]models.CatalogItem, error) {
	return r.find(ctx, TrendingFilter(), options.Find().SetSort(bson.D{{Key: "views", Value: -1}}).SetLimit(listLimit))
}

func (r *ContentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.CatalogItem, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query content: %w", err)
	}
	items := []models.CatalogItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	return items, nil
}

// View returns the document and increments its view counter in one atomic update.
func (r *ContentRepository) View(ctx context.Context, id string) (*models.CatalogItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var item models.CatalogItem
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewContentNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load content %s: %w", id, err)
	}
	return &item, nil
}

// Create validates and inserts item, setting its id and timestamps.
func (r *ContentRepository) Create(ctx context.Context, item *models.CatalogItem) error {
	item.Normalize()
	if err := item.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	item.ID = primitive.NilObjectID
	item.CreatedAt, item.UpdatedAt = now, now

	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

// Update replaces the editable fields of the document id with item.
func (r *ContentRepository) Update(ctx context.Context, id string, item *models.CatalogItem) (*models.CatalogItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now().UTC()

	set, err := updateDocument(item)
	if err != nil {
		return nil, err
	}
	var updated models.CatalogItem
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewContentNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update content %s: %w", id, err)
	}
	return &updated, nil
}

// updateDocument encodes item without the fields an update must not touch.
func updateDocument(item *models.CatalogItem) (bson.M, error) {
	raw, err := bson.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	delete(doc, "views")
	return doc, nil
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete content %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NewContentNotFoundError(id)
	}
	return nil
}

// Replace clears the collection and inserts items.
func (r *ContentRepository) Replace(ctx context.Context, items []models.CatalogItem) (int, error) {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("failed to clear content: %w", err)
	}
	docs := make([]any, 0, len(items))
	now := time.Now().UTC()
	for i := range items {
		items[i].Normalize()
		if err := items[i].Validate(); err != nil {
			return 0, fmt.Errorf("sample %q: %w", items[i].Title, err)
		}
		items[i].CreatedAt, items[i].UpdatedAt = now, now
		docs = append(docs, items[i])
	}
	if len(docs) == 0 {
		return 0, nil
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert content: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &apperrors.ErrValidation{Fields: []string{"id"}}
	}
	return oid, nil
}

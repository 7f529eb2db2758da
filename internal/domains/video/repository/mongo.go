package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"videohub-backend/internal/domains/video/model"
)

// videoDocument is the stored form of a video
type videoDocument struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`

	Title     string `bson:"title"`
	Thumbnail string `bson:"thumbnail"`
	Link      string `bson:"link"`

	// ===== TIMESTAMPS =====
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d *videoDocument) toModel() *model.Video {
	return &model.Video{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Thumbnail: d.Thumbnail,
		Link:      d.Link,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// MongoRepository stores videos in one MongoDB collection
type MongoRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

var _ VideoRepository = (*MongoRepository)(nil)

func NewMongoRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		collection: collection,
		now:        time.Now,
	}
}

// newestFirst orders by creation time, then by id for records created in the same millisecond
var newestFirst = bson.D{
	{Key: "createdAt", Value: -1},
	{Key: "_id", Value: -1},
}

// EnsureIndexes creates the index backing the list order
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    newestFirst,
		Options: options.Index().SetName("createdAt_-1__id_-1"),
	})
	if err != nil {
		return fmt.Errorf("failed to create video indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	now := model.StoreTime(r.now())
	doc := videoDocument{
		ID:        primitive.NewObjectID(),
		Title:     video.Title,
		Thumbnail: video.Thumbnail,
		Link:      video.Link,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc videoDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewVideoNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*model.Video, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}

	var docs []videoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	videos := make([]*model.Video, 0, len(docs))
	for i := range docs {
		videos = append(videos, docs[i].toModel())
	}
	return videos, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": model.StoreTime(r.now())}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Thumbnail != nil {
		set["thumbnail"] = *patch.Thumbnail
	}
	if patch.Link != nil {
		set["link"] = *patch.Link
	}

	var doc videoDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewVideoNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return model.NewVideoNotFoundError()
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.NewInvalidIDError(id, "ObjectId")
	}
	return oid, nil
}

package vipmedia

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MediaRepository VIP 媒體倉儲接口
type MediaRepository interface {
	Create(ctx context.Context, m *Media) error
	List(ctx context.Context) ([]*Media, error)
}

// Media VIP 媒體數據模型.
// file_url 是自包含的 data URI，記錄建立後不再變動.
type Media struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FileURL   string        `bson:"file_url" json:"file_url"`
	Caption   string        `bson:"caption" json:"caption"`
	Type      string        `bson:"type" json:"type"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// MediaStore VIP 媒體存儲實作
type MediaStore struct {
	collection *mongo.Collection
}

// NewMediaStore 創建新的 VIP 媒體存儲
func NewMediaStore(db *mongo.Database) *MediaStore {
	return &MediaStore{
		collection: db.Collection("vip_media"),
	}
}

// Create 儲存一筆媒體記錄
func (s *MediaStore) Create(ctx context.Context, m *Media) error {
	m.ID = bson.NewObjectID()
	m.CreatedAt = time.Now().UTC()

	_, err := s.collection.InsertOne(ctx, m)
	return err
}

// List 依建立時間降冪列出全部媒體（最新在前，不設上限）
func (s *MediaStore) List(ctx context.Context) ([]*Media, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	media := make([]*Media, 0)
	if err := cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

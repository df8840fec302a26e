package broadcasts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// BroadcastRepository 廣播倉儲接口
type BroadcastRepository interface {
	Create(ctx context.Context, msg *BroadcastMessage) error
	Latest(ctx context.Context) (*BroadcastMessage, error)
}

// BroadcastMessage 廣播訊息數據模型.
// 僅追加：建立後不可編輯或刪除.
type BroadcastMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// BroadcastStore 廣播存儲實作
type BroadcastStore struct {
	collection *mongo.Collection
}

// NewBroadcastStore 創建新的廣播存儲
func NewBroadcastStore(db *mongo.Database) *BroadcastStore {
	return &BroadcastStore{
		collection: db.Collection("broadcasts"),
	}
}

// Create 追加一則廣播訊息
func (s *BroadcastStore) Create(ctx context.Context, msg *BroadcastMessage) error {
	msg.ID = bson.NewObjectID()
	msg.CreatedAt = time.Now().UTC()

	_, err := s.collection.InsertOne(ctx, msg)
	return err
}

// Latest 取得最新一則廣播；日誌為空時回傳 (nil, nil)，不是錯誤
func (s *BroadcastStore) Latest(ctx context.Context) (*BroadcastMessage, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var msg BroadcastMessage
	err := s.collection.FindOne(ctx, bson.M{}, opts).Decode(&msg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

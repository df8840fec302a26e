package contacts

import (
	"context"
	"time"

	"contact-vault/internal/contact"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ContactRepository 聯絡人倉儲接口
type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	GetByPhone(ctx context.Context, phone string) (*Contact, error)
	UpdateByPhone(ctx context.Context, phone string, set bson.M) (*Contact, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (*Contact, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, limit int64) ([]*Contact, error)
	Count(ctx context.Context) (int64, error)
}

// Contact 聯絡人數據模型
type Contact struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	PhoneNumber string        `bson:"phone_number" json:"phone_number"`
	Link        string        `bson:"link" json:"link"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}

// ContactStore 聯絡人存儲實作
type ContactStore struct {
	collection *mongo.Collection
}

// NewContactStore 創建新的聯絡人存儲
func NewContactStore(db *mongo.Database) *ContactStore {
	return &ContactStore{
		collection: db.Collection("contacts"),
	}
}

// Create 創建聯絡人.
// 電話號碼唯一性由唯一索引裁決：並發註冊時後到的寫入在這裡收到
// duplicate key 錯誤，映射為 ErrDuplicatePhone；應用層不做先查後寫.
func (s *ContactStore) Create(ctx context.Context, c *Contact) error {
	c.ID = bson.NewObjectID()
	c.CreatedAt = time.Now().UTC()

	_, err := s.collection.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return contact.ErrDuplicatePhone
	}
	return err
}

// GetByPhone 根據正規化後的電話號碼獲取聯絡人
func (s *ContactStore) GetByPhone(ctx context.Context, phone string) (*Contact, error) {
	var c Contact
	err := s.collection.FindOne(ctx, bson.M{"phone_number": phone}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contact.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// UpdateByPhone 以目前電話號碼定位並更新聯絡人，回傳更新後的記錄
func (s *ContactStore) UpdateByPhone(ctx context.Context, phone string, set bson.M) (*Contact, error) {
	return s.findOneAndUpdate(ctx, bson.M{"phone_number": phone}, set)
}

// UpdateByID 以記錄 ID 定位並更新聯絡人，回傳更新後的記錄
func (s *ContactStore) UpdateByID(ctx context.Context, id string, set bson.M) (*Contact, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, contact.ErrNotFound
	}
	return s.findOneAndUpdate(ctx, bson.M{"_id": objectID}, set)
}

// findOneAndUpdate 共用的更新邏輯；新號碼撞到唯一索引時映射為 ErrDuplicatePhone
func (s *ContactStore) findOneAndUpdate(ctx context.Context, filter, set bson.M) (*Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Contact
	err := s.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contact.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, contact.ErrDuplicatePhone
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteByID 根據 ID 刪除聯絡人
func (s *ContactStore) DeleteByID(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return contact.ErrNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contact.ErrNotFound
	}
	return nil
}

// List 依建立時間升冪列出聯絡人；limit <= 0 表示不設上限
func (s *ContactStore) List(ctx context.Context, limit int64) ([]*Contact, error) {
	opts := options.Find()
	opts.SetSort(bson.D{{Key: "created_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := make([]*Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Count 計算聯絡人總數
func (s *ContactStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}

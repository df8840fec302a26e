package contacts

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateIndexes 創建聯絡人集合的索引.
// phone_number 的唯一索引是跨請求唯一性的唯一仲裁者（見 ContactStore.Create）.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("contacts")

	// 1. 電話號碼唯一索引
	phoneUniqueIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "phone_number", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("phone_unique_idx"),
	}

	// 2. 建立時間索引（列表與匯出都按建立順序讀取）
	createdAtIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "created_at", Value: 1},
		},
		Options: options.Index().SetName("created_at_idx"),
	}

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		phoneUniqueIndex,
		createdAtIndex,
	})
	return err
}

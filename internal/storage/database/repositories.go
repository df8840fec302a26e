package database

import (
	"context"

	"contact-vault/internal/platform/logger"
	"contact-vault/internal/storage/database/broadcasts"
	"contact-vault/internal/storage/database/contacts"
	"contact-vault/internal/storage/database/vipmedia"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Repositories 倉儲集合.
type Repositories struct {
	Contacts   *contacts.ContactStore
	Broadcasts *broadcasts.BroadcastStore
	VIPMedia   *vipmedia.MediaStore
}

// NewRepositories 創建倉儲集合.
func NewRepositories() *Repositories {
	db := mongoDB
	if db == nil {
		return nil
	}

	// 建立索引；phone_number 唯一索引仲裁並發註冊
	ctx := context.Background()
	if err := contacts.CreateIndexes(ctx, db); err != nil {
		logger.Errorf(ctx, "建立聯絡人索引失敗: %v", err)
	}

	return &Repositories{
		Contacts:   contacts.NewContactStore(db),
		Broadcasts: broadcasts.NewBroadcastStore(db),
		VIPMedia:   vipmedia.NewMediaStore(db),
	}
}

// 全局變數，用於存儲 MongoDB 連接
var mongoDB *mongo.Database

// SetMongoDB 設置 MongoDB 連接.
func SetMongoDB(db *mongo.Database) {
	mongoDB = db
}

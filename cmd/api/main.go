package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"contact-vault/internal/platform/config"
	"contact-vault/internal/platform/driver"
	"contact-vault/internal/platform/logger"
	"contact-vault/internal/platform/server"
	"contact-vault/internal/storage/database"
)

func main() {
	if err := mainNoExit(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// mainNoExit 分離主要邏輯以避免 exitAfterDefer 問題，確保 defer 函數正常執行.
func mainNoExit() error {
	// 載入 .env（僅開發環境使用；檔案不存在時忽略）
	_ = godotenv.Load()

	// 初始化日誌.
	if err := logger.InitLogger(); err != nil {
		return err
	}
	defer logger.CloseLogger()

	ctx := context.Background()

	// 載入配置；缺少 MongoDB 連接字串或管理密鑰時在這裡直接失敗.
	if err := config.Load(); err != nil {
		return err
	}

	logger.Infof(ctx, "設定載入成功，環境: %s", config.GetEnv())

	// 連接資料庫.
	if err := driver.ConnectMongo(); err != nil {
		return err
	}
	defer func() {
		if err := driver.CloseMongo(); err != nil {
			logger.Errorf(ctx, "關閉 MongoDB 連接失敗: %v", err)
		}
	}()

	// 設置 MongoDB 連接到 database 包
	database.SetMongoDB(driver.GetMongoDatabase())

	// 初始化 Repository（含唯一索引建立）.
	repos := database.NewRepositories()
	if repos == nil {
		return fmt.Errorf("repository initialization failed")
	}

	logger.Info(ctx, "[System] 倉儲初始化完成，啟動 HTTP 伺服器")

	// 啟動 HTTP 伺服器並阻塞至關閉信號
	return server.Start(repos)
}

package config

import (
	"strings"
	"testing"
)

// validTestConfig 組出一份通過驗證的最小配置.
func validTestConfig() *Config {
	return &Config{
		App: AppConfig{Name: "contact-vault", Version: "test"},
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    "8080",
			Timeout: 30,
		},
		Database: DatabaseConfig{
			Mongo: MongoConfig{
				URL:         "mongodb://localhost:27017",
				Database:    "contact_vault_test",
				MaxPoolSize: 10,
				MinPoolSize: 1,
			},
		},
		Log: LogConfig{
			RotationTimeHours: 24,
			MaxAgeDays:        7,
			MaxSizeMB:         10,
		},
		Security: SecurityConfig{AdminKey: "test-key"},
	}
}

func TestLoadWithTestConfig(t *testing.T) {
	cfg := validTestConfig()
	if err := Load(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Get() != cfg {
		t.Error("Get() should return the injected config")
	}
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"Missing mongo url", func(c *Config) { c.Database.Mongo.URL = "" }, "MongoDB URL"},
		{"Missing admin key", func(c *Config) { c.Security.AdminKey = "" }, "管理密鑰"},
		{"Missing app name", func(c *Config) { c.App.Name = "" }, "應用程式名稱"},
		{"Zero pool size", func(c *Config) { c.Database.Mongo.MaxPoolSize = 0 }, "連接池"},
		{"Min pool above max", func(c *Config) {
			c.Database.Mongo.MinPoolSize = 20
			c.Database.Mongo.MaxPoolSize = 10
		}, "連接池"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(cfg)

			err := Load(cfg)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestPublicListMax(t *testing.T) {
	cfg := validTestConfig()
	if err := Load(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 未配置時使用預設值
	if got := PublicListMax(); got != 250 {
		t.Errorf("default PublicListMax = %d, want 250", got)
	}

	cfg.Limits.PublicListMax = 100
	if got := PublicListMax(); got != 100 {
		t.Errorf("PublicListMax = %d, want 100", got)
	}
}

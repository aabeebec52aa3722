// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	bottleentity "winecellar_backend/internal/feature/bottle/domain/entity"
	regionentity "winecellar_backend/internal/feature/region/domain/entity"
	storeentity "winecellar_backend/internal/feature/store/domain/entity"
	wineentity "winecellar_backend/internal/feature/wine/domain/entity"
)

// OpenDB は環境変数の設定でDBを開きます。DB_DRIVER=sqliteの場合はローカルの
// SQLiteファイル、それ以外はPostgreSQLに接続します。接続できるまで60秒リトライします。
func OpenDB() *gorm.DB {
	var dialector gorm.Dialector
	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "winecellar.db"
		}
		// ボトルの連鎖削除・NULL化を外部キー制約で効かせる
		dialector = sqlite.Open(path + "?_foreign_keys=on")
	} else {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), sslMode())
		dialector = postgres.Open(dsn)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&wineentity.Wine{},
			&storeentity.Store{},
			&regionentity.Region{},
			&bottleentity.Bottle{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func sslMode() string {
	if mode := os.Getenv("DB_SSLMODE"); mode != "" {
		return mode
	}
	return "disable"
}

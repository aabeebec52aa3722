package main

import (
	"log"
	"os"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"winecellar_backend/internal/app/router"
	bottleadapters "winecellar_backend/internal/feature/bottle/adapters"
	bottlehandler "winecellar_backend/internal/feature/bottle/transport/handler"
	bottleusecase "winecellar_backend/internal/feature/bottle/usecase"
	labeladapters "winecellar_backend/internal/feature/labelanalysis/adapters"
	"winecellar_backend/internal/feature/labelanalysis/adapters/gemini"
	labelhandler "winecellar_backend/internal/feature/labelanalysis/transport/handler"
	labelusecase "winecellar_backend/internal/feature/labelanalysis/usecase"
	regionadapters "winecellar_backend/internal/feature/region/adapters"
	regionhandler "winecellar_backend/internal/feature/region/transport/handler"
	regionusecase "winecellar_backend/internal/feature/region/usecase"
	storeadapters "winecellar_backend/internal/feature/store/adapters"
	storehandler "winecellar_backend/internal/feature/store/transport/handler"
	storeusecase "winecellar_backend/internal/feature/store/usecase"
	wineadapters "winecellar_backend/internal/feature/wine/adapters"
	winehandler "winecellar_backend/internal/feature/wine/transport/handler"
	wineusecase "winecellar_backend/internal/feature/wine/usecase"
	"winecellar_backend/internal/platform/cache"
	infradb "winecellar_backend/internal/platform/db"
	infraredis "winecellar_backend/internal/platform/redis"
	"winecellar_backend/internal/shared/ratelimiter"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis（産地カタログのキャッシュ用。なくても動く）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	wineRepo := wineadapters.NewWineRepository(db)
	bottleRepo := bottleadapters.NewBottleRepository(db)
	storeRepo := storeadapters.NewStoreRepository(db)
	regionRepo := regionadapters.NewRegionRepository(db)

	// 産地カタログはRedisキャッシュでラップ
	catalog := cache.NewCachingRegionCatalog(rdb, 5*time.Minute, labeladapters.NewRegionCatalog(db), "regions")

	// ビジョンAPIのクレデンシャルチェック（開発中の注意喚起）
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("[WARN] GEMINI_API_KEY is not set. Label analysis will fail until configured.")
	}

	// 外部ビジョンAPIは呼びすぎないようレートリミッタを挟む
	limiter := ratelimiter.NewRateLimiter(10, time.Minute)
	reader := gemini.NewGeminiLabelReader(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"), limiter)

	// Usecase
	wineUC := wineusecase.NewWineUsecase(wineRepo)
	bottleUC := bottleusecase.NewBottleUsecase(bottleRepo)
	storeUC := storeusecase.NewStoreUsecase(storeRepo)
	regionUC := regionusecase.NewRegionUsecase(regionRepo, catalog)
	labelUC := labelusecase.NewLabelAnalysisUsecase(reader, catalog, maxImageDimension())

	// Handler
	wineH := winehandler.NewWineHandler(wineUC)
	bottleH := bottlehandler.NewBottleHandler(bottleUC)
	storeH := storehandler.NewStoreHandler(storeUC)
	regionH := regionhandler.NewRegionHandler(regionUC)
	labelH := labelhandler.NewLabelAnalysisHandler(labelUC)

	// ルータ生成
	r := router.NewRouter(wineH, bottleH, storeH, regionH, labelH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

// maxImageDimension はLABEL_MAX_IMAGE_SIZEを読みます。未設定・不正時は既定値です。
func maxImageDimension() int {
	raw := os.Getenv("LABEL_MAX_IMAGE_SIZE")
	if raw == "" {
		return labelusecase.DefaultMaxDimension
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("[WARN] invalid LABEL_MAX_IMAGE_SIZE %q, using default", raw)
		return labelusecase.DefaultMaxDimension
	}
	return v
}

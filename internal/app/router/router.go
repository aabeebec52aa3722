// Package router はアプリケーション全体のルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	bottlehandler "winecellar_backend/internal/feature/bottle/transport/handler"
	labelhandler "winecellar_backend/internal/feature/labelanalysis/transport/handler"
	regionhandler "winecellar_backend/internal/feature/region/transport/handler"
	storehandler "winecellar_backend/internal/feature/store/transport/handler"
	winehandler "winecellar_backend/internal/feature/wine/transport/handler"
	healthhandler "winecellar_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを登録したginエンジンを返します。
func NewRouter(
	wines *winehandler.WineHandler,
	bottles *bottlehandler.BottleHandler,
	stores *storehandler.StoreHandler,
	regions *regionhandler.RegionHandler,
	analysis *labelhandler.LabelAnalysisHandler,
) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", healthhandler.Health)

	v1 := r.Group("/v1")
	{
		// ラベル解析。外部ビジョンAPIを呼ぶため他のCRUDより重い。
		v1.POST("/wines/analyze-label", analysis.AnalyzeLabel)

		v1.GET("/wines", wines.List)
		v1.POST("/wines", wines.Create)
		v1.GET("/wines/:id", wines.Get)
		v1.PUT("/wines/:id", wines.Update)
		v1.PATCH("/wines/:id", wines.Patch)
		v1.DELETE("/wines/:id", wines.Delete)

		v1.GET("/bottles", bottles.List)
		v1.POST("/bottles", bottles.Create)
		v1.GET("/bottles/:id", bottles.Get)
		v1.PUT("/bottles/:id", bottles.Update)
		v1.POST("/bottles/:id/consume", bottles.Consume)
		v1.DELETE("/bottles/:id", bottles.Delete)

		v1.GET("/stores", stores.List)
		v1.POST("/stores", stores.Create)
		v1.GET("/stores/:id", stores.Get)
		v1.PUT("/stores/:id", stores.Update)
		v1.DELETE("/stores/:id", stores.Delete)

		v1.GET("/regions", regions.List)
		v1.POST("/regions", regions.Create)
		v1.GET("/regions/:id", regions.Get)
		v1.PUT("/regions/:id", regions.Update)
		v1.DELETE("/regions/:id", regions.Delete)
	}

	return r
}

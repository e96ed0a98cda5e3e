package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/talentperformer/contract-review/config"
	"github.com/talentperformer/contract-review/internal/embed"
	"github.com/talentperformer/contract-review/internal/handler"
)

func Setup(cfg *config.Config, reviewHandler *handler.ReviewHandler) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		api.POST("/review", reviewHandler.Review)
	}
	r.GET("/healthz", reviewHandler.Health)

	// 嵌入的上传页面
	embed.SetupRouter(r)

	return r
}

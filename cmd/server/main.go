package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/talentperformer/contract-review/config"
	"github.com/talentperformer/contract-review/internal/extractor"
	"github.com/talentperformer/contract-review/internal/handler"
	"github.com/talentperformer/contract-review/internal/pkg/llm"
	"github.com/talentperformer/contract-review/internal/router"
	"github.com/talentperformer/contract-review/internal/team"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	// .env 可选，存在则加载
	_ = godotenv.Load()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()
	if cfg.LLM.APIKey == "" {
		log.Fatalf("Failed to start: %v", &team.ConfigurationError{Key: "OPENAI_API_KEY"})
	}

	// 初始化生成能力与评审团队
	client := llm.NewClient(cfg)
	reviewTeam := team.New(client, extractor.New())

	// 初始化 Handler 与路由
	reviewHandler := handler.NewReviewHandler(reviewTeam)
	r := router.Setup(cfg, reviewHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

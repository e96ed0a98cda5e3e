package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/talentperformer/contract-review/config"
	"github.com/talentperformer/contract-review/internal/bot"
	"github.com/talentperformer/contract-review/internal/extractor"
	"github.com/talentperformer/contract-review/internal/pkg/llm"
	"github.com/talentperformer/contract-review/internal/team"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	// .env 可选，存在则加载
	_ = godotenv.Load()

	klog.V(6).Info("Telegram bot 启动中...")

	cfg := config.GetConfig()
	if cfg.LLM.APIKey == "" {
		log.Fatalf("Failed to start: %v", &team.ConfigurationError{Key: "OPENAI_API_KEY"})
	}

	client := llm.NewClient(cfg)
	reviewTeam := team.New(client, extractor.New())

	// 缺少 bot token 时在这里直接失败
	b, err := bot.New(cfg, reviewTeam)
	if err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Telegram bot is running...")
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot stopped: %v", err)
	}
}

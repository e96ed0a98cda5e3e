// Package bot Telegram 长轮询前端
// 只负责 I/O 适配：下载文档字节、取 caption 作为目标、调用团队入口、回发结果
package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"k8s.io/klog/v2"

	"github.com/talentperformer/contract-review/config"
	"github.com/talentperformer/contract-review/internal/team"
)

// replyCharBudget Telegram 单条消息的字符预算
const replyCharBudget = 3500

// truncationNotice 超出预算时附加的提示
const truncationNotice = "\n\n Output truncated."

const startText = `Welcome to the Contract Multi-Agent Analyzer.

You can:
• Upload a contract (PDF, DOCX, or TXT)
• Optionally add your goal in the caption (e.g. reduce liability)

I will analyze the contract using multiple AI agents and return a consolidated report.`

const helpText = `How to use this bot:

1. Upload a contract file (PDF, DOCX, or TXT)
2. (Optional) Add your objective in the message or caption
3. Wait for the multi-agent analysis

Example goal:
• Strengthen termination clause
• Reduce legal liability
• Ensure GDPR / DPA compliance`

// reviewer 团队入口的最小依赖面，便于测试替换
type reviewer interface {
	RunContractTeam(ctx context.Context, fileBytes []byte, filename, userGoal string) (string, error)
}

// telegramClient 消息处理依赖的 API 面：发消息、取文件直链
type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
}

type Bot struct {
	api         *tgbotapi.BotAPI
	client      telegramClient
	team        reviewer
	pollTimeout int
	httpClient  *http.Client
}

// New 创建 Bot；缺少凭证立即失败，不留到请求时
func New(cfg *config.Config, t *team.Team) (*Bot, error) {
	if cfg.Telegram.BotToken == "" {
		return nil, &team.ConfigurationError{Key: "TELEGRAM_BOT_TOKEN"}
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	klog.V(6).Infof("Telegram bot 已连接: @%s", api.Self.UserName)
	return &Bot{
		api:         api,
		client:      api,
		team:        t,
		pollTimeout: cfg.Telegram.PollTimeout,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Run 启动长轮询循环，阻塞直到 ctx 取消
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)
	klog.V(6).Info("Telegram bot 开始轮询...")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case msg.IsCommand():
		b.handleCommand(msg)
	case msg.Document != nil:
		b.handleDocument(ctx, msg)
	case msg.Text != "":
		b.handleText(ctx, msg)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, startText)
	case "help":
		b.reply(msg.Chat.ID, helpText)
	}
}

// handleDocument 处理合同文档：caption 作为可选目标
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, "Processing your contract, please wait...")

	doc := msg.Document
	fileBytes, err := b.downloadDocument(doc.FileID)
	if err != nil {
		klog.Errorf("下载文档失败: fileID=%s, err=%v", doc.FileID, err)
		b.reply(msg.Chat.ID, "analysis failed, please retry")
		return
	}

	filename := doc.FileName
	if filename == "" {
		filename = "contract"
	}

	output, err := b.team.RunContractTeam(ctx, fileBytes, filename, msg.Caption)
	if err != nil {
		klog.Errorf("合同评审失败: filename=%s, err=%v", filename, err)
		b.reply(msg.Chat.ID, "analysis failed, please retry")
		return
	}

	b.reply(msg.Chat.ID, truncateOutput(output))
}

// handleText 纯文本消息整体按合同文本处理
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, "Analyzing the provided text...")

	output, err := b.team.RunContractTeam(ctx, []byte(msg.Text), "contract.txt", "")
	if err != nil {
		klog.Errorf("合同评审失败: err=%v", err)
		b.reply(msg.Chat.ID, "analysis failed, please retry")
		return
	}

	b.reply(msg.Chat.ID, truncateOutput(output))
}

// downloadDocument 从 Telegram 文件服务器拉取文档字节
func (b *Bot) downloadDocument(fileID string) ([]byte, error) {
	url, err := b.client.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	resp, err := b.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.client.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		klog.Errorf("发送消息失败: chatID=%d, err=%v", chatID, err)
	}
}

// truncateOutput 输出超出预算时截断并附加提示
// Telegram 要求消息正文是合法 UTF-8，截断点退回到 rune 边界，不从多字节字符中间切开
func truncateOutput(output string) string {
	if len(output) <= replyCharBudget {
		return output
	}
	cut := replyCharBudget
	for cut > 0 && !utf8.RuneStart(output[cut]) {
		cut--
	}
	return output[:cut] + truncationNotice
}

// Package llm 封装 OpenAI 兼容的文本生成能力
// 角色与 Manager 都通过这里的 Generate 调用生成能力，超时与重试集中在此处理
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"k8s.io/klog/v2"

	"github.com/talentperformer/contract-review/config"
)

// Client LLM 客户端
type Client struct {
	client      *openai.Client
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// NewClient 创建新的 LLM 客户端
func NewClient(cfg *config.Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.APIURL != "" {
		clientCfg.BaseURL = cfg.LLM.APIURL
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientCfg),
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}
}

// Generate 发送 system + user prompt，返回生成的 Markdown 文本
// 每次调用带独立超时；瞬时失败重试一次（生成调用无副作用，重试幂等）
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	klog.V(6).Infof("Generate 请求: model=%s, system=%d bytes, user=%d bytes",
		c.Model, len(systemPrompt), len(userPrompt))

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			klog.V(6).Infof("Generate 重试: attempt=%d, lastErr=%v", attempt+1, lastErr)
		}

		content, err := c.generateOnce(ctx, systemPrompt, userPrompt)
		if err == nil {
			return content, nil
		}
		lastErr = err

		// 外层取消/超时不再重试
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (c *Client) generateOnce(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	callCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("LLM request timed out after %s: %w", c.Timeout, err)
		}
		return "", fmt.Errorf("LLM request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from LLM")
	}

	klog.V(6).Infof("Generate 完成: tokens=%d", resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}

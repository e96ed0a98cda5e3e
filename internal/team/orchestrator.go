package team

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Generator 不透明的文本生成能力
// 传入角色指令与上下文，返回 Markdown 文本
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Orchestrator 用同一份输入并行调用所有分析角色，收集各自的报告
// 角色之间无数据依赖，互相看不到对方的输出
type Orchestrator struct {
	generator Generator
}

func NewOrchestrator(generator Generator) *Orchestrator {
	return &Orchestrator{generator: generator}
}

// RunAll 并行执行所有角色，返回顺序与角色配置顺序一致
// 失败策略为 fail-fast：任一角色失败即取消其余角色并整体失败，
// Manager 需要三个视角齐全才能保证汇总质量
func (o *Orchestrator) RunAll(ctx context.Context, roles []Role, contractText, userGoal string) ([]AgentReport, error) {
	klog.V(6).Infof("编排器启动: roles=%d, text=%d bytes", len(roles), len(contractText))

	reports := make([]AgentReport, len(roles))
	userPrompt := buildRoleUserPrompt(contractText, userGoal)

	g, gctx := errgroup.WithContext(ctx)
	for i, role := range roles {
		g.Go(func() error {
			output, err := o.generator.Generate(gctx, role.SystemPrompt(), userPrompt)
			if err != nil {
				return &RoleExecutionError{Role: role.Name, Err: err}
			}

			klog.V(6).Infof("角色完成: role=%s, output=%d bytes", role.Name, len(output))
			// 生成能力的返回值按不透明文本处理，不做结构化解析
			reports[i] = AgentReport{
				AgentName: role.Name,
				RawOutput: output,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// buildRoleUserPrompt 构造各角色共用的 user prompt
// 所有角色收到完全相同的输入
func buildRoleUserPrompt(contractText, userGoal string) string {
	goal := strings.TrimSpace(userGoal)
	if goal == "" {
		goal = "N/A"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("USER GOAL (optional):\n%s\n\n", goal))
	sb.WriteString("CONTRACT TEXT:\n")
	if contractText == "" {
		sb.WriteString("(no text could be extracted from the document)\n")
	} else {
		sb.WriteString(contractText)
		sb.WriteString("\n")
	}
	sb.WriteString("\nTASK:\n- Review the contract text from your role's perspective and return your report in Markdown.\n")
	return sb.String()
}

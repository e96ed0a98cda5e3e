package team

import (
	"context"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/talentperformer/contract-review/internal/extractor"
)

// Team 合同评审团队：抽取 → 编排 → 汇总
// 所有前端只允许通过 RunContractTeam 这一个入口调用
type Team struct {
	extractor    extractor.Extractor
	orchestrator *Orchestrator
	consolidator *Consolidator
	roles        []Role
}

// New 创建团队，角色配置进程级只读
func New(generator Generator, ext extractor.Extractor) *Team {
	return &Team{
		extractor:    ext,
		orchestrator: NewOrchestrator(generator),
		consolidator: NewConsolidator(generator),
		roles:        DefaultAnalysisRoles(),
	}
}

// RunContractTeam 单一入口：文档字节 + 文件名 + 可选目标 → 最终 Markdown
func (t *Team) RunContractTeam(ctx context.Context, fileBytes []byte, filename, userGoal string) (string, error) {
	report, err := t.Run(ctx, fileBytes, filename, userGoal)
	if err != nil {
		return "", err
	}
	return report.Markdown, nil
}

// Run 与 RunContractTeam 相同的流程，但返回带 Trace 的结构化结果
// Trace 保留各角色原始输出用于审计，调用方不应将其渲染给最终用户
func (t *Team) Run(ctx context.Context, fileBytes []byte, filename, userGoal string) (*ConsolidatedReport, error) {
	runID := uuid.NewString()[:8]
	klog.V(6).Infof("[run %s] 开始评审: filename=%s, size=%d, goal=%q", runID, filename, len(fileBytes), userGoal)

	contractText, err := t.extractor.Extract(fileBytes, filename)
	if err != nil {
		return nil, &ExtractionError{Filename: filename, Err: err}
	}
	klog.V(6).Infof("[run %s] 文本抽取完成: %d bytes", runID, len(contractText))

	reports, err := t.orchestrator.RunAll(ctx, t.roles, contractText, userGoal)
	if err != nil {
		return nil, err
	}

	markdown, err := t.consolidator.Consolidate(ctx, reports, contractText, filename, userGoal)
	if err != nil {
		return nil, err
	}

	klog.V(6).Infof("[run %s] 评审完成: output=%d bytes", runID, len(markdown))
	return &ConsolidatedReport{
		Trace:    reports,
		Markdown: markdown,
	}, nil
}

package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"k8s.io/klog/v2"
)

// SectionHeadings 最终报告的固定章节标题，顺序不可变
var SectionHeadings = []string{
	"# Executive Summary",
	"# 1) Structure Review",
	"# 2) Legal & Compliance Review",
	"# 3) Negotiation Playbook",
	"# Open Questions",
	"# Disclaimer",
}

// managerOutputFormat Manager 的固定输出格式契约
const managerOutputFormat = `OUTPUT FORMAT (Markdown):
# Executive Summary
- 5-8 bullets: the most important risks + quick wins

# 1) Structure Review
- Main gaps (bullets)
- Recommended improvements (bullets)

# 2) Legal & Compliance Review
- Top risks (bullets)
- Missing/unclear clauses checklist (bullets)

# 3) Negotiation Playbook
- Top 3-5 negotiation points: Clause quote / Ask / Fallback / Suggested wording

# Open Questions
- 3-8 clarifying questions for the client

# Disclaimer
- Informational only; not legal advice.
`

// Consolidator Manager 角色：把各分析角色的原始输出合并为一份客户可读的报告
type Consolidator struct {
	generator Generator
}

func NewConsolidator(generator Generator) *Consolidator {
	return &Consolidator{generator: generator}
}

// Consolidate 执行汇总，返回最终 Markdown
// 章节结构由输出契约固定；失败返回 ConsolidationError
func (c *Consolidator) Consolidate(ctx context.Context, reports []AgentReport, contractText, filename, userGoal string) (string, error) {
	names := slice.Map(reports, func(_ int, r AgentReport) string { return r.AgentName })
	klog.V(6).Infof("开始汇总: reports=%s", strings.Join(names, ","))

	systemPrompt := Roles[RoleManager].SystemPrompt() + "\n" + managerOutputFormat
	userPrompt := buildManagerPrompt(reports, contractText, filename, userGoal)

	markdown, err := c.generator.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", &ConsolidationError{Err: err}
	}

	klog.V(6).Infof("汇总完成: output=%d bytes", len(markdown))
	return markdown, nil
}

// buildManagerPrompt 构造 Manager 的 user prompt
// 带上原始合同文本与各角色报告；角色报告仅供 Manager 参考，
// 指令禁止其出现在面向用户的输出里
func buildManagerPrompt(reports []AgentReport, contractText, filename, userGoal string) string {
	goal := strings.TrimSpace(userGoal)
	if goal == "" {
		goal = "N/A"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("USER GOAL (optional):\n%s\n\n", goal))
	sb.WriteString(fmt.Sprintf("CONTRACT FILENAME: %s\n\n", filename))

	sb.WriteString("CONTRACT TEXT:\n")
	if contractText == "" {
		sb.WriteString("(no text could be extracted from the document)\n")
	} else {
		sb.WriteString(contractText)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("AGENT REPORTS (internal, do not expose verbatim):\n\n")
	for _, report := range reports {
		sb.WriteString(fmt.Sprintf("## %s\n%s\n\n", report.AgentName, report.RawOutput))
	}

	sb.WriteString("TASK:\n- Produce a consolidated manager answer (structure + legal + negotiation).\n")
	return sb.String()
}

package team

// Severity 风险等级
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Finding 单条风险/观察项
// Quote 若存在，约定必须是合同原文的短摘录（由指令约束，非结构校验）
type Finding struct {
	Title        string   `json:"title"`
	Detail       string   `json:"detail"`
	Severity     Severity `json:"severity"`
	Quote        string   `json:"quote,omitempty"`
	LocationHint string   `json:"location_hint,omitempty"` // 例如 "Section 4.2"
}

// AgentReport 单个角色一次调用的产出，生成后不可变
// RawOutput 保留生成能力返回的原始 Markdown，作为审计 trace 的载体；
// 结构化字段仅在生成能力支持 schema 约束输出时填充
type AgentReport struct {
	AgentName       string    `json:"agent_name"`
	Summary         string    `json:"summary,omitempty"`
	Findings        []Finding `json:"findings,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
	RawOutput       string    `json:"raw_output"`
}

// ConsolidatedReport 最终汇总结果
// Trace 保留各角色的原始输出用于审计，不渲染进面向用户的 Markdown
type ConsolidatedReport struct {
	ContractSummary   string        `json:"contract_summary,omitempty"`
	KeyRisks          []Finding     `json:"key_risks,omitempty"`
	NegotiationPlan   []string      `json:"negotiation_plan,omitempty"`
	SuggestedRedlines []string      `json:"suggested_redlines,omitempty"`
	Trace             []AgentReport `json:"trace"`
	Markdown          string        `json:"markdown"`
}

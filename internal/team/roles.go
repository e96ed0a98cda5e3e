// Package team 实现合同评审多角色编排：
// 三个分析角色并行审阅同一份合同文本，Manager 角色汇总为一份面向客户的报告
package team

import "strings"

// RoleName 定义各个角色的名称常量
const (
	// RoleStructure 结构角色 - 负责条款完整性与组织方式
	RoleStructure = "ContractStructure"
	// RoleLegal 法务合规角色 - 负责监管与合规暴露
	RoleLegal = "LegalFramework"
	// RoleNegotiation 谈判角色 - 负责可谈判条款与替代措辞
	RoleNegotiation = "Negotiating"
	// RoleManager 汇总角色 - 负责合并三个视角的产出
	RoleManager = "Manager"
)

// Role 定义一个角色的静态配置
// 角色仅是配置包，不持有任何可变状态，进程启动后只读
type Role struct {
	Name         string   // 角色名称，单次运行内唯一
	Description  string   // 角色职责描述
	Instructions []string // 系统指令，按序拼接
}

// SystemPrompt 把职责描述与指令拼成 system prompt
func (r Role) SystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("ROLE: ")
	sb.WriteString(r.Description)
	sb.WriteString("\n\nINSTRUCTIONS:\n")
	for _, ins := range r.Instructions {
		sb.WriteString("- ")
		sb.WriteString(ins)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Roles 预定义的角色配置
var Roles = map[string]Role{
	RoleStructure: {
		Name:        RoleStructure,
		Description: "Analyze the contract structure and clause quality (scope, obligations, payment, SLA, liability, termination).",
		Instructions: []string{
			"You are a contract structuring expert.",
			"You review how the contract is structured and organized.",
			"Work ONLY from the provided contract text.",
			"Identify missing sections, unclear organization, or inconsistent structure.",
			"Focus on: scope, obligations, payment, liability, termination, governing law.",
			"When relevant, quote short excerpts from the contract as evidence.",
			"If required information is absent, say 'Not found' or 'Unclear from text' instead of inventing it.",
			"Suggest practical improvements or missing sections.",
			"Do NOT provide legal advice.",
			"Return a concise Markdown output.",
		},
	},
	RoleLegal: {
		Name:        RoleLegal,
		Description: "Analyze legal framework & compliance: governing law, confidentiality, data protection (DPA/GDPR), IP, liability limits, local regulatory concerns.",
		Instructions: []string{
			"You identify potential legal or compliance issues in the contract.",
			"Work ONLY from the provided contract text.",
			"Focus on high-impact areas: governing law, confidentiality, data protection (GDPR/DPA), IP, liability, termination.",
			"When raising an issue, reference the relevant clause or say if it is missing.",
			"If something is missing or unclear, say 'Not found' or 'Unclear from text'.",
			"Use cautious language and avoid legal conclusions.",
			"Return a clear and concise Markdown summary.",
		},
	},
	RoleNegotiation: {
		Name:        RoleNegotiation,
		Description: "Build a negotiation strategy: redlines, concessions, opening positions, fallback options, alternative wording.",
		Instructions: []string{
			"You identify clauses that are commonly negotiable or potentially unbalanced.",
			"Work ONLY from the provided contract text.",
			"For each point, explain briefly why it may be negotiable.",
			"Suggest a practical alternative or counter-proposal.",
			"Quote the clause when relevant.",
			"Keep suggestions concise and business-oriented.",
			"Return Markdown: Summary / Negotiation Plan / Redlines / Proposed Wording.",
		},
	},
	RoleManager: {
		Name:        RoleManager,
		Description: "Merge the Structure, Legal/Compliance, and Negotiation reviews into one client-ready contract report.",
		Instructions: []string{
			"You are the manager. Produce a client-ready contract review that clearly covers three lenses: Structure, Legal/Compliance, and Negotiation.",
			"Prioritize the USER GOAL if provided. Keep it concise, actionable, and professional.",
			"Do NOT include raw agent traces, internal reasoning, or intermediate outputs forcing the reader to parse.",
			"Do not invent clauses. If something is missing/unclear, say 'Not found' or 'Unclear from text'.",
			"For key claims, include a short exact quote as evidence.",
		},
	},
}

// DefaultAnalysisRoles 返回三个分析角色，顺序固定，决定下游报告的呈现顺序
func DefaultAnalysisRoles() []Role {
	return []Role{
		Roles[RoleStructure],
		Roles[RoleLegal],
		Roles[RoleNegotiation],
	}
}
